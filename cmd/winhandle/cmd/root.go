// Package cmd implements the winhandle command line.
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/microsoft/hcsshim/winhandle/internal/config"
	"github.com/microsoft/hcsshim/winhandle/internal/env"
	"github.com/microsoft/hcsshim/winhandle/internal/log"
	"github.com/microsoft/hcsshim/winhandle/internal/winapi"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// OS bindings. Tests swap these for doubles.
var (
	newAPI    = winapi.New
	envSource = env.System
)

// SetVersion records build information for the version command.
func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// app is the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	debug   bool

	cfg    config.Config
	api    winapi.API
	env    *env.Query
	logger zerolog.Logger
}

// Execute runs the command line against os.Args.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	a := &app{v: viper.New()}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		a.reportError(stderr, err)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "winhandle",
		Short: "Inspect processes, files, consoles and the environment through owned OS handles",
		Long: `winhandle opens Windows processes and files through owned handles that are
always released, and reports what the OS says about them. Every failure is
classified as AccessDenied, NotFound, InvalidHandle, Unsupported or Other.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./winhandle.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.Bool("json", false, "print results and errors as JSON")
	pf.BoolVar(&a.debug, "debug", false, "log the effective configuration before running")

	_ = a.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyJSON, pf.Lookup("json"))

	root.AddCommand(
		newProcCmd(a),
		newFileCmd(a),
		newConsoleCmd(a),
		newEnvCmd(a),
		newErrcodeCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	config.SetDefaults(a.v)
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log.Configure(log.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	a.logger = log.WithComponent("cli")
	a.api = newAPI()
	a.env = env.New(envSource)

	if a.debug {
		j, err := config.BuildJSON(cfg)
		if err != nil {
			return fmt.Errorf("config build error: %w", err)
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, []byte(j)); err != nil {
			return fmt.Errorf("config build error: %w", err)
		}
		a.logger.Info().RawJSON("config", compact.Bytes()).Msg("effective configuration")
	}
	return nil
}

// emit prints v as JSON in --json mode, and otherwise calls text.
func (a *app) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if a.cfg.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(out)
	return nil
}

func (a *app) reportError(w io.Writer, err error) {
	if a.v.GetBool(config.KeyJSON) {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(platformerrors.ToJSON(err)); encErr == nil {
			return
		}
	}
	fmt.Fprintf(w, "winhandle: %v\n", err)
}
