package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/microsoft/hcsshim/winhandle/internal/config"
	"github.com/microsoft/hcsshim/winhandle/internal/handle"
	"github.com/microsoft/hcsshim/winhandle/internal/process"
)

func newProcCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "proc",
		Short: "Open and query processes by id",
	}
	c.AddCommand(newProcOpenCmd(a), newProcAliveCmd(a), newProcKillCmd(a))
	return c
}

func parsePID(s string) (process.ID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid pid %q", s)
	}
	return process.ID(v), nil
}

type procInfo struct {
	PID      uint32  `json:"pid"`
	Rights   string  `json:"rights"`
	Handle   string  `json:"handle"`
	Running  *bool   `json:"running,omitempty"`
	ExitCode *uint32 `json:"exitCode,omitempty"`
}

func newProcOpenCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "open <pid>",
		Short: "Open a process, report what the handle can see, and close it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}
			rights, err := a.cfg.AccessRights()
			if err != nil {
				return err
			}
			var opts []process.OpenOption
			if a.cfg.Inherit {
				opts = append(opts, process.Inherit())
			}

			h, err := process.Open(a.api, pid, rights, opts...)
			if err != nil {
				return fmt.Errorf("open process %d: %w", pid, err)
			}

			info := procInfo{Rights: rights.String(), Handle: h.String()}
			err = handle.Use(h.Owned, func(b handle.Borrowed) error {
				if !rights.Has(process.QueryLimitedInformation) && !rights.Has(process.QueryInformation) {
					info.PID = uint32(h.PID())
					return nil
				}
				actual, err := process.PIDOf(a.api, b)
				if err != nil {
					return err
				}
				info.PID = uint32(actual)

				code, running, err := h.ExitCode()
				if err != nil {
					return err
				}
				info.Running = &running
				if !running {
					info.ExitCode = &code
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("query process %d: %w", pid, err)
			}

			return a.emit(cmd, info, func(w io.Writer) {
				fmt.Fprintf(w, "pid:     %d\n", info.PID)
				fmt.Fprintf(w, "rights:  %s\n", info.Rights)
				fmt.Fprintf(w, "handle:  %s\n", info.Handle)
				if info.Running != nil {
					state := "running"
					if info.ExitCode != nil {
						state = fmt.Sprintf("exited (%d)", *info.ExitCode)
					}
					fmt.Fprintf(w, "state:   %s\n", state)
				}
			})
		},
	}
	c.Flags().String("rights", config.DefaultRights, "access rights (names joined by | or ',', or a numeric mask)")
	c.Flags().Bool("inherit", false, "open an inheritable handle")
	_ = a.v.BindPFlag(config.KeyRights, c.Flags().Lookup("rights"))
	_ = a.v.BindPFlag(config.KeyInherit, c.Flags().Lookup("inherit"))
	return c
}

func newProcAliveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "alive <pid>",
		Short: "Report whether a process is running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}
			alive, err := process.Alive(a.api, pid)
			if err != nil {
				return fmt.Errorf("check process %d: %w", pid, err)
			}
			return a.emit(cmd, map[string]any{"pid": pid, "alive": alive}, func(w io.Writer) {
				if alive {
					fmt.Fprintf(w, "%d is running\n", pid)
				} else {
					fmt.Fprintf(w, "%d is not running\n", pid)
				}
			})
		},
	}
}

func newProcKillCmd(a *app) *cobra.Command {
	var exitCode uint32
	c := &cobra.Command{
		Use:   "kill <pid>",
		Short: "Terminate a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}
			if err := kill(a, pid, exitCode); err != nil {
				return err
			}
			return a.emit(cmd, map[string]any{"pid": pid, "terminated": true, "exitCode": exitCode}, func(w io.Writer) {
				fmt.Fprintf(w, "%d terminated\n", pid)
			})
		},
	}
	c.Flags().Uint32Var(&exitCode, "exit-code", 1, "exit code for the terminated process")
	return c
}

// kill opens pid for termination only, terminates it and releases the
// handle. A release failure after a successful terminate is still reported.
func kill(a *app, pid process.ID, exitCode uint32) error {
	h, err := process.Open(a.api, pid, process.Terminate)
	if err != nil {
		return fmt.Errorf("open process %d: %w", pid, err)
	}
	a.logger.Info().Uint32("pid", uint32(pid)).Uint32("exitCode", exitCode).Msg("terminating process")
	if err := h.Terminate(exitCode); err != nil {
		return errors.Join(fmt.Errorf("terminate process %d: %w", pid, err), h.Close())
	}
	return h.Close()
}
