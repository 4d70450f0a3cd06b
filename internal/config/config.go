// Package config holds the CLI's effective settings and loads them through
// viper from flags, WINHANDLE_* environment variables and an optional YAML
// file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/microsoft/hcsshim/winhandle/internal/process"
)

// Viper keys. Nested keys map to WINHANDLE_LOG_LEVEL and so on.
const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyRights    = "process.rights"
	KeyInherit   = "process.inherit"
	KeyJSON      = "output.json"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "WINHANDLE"

// DefaultRights is the access requested by "proc open" when none is given.
const DefaultRights = "query-limited"

// Config holds user-facing options.
type Config struct {
	LogLevel  string
	LogFormat string
	Rights    string
	Inherit   bool
	JSON      bool
}

// SetDefaults registers defaults and environment handling on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyRights, DefaultRights)
	v.SetDefault(KeyInherit, false)
	v.SetDefault(KeyJSON, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile reads path into v, or searches for winhandle.yaml in the working
// directory and $HOME/.config/winhandle when path is empty. A missing file in
// search mode is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("winhandle")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/winhandle")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		Rights:    v.GetString(KeyRights),
		Inherit:   v.GetBool(KeyInherit),
		JSON:      v.GetBool(KeyJSON),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (want json or console)", c.LogFormat)
	}
	if _, err := c.AccessRights(); err != nil {
		return err
	}
	return nil
}

// AccessRights parses Rights.
func (c Config) AccessRights() (process.AccessRights, error) {
	r, err := process.ParseAccessRights(c.Rights)
	if err != nil {
		return 0, fmt.Errorf("invalid rights: %w", err)
	}
	return r, nil
}

type document struct {
	Log     logSection     `json:"log"`
	Process processSection `json:"process"`
	Output  outputSection  `json:"output"`
}

type logSection struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

type processSection struct {
	Rights     string `json:"rights"`
	RightsMask string `json:"rightsMask"`
	Inherit    bool   `json:"inherit"`
}

type outputSection struct {
	JSON bool `json:"json"`
}

// BuildJSON renders the effective configuration, including the numeric
// access mask the rights resolve to.
func BuildJSON(cfg Config) (string, error) {
	rights, err := cfg.AccessRights()
	if err != nil {
		return "", err
	}

	doc := document{
		Log: logSection{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		},
		Process: processSection{
			Rights:     rights.String(),
			RightsMask: fmt.Sprintf("%#x", uint32(rights)),
			Inherit:    cfg.Inherit,
		},
		Output: outputSection{JSON: cfg.JSON},
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(b), nil
}
