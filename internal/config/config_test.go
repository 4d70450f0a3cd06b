package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:  "info",
		LogFormat: "console",
		Rights:    DefaultRights,
	}, cfg)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("WINHANDLE_LOG_LEVEL", "debug")
	t.Setenv("WINHANDLE_PROCESS_RIGHTS", "terminate|query")
	t.Setenv("WINHANDLE_OUTPUT_JSON", "true")

	cfg, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "terminate|query", cfg.Rights)
	assert.True(t, cfg.JSON)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "winhandle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
  format: json
process:
  rights: all
  inherit: true
`), 0o600))

	v := newViper()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "all", cfg.Rights)
	assert.True(t, cfg.Inherit)
}

func TestReadFile_Missing(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, ReadFile(newViper(), ""), "search mode tolerates no file")
	require.Error(t, ReadFile(newViper(), filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "info", LogFormat: "json", Rights: "query"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "log format"},
		{"bad rights", func(c *Config) { c.Rights = "fly" }, "rights"},
		{"empty rights", func(c *Config) { c.Rights = "" }, "rights"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}

func TestBuildJSON(t *testing.T) {
	out, err := BuildJSON(Config{LogLevel: "info", LogFormat: "json", Rights: "terminate,query-limited", Inherit: true})
	require.NoError(t, err)

	var doc map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "terminate|query-limited", doc["process"]["rights"])
	assert.Equal(t, "0x1001", doc["process"]["rightsMask"])
	assert.Equal(t, true, doc["process"]["inherit"])
	assert.Equal(t, "json", doc["log"]["format"])

	_, err = BuildJSON(Config{Rights: "nope"})
	require.Error(t, err)
}
