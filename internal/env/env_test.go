package env

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microsoft/hcsshim/winhandle/internal/log"
)

type fakeSource struct {
	vars map[string]string
	list []string
	cpus int
	err  error
}

func (f fakeSource) LookupEnv(name string) (string, bool) {
	v, ok := f.vars[name]
	return v, ok
}

func (f fakeSource) Environ() []string         { return f.list }
func (f fakeSource) LogicalCPUs() (int, error) { return f.cpus, f.err }

func TestGet(t *testing.T) {
	q := New(fakeSource{vars: map[string]string{"PATH": `C:\Windows`, "EMPTY": ""}})

	v, ok := q.Get("PATH")
	assert.True(t, ok)
	assert.Equal(t, `C:\Windows`, v)

	v, ok = q.Get("EMPTY")
	assert.True(t, ok, "set-but-empty is present")
	assert.Empty(t, v)

	v, ok = q.Get("DEFINITELY_NOT_SET")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestGet_RedactsSensitiveValuesInLogs(t *testing.T) {
	var buf bytes.Buffer
	log.Configure(log.Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { log.Configure(log.Config{}) })

	q := New(fakeSource{vars: map[string]string{"GITHUB_TOKEN": "ghp_abc", "HOME": `C:\Users\me`}})
	v, _ := q.Get("GITHUB_TOKEN")
	require.Equal(t, "ghp_abc", v, "callers still get the real value")
	q.Get("HOME")

	out := buf.String()
	assert.NotContains(t, out, "ghp_abc")
	assert.Contains(t, out, `"value":"***"`)
	assert.Contains(t, out, `C:\\Users\\me`)
}

func TestProcessorCount(t *testing.T) {
	tests := []struct {
		name string
		cpus int
		err  error
		want int
	}{
		{"reported", 8, nil, 8},
		{"single", 1, nil, 1},
		{"zero", 0, nil, 1},
		{"negative", -4, nil, 1},
		{"error", 16, errors.New("wmi unavailable"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(fakeSource{cpus: tt.cpus, err: tt.err})
			assert.Equal(t, tt.want, q.ProcessorCount())
		})
	}
}

func TestProcessorCount_System(t *testing.T) {
	assert.GreaterOrEqual(t, New(nil).ProcessorCount(), 1)
}

func TestEnviron(t *testing.T) {
	q := New(fakeSource{list: []string{
		"PATH=C:\\Windows",
		"=C:=C:\\work",
		"EMPTY=",
		"EQ=a=b",
		"garbage",
		"",
	}})

	got := q.Environ()
	assert.Equal(t, map[string]string{
		"PATH":  `C:\Windows`,
		"=C:":   `C:\work`,
		"EMPTY": "",
		"EQ":    "a=b",
	}, got)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "***", Mask("DB_PASSWORD", "hunter2"))
	assert.Equal(t, "***", Mask("Api_Key", "k"))
	assert.Equal(t, "", Mask("DB_PASSWORD", ""))
	assert.Equal(t, "value", Mask("USERNAME", "value"))
	assert.True(t, Sensitive("AWS_SECRET_ACCESS_KEY"))
	assert.False(t, Sensitive("PROCESSOR_ARCHITECTURE"))
}
