package cmd

import (
	"bytes"
	"encoding/json"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/microsoft/hcsshim/winhandle/internal/handle"
	"github.com/microsoft/hcsshim/winhandle/internal/log"
	"github.com/microsoft/hcsshim/winhandle/internal/oserr"
	"github.com/microsoft/hcsshim/winhandle/internal/process"
	"github.com/microsoft/hcsshim/winhandle/internal/winapi"
	"github.com/microsoft/hcsshim/winhandle/internal/winapi/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeEnv struct {
	vars map[string]string
}

func (f fakeEnv) LookupEnv(name string) (string, bool) {
	v, ok := f.vars[name]
	return v, ok
}

func (f fakeEnv) Environ() []string {
	out := make([]string, 0, len(f.vars))
	for k, v := range f.vars {
		out = append(out, k+"="+v)
	}
	return out
}

func (f fakeEnv) LogicalCPUs() (int, error) { return 12, nil }

// newMock fakes one machine: processes 4321 (running) and 4 (protected),
// two links to one file plus a second file, a console on stdout and a pipe
// on stderr.
func newMock() *mocks.APIMock {
	modes := map[handle.Raw]uint32{0x7: 0x3}
	files := map[string]handle.Raw{`C:\a.txt`: 0x10, `C:\link.txt`: 0x11, `C:\b.txt`: 0x20}
	ids := map[handle.Raw]winapi.FileInformation{
		0x10: {VolumeSerialNumber: 0xc0ffee, FileIndexLow: 0x2},
		0x11: {VolumeSerialNumber: 0xc0ffee, FileIndexLow: 0x2},
		0x20: {VolumeSerialNumber: 0xc0ffee, FileIndexLow: 0x3},
	}

	return &mocks.APIMock{
		CloseHandleFunc: func(handle.Raw) error { return nil },
		OpenProcessFunc: func(access uint32, inherit bool, pid uint32) (handle.Raw, error) {
			switch pid {
			case 4321:
				return 0x1a4, nil
			case 4:
				return handle.Null, syscall.Errno(oserr.ErrorAccessDenied)
			default:
				return handle.Null, syscall.Errno(oserr.ErrorInvalidParameter)
			}
		},
		GetProcessIDFunc:       func(handle.Raw) (uint32, error) { return 4321, nil },
		GetExitCodeProcessFunc: func(handle.Raw) (uint32, error) { return winapi.StillActive, nil },
		TerminateProcessFunc:   func(handle.Raw, uint32) error { return nil },
		CurrentProcessFunc:     func() handle.Raw { return handle.Invalid },
		CreateFileFunc: func(path string, _, _, _, _ uint32) (handle.Raw, error) {
			h, ok := files[path]
			if !ok {
				return handle.Null, syscall.Errno(oserr.ErrorFileNotFound)
			}
			return h, nil
		},
		GetFileInformationByHandleFunc: func(h handle.Raw) (winapi.FileInformation, error) {
			return ids[h], nil
		},
		GetFileTypeFunc: func(handle.Raw) (uint32, error) { return winapi.FileTypeDisk, nil },
		GetStdHandleFunc: func(which uint32) (handle.Raw, error) {
			if which == winapi.StdOutputHandle {
				return 0x7, nil
			}
			return 0xb, nil
		},
		GetConsoleModeFunc: func(h handle.Raw) (uint32, error) {
			m, ok := modes[h]
			if !ok {
				return 0, syscall.Errno(oserr.ErrorInvalidHandle)
			}
			return m, nil
		},
		SetConsoleModeFunc: func(h handle.Raw, mode uint32) error {
			modes[h] = mode
			return nil
		},
		GetConsoleSizeFunc: func(handle.Raw) (int, int, error) { return 120, 30, nil },
		FormatMessageFunc: func(code uint32) string {
			if code == 5 {
				return "Access is denied"
			}
			return ""
		},
	}
}

func runCLI(t *testing.T, api *mocks.APIMock, args ...string) (string, string, error) {
	t.Helper()
	oldAPI, oldEnv := newAPI, envSource
	newAPI = func() winapi.API { return api }
	envSource = fakeEnv{vars: map[string]string{"PATH": `C:\Windows`, "GITHUB_TOKEN": "ghp_secret"}}
	t.Cleanup(func() {
		newAPI, envSource = oldAPI, oldEnv
		log.Configure(log.Config{})
	})
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	err := run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123def", "2026-01-15")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, _, err := runCLI(t, newMock(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "winhandle v1.2.3")
	assert.Contains(t, out, "commit: abc123def")
	assert.Contains(t, out, "built:  2026-01-15")
}

func TestProcOpen(t *testing.T) {
	api := newMock()
	out, _, err := runCLI(t, api, "proc", "open", "4321")
	require.NoError(t, err)

	assert.Contains(t, out, "pid:     4321")
	assert.Contains(t, out, "rights:  query-limited")
	assert.Contains(t, out, "state:   running")
	assert.Len(t, api.CloseHandleCalls(), 1)
	assert.EqualValues(t, process.QueryLimitedInformation, api.OpenProcessCalls()[0].Access)
}

func TestProcOpen_JSON(t *testing.T) {
	out, _, err := runCLI(t, newMock(), "--json", "proc", "open", "4321", "--rights", "query|terminate", "--inherit")
	require.NoError(t, err)

	var info procInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.EqualValues(t, 4321, info.PID)
	assert.Equal(t, "terminate|query", info.Rights)
	require.NotNil(t, info.Running)
	assert.True(t, *info.Running)
	assert.Nil(t, info.ExitCode)
}

func TestProcOpen_WithoutQueryRights(t *testing.T) {
	api := newMock()
	out, _, err := runCLI(t, api, "proc", "open", "4321", "--rights", "terminate")
	require.NoError(t, err)
	assert.Contains(t, out, "pid:     4321")
	assert.NotContains(t, out, "state:")
	assert.Empty(t, api.GetProcessIDCalls())
	assert.Len(t, api.CloseHandleCalls(), 1)
}

func TestProcOpen_Errors(t *testing.T) {
	_, errOut, err := runCLI(t, newMock(), "proc", "open", "4")
	require.ErrorIs(t, err, oserr.ErrAccessDenied)
	assert.Contains(t, errOut, "winhandle: open process 4: OpenProcess: AccessDenied (code 5)")

	_, errOut, err = runCLI(t, newMock(), "--json", "proc", "open", "99999")
	require.ErrorIs(t, err, oserr.ErrNotFound)
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(errOut), &resp))
	assert.Equal(t, "NOT_FOUND", resp["code"])
	assert.Equal(t, "PERMANENT", resp["classification"])

	_, _, err = runCLI(t, newMock(), "proc", "open", "abc")
	require.ErrorContains(t, err, `invalid pid "abc"`)

	_, _, err = runCLI(t, newMock(), "proc", "open", "4321", "--rights", "fly")
	require.ErrorContains(t, err, "invalid rights")
}

func TestProcAlive(t *testing.T) {
	out, _, err := runCLI(t, newMock(), "proc", "alive", "4321")
	require.NoError(t, err)
	assert.Equal(t, "4321 is running\n", out)

	out, _, err = runCLI(t, newMock(), "proc", "alive", "4")
	require.NoError(t, err)
	assert.Equal(t, "4 is running\n", out, "access denied counts as alive")

	out, _, err = runCLI(t, newMock(), "proc", "alive", "99999")
	require.NoError(t, err)
	assert.Equal(t, "99999 is not running\n", out)
}

func TestProcKill(t *testing.T) {
	api := newMock()
	out, errOut, err := runCLI(t, api, "proc", "kill", "4321", "--exit-code", "7")
	require.NoError(t, err)
	assert.Equal(t, "4321 terminated\n", out)
	assert.Contains(t, errOut, "terminating process")

	require.Len(t, api.TerminateProcessCalls(), 1)
	assert.EqualValues(t, 7, api.TerminateProcessCalls()[0].ExitCode)
	assert.EqualValues(t, process.Terminate, api.OpenProcessCalls()[0].Access)
	assert.Len(t, api.CloseHandleCalls(), 1)
}

func TestProcKill_TerminateFailureStillCloses(t *testing.T) {
	api := newMock()
	api.TerminateProcessFunc = func(handle.Raw, uint32) error {
		return syscall.Errno(oserr.ErrorAccessDenied)
	}
	_, _, err := runCLI(t, api, "proc", "kill", "4321")
	require.ErrorIs(t, err, oserr.ErrAccessDenied)
	assert.Len(t, api.CloseHandleCalls(), 1)
}

func TestProcKill_ReportsCloseFailure(t *testing.T) {
	api := newMock()
	api.TerminateProcessFunc = func(handle.Raw, uint32) error {
		return syscall.Errno(oserr.ErrorAccessDenied)
	}
	api.CloseHandleFunc = func(handle.Raw) error {
		return syscall.Errno(oserr.ErrorInvalidHandle)
	}
	_, _, err := runCLI(t, api, "proc", "kill", "4321")
	require.ErrorIs(t, err, oserr.ErrAccessDenied)
	require.ErrorIs(t, err, oserr.ErrInvalidHandle)
	assert.ErrorContains(t, err, "terminate process 4321")
	assert.ErrorContains(t, err, "CloseHandle")
}

func TestFileCommands(t *testing.T) {
	out, _, err := runCLI(t, newMock(), "file", "id", `C:\a.txt`)
	require.NoError(t, err)
	assert.Equal(t, "00c0ffee:0000000000000002  C:\\a.txt\n", out)

	out, _, err = runCLI(t, newMock(), "file", "same", `C:\a.txt`, `C:\link.txt`)
	require.NoError(t, err)
	assert.Equal(t, "same file\n", out)

	out, _, err = runCLI(t, newMock(), "--json", "file", "same", `C:\a.txt`, `C:\b.txt`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"C:\\a.txt","b":"C:\\b.txt","same":false}`, out)

	api := newMock()
	out, _, err = runCLI(t, api, "file", "type", `C:\a.txt`)
	require.NoError(t, err)
	assert.Equal(t, "disk  C:\\a.txt\n", out)
	assert.Len(t, api.CloseHandleCalls(), 1)

	_, _, err = runCLI(t, newMock(), "file", "id", `C:\missing`)
	require.ErrorIs(t, err, oserr.ErrNotFound)
}

func TestConsoleCommands(t *testing.T) {
	out, _, err := runCLI(t, newMock(), "console", "mode")
	require.NoError(t, err)
	assert.Equal(t, "0x3  processed|wrap\n", out)

	out, _, err = runCLI(t, newMock(), "console", "size")
	require.NoError(t, err)
	assert.Equal(t, "120x30\n", out)

	api := newMock()
	out, _, err = runCLI(t, api, "console", "vt", "on")
	require.NoError(t, err)
	assert.Equal(t, "stdout  0x3 -> 0x7\n", out)
	require.Len(t, api.SetConsoleModeCalls(), 1)
	assert.EqualValues(t, 0x7, api.SetConsoleModeCalls()[0].Mode)

	_, _, err = runCLI(t, newMock(), "console", "mode", "--stream", "stderr")
	require.ErrorIs(t, err, oserr.ErrInvalidHandle)

	_, _, err = runCLI(t, newMock(), "console", "vt", "maybe")
	require.Error(t, err)
}

func TestEnvCommands(t *testing.T) {
	out, _, err := runCLI(t, newMock(), "env", "get", "PATH")
	require.NoError(t, err)
	assert.Equal(t, "C:\\Windows\n", out)

	_, errOut, err := runCLI(t, newMock(), "env", "get", "NOPE")
	require.ErrorIs(t, err, oserr.ErrNotFound)
	assert.Contains(t, errOut, "NOPE is not set")

	out, _, err = runCLI(t, newMock(), "env", "nproc")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)

	out, _, err = runCLI(t, newMock(), "env", "list")
	require.NoError(t, err)
	assert.Equal(t, "GITHUB_TOKEN=***\nPATH=C:\\Windows\n", out)

	out, _, err = runCLI(t, newMock(), "env", "list", "--reveal")
	require.NoError(t, err)
	assert.Contains(t, out, "GITHUB_TOKEN=ghp_secret")
}

func TestErrcode(t *testing.T) {
	out, _, err := runCLI(t, newMock(), "errcode", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "kind:      AccessDenied")
	assert.Contains(t, out, "retryable: false")
	assert.Contains(t, out, "message:   Access is denied")

	out, _, err = runCLI(t, newMock(), "errcode", "0x20")
	require.NoError(t, err)
	assert.Contains(t, out, "code:      32 (0x20)")
	assert.Contains(t, out, "kind:      Other")
	assert.Contains(t, out, "retryable: true")

	out, _, err = runCLI(t, newMock(), "--json", "errcode", "120")
	require.NoError(t, err)
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "NOT_IMPLEMENTED", resp["code"])

	_, _, err = runCLI(t, newMock(), "errcode", "five")
	require.Error(t, err)
}

func TestRootFlags(t *testing.T) {
	_, errOut, err := runCLI(t, newMock(), "--debug", "--log-format", "json", "version")
	require.NoError(t, err)
	assert.Contains(t, errOut, "effective configuration")
	assert.Contains(t, errOut, `"rightsMask":"0x1000"`)

	_, _, err = runCLI(t, newMock(), "--log-format", "xml", "version")
	require.ErrorContains(t, err, "invalid log format")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("WINHANDLE_OUTPUT_JSON", "true")
	out, _, err := runCLI(t, newMock(), "env", "nproc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"processors":12}`, out)
}
