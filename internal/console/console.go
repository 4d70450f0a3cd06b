// Package console reads and changes console modes and reports the visible
// screen size.
//
// Every function works on borrowed handles. A handle that is not a console
// (a redirected file or pipe) fails with InvalidHandle; there is no fallback.
package console

import (
	"fmt"

	"github.com/microsoft/hcsshim/winhandle/internal/handle"
	"github.com/microsoft/hcsshim/winhandle/internal/log"
	"github.com/microsoft/hcsshim/winhandle/internal/oserr"
	"github.com/microsoft/hcsshim/winhandle/internal/winapi"
)

// API is the subset of system calls used here.
type API interface {
	GetConsoleMode(h handle.Raw) (uint32, error)
	SetConsoleMode(h handle.Raw, mode uint32) error
	GetConsoleSize(h handle.Raw) (cols, rows int, err error)
	GetStdHandle(which uint32) (handle.Raw, error)
}

// Console calls on a non-console handle fail with ERROR_INVALID_HANDLE, or
// with ERROR_INVALID_FUNCTION / ERROR_INVALID_PARAMETER depending on the
// device behind it. All three mean "not a console" here.
var table = oserr.DefaultTable.With(oserr.Table{
	oserr.ErrorInvalidFunction:  oserr.InvalidHandle,
	oserr.ErrorInvalidParameter: oserr.InvalidHandle,
})

// GetMode returns the current mode of the console buffer behind h.
func GetMode(api API, h handle.Borrowed) (Mode, error) {
	if h.IsNull() {
		return 0, oserr.NullHandle("GetConsoleMode")
	}
	m, err := api.GetConsoleMode(h.Raw())
	h.KeepAlive()
	if err != nil {
		return 0, oserr.FromError("GetConsoleMode", err, table)
	}
	return Mode(m), nil
}

// SetMode replaces the mode of the console buffer behind h.
func SetMode(api API, h handle.Borrowed, m Mode) error {
	if h.IsNull() {
		return oserr.NullHandle("SetConsoleMode")
	}
	err := api.SetConsoleMode(h.Raw(), uint32(m))
	h.KeepAlive()
	return oserr.FromError("SetConsoleMode", err, table)
}

// ScreenSize returns the visible window of the screen buffer behind h in
// character cells.
func ScreenSize(api API, h handle.Borrowed) (cols, rows int, err error) {
	if h.IsNull() {
		return 0, 0, oserr.NullHandle("GetConsoleScreenBufferInfo")
	}
	cols, rows, err = api.GetConsoleSize(h.Raw())
	h.KeepAlive()
	if err != nil {
		return 0, 0, oserr.FromError("GetConsoleScreenBufferInfo", err, table)
	}
	return cols, rows, nil
}

// Stream selects a standard handle.
type Stream int

const (
	Stdin Stream = iota
	Stdout
	Stderr
)

func (s Stream) String() string {
	switch s {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return fmt.Sprintf("stream(%d)", int(s))
	}
}

// ParseStream accepts "stdin", "stdout" or "stderr".
func ParseStream(s string) (Stream, error) {
	for _, st := range []Stream{Stdin, Stdout, Stderr} {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown stream %q", s)
}

func (s Stream) stdHandle() uint32 {
	switch s {
	case Stdout:
		return winapi.StdOutputHandle
	case Stderr:
		return winapi.StdErrorHandle
	default:
		return winapi.StdInputHandle
	}
}

// Console is a standard console buffer together with the mode it had when it
// was looked up.
type Console struct {
	api     API
	stream  Stream
	h       handle.Borrowed
	initial Mode
}

// Std looks up the console behind one of the standard handles. The handle
// belongs to the process and is never closed. It fails with InvalidHandle when
// the stream is redirected away from a console.
func Std(api API, s Stream) (*Console, error) {
	raw, err := api.GetStdHandle(s.stdHandle())
	if err != nil {
		return nil, oserr.FromError("GetStdHandle", err, table)
	}
	h := handle.Borrow(raw)
	m, err := GetMode(api, h)
	if err != nil {
		return nil, err
	}
	return &Console{api: api, stream: s, h: h, initial: m}, nil
}

// Handle returns the borrowed console handle.
func (c *Console) Handle() handle.Borrowed {
	return c.h
}

// Stream returns the standard stream c was looked up for.
func (c *Console) Stream() Stream {
	return c.stream
}

// Initial returns the mode observed by Std.
func (c *Console) Initial() Mode {
	return c.initial
}

// Mode returns the current mode.
func (c *Console) Mode() (Mode, error) {
	return GetMode(c.api, c.h)
}

// SetMode replaces the current mode.
func (c *Console) SetMode(m Mode) error {
	return SetMode(c.api, c.h, m)
}

// Size returns the visible window size.
func (c *Console) Size() (cols, rows int, err error) {
	return ScreenSize(c.api, c.h)
}

// SetVirtualTerminal turns VT sequence handling on or off: output processing
// for stdout and stderr, VT input for stdin.
//
// WARNING: under ConPTY (Windows Terminal) any SetConsoleMode call on stdin,
// whatever the flags, can leave later reads from stdin blocked. Callers
// attached to a ConPTY should leave stdin in its default cooked mode.
func (c *Console) SetVirtualTerminal(enable bool) error {
	flag := EnableVirtualTerminalProcessing
	if c.stream == Stdin {
		flag = EnableVirtualTerminalInput
	}
	m, err := c.Mode()
	if err != nil {
		return err
	}
	next := m &^ flag
	if enable {
		next |= flag
	}
	if next == m {
		return nil
	}
	logger := log.WithComponent("console")
	logger.Debug().
		Stringer("stream", c.stream).
		Stringer("from", m).
		Stringer("to", next).
		Msg("changing console mode")
	return c.SetMode(next)
}

// Reset restores the mode observed by Std.
func (c *Console) Reset() error {
	return c.SetMode(c.initial)
}
