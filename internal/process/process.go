// Package process opens and queries OS processes by id.
//
// A *Handle owns one process handle. Close it, or scope it with With; the
// garbage collector releases a forgotten handle as a last resort and logs it.
package process

import (
	"github.com/microsoft/hcsshim/winhandle/internal/handle"
	"github.com/microsoft/hcsshim/winhandle/internal/log"
	"github.com/microsoft/hcsshim/winhandle/internal/oserr"
)

// ID is an OS process identifier.
type ID uint32

// API is the subset of system calls used here.
type API interface {
	handle.Closer
	OpenProcess(access uint32, inherit bool, pid uint32) (handle.Raw, error)
	GetProcessID(h handle.Raw) (uint32, error)
	TerminateProcess(h handle.Raw, exitCode uint32) error
	GetExitCodeProcess(h handle.Raw) (uint32, error)
	CurrentProcess() handle.Raw
}

const stillActive = 259

// OpenProcess reports ERROR_INVALID_PARAMETER for a pid that names no
// process.
var openTable = oserr.DefaultTable.With(oserr.Table{
	oserr.ErrorInvalidParameter: oserr.NotFound,
})

// Handle is an owned process handle together with what it was opened for.
type Handle struct {
	*handle.Owned

	api    API
	pid    ID
	rights AccessRights
}

type openOptions struct {
	inherit    bool
	handleOpts []handle.Option
}

// OpenOption configures Open.
type OpenOption func(*openOptions)

// Inherit marks the handle inheritable by child processes.
func Inherit() OpenOption {
	return func(o *openOptions) { o.inherit = true }
}

// WithHandleOptions passes options through to handle.Acquire.
func WithHandleOptions(opts ...handle.Option) OpenOption {
	return func(o *openOptions) { o.handleOpts = append(o.handleOpts, opts...) }
}

// Open opens process pid with the requested rights.
//
// Errors are classified: AccessDenied when the rights cannot be granted
// (including protected and system processes), NotFound when no process has
// that id.
func Open(api API, pid ID, rights AccessRights, opts ...OpenOption) (*Handle, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	logger := log.WithComponent("process")
	raw, err := api.OpenProcess(uint32(rights), o.inherit, uint32(pid))
	if err != nil {
		err = oserr.FromError("OpenProcess", err, openTable)
		logger.Debug().Err(err).Uint32("pid", uint32(pid)).Stringer("rights", rights).Msg("open failed")
		return nil, err
	}
	if raw == handle.Null {
		return nil, oserr.New("OpenProcess", oserr.Other, 0)
	}

	hopts := append([]handle.Option{handle.WithKind("process")}, o.handleOpts...)
	h := &Handle{
		Owned:  handle.Acquire(raw, api, hopts...),
		api:    api,
		pid:    pid,
		rights: rights,
	}
	logger.Debug().Uint32("pid", uint32(pid)).Stringer("rights", rights).Stringer("handle", h.Owned).Msg("opened process")
	return h, nil
}

// PID returns the id the handle was opened for.
func (h *Handle) PID() ID {
	return h.pid
}

// Rights returns the access the handle was opened with.
func (h *Handle) Rights() AccessRights {
	return h.rights
}

// Move transfers ownership to a new Handle and leaves h closed.
func (h *Handle) Move() *Handle {
	return &Handle{
		Owned:  h.Owned.Move(),
		api:    h.api,
		pid:    h.pid,
		rights: h.rights,
	}
}

// Terminate ends the process with exitCode. It fails with AccessDenied
// without calling the OS when the handle lacks Terminate access.
func (h *Handle) Terminate(exitCode uint32) error {
	b := h.Borrow()
	if b.IsNull() {
		return oserr.NullHandle("TerminateProcess")
	}
	if !h.rights.Has(Terminate) {
		return &oserr.Error{
			Op:   "TerminateProcess",
			Kind: oserr.AccessDenied,
			Raw:  oserr.ErrorAccessDenied,
			Msg:  "handle was opened without terminate access",
		}
	}
	err := h.api.TerminateProcess(b.Raw(), exitCode)
	b.KeepAlive()
	return oserr.FromError("TerminateProcess", err, nil)
}

// ExitCode returns the exit code of the process. running is true, and code
// meaningless, while the process has not exited.
func (h *Handle) ExitCode() (code uint32, running bool, err error) {
	b := h.Borrow()
	if b.IsNull() {
		return 0, false, oserr.NullHandle("GetExitCodeProcess")
	}
	code, err = h.api.GetExitCodeProcess(b.Raw())
	b.KeepAlive()
	if err != nil {
		return 0, false, oserr.FromError("GetExitCodeProcess", err, nil)
	}
	return code, code == stillActive, nil
}

// PIDOf asks the OS for the id of the process behind h. A null handle fails
// with InvalidHandle before any OS call.
func PIDOf(api API, h handle.Borrowed) (ID, error) {
	if h.IsNull() {
		return 0, oserr.NullHandle("GetProcessId")
	}
	id, err := api.GetProcessID(h.Raw())
	h.KeepAlive()
	if err != nil {
		return 0, oserr.FromError("GetProcessId", err, nil)
	}
	return ID(id), nil
}

// With opens pid, runs fn with the borrowed handle and closes it on every
// exit path.
func With(api API, pid ID, rights AccessRights, fn func(handle.Borrowed) error) error {
	h, err := Open(api, pid, rights)
	if err != nil {
		return err
	}
	return handle.Use(h.Owned, fn)
}

// Alive reports whether pid names a running process. A process that exists
// but refuses query access counts as alive.
func Alive(api API, pid ID) (bool, error) {
	h, err := Open(api, pid, QueryLimitedInformation)
	if err != nil {
		switch oserr.KindOf(err) {
		case oserr.AccessDenied:
			return true, nil
		case oserr.NotFound:
			return false, nil
		default:
			return false, err
		}
	}

	var running bool
	err = handle.Use(h.Owned, func(handle.Borrowed) error {
		var err error
		_, running, err = h.ExitCode()
		return err
	})
	return running, err
}

// Current borrows the current-process pseudo-handle. It is valid for the
// life of the process and is never closed.
func Current(api API) handle.Borrowed {
	return handle.Borrow(api.CurrentProcess())
}
