// Package handle models ownership of raw OS handles.
//
// An *Owned value is the single owner of one raw handle and releases it
// exactly once: through Close, at the end of a Use scope, or, as a backstop,
// when the garbage collector finds it unreachable without having been closed.
// A Borrowed value is a plain reference whose lifetime is managed elsewhere;
// nothing in this module ever releases it.
//
// Owned values are not safe for concurrent use. Callers sequence operations on
// one handle themselves.
package handle

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/microsoft/hcsshim/winhandle/internal/log"
	"github.com/microsoft/hcsshim/winhandle/internal/oserr"
)

// Raw is an opaque OS handle value.
type Raw uintptr

const (
	// Null is never a live handle.
	Null Raw = 0
	// Invalid is INVALID_HANDLE_VALUE. The current-process pseudo-handle has
	// the same bit pattern, so it is not rejected on its own.
	Invalid Raw = ^Raw(0)
)

// Closer performs the OS release call for a raw handle.
type Closer interface {
	CloseHandle(h Raw) error
}

// Borrowed is a non-owning reference to a raw handle.
//
// A Borrowed taken from an Owned or an *os.File keeps a pointer to it, so the
// owner's release backstop cannot fire while the reference is in use.
// Operations call KeepAlive after their OS call.
type Borrowed struct {
	raw   Raw
	owner any
}

// Borrow wraps a raw handle the caller keeps alive, such as a standard
// console handle.
func Borrow(raw Raw) Borrowed {
	return Borrowed{raw: raw}
}

// FromFile borrows the handle behind f. f must stay open for as long as the
// returned value is used.
func FromFile(f *os.File) Borrowed {
	return Borrowed{raw: Raw(f.Fd()), owner: f}
}

// Raw returns the underlying value for a single OS call.
func (b Borrowed) Raw() Raw {
	return b.raw
}

// IsNull reports whether b refers to no handle at all. Operations reject a
// null handle with InvalidHandle before calling the OS.
func (b Borrowed) IsNull() bool {
	return b.raw == Null
}

// KeepAlive marks the owner of b as reachable up to this point. Call it after
// the last OS call that uses b.Raw().
func (b Borrowed) KeepAlive() {
	runtime.KeepAlive(b.owner)
}

func (b Borrowed) String() string {
	return fmt.Sprintf("borrowed(%#x)", uintptr(b.raw))
}

// Option configures an Owned handle.
type Option func(*options)

type options struct {
	kind   string
	logger *zerolog.Logger
	hook   func(Raw, error)
}

// WithKind labels the handle in diagnostics ("process", "file", ...).
func WithKind(kind string) Option {
	return func(o *options) { o.kind = kind }
}

// WithLogger sets the logger receiving implicit-release diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// WithLeakHook registers fn to run after the garbage collector released a
// handle that was never closed. err is the outcome of the release call.
// fn must not retain the Owned value it was registered for.
func WithLeakHook(fn func(raw Raw, err error)) Option {
	return func(o *options) { o.hook = fn }
}

// Owned is the exclusive owner of a raw handle.
type Owned struct {
	raw     Raw
	closer  Closer
	opts    options
	cleanup runtime.Cleanup
	done    bool
}

// leaked carries what the GC cleanup needs. It must never point back at the
// Owned it belongs to, or the Owned would stay reachable forever.
type leaked struct {
	raw    Raw
	closer Closer
	kind   string
	logger zerolog.Logger
	hook   func(Raw, error)
}

// Acquire takes ownership of raw, which the caller guarantees came from a
// successful acquisition call and is owned by nobody else.
func Acquire(raw Raw, closer Closer, opts ...Option) *Owned {
	o := &Owned{
		raw:    raw,
		closer: closer,
		opts:   options{kind: "handle"},
	}
	for _, opt := range opts {
		opt(&o.opts)
	}
	o.arm()
	return o
}

func (o *Owned) arm() {
	logger := log.WithComponent("handle")
	if o.opts.logger != nil {
		logger = *o.opts.logger
	}
	o.cleanup = runtime.AddCleanup(o, releaseLeaked, leaked{
		raw:    o.raw,
		closer: o.closer,
		kind:   o.opts.kind,
		logger: logger,
		hook:   o.opts.hook,
	})
}

// disarm gives up ownership without releasing. It reports false if the
// handle had already been given up.
func (o *Owned) disarm() (Raw, bool) {
	if o.done {
		return Null, false
	}
	o.done = true
	o.cleanup.Stop()
	raw := o.raw
	o.raw = Null
	return raw, true
}

// Borrow returns a reference valid until o is closed. The reference keeps o
// reachable, so the release backstop does not run while it is in use. After
// Close it returns the null Borrowed.
func (o *Owned) Borrow() Borrowed {
	if o.done {
		return Borrowed{}
	}
	return Borrowed{raw: o.raw, owner: o}
}

// Raw returns the owned value, or Null once o has been closed or moved.
func (o *Owned) Raw() Raw {
	return o.raw
}

// Kind returns the diagnostics label.
func (o *Owned) Kind() string {
	return o.opts.kind
}

// Closed reports whether o no longer owns a handle.
func (o *Owned) Closed() bool {
	return o.done
}

// Close releases the handle. The release call is made at most once; later
// calls return oserr.ErrClosed without reaching the OS. A failed release
// still counts as the release.
func (o *Owned) Close() error {
	raw, ok := o.disarm()
	if !ok {
		return oserr.ErrClosed
	}
	return oserr.FromError("CloseHandle", o.closer.CloseHandle(raw), nil)
}

// Move transfers ownership to a new value and leaves o closed. Moving a
// closed handle yields another closed handle.
func (o *Owned) Move() *Owned {
	raw, ok := o.disarm()
	n := &Owned{raw: raw, closer: o.closer, opts: o.opts}
	if !ok {
		n.done = true
		return n
	}
	n.arm()
	return n
}

// Release gives up ownership without closing and returns the raw handle. The
// caller becomes responsible for releasing it.
func (o *Owned) Release() Raw {
	raw, _ := o.disarm()
	return raw
}

func (o *Owned) String() string {
	if o.done {
		return fmt.Sprintf("%s(closed)", o.opts.kind)
	}
	return fmt.Sprintf("%s(%#x)", o.opts.kind, uintptr(o.raw))
}

// Use runs fn with a borrowed view of o and closes o afterwards, on every
// exit path. Errors from fn and from the release are joined.
func Use(o *Owned, fn func(Borrowed) error) (err error) {
	defer func() {
		err = errors.Join(err, o.Close())
	}()
	return fn(o.Borrow())
}

// releaseLeaked runs on the runtime's cleanup goroutine. It must not panic.
func releaseLeaked(l leaked) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().
				Str("kind", l.kind).
				Uint64("raw", uint64(l.raw)).
				Interface("panic", r).
				Msg("implicit handle release panicked")
		}
	}()

	err := oserr.FromError("CloseHandle", l.closer.CloseHandle(l.raw), nil)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("kind", l.kind).
			Uint64("raw", uint64(l.raw)).
			Msg("implicit release of unclosed handle failed")
	} else {
		l.logger.Warn().
			Str("kind", l.kind).
			Uint64("raw", uint64(l.raw)).
			Msg("handle released by garbage collector without Close")
	}
	if l.hook != nil {
		l.hook(l.raw, err)
	}
}
