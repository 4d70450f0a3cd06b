// Package oserr classifies Win32 status codes into a small, closed set of
// error kinds.
//
// Every failing OS call made by this module surfaces as an *Error carrying the
// kind, the raw status code and the operation name. *Error implements the
// PlatformError interface of github.com/jmgilman/go/errors, so GetCode,
// IsRetryable and ToJSON from that package work on it directly.
package oserr

import (
	"errors"
	"fmt"
	"syscall"

	platformerrors "github.com/jmgilman/go/errors"
)

// Kind is the category of an OS failure.
type Kind int

const (
	// Other covers every status code the table does not name.
	Other Kind = iota
	// AccessDenied means the caller lacks the rights or privileges for the call.
	AccessDenied
	// NotFound means the target object (process, file, path) does not exist.
	NotFound
	// InvalidHandle means the handle is stale, malformed or of the wrong type.
	InvalidHandle
	// Unsupported means the OS does not implement the call for this object.
	Unsupported
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case AccessDenied:
		return "AccessDenied"
	case NotFound:
		return "NotFound"
	case InvalidHandle:
		return "InvalidHandle"
	case Unsupported:
		return "Unsupported"
	default:
		return "Other"
	}
}

// Code maps the kind onto the platform error codes.
func (k Kind) Code() platformerrors.ErrorCode {
	switch k {
	case AccessDenied:
		return platformerrors.CodeForbidden
	case NotFound:
		return platformerrors.CodeNotFound
	case InvalidHandle:
		return platformerrors.CodeInvalidInput
	case Unsupported:
		return platformerrors.CodeNotImplemented
	default:
		return platformerrors.CodeUnknown
	}
}

// Error is a classified OS failure.
type Error struct {
	// Op is the system call that failed, e.g. "OpenProcess".
	Op string
	// Kind is the classification of Raw.
	Kind Kind
	// Raw is the original Win32 status code. Zero when the failure did not
	// originate from an OS status code.
	Raw uint32
	// Msg is the OS-provided description of Raw, if any.
	Msg string
}

// Sentinels for errors.Is. Each matches any *Error of the same kind.
var (
	ErrAccessDenied  = &Error{Kind: AccessDenied}
	ErrNotFound      = &Error{Kind: NotFound}
	ErrInvalidHandle = &Error{Kind: InvalidHandle}
	ErrUnsupported   = &Error{Kind: Unsupported}
	ErrOther         = &Error{Kind: Other}

	// ErrClosed is returned when an owned handle is closed a second time.
	ErrClosed = &Error{Op: "CloseHandle", Kind: InvalidHandle, Raw: ErrorInvalidHandle, Msg: "handle already closed"}
)

func (e *Error) Error() string {
	op := e.Op
	if op == "" {
		op = "os"
	}
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s (code %d): %s", op, e.Kind, e.Raw, e.Msg)
	}
	return fmt.Sprintf("%s: %s (code %d)", op, e.Kind, e.Raw)
}

// Is matches the kind sentinels by kind. Any other target matches by
// identity alone.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrAccessDenied, ErrNotFound, ErrInvalidHandle, ErrUnsupported, ErrOther:
		return e.Kind == target.(*Error).Kind
	}
	return false
}

// Unwrap exposes the raw status as a syscall.Errno.
func (e *Error) Unwrap() error {
	if e.Raw == 0 {
		return nil
	}
	return syscall.Errno(e.Raw)
}

// Code returns the platform error code for the kind.
func (e *Error) Code() platformerrors.ErrorCode {
	return e.Kind.Code()
}

// Classification reports whether the raw status is worth retrying by the
// caller. This package never retries on its own.
func (e *Error) Classification() platformerrors.ErrorClassification {
	if retryable[e.Raw] {
		return platformerrors.ClassificationRetryable
	}
	return platformerrors.ClassificationPermanent
}

// Message returns the OS description, falling back to the kind name.
func (e *Error) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.String()
}

// Context returns the structured fields of the error.
func (e *Error) Context() map[string]interface{} {
	return map[string]interface{}{
		"op":       e.Op,
		"kind":     e.Kind.String(),
		"raw_code": e.Raw,
	}
}

var _ platformerrors.PlatformError = (*Error)(nil)

// FromRaw classifies raw through DefaultTable. It is total: every input
// yields a valid *Error.
func FromRaw(raw uint32) *Error {
	return DefaultTable.FromRaw(raw)
}

// New builds an *Error for op with an explicit kind and raw code.
func New(op string, kind Kind, raw uint32) *Error {
	return &Error{Op: op, Kind: kind, Raw: raw}
}

// NullHandle is the error every operation returns for a null borrowed
// handle, before any OS call is made.
func NullHandle(op string) *Error {
	return &Error{Op: op, Kind: InvalidHandle, Raw: ErrorInvalidHandle, Msg: "null handle"}
}

// FromError converts an error returned by the OS layer into an *Error for op,
// classifying Errno values through table. A nil err stays nil.
func FromError(op string, err error, table Table) error {
	if err == nil {
		return nil
	}
	if table == nil {
		table = DefaultTable
	}

	var oe *Error
	if errors.As(err, &oe) {
		out := *oe
		if out.Op == "" {
			out.Op = op
		}
		return &out
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		e := table.FromRaw(uint32(errno))
		e.Op = op
		e.Msg = errno.Error()
		return e
	}

	return &Error{Op: op, Kind: Other, Msg: err.Error()}
}

// KindOf returns the kind of the first *Error in err's chain, or Other.
func KindOf(err error) Kind {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return Other
}
