package oserr

// Win32 status codes named by the classification table.
const (
	ErrorSuccess            uint32 = 0
	ErrorInvalidFunction    uint32 = 1
	ErrorFileNotFound       uint32 = 2
	ErrorPathNotFound       uint32 = 3
	ErrorAccessDenied       uint32 = 5
	ErrorInvalidHandle      uint32 = 6
	ErrorNotEnoughMemory    uint32 = 8
	ErrorOutOfMemory        uint32 = 14
	ErrorSharingViolation   uint32 = 32
	ErrorLockViolation      uint32 = 33
	ErrorNotSupported       uint32 = 50
	ErrorInvalidParameter   uint32 = 87
	ErrorCallNotImplemented uint32 = 120
	ErrorBusy               uint32 = 170
	ErrorNotFound           uint32 = 1168
	ErrorPrivilegeNotHeld   uint32 = 1314
)

// Table maps raw status codes to kinds. Codes absent from the table are Other.
type Table map[uint32]Kind

// DefaultTable is the fixed classification used when no operation overlay
// applies. ERROR_INVALID_PARAMETER is deliberately absent: its meaning depends
// on the call.
var DefaultTable = Table{
	ErrorAccessDenied:       AccessDenied,
	ErrorPrivilegeNotHeld:   AccessDenied,
	ErrorFileNotFound:       NotFound,
	ErrorPathNotFound:       NotFound,
	ErrorNotFound:           NotFound,
	ErrorInvalidHandle:      InvalidHandle,
	ErrorInvalidFunction:    Unsupported,
	ErrorNotSupported:       Unsupported,
	ErrorCallNotImplemented: Unsupported,
}

// retryable lists the raw codes reported as transient.
var retryable = map[uint32]bool{
	ErrorNotEnoughMemory:  true,
	ErrorOutOfMemory:      true,
	ErrorSharingViolation: true,
	ErrorLockViolation:    true,
	ErrorBusy:             true,
}

// Classify returns the kind for raw. A nil table behaves like DefaultTable.
func (t Table) Classify(raw uint32) Kind {
	if t == nil {
		t = DefaultTable
	}
	if k, ok := t[raw]; ok {
		return k
	}
	return Other
}

// FromRaw builds an *Error for raw with no op and no message.
func (t Table) FromRaw(raw uint32) *Error {
	return &Error{Kind: t.Classify(raw), Raw: raw}
}

// With returns a copy of t with overrides applied on top.
func (t Table) With(overrides Table) Table {
	if t == nil {
		t = DefaultTable
	}
	out := make(Table, len(t)+len(overrides))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
