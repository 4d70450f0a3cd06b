package console

import (
	"fmt"
	"strings"
)

// Mode is a console mode bit set. Input and output buffers share the bit
// space, so the meaning of a bit depends on the buffer it is applied to.
type Mode uint32

// Input buffer flags.
const (
	EnableProcessedInput       Mode = 0x0001
	EnableLineInput            Mode = 0x0002
	EnableEchoInput            Mode = 0x0004
	EnableWindowInput          Mode = 0x0008
	EnableMouseInput           Mode = 0x0010
	EnableInsertMode           Mode = 0x0020
	EnableQuickEditMode        Mode = 0x0040
	EnableExtendedFlags        Mode = 0x0080
	EnableVirtualTerminalInput Mode = 0x0200
)

// Output buffer flags.
const (
	EnableProcessedOutput           Mode = 0x0001
	EnableWrapAtEOLOutput           Mode = 0x0002
	EnableVirtualTerminalProcessing Mode = 0x0004
	DisableNewlineAutoReturn        Mode = 0x0008
	EnableLVBGridWorldwide          Mode = 0x0010
)

type flagName struct {
	name string
	flag Mode
}

var inputNames = []flagName{
	{"processed", EnableProcessedInput},
	{"line", EnableLineInput},
	{"echo", EnableEchoInput},
	{"window", EnableWindowInput},
	{"mouse", EnableMouseInput},
	{"insert", EnableInsertMode},
	{"quick-edit", EnableQuickEditMode},
	{"extended", EnableExtendedFlags},
	{"vt-input", EnableVirtualTerminalInput},
}

var outputNames = []flagName{
	{"processed", EnableProcessedOutput},
	{"wrap", EnableWrapAtEOLOutput},
	{"vt", EnableVirtualTerminalProcessing},
	{"no-auto-return", DisableNewlineAutoReturn},
	{"lvb-grid", EnableLVBGridWorldwide},
}

// Has reports whether every bit of f is set in m.
func (m Mode) Has(f Mode) bool {
	return m&f == f
}

// String renders m as a raw mask since the buffer kind is unknown. Use
// InputString or OutputString for flag names.
func (m Mode) String() string {
	return fmt.Sprintf("%#x", uint32(m))
}

// InputString names the bits of m as input buffer flags.
func (m Mode) InputString() string {
	return m.format(inputNames)
}

// OutputString names the bits of m as output buffer flags.
func (m Mode) OutputString() string {
	return m.format(outputNames)
}

func (m Mode) format(names []flagName) string {
	var parts []string
	rest := m
	for _, n := range names {
		if m.Has(n.flag) {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
