package process

import (
	"fmt"
	"strconv"
	"strings"
)

// AccessRights is a PROCESS_* access mask.
type AccessRights uint32

const (
	Terminate               AccessRights = 0x0001
	VMRead                  AccessRights = 0x0010
	QueryInformation        AccessRights = 0x0400
	QueryLimitedInformation AccessRights = 0x1000
	Synchronize             AccessRights = 0x00100000
	AllAccess               AccessRights = 0x001FFFFF
)

var rightNames = []struct {
	name  string
	right AccessRights
}{
	{"terminate", Terminate},
	{"vm-read", VMRead},
	{"query", QueryInformation},
	{"query-limited", QueryLimitedInformation},
	{"synchronize", Synchronize},
}

// Has reports whether every bit of want is present in r.
func (r AccessRights) Has(want AccessRights) bool {
	return r&want == want
}

func (r AccessRights) String() string {
	if r == AllAccess {
		return "all"
	}
	var parts []string
	rest := r
	for _, n := range rightNames {
		if r.Has(n.right) {
			parts = append(parts, n.name)
			rest &^= n.right
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

// ParseAccessRights parses a "|" or "," separated list of right names, or a
// numeric mask such as 0x1001.
func ParseAccessRights(s string) (AccessRights, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty access rights")
	}
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return AccessRights(v), nil
	}

	var r AccessRights
	for _, field := range strings.FieldsFunc(s, func(c rune) bool { return c == '|' || c == ',' }) {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "all" {
			r |= AllAccess
			continue
		}
		found := false
		for _, n := range rightNames {
			if n.name == field {
				r |= n.right
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown access right %q", field)
		}
	}
	return r, nil
}
