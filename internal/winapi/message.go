package winapi

import "strings"

// trimMessage strips the trailing line break and period FormatMessage
// appends to system text, so messages compose into longer error strings.
func trimMessage(s string) string {
	s = strings.TrimRight(s, "\r\n ")
	return strings.TrimSuffix(s, ".")
}
