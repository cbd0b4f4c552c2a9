package utils

import "strings"

// NormalizeLink trims a raw line and reports whether it is a link worth
// refreshing, i.e. non-empty and starting with prefix.
func NormalizeLink(raw, prefix string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	return s, true
}
