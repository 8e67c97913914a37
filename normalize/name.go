package normalize

import (
	"strings"

	"github.com/tbush33767/IOCrosscheck/config"
)

// CanonTagName implements spec.md §4.1's tag name canonicalization: trim,
// strip a trailing colon-suffix, strip at most one trailing IO-type suffix,
// then upper-case the remainder. Matching for both suffix families is
// case-insensitive so step order does not depend on source casing; the
// longest candidate wins when more than one suffix matches.
func CanonTagName(raw string, cfg config.Config) string {
	s := strings.TrimSpace(raw)
	s = stripLongestSuffix(s, cfg.ColonSuffixes)
	s = stripLongestSuffix(s, cfg.IOTypeSuffixes)
	return strings.ToUpper(s)
}

// stripLongestSuffix removes the longest of candidates that matches the end
// of s case-insensitively. s is returned unchanged if nothing matches.
func stripLongestSuffix(s string, candidates []string) string {
	longest := ""
	for _, c := range candidates {
		if len(c) <= len(s) && strings.EqualFold(s[len(s)-len(c):], c) && len(c) > len(longest) {
			longest = c
		}
	}
	return s[:len(s)-len(longest)]
}

// ENetDeviceID implements spec.md §4.1's ENet prefix extraction: if base
// begins, case-insensitively, with one of cfg.ENetPrefixes, return the text
// after the underscore. The second return is false when no prefix matches.
func ENetDeviceID(base string, cfg config.Config) (string, bool) {
	for _, prefix := range cfg.ENetPrefixes {
		if len(base) >= len(prefix) && strings.EqualFold(base[:len(prefix)], prefix) {
			return base[len(prefix):], true
		}
	}
	return "", false
}
