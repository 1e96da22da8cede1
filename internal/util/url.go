package util

import "strings"

// NormaliseHost resolves an optional host override against a default. An
// empty or whitespace-only override yields the fallback unchanged; otherwise
// any trailing slash is stripped so paths can be appended naively.
func NormaliseHost(override, fallback string) string {
	host := strings.TrimSpace(override)
	if host == "" {
		return fallback
	}
	return strings.TrimSuffix(host, "/")
}
