// Package pathenv parses PATH-style search lists.
package pathenv

import (
	"os"
	"strings"
)

// Entries splits raw on the platform path-list separator, trims whitespace
// from each entry and drops empty ones, preserving the source order. The
// result is never nil so it serializes as a JSON array.
func Entries(raw string) []string {
	parts := strings.Split(raw, string(os.PathListSeparator))
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			entries = append(entries, p)
		}
	}
	return entries
}
