// Package strings holds order-preserving helpers for rule ids, reasons and
// other small string lists.
package strings

import (
	"strings"
)

// Dedupe drops repeats, keeping each value at its first position.
// nil and empty inputs are returned as given.
func Dedupe[T comparable](values []T) []T {
	if len(values) == 0 {
		return values
	}
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DedupeAndTrim trims each value, drops blanks, then dedupes.
//
//	DedupeAndTrim([]string{"  Jane Doe ", "J. Doe", "Jane Doe", " "})
//	// []string{"Jane Doe", "J. Doe"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return Dedupe(trimmed)
}

// JoinDistinct joins the distinct values in first-seen order.
func JoinDistinct(values []string, sep string) string {
	return strings.Join(Dedupe(values), sep)
}
