package domain

import (
	"regexp"
	"strings"
)

// CanonicalKey is a normalized, comparison-safe form of a display name.
// Distinct names that normalize to the same key are treated as the same entity.
type CanonicalKey string

var nonKeyChars = regexp.MustCompile(`[^a-z0-9_]`)

// Canonicalize lower-cases name, spells out "&", turns spaces into underscores and drops
// everything outside [a-z0-9_]. It is idempotent.
func Canonicalize(name string) CanonicalKey {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, "&", "and")
	key = strings.ReplaceAll(key, " ", "_")
	return CanonicalKey(nonKeyChars.ReplaceAllString(key, ""))
}

// IsCanonical reports whether s is already in canonical form.
func IsCanonical(s string) bool {
	return string(Canonicalize(s)) == s
}
