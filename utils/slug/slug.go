// Package slug derives and checks URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"
)

var (
	validSlug    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Make derives a lowercase, hyphenated slug from a name.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValid reports whether s is a well-formed slug.
func IsValid(s string) bool {
	return s != "" && len(s) <= 100 && validSlug.MatchString(s)
}
