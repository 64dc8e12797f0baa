/*
Package room derives canonical room slugs from free-form room titles.

A slug contains only lowercase ASCII letters, digits, and single hyphens, never starts or
ends with a hyphen, and is what the conferencing service and the live proxy use to name a room.
*/
package room

import (
	"regexp"
	"strings"
)

var (
	// vendorPrefixPattern matches the tenant prefix that the conferencing vendor prepends
	// to room names, e.g. "vpaas-magic-cookie-1a2b3c-".
	vendorPrefixPattern = regexp.MustCompile(`(?i)^vpaas-magic-cookie-[a-z0-9]+-?`)

	nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize converts a user-supplied room identifier into its canonical slug.
//
// The last non-empty path segment is used when raw contains "/", the vendor prefix is removed,
// and the remainder is lowercased with every run of other characters collapsed to one hyphen.
// An input with nothing usable normalizes to "", which callers must reject themselves.
// Normalize is idempotent.
func Normalize(raw string) string {
	slug := slugify(stripVendorPrefix(lastPathSegment(raw)))

	// Collapsing punctuation can expose a prefix that was not there before
	// ("vpaas_magic_cookie_ab_room"), so strip until none is left.
	for {
		stripped := strings.Trim(vendorPrefixPattern.ReplaceAllString(slug, ""), "-")
		if stripped == slug {
			return slug
		}
		slug = stripped
	}
}

func lastPathSegment(raw string) string {
	if !strings.Contains(raw, "/") {
		return raw
	}

	segments := strings.Split(raw, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

func stripVendorPrefix(segment string) string {
	return vendorPrefixPattern.ReplaceAllString(segment, "")
}

func slugify(s string) string {
	s = strings.ToLower(s)
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
