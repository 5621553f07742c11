package common

import (
	"regexp"
	"strings"
)

// MaxSlugLength bounds slugs embedded in object keys.
const MaxSlugLength = 48

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases input into dash-separated [a-z0-9] runs of at most
// MaxSlugLength characters. Input that yields nothing falls back to fallback
// unchanged.
func Slugify(input, fallback string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(input), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	if slug == "" {
		return fallback
	}
	return slug
}
