// Package slug converts content file paths into the URL slugs the MyST site
// builder derives for them. The rules here must match MyST's own slug
// generation exactly, otherwise the emitted redirects point at URLs that do
// not exist on the new site.
package slug

import (
	"regexp"
	"strings"
)

// ordinalPrefix matches the numeric ordering prefixes ("01-", "2-") that
// MyST strips from the start of each path component.
var ordinalPrefix = regexp.MustCompile(`^[\d-]+`)

// Sanitize maps an extensionless file path to its MyST URL slug.
// Lowercases, replaces spaces and underscores with hyphens, collapses runs
// of hyphens, then per path component strips any leading digit/hyphen run
// and trims remaining leading/trailing hyphens. The number of path
// components is preserved; a component may come out empty. Idempotent.
func Sanitize(path string) string {
	s := strings.ToLower(path)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	parts := strings.Split(s, "/")
	for i, part := range parts {
		part = ordinalPrefix.ReplaceAllString(part, "")
		parts[i] = strings.Trim(part, "-")
	}
	return strings.Join(parts, "/")
}
