// Package redirect writes the static HTML pages that forward legacy flat
// .html URLs to the directory-based URLs of a migrated MyST site.
package redirect

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mystredirect/internal/slug"
)

// pageTemplate is the fixed redirect page body; the destination URL is
// interpolated twice, as the meta refresh target and as the visible
// fallback link.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta http-equiv="refresh" content="0; url=%[1]s">
    <meta charset="utf-8">
    <title>Redirecting...</title>
</head>
<body>
    <p>This page has moved. Redirecting to <a href="%[1]s">%[1]s</a></p>
</body>
</html>
`

// Generator emits one redirect page per TOC file path.
type Generator struct {
	baseURL    string
	outputRoot string
	out        io.Writer
}

// NewGenerator returns a Generator writing under outputRoot. The base URL is
// normalized to end with a slash. Progress lines go to stdout.
func NewGenerator(baseURL, outputRoot string) *Generator {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Generator{baseURL: baseURL, outputRoot: outputRoot, out: os.Stdout}
}

// stripContentExt removes the .md/.ipynb markers from a path. This is the
// same literal substitution MyST-era tooling applied, not a real extension
// strip: a ".md" elsewhere in the name is replaced too. Kept byte-compatible
// so old and new URLs line up with what is already published.
func stripContentExt(path string) string {
	path = strings.ReplaceAll(path, ".md", "")
	return strings.ReplaceAll(path, ".ipynb", "")
}

// oldURL maps a content path to its legacy flat .html URL, with the same
// literal substitution caveat as stripContentExt.
func oldURL(path string) string {
	path = strings.ReplaceAll(path, ".md", ".html")
	return strings.ReplaceAll(path, ".ipynb", ".html")
}

// Generate writes one redirect file per path, in order, and returns the
// number written. The first path is the landing page: its slug maps to the
// bare base URL, as does any later path sanitizing to the same slug. An
// empty list is a no-op. On a write failure files already written stay on
// disk and the error is returned.
func (g *Generator) Generate(files []string) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}

	indexSlug := slug.Sanitize(stripContentExt(files[0]))

	count := 0
	for _, file := range files {
		old := oldURL(file)

		newSlug := slug.Sanitize(stripContentExt(file))
		newURL := g.baseURL
		if newSlug != indexSlug {
			newURL = g.baseURL + newSlug + "/"
		}

		if err := g.writeRedirect(old, newURL); err != nil {
			return count, fmt.Errorf("write redirect for %s: %w", file, err)
		}

		fmt.Fprintf(g.out, "%s -> %s\n", old, newURL)
		slog.Debug("Redirect written", "old", old, "new", newURL)
		count++
	}
	return count, nil
}

// writeRedirect writes the page at outputRoot/oldPath, creating intermediate
// directories as needed and overwriting any existing file.
func (g *Generator) writeRedirect(oldPath, newURL string) error {
	target := filepath.Join(g.outputRoot, oldPath)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, []byte(fmt.Sprintf(pageTemplate, newURL)), 0o644)
}
