// Package slug derives URL-safe category slugs from Arabic or Latin names.
package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	letterFolds = strings.NewReplacer(
		"أ", "ا",
		"إ", "ا",
		"آ", "ا",
		"ى", "ي",
		"ة", "ه",
	)
	whitespace = regexp.MustCompile(`\s+`)
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)
	hyphens    = regexp.MustCompile(`-{2,}`)
)

// Generate is idempotent: Generate(Generate(s)) == Generate(s).
func Generate(name string) string {
	s := norm.NFKC.String(name)
	s = strings.ToLower(strings.TrimSpace(s))
	s = letterFolds.Replace(s)
	s = whitespace.ReplaceAllString(s, "-")
	s = nonWord.ReplaceAllString(s, "")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
