package topicdump

import (
	"regexp"
	"strings"
	"unicode"
)

// blankLineRun matches a run of lines holding only whitespace. RE2's \s is
// ASCII-only, so the class adds the Unicode spaces (NBSP, U+3000 and others).
var blankLineRun = regexp.MustCompile(`\n[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]*\n`)

// NormalizeText trims surrounding whitespace and collapses any run of blank
// lines into a single blank line. NormalizeText is idempotent.
func NormalizeText(s string) string {
	s = strings.TrimSpace(s)
	return blankLineRun.ReplaceAllString(s, "\n\n")
}

// FilenamePrefix is prepended to every derived filename.
const FilenamePrefix = "v2ex_"

// MaxSlugLength is the maximum slug length in runes.
const MaxSlugLength = 50

// Slug reduces a title to letters, numbers and single hyphens, truncated to
// MaxSlugLength runes.
func Slug(title string) string {
	var b strings.Builder
	pendingSep := false
	n := 0
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			if pendingSep {
				if n == MaxSlugLength {
					return b.String()
				}
				b.WriteByte('-')
				n++
				pendingSep = false
			}
			if n == MaxSlugLength {
				return b.String()
			}
			b.WriteRune(r)
			n++
		case r == '-' || unicode.IsSpace(r):
			pendingSep = true
		}
	}
	if pendingSep && n < MaxSlugLength {
		b.WriteByte('-')
	}
	return b.String()
}

// Filename derives an output filename from a post title.
// The ext argument includes the leading dot.
func Filename(title, ext string) string {
	return FilenamePrefix + Slug(title) + ext
}
