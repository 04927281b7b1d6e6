package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

const fallback = "untitled"

// Make lowercases input, folds accents ("Café" becomes "cafe") and collapses
// everything else into single dashes.
func Make(input string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), input)
	if err != nil {
		folded = input
	}
	s := strings.ToLower(strings.TrimSpace(folded))
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallback
	}
	return s
}

// Join slugs each part and joins them with "-", keeping at most maxLen bytes
// and never cutting in the middle of a part.
func Join(parts []string, maxLen int) string {
	out := ""
	for _, p := range parts {
		s := Make(p)
		if s == fallback {
			continue
		}
		next := s
		if out != "" {
			next = out + "-" + s
		}
		if maxLen > 0 && len(next) > maxLen {
			if out == "" {
				out = strings.Trim(s[:maxLen], "-")
			}
			break
		}
		out = next
	}
	if out == "" {
		return fallback
	}
	return out
}
