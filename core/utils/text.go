package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlug     = regexp.MustCompile(`[^a-z0-9]+`)
	colorCodes  = regexp.MustCompile(`#[a-zA-Z]`)
	whitespaces = regexp.MustCompile(`\s+`)
)

// Slug lowercases s, folds Latin diacritics, and collapses every run of
// non-alphanumeric characters into a single hyphen. The result may be empty.
func Slug(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(folded), "-"), "-")
}

// CleanMarkup strips backend color/formatting codes (#c, #k, #b, ...) and literal
// escaped newlines from a description, collapsing whitespace.
func CleanMarkup(s string) string {
	s = strings.ReplaceAll(s, `\r`, " ")
	s = strings.ReplaceAll(s, `\n`, " ")
	s = colorCodes.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespaces.ReplaceAllString(s, " "))
}
