package invoice

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var dStroke = strings.NewReplacer("đ", "d", "Đ", "D")

// Fold strips Vietnamese diacritics so text fits the core PDF fonts.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, dStroke.Replace(s))
	if err != nil {
		return dStroke.Replace(s)
	}
	return out
}
