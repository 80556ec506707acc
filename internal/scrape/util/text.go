package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// CitySlug lowercases a city name and strips accents so it can be embedded
// in a listing URL ("Orléans" -> "orleans").
func CitySlug(city string) string {
	city = strings.ToLower(CleanText(city))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, city)
	if err != nil {
		return city
	}
	return strings.ReplaceAll(out, " ", "-")
}
