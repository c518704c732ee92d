// Package normalizar produces canonical comparison keys for fuzzy,
// accent-insensitive name matching during imports.
package normalizar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarAcentos decomposes to NFD and drops combining marks.
var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Clave returns the canonical comparison key for a raw textual value:
// Unicode-decompose, strip diacritics, trim, lowercase. Empty input and the
// literal sentinel "none" (any case) map to the empty string. Total — a
// transform failure falls back to the untransformed text.
func Clave(texto string) string {
	if strings.EqualFold(strings.TrimSpace(texto), "none") {
		return ""
	}
	sinAcentos, _, err := transform.String(quitarAcentos, texto)
	if err != nil {
		sinAcentos = texto
	}
	return strings.ToLower(strings.TrimSpace(sinAcentos))
}

// EsNulo reports whether a raw cell value is one of the null-like sentinels
// the import pipeline treats as absent.
func EsNulo(texto string) bool {
	switch strings.ToLower(strings.TrimSpace(texto)) {
	case "", "none", "nan":
		return true
	}
	return false
}
