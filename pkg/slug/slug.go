// Package slug genera identificadores URL-safe a partir de nombres de empresa
// o de vendedor. Los nombres llegan con diacríticos (ñ, á) y caracteres turcos
// (ı, ş, ğ); se pliegan a ASCII antes de recortar.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTurkish cubre letras que NFD no descompone a base ASCII.
var foldTurkish = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ş", "s", "Ş", "s",
	"ğ", "g", "Ğ", "g",
	"ç", "c", "Ç", "c",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
	"ñ", "n", "Ñ", "n",
	"ß", "ss",
)

// Make convierte un nombre libre en slug: minúsculas ASCII, bloques [a-z0-9]
// separados por un guion, sin guiones al inicio ni al final.
func Make(name string) string {
	s := foldTurkish.Replace(strings.TrimSpace(name))

	// Descomponer y descartar marcas diacríticas (é → e + ́ → e)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	s = strings.ToLower(s)

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
