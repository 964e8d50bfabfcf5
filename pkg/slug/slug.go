// Package slug deriva identificadores estables a partir de nombres legibles:
// minúsculas, acentos eliminados y toda corrida no alfanumérica colapsada en
// un único guion. El resultado respeta el alfabeto [a-z0-9-] de los IDs de
// bodega.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone (NFD) y elimina las marcas diacríticas.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make deriva el slug de un nombre. Devuelve "" si no queda ningún
// carácter utilizable.
func Make(name string) string {
	plain, _, err := transform.String(stripAccents, name)
	if err != nil {
		plain = name
	}
	plain = strings.ToLower(plain)

	var b strings.Builder
	lastHyphen := true // evita guion inicial
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
