// Package textnorm normaliza texto para búsquedas insensibles a mayúsculas y tildes.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize descompone en NFD, elimina las marcas combinantes y pasa a minúsculas:
// "Café Especial" -> "cafe especial".
func Normalize(s string) string {
	// transform.Chain guarda estado: uno por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contains indica si la forma normalizada de haystack contiene needle ya normalizado.
func Contains(haystack, normalizedNeedle string) bool {
	return strings.Contains(Normalize(haystack), normalizedNeedle)
}

// NewCollator crea un comparador de texto en español. No es seguro para uso
// concurrente: crear uno por ordenamiento.
func NewCollator() *collate.Collator {
	return collate.New(language.Spanish)
}
