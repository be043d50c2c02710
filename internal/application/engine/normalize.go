package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperCaser = cases.Upper(language.Und)

// NormalizeName normaliza un nombre antes de cualquier acceso al almacén:
// recorta espacios sobrantes y pasa a mayúsculas. La unicidad de nombres es
// igualdad sobre esta forma normalizada.
func NormalizeName(s string) string {
	return upperCaser.String(strings.TrimSpace(s))
}

// normName normaliza un campo opcional in situ; nil pasa de largo.
func normName(p *string) *string {
	if p == nil {
		return nil
	}
	n := NormalizeName(*p)
	return &n
}
