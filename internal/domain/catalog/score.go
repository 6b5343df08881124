package catalog

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

var weightTolerance = decimal.RequireFromString("0.01")

// términos del catálogo (ya sin tildes y en minúsculas)
var (
	standardTerms = []string{"estandar"}
	packageTerms  = []string{"bolsa", "paquete"}
	weightTerms   = []string{"2.5", "2,5"}
)

// Score puntaje heurístico para elegir la fila canónica entre duplicados del mismo código:
//
//	+3 peso a menos de 0.01 kg de 2.5 kg
//	+2 el nombre dice "estándar" (con o sin tilde)
//	+1 el nombre dice "bolsa" o "paquete"
//	+1 el nombre contiene "2.5" o "2,5"
func Score(p entity.Product) int {
	score := 0
	if p.WeightKG.Valid && p.WeightKG.Decimal.Sub(StandardPackageKG).Abs().LessThan(weightTolerance) {
		score += 3
	}
	name := foldName(p.Name)
	if containsAny(name, standardTerms) {
		score += 2
	}
	if containsAny(name, packageTerms) {
		score++
	}
	if containsAny(name, weightTerms) {
		score++
	}
	return score
}

// foldName pasa a minúsculas y elimina las marcas diacríticas (é → e, ñ → n).
func foldName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(folded)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
