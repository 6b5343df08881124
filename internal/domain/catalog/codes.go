// Package catalog resuelve productos del catálogo a uno de los dos códigos canónicos
// (FR, CA) sobre los que se agrega toda la producción y los envíos.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Code código canónico de producto.
type Code string

const (
	CodeFR Code = "FR" // papa a la francesa
	CodeCA Code = "CA" // papa en cascos
)

// StandardCodes orden fijo de iteración: FR y luego CA.
var StandardCodes = [...]Code{CodeFR, CodeCA}

// StandardPackageKG peso estándar de un paquete.
var StandardPackageKG = decimal.RequireFromString("2.5")

const fallbackLabel = "Producto"

var baseLabels = map[Code]string{
	CodeFR: "Papa a la francesa",
	CodeCA: "Papas en cascos",
}

// NormalizeCode recorta espacios y pasa a mayúsculas. nil equivale a vacío.
func NormalizeCode(code *string) string {
	if code == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(*code))
}

// ParseCode devuelve el código canónico si el texto normalizado es FR o CA.
func ParseCode(code *string) (Code, bool) {
	switch c := Code(NormalizeCode(code)); c {
	case CodeFR, CodeCA:
		return c, true
	default:
		return "", false
	}
}

// Label etiqueta de presentación: nombre base + peso entre paréntesis, ej. "Papas en cascos (2.5 kg)".
// compact omite el espacio antes de "kg". Un código desconocido devuelve "Producto".
func Label(code Code, weightKG decimal.Decimal, compact bool) string {
	base, ok := baseLabels[code]
	if !ok {
		return fallbackLabel
	}
	suffix := FormatWeight(weightKG) + " kg"
	if compact {
		suffix = FormatWeight(weightKG) + "kg"
	}
	return base + " (" + suffix + ")"
}

// FormatWeight formatea con un decimal y elimina un ".0" final: 2.5 → "2.5", 3 → "3".
func FormatWeight(weightKG decimal.Decimal) string {
	return strings.TrimSuffix(weightKG.StringFixed(1), ".0")
}

// WeightOrStandard devuelve el peso informado o el estándar si es nulo.
func WeightOrStandard(w decimal.NullDecimal) decimal.Decimal {
	if w.Valid {
		return w.Decimal
	}
	return StandardPackageKG
}
