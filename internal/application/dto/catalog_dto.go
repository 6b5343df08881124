package dto

import "github.com/shopspring/decimal"

// ProductOptionDTO producto estándar para formularios.
type ProductOptionDTO struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Label    string          `json:"label"`
	WeightKG decimal.Decimal `json:"weight_kg"`
}

// ProductDTO entrada del catálogo con su etiqueta de presentación.
type ProductDTO struct {
	ID       string              `json:"id"`
	Code     *string             `json:"code"`
	Name     string              `json:"name"`
	Label    string              `json:"label"`
	Standard bool                `json:"standard"`
	WeightKG decimal.NullDecimal `json:"weight_kg"`
}

// ClientDTO cliente.
type ClientDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
