package dto

import "github.com/shopspring/decimal"

// ProductionEntryDTO registro de producción con etiqueta de producto y peso total.
type ProductionEntryDTO struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"`
	ProductID    string          `json:"product_id"`
	ProductLabel string          `json:"product_label"`
	Packages     int             `json:"packages"`
	WeightKG     decimal.Decimal `json:"weight_kg"`
	Notes        *string         `json:"notes"`
}

// ShipmentEntryDTO envío con etiqueta de producto, nombre de cliente y peso total.
type ShipmentEntryDTO struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"`
	ProductID    string          `json:"product_id"`
	ProductLabel string          `json:"product_label"`
	ClientID     string          `json:"client_id"`
	ClientName   string          `json:"client_name"`
	Packages     int             `json:"packages"`
	WeightKG     decimal.Decimal `json:"weight_kg"`
	Notes        *string         `json:"notes"`
}

// CreateProductionRequest body de POST /api/production.
type CreateProductionRequest struct {
	Date      string  `json:"date"`
	ProductID string  `json:"product_id"`
	Packages  *int    `json:"packages"`
	Notes     *string `json:"notes"`
}

// UpdateProductionRequest body de PUT /api/production/:id. Solo se aplican los campos presentes.
type UpdateProductionRequest struct {
	Date      *string `json:"date"`
	ProductID *string `json:"product_id"`
	Packages  *int    `json:"packages"`
	Notes     *string `json:"notes"`
}

// CreateShipmentRequest body de POST /api/shipments.
type CreateShipmentRequest struct {
	Date      string  `json:"date"`
	ProductID string  `json:"product_id"`
	ClientID  string  `json:"client_id"`
	Packages  *int    `json:"packages"`
	Notes     *string `json:"notes"`
}

// UpdateShipmentRequest body de PUT /api/shipments/:id.
type UpdateShipmentRequest struct {
	Date      *string `json:"date"`
	ProductID *string `json:"product_id"`
	ClientID  *string `json:"client_id"`
	Packages  *int    `json:"packages"`
	Notes     *string `json:"notes"`
}
