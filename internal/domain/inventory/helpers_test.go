package inventory_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/catalog"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

const (
	frID   = "11111111-1111-1111-1111-111111111111"
	caID   = "22222222-2222-2222-2222-222222222222"
	pureID = "33333333-3333-3333-3333-333333333333"
)

func strPtr(s string) *string { return &s }

func testResolver() *catalog.Resolver {
	return catalog.NewResolver([]entity.Product{
		{ID: frID, Code: strPtr("FR"), Name: "Francesa", WeightKG: decimal.NewNullDecimal(decimal.RequireFromString("2.5"))},
		{ID: caID, Code: strPtr("ca"), Name: "Cascos"},
		{ID: pureID, Code: strPtr("PU"), Name: "Puré"},
	})
}

func prod(date, productID string, packages int) entity.ProductionEntry {
	return entity.ProductionEntry{Date: date, ProductID: productID, Packages: packages}
}

func ship(date, productID string, packages int) entity.ShipmentEntry {
	return entity.ShipmentEntry{Date: date, ProductID: productID, ClientID: "c1", Packages: packages}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
