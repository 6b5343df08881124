package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain/catalog"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func weight(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func product(id, code, name string, w decimal.NullDecimal) entity.Product {
	var c *string
	if code != "" {
		c = strPtr(code)
	}
	return entity.Product{ID: id, Code: c, Name: name, WeightKG: w}
}

func TestParseCode_Normaliza(t *testing.T) {
	cases := []struct {
		in   *string
		want catalog.Code
		ok   bool
	}{
		{strPtr("FR"), catalog.CodeFR, true},
		{strPtr("  fr "), catalog.CodeFR, true},
		{strPtr("Ca"), catalog.CodeCA, true},
		{strPtr("FRX"), "", false},
		{strPtr("   "), "", false},
		{nil, "", false},
	}
	for _, tc := range cases {
		got, ok := catalog.ParseCode(tc.in)
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseCode_Idempotente(t *testing.T) {
	first, ok1 := catalog.ParseCode(strPtr(" ca"))
	second, ok2 := catalog.ParseCode(strPtr(string(first)))
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestScore(t *testing.T) {
	cases := []struct {
		name string
		p    entity.Product
		want int
	}{
		{"peso estándar", product("1", "FR", "Papa", weight("2.5")), 3},
		{"peso dentro de tolerancia", product("1", "FR", "Papa", weight("2.505")), 3},
		{"peso fuera de tolerancia", product("1", "FR", "Papa", weight("2.52")), 0},
		{"estándar con tilde", product("1", "FR", "Papa Estándar", decimal.NullDecimal{}), 2},
		{"estandar sin tilde", product("1", "FR", "papa estandar", decimal.NullDecimal{}), 2},
		{"bolsa", product("1", "FR", "Bolsa francesa", decimal.NullDecimal{}), 1},
		{"2,5 en el nombre", product("1", "FR", "Francesa 2,5", decimal.NullDecimal{}), 1},
		{"todo", product("1", "FR", "Bolsa estándar 2.5 kg", weight("2.5")), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.Score(tc.p))
		})
	}
}

func TestNewResolver_EligeMayorPuntaje(t *testing.T) {
	products := []entity.Product{
		product("legacy", "FR", "Francesa vieja", weight("5")),
		product("std", "fr ", "Francesa estándar", weight("2.5")),
		product("ca", "CA", "Cascos", weight("2.5")),
	}
	r := catalog.NewResolver(products)

	fr, ok := r.ProductForCode(catalog.CodeFR)
	require.True(t, ok)
	assert.Equal(t, "std", fr.ID)

	ca, ok := r.ProductForCode(catalog.CodeCA)
	require.True(t, ok)
	assert.Equal(t, "ca", ca.ID)
}

func TestNewResolver_EmpateConservaPrimero(t *testing.T) {
	products := []entity.Product{
		product("a", "CA", "Cascos A", weight("2.5")),
		product("b", "CA", "Cascos B", weight("2.5")),
	}
	r := catalog.NewResolver(products)
	ca, ok := r.ProductForCode(catalog.CodeCA)
	require.True(t, ok)
	assert.Equal(t, "a", ca.ID)
}

func TestCodeForProduct(t *testing.T) {
	r := catalog.NewResolver([]entity.Product{
		product("fr-legacy", "fr", "Francesa 5kg", weight("5")),
		product("otro", "XX", "Puré", decimal.NullDecimal{}),
		product("sin-codigo", "", "Muestra", decimal.NullDecimal{}),
	})

	code, ok := r.CodeForProduct("fr-legacy")
	assert.True(t, ok, "los duplicados también resuelven a su código")
	assert.Equal(t, catalog.CodeFR, code)

	_, ok = r.CodeForProduct("otro")
	assert.False(t, ok)
	_, ok = r.CodeForProduct("sin-codigo")
	assert.False(t, ok)
	_, ok = r.CodeForProduct("inexistente")
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Papa a la francesa (2.5 kg)", catalog.Label(catalog.CodeFR, decimal.RequireFromString("2.5"), false))
	assert.Equal(t, "Papas en cascos (3kg)", catalog.Label(catalog.CodeCA, decimal.NewFromInt(3), true))
	assert.Equal(t, "Producto", catalog.Label("ZZ", decimal.NewFromInt(1), false))
	assert.Equal(t, "2.3", catalog.FormatWeight(decimal.RequireFromString("2.25")))
	assert.Equal(t, "10", catalog.FormatWeight(decimal.RequireFromString("10.04")))
}

func TestProductLabel(t *testing.T) {
	r := catalog.NewResolver([]entity.Product{
		product("fr", "FR", "Francesa", decimal.NullDecimal{}),
		product("pure", "", "Puré de papa", decimal.NullDecimal{}),
		product("vacio", "", "", decimal.NullDecimal{}),
	})
	assert.Equal(t, "Papa a la francesa (2.5 kg)", r.ProductLabel("fr"))
	assert.Equal(t, "Puré de papa", r.ProductLabel("pure"))
	assert.Equal(t, "Producto", r.ProductLabel("vacio"))
	assert.Equal(t, "Producto", r.ProductLabel("nada"))
}

func TestOptions_OrdenFijo(t *testing.T) {
	r := catalog.NewResolver([]entity.Product{
		product("ca", "CA", "Cascos", weight("2")),
		product("fr", "FR", "Francesa", decimal.NullDecimal{}),
	})
	opts := r.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, catalog.CodeFR, opts[0].Code)
	assert.Equal(t, "Papa a la francesa (2.5kg)", opts[0].Label)
	assert.True(t, opts[0].WeightKG.Equal(catalog.StandardPackageKG))
	assert.Equal(t, catalog.CodeCA, opts[1].Code)
	assert.Equal(t, "Papas en cascos (2kg)", opts[1].Label)

	assert.Empty(t, catalog.NewResolver(nil).Options())
}
