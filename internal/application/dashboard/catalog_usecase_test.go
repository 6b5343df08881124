package dashboard_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
)

func TestCatalog_OpcionesEstandar(t *testing.T) {
	uc := dashboard.NewCatalogUseCase(loadedStore(seed()))

	opts, err := uc.ProductOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, opts, 2)
	assert.Equal(t, frID, opts[0].ID)
	assert.Equal(t, "Papa a la francesa (2.5kg)", opts[0].Label)
	assert.Equal(t, caID, opts[1].ID)
	assert.True(t, opts[1].WeightKG.Equal(decimal.RequireFromString("2.5")))
}

func TestCatalog_ProductosClientesEInventario(t *testing.T) {
	uc := dashboard.NewCatalogUseCase(loadedStore(seed()))
	ctx := context.Background()

	products, err := uc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	// Orden por nombre: Cascos, Francesa estándar, Puré.
	assert.Equal(t, caID, products[0].ID)
	assert.True(t, products[0].Standard)
	assert.Equal(t, "Puré", products[2].Label)
	assert.False(t, products[2].Standard)

	clients, err := uc.Clients(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Almacén Uno", clients[0].Name)

	inv, err := uc.Inventory(ctx)
	require.NoError(t, err)
	require.Len(t, inv, 2)
	assert.Equal(t, 30, inv[0].StockPackages)
	assert.True(t, inv[0].StockKG.Equal(decimal.NewFromInt(75)))
}
