package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

func TestTrend(t *testing.T) {
	_, ok := inventory.Trend(50, 0)
	assert.False(t, ok, "sin base no hay comparación")

	got, ok := inventory.Trend(80, 80)
	require.True(t, ok)
	assert.True(t, got.IsZero())

	got, ok = inventory.Trend(150, 100)
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromInt(50)))

	got, ok = inventory.Trend(0, 40)
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromInt(-100)))

	got, ok = inventory.Trend(1, 3)
	require.True(t, ok)
	assert.Equal(t, "-66.67", got.StringFixed(2))
}
