package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// InventorySummaryRepository lectura de la vista inventory_summary, ordenada por nombre.
type InventorySummaryRepository interface {
	ListByName(ctx context.Context) ([]entity.InventorySummaryRow, error)
}
