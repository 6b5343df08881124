package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.InventorySummaryRepository = (*InventorySummaryRepo)(nil)

// InventorySummaryRepo lectura de la vista inventory_summary.
type InventorySummaryRepo struct {
	q Querier
}

func NewInventorySummaryRepository(q Querier) *InventorySummaryRepo {
	return &InventorySummaryRepo{q: q}
}

// ListByName filas de la vista ordenadas por nombre. Los totales nulos se leen como 0.
func (r *InventorySummaryRepo) ListByName(ctx context.Context) ([]entity.InventorySummaryRow, error) {
	const query = `
	SELECT
	    product_id::text,
	    code,
	    name,
	    COALESCE(total_produced_packages, 0),
	    COALESCE(total_shipped_packages, 0),
	    COALESCE(stock_packages, 0),
	    weight_kg
	FROM inventory_summary
	ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("inventory_summary.ListByName: %w", err)
	}
	defer rows.Close()
	list := make([]entity.InventorySummaryRow, 0)
	for rows.Next() {
		var row entity.InventorySummaryRow
		if err := rows.Scan(
			&row.ProductID,
			&row.Code,
			&row.Name,
			&row.TotalProducedPackages,
			&row.TotalShippedPackages,
			&row.StockPackages,
			&row.WeightKG,
		); err != nil {
			return nil, fmt.Errorf("scan inventory_summary: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
