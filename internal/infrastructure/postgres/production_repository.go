package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

const productionColumns = `id, production_date::text, product_id::text, packages, notes`

// ProductionRepo persistencia de la tabla production (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador de producción. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// ListSince registros desde la fecha dada (inclusive), en orden cronológico.
func (r *ProductionRepo) ListSince(ctx context.Context, since time.Time) ([]entity.ProductionEntry, error) {
	query := `SELECT ` + productionColumns + `
		FROM production WHERE production_date >= $1::date
		ORDER BY production_date ASC, id ASC`
	return r.list(ctx, "list production since", query, since.Format(time.DateOnly))
}

// ListAll todos los registros en orden cronológico.
func (r *ProductionRepo) ListAll(ctx context.Context) ([]entity.ProductionEntry, error) {
	query := `SELECT ` + productionColumns + ` FROM production ORDER BY production_date ASC, id ASC`
	return r.list(ctx, "list production", query)
}

// List registros más recientes primero; con date solo los de ese día.
func (r *ProductionRepo) List(ctx context.Context, date *string) ([]entity.ProductionEntry, error) {
	if date == nil {
		query := `SELECT ` + productionColumns + ` FROM production ORDER BY production_date DESC, id DESC`
		return r.list(ctx, "list production", query)
	}
	query := `SELECT ` + productionColumns + `
		FROM production WHERE production_date = $1::date
		ORDER BY production_date DESC, id DESC`
	return r.list(ctx, "list production by date", query, *date)
}

func (r *ProductionRepo) list(ctx context.Context, op, query string, args ...any) ([]entity.ProductionEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyWriteError(op, err)
	}
	defer rows.Close()
	list := make([]entity.ProductionEntry, 0)
	for rows.Next() {
		var e entity.ProductionEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.ProductID, &e.Packages, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByID obtiene un registro por id; nil, nil si no existe.
func (r *ProductionRepo) GetByID(ctx context.Context, id int64) (*entity.ProductionEntry, error) {
	query := `SELECT ` + productionColumns + ` FROM production WHERE id = $1`
	var e entity.ProductionEntry
	err := r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Date, &e.ProductID, &e.Packages, &e.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return &e, nil
}

// Create inserta el registro y completa entry.ID.
func (r *ProductionRepo) Create(ctx context.Context, entry *entity.ProductionEntry) error {
	query := `
		INSERT INTO production (production_date, product_id, packages, notes)
		VALUES ($1::date, $2::uuid, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, entry.Date, entry.ProductID, entry.Packages, entry.Notes).Scan(&entry.ID)
	if err != nil {
		return classifyWriteError("insert production", err)
	}
	return nil
}

// Update reemplaza fecha, producto, paquetes y notas.
func (r *ProductionRepo) Update(ctx context.Context, entry *entity.ProductionEntry) error {
	query := `
		UPDATE production
		SET production_date = $2::date, product_id = $3::uuid, packages = $4, notes = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, entry.ID, entry.Date, entry.ProductID, entry.Packages, entry.Notes)
	if err != nil {
		return classifyWriteError("update production", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un registro por id.
func (r *ProductionRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM production WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
