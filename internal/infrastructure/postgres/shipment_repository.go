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

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

const shipmentColumns = `id, shipment_date::text, product_id::text, client_id::text, packages, notes`

// ShipmentRepo persistencia de la tabla shipments (usable con pool o tx).
type ShipmentRepo struct {
	q Querier
}

func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

func (r *ShipmentRepo) ListSince(ctx context.Context, since time.Time) ([]entity.ShipmentEntry, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments WHERE shipment_date >= $1::date
		ORDER BY shipment_date ASC, id ASC`
	return r.list(ctx, "list shipments since", query, since.Format(time.DateOnly))
}

func (r *ShipmentRepo) ListAll(ctx context.Context) ([]entity.ShipmentEntry, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY shipment_date ASC, id ASC`
	return r.list(ctx, "list shipments", query)
}

func (r *ShipmentRepo) List(ctx context.Context, date *string) ([]entity.ShipmentEntry, error) {
	if date == nil {
		query := `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY shipment_date DESC, id DESC`
		return r.list(ctx, "list shipments", query)
	}
	query := `SELECT ` + shipmentColumns + `
		FROM shipments WHERE shipment_date = $1::date
		ORDER BY shipment_date DESC, id DESC`
	return r.list(ctx, "list shipments by date", query, *date)
}

func (r *ShipmentRepo) list(ctx context.Context, op, query string, args ...any) ([]entity.ShipmentEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyWriteError(op, err)
	}
	defer rows.Close()
	list := make([]entity.ShipmentEntry, 0)
	for rows.Next() {
		var e entity.ShipmentEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.ProductID, &e.ClientID, &e.Packages, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByID obtiene un envío por id; nil, nil si no existe.
func (r *ShipmentRepo) GetByID(ctx context.Context, id int64) (*entity.ShipmentEntry, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	var e entity.ShipmentEntry
	err := r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Date, &e.ProductID, &e.ClientID, &e.Packages, &e.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return &e, nil
}

func (r *ShipmentRepo) Create(ctx context.Context, entry *entity.ShipmentEntry) error {
	query := `
		INSERT INTO shipments (shipment_date, product_id, client_id, packages, notes)
		VALUES ($1::date, $2::uuid, $3::uuid, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, entry.Date, entry.ProductID, entry.ClientID, entry.Packages, entry.Notes).Scan(&entry.ID)
	if err != nil {
		return classifyWriteError("insert shipment", err)
	}
	return nil
}

func (r *ShipmentRepo) Update(ctx context.Context, entry *entity.ShipmentEntry) error {
	query := `
		UPDATE shipments
		SET shipment_date = $2::date, product_id = $3::uuid, client_id = $4::uuid, packages = $5, notes = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, entry.ID, entry.Date, entry.ProductID, entry.ClientID, entry.Packages, entry.Notes)
	if err != nil {
		return classifyWriteError("update shipment", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ShipmentRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
