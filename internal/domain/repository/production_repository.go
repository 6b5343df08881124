package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ProductionRepository define el puerto de persistencia de registros de producción.
type ProductionRepository interface {
	// ListSince registros con fecha >= since, ordenados por fecha ascendente.
	ListSince(ctx context.Context, since time.Time) ([]entity.ProductionEntry, error)
	// ListAll todos los registros ordenados por fecha ascendente (exportaciones).
	ListAll(ctx context.Context) ([]entity.ProductionEntry, error)
	// List listado para pantalla: fecha descendente; date filtra por día exacto si no es nil.
	List(ctx context.Context, date *string) ([]entity.ProductionEntry, error)
	GetByID(ctx context.Context, id int64) (*entity.ProductionEntry, error)
	// Create inserta y completa entry.ID.
	Create(ctx context.Context, entry *entity.ProductionEntry) error
	// Update reemplaza la fila; domain.ErrNotFound si no existe.
	Update(ctx context.Context, entry *entity.ProductionEntry) error
	// Delete borra por id; domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
}
