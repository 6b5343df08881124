package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ShipmentRepository define el puerto de persistencia de envíos. Mismo contrato que ProductionRepository.
type ShipmentRepository interface {
	ListSince(ctx context.Context, since time.Time) ([]entity.ShipmentEntry, error)
	ListAll(ctx context.Context) ([]entity.ShipmentEntry, error)
	List(ctx context.Context, date *string) ([]entity.ShipmentEntry, error)
	GetByID(ctx context.Context, id int64) (*entity.ShipmentEntry, error)
	Create(ctx context.Context, entry *entity.ShipmentEntry) error
	Update(ctx context.Context, entry *entity.ShipmentEntry) error
	Delete(ctx context.Context, id int64) error
}
