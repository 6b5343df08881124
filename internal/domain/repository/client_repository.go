package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ClientRepository puerto de lectura de clientes.
type ClientRepository interface {
	ListByName(ctx context.Context) ([]entity.Client, error)
}
