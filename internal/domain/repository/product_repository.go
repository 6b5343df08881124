package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo de productos.
type ProductRepository interface {
	// ListByName devuelve todo el catálogo ordenado por nombre ascendente
	// (el resolvedor de códigos depende de ese orden para desempatar).
	ListByName(ctx context.Context) ([]entity.Product, error)
}
