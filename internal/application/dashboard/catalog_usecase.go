package dashboard

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/catalog"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

// CatalogUseCase catálogo, clientes e inventario agrupado del snapshot.
type CatalogUseCase struct {
	store *Store
}

func NewCatalogUseCase(store *Store) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

// ProductOptions productos estándar para formularios (FR y luego CA).
func (uc *CatalogUseCase) ProductOptions(ctx context.Context) ([]dto.ProductOptionDTO, error) {
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	options := snap.Resolver.Options()
	out := make([]dto.ProductOptionDTO, 0, len(options))
	for _, o := range options {
		out = append(out, dto.ProductOptionDTO{ID: o.ID, Code: string(o.Code), Label: o.Label, WeightKG: o.WeightKG})
	}
	return out, nil
}

// Products catálogo completo en orden de nombre; los no estándar se muestran por su nombre.
func (uc *CatalogUseCase) Products(ctx context.Context) ([]dto.ProductDTO, error) {
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(snap.Products))
	for _, p := range snap.Products {
		_, standard := catalog.ParseCode(p.Code)
		out = append(out, dto.ProductDTO{
			ID:       p.ID,
			Code:     p.Code,
			Name:     p.Name,
			Label:    snap.Resolver.ProductLabel(p.ID),
			Standard: standard,
			WeightKG: p.WeightKG,
		})
	}
	return out, nil
}

// Clients clientes en orden de nombre.
func (uc *CatalogUseCase) Clients(ctx context.Context) ([]dto.ClientDTO, error) {
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientDTO, 0, len(snap.Clients))
	for _, c := range snap.Clients {
		out = append(out, dto.ClientDTO{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Inventory inventario agrupado por código.
func (uc *CatalogUseCase) Inventory(ctx context.Context) ([]dto.GroupedInventoryDTO, error) {
	snap, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return groupedInventoryDTO(inventory.GroupByCode(snap.Inventory)), nil
}
