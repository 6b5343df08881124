package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Repositories puertos de lectura que alimentan el snapshot.
type Repositories struct {
	Products   repository.ProductRepository
	Clients    repository.ClientRepository
	Production repository.ProductionRepository
	Shipments  repository.ShipmentRepository
	Inventory  repository.InventorySummaryRepository
}

// Loader ejecuta las cinco lecturas del snapshot en paralelo.
type Loader struct {
	repos          Repositories
	clock          Clock
	trailingMonths int
}

// NewLoader construye el cargador. trailingMonths limita producción y envíos a los últimos N meses.
func NewLoader(repos Repositories, clock Clock, trailingMonths int) *Loader {
	if trailingMonths < 1 {
		trailingMonths = 12
	}
	return &Loader{repos: repos, clock: clock, trailingMonths: trailingMonths}
}

// Load lee catálogo, clientes, producción, envíos e inventario. El primer error cancela el
// resto y no se devuelve snapshot parcial.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	now := l.clock.Now()
	since := Today(l.clock).AddDate(0, -l.trailingMonths, 0)

	var (
		products   []entity.Product
		clients    []entity.Client
		production []entity.ProductionEntry
		shipments  []entity.ShipmentEntry
		inventory  []entity.InventorySummaryRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if products, err = l.repos.Products.ListByName(gctx); err != nil {
			return fmt.Errorf("productos: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if clients, err = l.repos.Clients.ListByName(gctx); err != nil {
			return fmt.Errorf("clientes: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if production, err = l.repos.Production.ListSince(gctx, since); err != nil {
			return fmt.Errorf("producción: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if shipments, err = l.repos.Shipments.ListSince(gctx, since); err != nil {
			return fmt.Errorf("envíos: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if inventory, err = l.repos.Inventory.ListByName(gctx); err != nil {
			return fmt.Errorf("inventario: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewSnapshot(products, clients, production, shipments, inventory, now), nil
}
