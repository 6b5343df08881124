// Package entries registra, corrige y lista movimientos de producción y envíos.
package entries

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// Snapshots recarga del tablero tras cada escritura y fuente de etiquetas para listados.
type Snapshots interface {
	Refresh(ctx context.Context) error
	Snapshot() (*dashboard.Snapshot, error)
}

// UseCase casos de uso de escritura y listado de registros.
type UseCase struct {
	production repository.ProductionRepository
	shipments  repository.ShipmentRepository
	snapshots  Snapshots
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	production repository.ProductionRepository,
	shipments repository.ShipmentRepository,
	snapshots Snapshots,
	log *logger.Logger,
) *UseCase {
	return &UseCase{production: production, shipments: shipments, snapshots: snapshots, log: log}
}

// ── Producción ───────────────────────────────────────────────────────────────

// ListProduction registros más recientes primero; date (opcional) filtra por día exacto.
func (uc *UseCase) ListProduction(ctx context.Context, date string) ([]dto.ProductionEntryDTO, error) {
	filter, err := dateFilter(date)
	if err != nil {
		return nil, err
	}
	list, err := uc.production.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	snap := uc.labels()
	out := make([]dto.ProductionEntryDTO, 0, len(list))
	for _, e := range list {
		out = append(out, snap.ProductionEntryDTO(e))
	}
	return out, nil
}

// CreateProduction valida y registra producción.
func (uc *UseCase) CreateProduction(ctx context.Context, in dto.CreateProductionRequest) (*dto.ProductionEntryDTO, error) {
	if in.Packages == nil {
		return nil, fmt.Errorf("%w: paquetes es obligatorio", domain.ErrInvalidInput)
	}
	entry := &entity.ProductionEntry{
		Date:      in.Date,
		ProductID: in.ProductID,
		Packages:  *in.Packages,
		Notes:     normalizeNotes(in.Notes),
	}
	if err := validateProduction(entry); err != nil {
		return nil, err
	}
	if err := uc.production.Create(ctx, entry); err != nil {
		return nil, err
	}
	uc.afterWrite(ctx, "production", "create", entry.ID)
	out := uc.labels().ProductionEntryDTO(*entry)
	return &out, nil
}

// UpdateProduction aplica los campos presentes sobre el registro existente.
func (uc *UseCase) UpdateProduction(ctx context.Context, id int64, in dto.UpdateProductionRequest) (*dto.ProductionEntryDTO, error) {
	entry, err := uc.production.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		entry.Date = *in.Date
	}
	if in.ProductID != nil {
		entry.ProductID = *in.ProductID
	}
	if in.Packages != nil {
		entry.Packages = *in.Packages
	}
	if in.Notes != nil {
		entry.Notes = normalizeNotes(in.Notes)
	}
	if err := validateProduction(entry); err != nil {
		return nil, err
	}
	if err := uc.production.Update(ctx, entry); err != nil {
		return nil, err
	}
	uc.afterWrite(ctx, "production", "update", entry.ID)
	out := uc.labels().ProductionEntryDTO(*entry)
	return &out, nil
}

// DeleteProduction elimina un registro de producción.
func (uc *UseCase) DeleteProduction(ctx context.Context, id int64) error {
	if err := uc.production.Delete(ctx, id); err != nil {
		return err
	}
	uc.afterWrite(ctx, "production", "delete", id)
	return nil
}

// ── Envíos ───────────────────────────────────────────────────────────────────

// ListShipments envíos más recientes primero; date (opcional) filtra por día exacto.
func (uc *UseCase) ListShipments(ctx context.Context, date string) ([]dto.ShipmentEntryDTO, error) {
	filter, err := dateFilter(date)
	if err != nil {
		return nil, err
	}
	list, err := uc.shipments.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	snap := uc.labels()
	out := make([]dto.ShipmentEntryDTO, 0, len(list))
	for _, e := range list {
		out = append(out, snap.ShipmentEntryDTO(e))
	}
	return out, nil
}

// CreateShipment valida y registra un envío.
func (uc *UseCase) CreateShipment(ctx context.Context, in dto.CreateShipmentRequest) (*dto.ShipmentEntryDTO, error) {
	if in.Packages == nil {
		return nil, fmt.Errorf("%w: paquetes es obligatorio", domain.ErrInvalidInput)
	}
	entry := &entity.ShipmentEntry{
		Date:      in.Date,
		ProductID: in.ProductID,
		ClientID:  in.ClientID,
		Packages:  *in.Packages,
		Notes:     normalizeNotes(in.Notes),
	}
	if err := validateShipment(entry); err != nil {
		return nil, err
	}
	if err := uc.shipments.Create(ctx, entry); err != nil {
		return nil, err
	}
	uc.afterWrite(ctx, "shipments", "create", entry.ID)
	out := uc.labels().ShipmentEntryDTO(*entry)
	return &out, nil
}

// UpdateShipment aplica los campos presentes sobre el envío existente.
func (uc *UseCase) UpdateShipment(ctx context.Context, id int64, in dto.UpdateShipmentRequest) (*dto.ShipmentEntryDTO, error) {
	entry, err := uc.shipments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		entry.Date = *in.Date
	}
	if in.ProductID != nil {
		entry.ProductID = *in.ProductID
	}
	if in.ClientID != nil {
		entry.ClientID = *in.ClientID
	}
	if in.Packages != nil {
		entry.Packages = *in.Packages
	}
	if in.Notes != nil {
		entry.Notes = normalizeNotes(in.Notes)
	}
	if err := validateShipment(entry); err != nil {
		return nil, err
	}
	if err := uc.shipments.Update(ctx, entry); err != nil {
		return nil, err
	}
	uc.afterWrite(ctx, "shipments", "update", entry.ID)
	out := uc.labels().ShipmentEntryDTO(*entry)
	return &out, nil
}

// DeleteShipment elimina un envío.
func (uc *UseCase) DeleteShipment(ctx context.Context, id int64) error {
	if err := uc.shipments.Delete(ctx, id); err != nil {
		return err
	}
	uc.afterWrite(ctx, "shipments", "delete", id)
	return nil
}

// afterWrite recarga el tablero. Un fallo de recarga no revierte la escritura: queda
// registrado en el estado del tablero.
func (uc *UseCase) afterWrite(ctx context.Context, table, op string, id int64) {
	uc.log.Info().Str("table", table).Str("op", op).Int64("id", id).Msg("registro guardado")
	if err := uc.snapshots.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Str("table", table).Msg("recarga tras escritura fallida")
	}
}

// labels snapshot actual o uno vacío si todavía no hubo recarga.
func (uc *UseCase) labels() *dashboard.Snapshot {
	snap, err := uc.snapshots.Snapshot()
	if err != nil {
		return dashboard.EmptySnapshot()
	}
	return snap
}

func dateFilter(date string) (*string, error) {
	if date == "" {
		return nil, nil
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	return &date, nil
}

func validateProduction(e *entity.ProductionEntry) error {
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if err := validateID("product_id", e.ProductID); err != nil {
		return err
	}
	return validatePackages(e.Packages)
}

func validateShipment(e *entity.ShipmentEntry) error {
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if err := validateID("product_id", e.ProductID); err != nil {
		return err
	}
	if err := validateID("client_id", e.ClientID); err != nil {
		return err
	}
	return validatePackages(e.Packages)
}
