package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// SnapshotLoader lee un snapshot completo del almacén.
type SnapshotLoader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// ChangeSubscriber fuente de notificaciones de cambios en producción o envíos.
// Listen bloquea hasta que ctx se cancele.
type ChangeSubscriber interface {
	Listen(ctx context.Context, onChange func(channel string)) error
}

// Store conserva el último snapshot válido y el resultado de la última recarga.
type Store struct {
	loader SnapshotLoader
	log    *logger.Logger

	refreshMu sync.Mutex // una recarga a la vez

	mu          sync.RWMutex
	snap        *Snapshot
	lastErr     string
	lastUpdated time.Time
}

func NewStore(loader SnapshotLoader, log *logger.Logger) *Store {
	return &Store{loader: loader, log: log}
}

// Refresh vuelve a leer todo y publica el nuevo snapshot. Si la lectura falla se registra
// el mensaje y se conserva el snapshot anterior.
func (s *Store) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	snap, err := s.loader.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err.Error()
		s.log.Error().Err(err).Msg("recarga del tablero fallida")
		return err
	}
	s.snap = snap
	s.lastErr = ""
	s.lastUpdated = snap.LoadedAt
	s.log.Info().
		Int("products", len(snap.Products)).
		Int("production", len(snap.Production)).
		Int("shipments", len(snap.Shipments)).
		Msg("tablero recargado")
	return nil
}

// Snapshot devuelve el último snapshot; domain.ErrSnapshotUnavailable si nunca hubo uno.
func (s *Store) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, domain.ErrSnapshotUnavailable
	}
	return s.snap, nil
}

// Status hora de la última recarga exitosa y error de la última recarga, si lo hubo.
func (s *Store) Status() dto.SnapshotStatusDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st dto.SnapshotStatusDTO
	if !s.lastUpdated.IsZero() {
		t := s.lastUpdated
		st.LastUpdated = &t
	}
	if s.lastErr != "" {
		msg := s.lastErr
		st.Error = &msg
	}
	return st
}

// Watch recarga ante cada notificación del suscriptor hasta que ctx se cancele.
func (s *Store) Watch(ctx context.Context, sub ChangeSubscriber) error {
	return sub.Listen(ctx, func(channel string) {
		if err := s.Refresh(ctx); err != nil {
			s.log.Warn().Str("channel", channel).Err(err).Msg("recarga por cambio fallida")
		}
	})
}
