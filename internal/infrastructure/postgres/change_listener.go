package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Produccion-api/internal/application/dashboard"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// Canales NOTIFY emitidos por los triggers de las tablas production y shipments.
const (
	ChannelProduction = "production_changes"
	ChannelShipments  = "shipment_changes"
)

var _ dashboard.ChangeSubscriber = (*ChangeListener)(nil)

// ChangeListener escucha LISTEN/NOTIFY en una conexión dedicada y reconecta ante fallas.
type ChangeListener struct {
	pool     *pgxpool.Pool
	log      *logger.Logger
	channels []string
	retry    time.Duration
}

// NewChangeListener escucha los canales de producción y envíos.
func NewChangeListener(pool *pgxpool.Pool, log *logger.Logger) *ChangeListener {
	return &ChangeListener{
		pool:     pool,
		log:      log,
		channels: []string{ChannelProduction, ChannelShipments},
		retry:    time.Second,
	}
}

// Listen bloquea hasta que ctx se cancele, invocando onChange por cada notificación recibida.
func (l *ChangeListener) Listen(ctx context.Context, onChange func(channel string)) error {
	for {
		err := l.listenOnce(ctx, onChange)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.log.Warn().Err(err).Dur("retry", l.retry).Msg("listener de cambios desconectado")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.retry):
		}
	}
}

func (l *ChangeListener) listenOnce(ctx context.Context, onChange func(channel string)) error {
	pooled, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listener conn: %w", err)
	}
	// La conexión queda con LISTEN activo: se saca del pool y se cierra al terminar.
	conn := pooled.Hijack()
	defer conn.Close(context.Background())

	for _, ch := range l.channels {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
			return fmt.Errorf("listen %s: %w", ch, err)
		}
	}
	l.log.Info().Strs("channels", l.channels).Msg("escuchando cambios")

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait notification: %w", err)
		}
		l.log.Debug().Str("channel", n.Channel).Str("payload", n.Payload).Msg("cambio recibido")
		onChange(n.Channel)
	}
}
