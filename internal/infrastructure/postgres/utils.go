package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Produccion-api/internal/domain"
)

// Códigos SQLSTATE que corresponden a datos inválidos del cliente, no a fallas del almacén.
const (
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
	sqlStateInvalidDatetime     = "22007"
	sqlStateDatetimeOverflow    = "22008"
	sqlStateInvalidText         = "22P02"
)

// pgErrorCode devuelve el SQLSTATE si err es un error de PostgreSQL.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// classifyWriteError traduce violaciones de integridad a domain.ErrInvalidInput; el resto se envuelve con op.
func classifyWriteError(op string, err error) error {
	switch pgErrorCode(err) {
	case sqlStateForeignKeyViolation:
		return fmt.Errorf("%w: producto o cliente inexistente", domain.ErrInvalidInput)
	case sqlStateCheckViolation:
		return fmt.Errorf("%w: valor fuera de rango", domain.ErrInvalidInput)
	case sqlStateInvalidDatetime, sqlStateDatetimeOverflow, sqlStateInvalidText:
		return fmt.Errorf("%w: formato inválido", domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s: %w", op, err)
}
