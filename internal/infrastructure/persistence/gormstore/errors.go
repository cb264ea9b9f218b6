package gormstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
)

// Código SQLSTATE de unique_violation no PostgreSQL
const pgUniqueViolation = "23505"

// isUniqueViolation reconhece violação de unicidade em qualquer driver suportado
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

// isConnectivityError reconhece falhas de conexão com o banco, incluindo
// lock do SQLite que não foi liberado dentro do busy_timeout
func isConnectivityError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrBusy, sqlite3.ErrLocked:
			return true
		}
	}

	return false
}

// translateError converte erros do driver nos sentinels do domínio.
// onConflict é usado em violações de unicidade; nil mantém o erro original.
func translateError(err, onConflict error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case onConflict != nil && isUniqueViolation(err):
		return fmt.Errorf("%w: %v", onConflict, err)
	case isConnectivityError(err):
		return fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
	default:
		return err
	}
}
