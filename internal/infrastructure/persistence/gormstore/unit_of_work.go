package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/accounts-api/internal/domain/ports"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

var errNoTransaction = errors.New("no transaction in context")

// UnitOfWork implementa ports.UnitOfWork
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork cria um novo UnitOfWork
func NewUnitOfWork(store *Store) ports.UnitOfWork {
	return &UnitOfWork{db: store.DB}
}

func (uow *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ctx, translateError(tx.Error, nil)
	}
	return context.WithValue(ctx, txKey, tx), nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return errNoTransaction
	}
	return translateError(tx.Commit().Error, nil)
}

func (uow *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return errNoTransaction
	}
	return tx.Rollback().Error
}

// WithTransaction executa fn em uma transação; qualquer erro ou panic faz rollback.
// Chamadas aninhadas reutilizam a transação já aberta.
func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}

	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(txCtx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		_ = uow.Rollback(txCtx)
		return err
	}

	return uow.Commit(txCtx)
}

// getDB extrai a transação do contexto ou usa o pool
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
