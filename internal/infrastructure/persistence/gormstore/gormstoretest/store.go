// Package gormstoretest cria stores SQLite temporários e isolados por teste.
package gormstoretest

import (
	"path/filepath"

	"github.com/rafabene/accounts-api/internal/infrastructure/config"
	"github.com/rafabene/accounts-api/internal/infrastructure/logging"
	"github.com/rafabene/accounts-api/internal/infrastructure/persistence/gormstore"
)

// TB é o subconjunto de testing.TB usado aqui; também satisfeito por GinkgoT()
type TB interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// Conns é o tamanho do pool dos stores de teste; mais de uma conexão
// para que escritas concorrentes disputem o lock como em produção.
const Conns = 8

// New abre um banco SQLite em um diretório temporário com o schema já criado.
// O banco é fechado ao final do teste.
func New(t TB) *gormstore.Store {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		Path:        filepath.Join(t.TempDir(), "test.db"),
		MaxConns:    Conns,
		AutoMigrate: true,
	}

	store, err := gormstore.NewDatabaseConnection(cfg, logging.NewNopLogger())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
