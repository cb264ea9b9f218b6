// Command initdb cria as tabelas do banco configurado e termina.
package main

import (
	"fmt"
	"log"

	"github.com/rafabene/accounts-api/internal/infrastructure/config"
	"github.com/rafabene/accounts-api/internal/infrastructure/logging"
	"github.com/rafabene/accounts-api/internal/infrastructure/persistence/gormstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	// Migrate é chamado explicitamente abaixo
	cfg.Database.AutoMigrate = false

	store, err := gormstore.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer store.Close() //nolint:errcheck

	if err := store.Migrate(); err != nil {
		logger.Error("failed to create tables", "error", err)
		log.Fatal(err) //nolint:gocritic
	}

	fmt.Println("Database initialised")
}
