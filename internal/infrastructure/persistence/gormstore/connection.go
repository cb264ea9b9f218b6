package gormstore

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
	"github.com/rafabene/accounts-api/internal/domain/ports"
	"github.com/rafabene/accounts-api/internal/infrastructure/config"
)

// Store é o handle do banco criado explicitamente e injetado nos repositórios
type Store struct {
	DB *gorm.DB
}

// NewDatabaseConnection abre a conexão com o driver configurado
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger) (*Store, error) {
	// GORM config
	gormConfig := &gorm.Config{
		Logger: NewGormLogger(log),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt:    false,
		TranslateError: true,
	}

	// Conectar
	db, err := gorm.Open(dialector(cfg), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", translateError(err, nil))
	}

	// Configurar connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.MaxConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MinConns)
	}
	if cfg.MaxIdleTime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxIdleTime) * time.Second)
	}

	store := &Store{DB: db}

	// Ping para verificar conexão
	if err := store.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := store.Migrate(); err != nil {
			return nil, err
		}
	}

	log.Info("database connected successfully",
		"driver", cfg.Driver,
		"host", cfg.Host,
		"database", databaseName(cfg),
	)

	return store, nil
}

func dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverPostgres {
		return postgres.Open(cfg.DSN())
	}
	return sqlite.Open(cfg.DSN())
}

func databaseName(cfg *config.DatabaseConfig) string {
	if cfg.Driver == config.DriverSQLite {
		return cfg.Path
	}
	return cfg.DBName
}

// Migrate cria as tabelas users e user_profiles (sem framework de migrations)
func (s *Store) Migrate() error {
	if err := s.DB.AutoMigrate(&UserModel{}, &UserProfileModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping executa uma consulta trivial; implementa ports.HealthChecker.
// Qualquer falha aqui significa banco indisponível.
func (s *Store) Ping(ctx context.Context) error {
	var one int
	if err := s.DB.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
	}
	return nil
}

// Close fecha o pool de conexões
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
