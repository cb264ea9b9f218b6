package services

import (
	"context"

	"github.com/rafabene/accounts-api/internal/domain/ports"
)

// HealthService verifica a disponibilidade das dependências
type HealthService struct {
	store  ports.HealthChecker
	logger ports.Logger
}

// NewHealthService cria um novo HealthService
func NewHealthService(store ports.HealthChecker, logger ports.Logger) *HealthService {
	return &HealthService{store: store, logger: logger}
}

// Check retorna errors.ErrStoreUnavailable se o banco não responder
func (s *HealthService) Check(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		s.logger.Error("database health check failed", "error", err)
		return err
	}
	return nil
}
