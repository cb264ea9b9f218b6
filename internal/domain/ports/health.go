package ports

import "context"

// HealthChecker verifica a conectividade com o banco
type HealthChecker interface {
	Ping(ctx context.Context) error
}
