package repositories

import (
	"context"

	"github.com/rafabene/accounts-api/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// FindByID e FindByEmail retornam (nil, nil) quando o registro não existe.
// Create e Update retornam errors.ErrEmailAlreadyExists em violação de unicidade.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Offset int // Registros a pular (skip)
	Limit  int // Máximo de registros (default: 100)
}

// DefaultListLimit é o limite usado quando nenhum é informado
const DefaultListLimit = 100
