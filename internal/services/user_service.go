package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafabene/accounts-api/internal/domain/entities"
	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
	"github.com/rafabene/accounts-api/internal/domain/ports"
	"github.com/rafabene/accounts-api/internal/domain/repositories"
	"github.com/rafabene/accounts-api/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email    string
	FullName *string
	Password string
}

// UpdateUserInput é um merge-patch: só campos com Set=true são alterados
type UpdateUserInput struct {
	Email    valueobjects.Optional[string]
	FullName valueobjects.Optional[string]
	IsActive valueobjects.Optional[bool]
}

// IsEmpty indica que nenhum campo foi enviado
func (in UpdateUserInput) IsEmpty() bool {
	return !in.Email.Set && !in.FullName.Set && !in.IsActive.Set
}

// ListUsersInput contém parâmetros de paginação e o filtro opcional por email
type ListUsersInput struct {
	Offset int
	Limit  *int
	Email  string
}

// CreateUser cria um novo usuário com a senha em hash
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, domainerrors.ErrInvalidEmail
	}

	s.logger.Info("creating user", "email", email.String())

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entities.NewUser(email, input.FullName, passwordHash)
	if err := user.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("user", err.Error())
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		// Verificação antecipada; a constraint única continua sendo a garantia real
		existing, err := s.userRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return domainerrors.ErrEmailAlreadyExists
		}

		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			s.logger.Warn("email already registered", "email", email.String())
		}
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "email_domain", user.Email.Domain())
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByEmail busca um usuário pelo email
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, domainerrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários em ordem de criação
func (s *UserService) ListUsers(ctx context.Context, input ListUsersInput) ([]*entities.User, error) {
	if input.Offset < 0 {
		return nil, domainerrors.NewValidationError("skip", "skip must be non-negative")
	}

	limit := repositories.DefaultListLimit
	if input.Limit != nil {
		if *input.Limit < 0 {
			return nil, domainerrors.NewValidationError("limit", "limit must be non-negative")
		}
		limit = *input.Limit
	}

	if input.Email != "" {
		return s.listByEmail(ctx, input.Email, input.Offset, limit)
	}

	return s.userRepo.List(ctx, repositories.UserFilters{
		Offset: input.Offset,
		Limit:  limit,
	})
}

func (s *UserService) listByEmail(ctx context.Context, email string, offset, limit int) ([]*entities.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrUserNotFound) || offset > 0 || limit == 0 {
		return []*entities.User{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []*entities.User{user}, nil
}

// UpdateUser aplica um merge-patch ao usuário em uma única transação
func (s *UserService) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*entities.User, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	var updated *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domainerrors.ErrUserNotFound
		}

		// Patch vazio: nada é gravado e updated_at permanece igual
		if input.IsEmpty() {
			updated = user
			return nil
		}

		if input.Email.Set {
			email, err := valueobjects.NewEmail(*input.Email.Value)
			if err != nil {
				return domainerrors.ErrInvalidEmail
			}
			user.Email = email
		}
		input.FullName.ApplyTo(&user.FullName)
		if input.IsActive.Set {
			user.IsActive = *input.IsActive.Value
		}

		if err := user.Validate(); err != nil {
			return domainerrors.NewValidationError("user", err.Error())
		}

		if err := s.userRepo.Update(txCtx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", id)
	return updated, nil
}

// validateUpdate rejeita null explícito em campos obrigatórios
func validateUpdate(input UpdateUserInput) error {
	if input.Email.IsNull() {
		return domainerrors.NewValidationError("email", "email must not be null")
	}
	if input.IsActive.IsNull() {
		return domainerrors.NewValidationError("is_active", "is_active must not be null")
	}
	return nil
}

// DeleteUser remove o usuário e o perfil; retorna false se não existir
func (s *UserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	var deleted bool

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.userRepo.Delete(txCtx, id)
		return err
	})
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("user deleted", "user_id", id)
	}
	return deleted, nil
}
