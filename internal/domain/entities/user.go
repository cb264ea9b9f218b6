package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/rafabene/accounts-api/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa uma conta de usuário do sistema
type User struct {
	ID           int64
	Email        valueobjects.Email
	FullName     *string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Profile      *UserProfile // Carregado nas leituras, nil se não existir
}

// NewUser cria um usuário ativo com a senha já transformada em hash
func NewUser(email valueobjects.Email, fullName *string, passwordHash string) *User {
	return &User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
}

// HasProfile verifica se o usuário possui perfil
func (u *User) HasProfile() bool {
	return u.Profile != nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.IsZero() {
		return fmt.Errorf("%w: email is required", ErrInvalidUserData)
	}

	if u.PasswordHash == "" {
		return fmt.Errorf("%w: password hash is required", ErrInvalidUserData)
	}

	if u.FullName != nil && len(*u.FullName) > 200 {
		return fmt.Errorf("%w: full name must be at most 200 characters", ErrInvalidUserData)
	}

	return nil
}
