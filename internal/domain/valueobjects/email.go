package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidEmail é retornado por NewEmail para endereços malformados
var ErrInvalidEmail = errors.New("invalid email format")

const (
	// MaxEmailLength segue o tamanho da coluna users.email
	MaxEmailLength = 320
	maxLocalLength = 64
)

var (
	localPattern  = regexp.MustCompile(`^[a-z0-9._%+\-]+$`)
	domainPattern = regexp.MustCompile(`^([a-z0-9\-]+\.)+[a-z]{2,}$`)
)

// Email é sempre minúsculo e sem espaços nas pontas, por isso a
// comparação de igualdade já ignora caixa.
type Email struct {
	value string
}

// NewEmail normaliza e valida um endereço
func NewEmail(raw string) (Email, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if len(email) > MaxEmailLength {
		return Email{}, ErrInvalidEmail
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || len(local) > maxLocalLength {
		return Email{}, ErrInvalidEmail
	}
	if !localPattern.MatchString(local) || !domainPattern.MatchString(domain) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// Domain retorna a parte depois do @
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// IsZero indica um Email não inicializado
func (e Email) IsZero() bool {
	return e.value == ""
}
