package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrProfileNotFound    = errors.New("error.profile_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrProfileConflict    = errors.New("error.profile_conflict")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrValidation   = errors.New("error.validation")
)

// Infrastructure errors
var (
	// ErrStoreUnavailable indica falha de conectividade com o banco, nunca confundir com not found
	ErrStoreUnavailable = errors.New("error.store_unavailable")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation       = "/problems/validation-error"
	ProblemTypeNotFound         = "/problems/not-found"
	ProblemTypeConflict         = "/problems/conflict"
	ProblemTypeInternal         = "/problems/internal-error"
	ProblemTypeBadRequest       = "/problems/bad-request"
	ProblemTypeUnavailable      = "/problems/service-unavailable"
	ProblemTypeMethodNotAllowed = "/problems/method-not-allowed"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação que continua comparável com ErrValidation
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Type:    ProblemTypeValidation,
		Title:   field,
		Message: message,
		Err:     ErrValidation,
	}
}
