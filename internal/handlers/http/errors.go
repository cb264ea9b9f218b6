package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
	"github.com/rafabene/accounts-api/internal/domain/ports"
	"github.com/rafabene/accounts-api/internal/handlers/dto"
)

// respondError converte erros de domínio em respostas RFC 7807.
// É o único ponto que escolhe o status HTTP de uma falha.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	var domainErr *domainerrors.DomainError

	switch {
	case errors.As(err, &domainErr) && errors.Is(err, domainerrors.ErrValidation):
		dto.Abort(c, dto.ValidationErrorResponseI18n(c, dto.ToValidationErrors(err)))

	case errors.Is(err, domainerrors.ErrInvalidEmail):
		dto.Abort(c, dto.ValidationErrorResponseI18n(c, dto.ToValidationErrors(err)))

	case errors.Is(err, domainerrors.ErrUserNotFound),
		errors.Is(err, domainerrors.ErrProfileNotFound):
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, err.Error()))

	case errors.Is(err, domainerrors.ErrEmailAlreadyExists),
		errors.Is(err, domainerrors.ErrProfileConflict):
		dto.Abort(c, dto.ConflictErrorResponseI18n(c, err.Error()))

	case errors.Is(err, domainerrors.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		logger.Error("store unavailable", "error", err, "path", c.Request.URL.Path)
		dto.Abort(c, dto.UnavailableErrorResponseI18n(c))

	default:
		logger.Error("unexpected error", "error", err, "path", c.Request.URL.Path)
		dto.Abort(c, dto.InternalErrorResponseI18n(c))
	}
}

// respondBindingError responde 400 com os erros de cada campo,
// ou com um problema genérico quando o corpo não é JSON
func respondBindingError(c *gin.Context, err error) {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		dto.Abort(c, dto.BadRequestErrorResponseI18n(c, "error.invalid_body"))
		return
	}
	dto.Abort(c, dto.ValidationErrorResponseI18n(c, dto.ToValidationErrors(err)))
}
