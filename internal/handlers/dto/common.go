package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro RFC 7807
func NewErrorResponse(c *gin.Context, problemType, title string, status int, detail string) ErrorResponse {
	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL(c) + problemType
	problem.Title = title
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{DefaultProblem: problem}
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponse(c, problemType, T(c, titleKey, params...), status, T(c, detailKey, params...))
}

// Abort escreve o problema com Content-Type application/problem+json
func Abort(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

func baseURL(c *gin.Context) string {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	return baseURL
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta 400 com uma mensagem de detalhe
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		http.StatusBadRequest,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
		params...,
	)
}

// ConflictErrorResponseI18n cria uma resposta de conflito.
// Conflitos de unicidade respondem 400 para manter compatibilidade com os clientes existentes.
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusBadRequest,
		params...,
	)
}

// UnavailableErrorResponseI18n cria uma resposta de erro 503
func UnavailableErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeUnavailable,
		"error.unavailable.title",
		"error.store_unavailable",
		http.StatusServiceUnavailable,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// MethodNotAllowedErrorResponseI18n cria uma resposta de erro 405
func MethodNotAllowedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeMethodNotAllowed,
		"error.method_not_allowed.title",
		"error.method_not_allowed.detail",
		http.StatusMethodNotAllowed,
		map[string]interface{}{"Method": c.Request.Method},
	)
}
