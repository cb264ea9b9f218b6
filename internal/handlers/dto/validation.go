package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
)

// RegisterValidation faz o validator do Gin reportar nomes de campos JSON/query
func RegisterValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
}

// validate retorna o validator compartilhado com o binding do Gin
func validate() *validator.Validate {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v
	}
	return validator.New()
}

// ToValidationErrors converte erros de binding/validação em erros por campo
func ToValidationErrors(err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		result := make([]ValidationError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			result = append(result, ValidationError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
				Tag:     fe.Tag(),
			})
		}
		return result
	}

	var domainErr *domainerrors.DomainError
	if errors.As(err, &domainErr) {
		return []ValidationError{{Field: domainErr.Title, Message: domainErr.Message}}
	}

	if errors.Is(err, domainerrors.ErrInvalidEmail) {
		return []ValidationError{{Field: "email", Message: "must be a valid email address", Tag: "email"}}
	}

	return []ValidationError{{Field: "body", Message: err.Error()}}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %s validation", fe.Tag())
	}
}

// checkOptional valida o valor de um campo opcional só quando presente e não nulo
func checkOptional(field string, value *string, rules string, errs []ValidationError) []ValidationError {
	if value == nil {
		return errs
	}

	if err := validate().Var(*value, rules); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fe := range validationErrs {
				errs = append(errs, ValidationError{
					Field:   field,
					Message: validationMessage(fe),
					Tag:     fe.Tag(),
				})
			}
			return errs
		}
		errs = append(errs, ValidationError{Field: field, Message: err.Error()})
	}
	return errs
}
