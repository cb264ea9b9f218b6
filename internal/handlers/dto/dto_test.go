package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
)

func TestToValidationErrors(t *testing.T) {
	RegisterValidation()

	t.Run("usa o nome JSON do campo", func(t *testing.T) {
		err := validate().Struct(CreateUserRequest{Email: "invalid"})
		errs := ToValidationErrors(err)

		require.Len(t, errs, 2)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "email", errs[0].Tag)
		assert.Equal(t, "password", errs[1].Field)
		assert.Equal(t, "field is required", errs[1].Message)
	})

	t.Run("erro de domínio", func(t *testing.T) {
		errs := ToValidationErrors(domainerrors.NewValidationError("skip", "skip must be non-negative"))
		assert.Equal(t, []ValidationError{{Field: "skip", Message: "skip must be non-negative"}}, errs)
	})

	t.Run("email inválido", func(t *testing.T) {
		errs := ToValidationErrors(domainerrors.ErrInvalidEmail)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})

	t.Run("erro genérico vira body", func(t *testing.T) {
		errs := ToValidationErrors(errors.New("boom"))
		assert.Equal(t, []ValidationError{{Field: "body", Message: "boom"}}, errs)
	})
}

func TestUpdateUserRequest(t *testing.T) {
	parse := func(t *testing.T, body string) UpdateUserRequest {
		t.Helper()
		var req UpdateUserRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}

	t.Run("patch vazio", func(t *testing.T) {
		req := parse(t, `{}`)
		assert.Empty(t, req.Validate())
		assert.True(t, req.ToInput().IsEmpty())
	})

	t.Run("nulls obrigatórios", func(t *testing.T) {
		errs := parse(t, `{"email":null,"is_active":null,"full_name":null}`).Validate()
		require.Len(t, errs, 2)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "is_active", errs[1].Field)
	})

	t.Run("tamanhos e formato", func(t *testing.T) {
		body := `{"email":"nope","full_name":"` + strings.Repeat("x", 201) + `"}`
		errs := parse(t, body).Validate()
		require.Len(t, errs, 2)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "full_name", errs[1].Field)
		assert.Equal(t, "max", errs[1].Tag)
	})
}

func TestProfileRequest_Validate(t *testing.T) {
	var req ProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"timezone":"`+strings.Repeat("z", 61)+`","city":null}`), &req))

	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "timezone", errs[0].Field)

	input := req.ToInput()
	assert.True(t, input.City.IsNull())
	assert.False(t, input.Phone.Set)
}

func TestListUsersQuery_ToInput(t *testing.T) {
	limit := 5
	input := ListUsersQuery{Skip: 2, Limit: &limit, Email: "a@x.com"}.ToInput()

	assert.Equal(t, 2, input.Offset)
	assert.Equal(t, &limit, input.Limit)
	assert.Equal(t, "a@x.com", input.Email)
}

func TestNewErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/users/7", nil)
	c.Set("base_url", "https://accounts.example")

	Abort(c, NotFoundErrorResponseI18n(c, "error.user_not_found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "https://accounts.example/problems/not-found", body["type"])
	assert.Equal(t, "/users/7", body["instance"])
	// sem serviço i18n no contexto a chave é devolvida
	assert.Equal(t, "error.user_not_found", body["detail"])
	assert.Equal(t, "error.not_found.title", body["title"])
}
