package dto

import (
	"time"

	"github.com/rafabene/accounts-api/internal/domain/entities"
	"github.com/rafabene/accounts-api/internal/domain/valueobjects"
	"github.com/rafabene/accounts-api/internal/services"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email,max=320" example:"a@x.com"`
	FullName *string `json:"full_name" binding:"omitempty,max=200" example:"Ana Silva"`
	Password string  `json:"password" binding:"required,max=1024" example:"secret"`
}

// ToInput converte a requisição em entrada do serviço
func (r CreateUserRequest) ToInput() services.CreateUserInput {
	return services.CreateUserInput{
		Email:    r.Email,
		FullName: r.FullName,
		Password: r.Password,
	}
}

// UpdateUserRequest é um merge-patch: campos ausentes não são alterados, null limpa
type UpdateUserRequest struct {
	Email    valueobjects.Optional[string] `json:"email" swaggertype:"string"`
	FullName valueobjects.Optional[string] `json:"full_name" swaggertype:"string"`
	IsActive valueobjects.Optional[bool]   `json:"is_active" swaggertype:"boolean"`
}

// Validate verifica os valores presentes no patch
func (r UpdateUserRequest) Validate() []ValidationError {
	var errs []ValidationError

	if r.Email.IsNull() {
		errs = append(errs, ValidationError{Field: "email", Message: "must not be null"})
	}
	if r.IsActive.IsNull() {
		errs = append(errs, ValidationError{Field: "is_active", Message: "must not be null"})
	}

	errs = checkOptional("email", r.Email.Value, "email,max=320", errs)
	errs = checkOptional("full_name", r.FullName.Value, "max=200", errs)

	return errs
}

// ToInput converte a requisição em entrada do serviço
func (r UpdateUserRequest) ToInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		Email:    r.Email,
		FullName: r.FullName,
		IsActive: r.IsActive,
	}
}

// ListUsersQuery contém paginação e filtro da listagem
type ListUsersQuery struct {
	Skip  int    `form:"skip" binding:"min=0"`
	Limit *int   `form:"limit" binding:"omitempty,min=0"`
	Email string `form:"email" binding:"omitempty,email"`
}

// ToInput converte a query em entrada do serviço
func (q ListUsersQuery) ToInput() services.ListUsersInput {
	return services.ListUsersInput{
		Offset: q.Skip,
		Limit:  q.Limit,
		Email:  q.Email,
	}
}

// UserURI contém o id do usuário na rota
type UserURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// UserResponse representa a resposta de um usuário; o hash da senha nunca é exposto
type UserResponse struct {
	ID        int64            `json:"id"`
	Email     string           `json:"email"`
	FullName  *string          `json:"full_name"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Profile   *ProfileResponse `json:"profile"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	response := UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Profile != nil {
		profile := ToProfileResponse(user.Profile)
		response.Profile = &profile
	}
	return response
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
