package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/accounts-api/internal/domain/ports"
	"github.com/rafabene/accounts-api/internal/handlers/dto"
	"github.com/rafabene/accounts-api/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser cria um novo usuário
//
//	@Summary	Cria um usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		dto.CreateUserRequest	true	"Dados do usuário"
//	@Success	201		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	503		{object}	dto.ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// ListUsers lista usuários com paginação por skip/limit
//
//	@Summary	Lista usuários
//	@Tags		users
//	@Produce	json
//	@Param		skip	query		int		false	"Registros a pular"	minimum(0)	default(0)
//	@Param		limit	query		int		false	"Máximo de registros"	minimum(0)	default(100)
//	@Param		email	query		string	false	"Filtra por email exato"
//	@Success	200		{array}		dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), query.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetUser busca um usuário por ID
//
//	@Summary	Busca um usuário
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser aplica um merge-patch ao usuário
//
//	@Summary	Atualiza um usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID do usuário"
//	@Param		user	body		dto.UpdateUserRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindingError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		dto.Abort(c, dto.ValidationErrorResponseI18n(c, errs))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), uri.ID, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove o usuário e o seu perfil
//
//	@Summary	Remove um usuário
//	@Tags		users
//	@Param		id	path	int	true	"ID do usuário"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindingError(c, err)
		return
	}

	deleted, err := h.userService.DeleteUser(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !deleted {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "error.user_not_found"))
		return
	}

	c.Status(http.StatusNoContent)
}
