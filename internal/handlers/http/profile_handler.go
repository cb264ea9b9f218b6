package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/accounts-api/internal/domain/ports"
	"github.com/rafabene/accounts-api/internal/handlers/dto"
	"github.com/rafabene/accounts-api/internal/services"
)

// ProfileHandler lida com o perfil 1:1 de um usuário
type ProfileHandler struct {
	profileService *services.ProfileService
	logger         ports.Logger
}

// NewProfileHandler cria um novo ProfileHandler
func NewProfileHandler(profileService *services.ProfileService, logger ports.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, logger: logger}
}

// CreateOrReplaceProfile cria o perfil ou mescla os campos enviados no existente
//
//	@Summary	Cria ou atualiza o perfil
//	@Tags		profiles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"ID do usuário"
//	@Param		profile	body		dto.ProfileRequest	true	"Campos do perfil"
//	@Success	201		{object}	dto.ProfileResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/users/{id}/profile [post]
func (h *ProfileHandler) CreateOrReplaceProfile(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindingError(c, err)
		return
	}

	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		dto.Abort(c, dto.ValidationErrorResponseI18n(c, errs))
		return
	}

	profile, err := h.profileService.CreateOrReplaceProfile(c.Request.Context(), uri.ID, req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// GetProfile busca o perfil do usuário
//
//	@Summary	Busca o perfil
//	@Tags		profiles
//	@Produce	json
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.ProfileResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id}/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindingError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// DeleteProfile remove o perfil mantendo o usuário
//
//	@Summary	Remove o perfil
//	@Tags		profiles
//	@Param		id	path	int	true	"ID do usuário"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id}/profile [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindingError(c, err)
		return
	}

	deleted, err := h.profileService.DeleteProfile(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !deleted {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "error.profile_not_found"))
		return
	}

	c.Status(http.StatusNoContent)
}
