package dto

import (
	"time"

	"github.com/rafabene/accounts-api/internal/domain/entities"
	"github.com/rafabene/accounts-api/internal/domain/valueobjects"
	"github.com/rafabene/accounts-api/internal/services"
)

// ProfileRequest cria ou mescla o perfil; campos ausentes mantêm o valor atual
type ProfileRequest struct {
	Phone    valueobjects.Optional[string] `json:"phone" swaggertype:"string"`
	City     valueobjects.Optional[string] `json:"city" swaggertype:"string"`
	Country  valueobjects.Optional[string] `json:"country" swaggertype:"string"`
	Timezone valueobjects.Optional[string] `json:"timezone" swaggertype:"string"`
}

// Validate aplica os tamanhos máximos das colunas
func (r ProfileRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkOptional("phone", r.Phone.Value, "max=30", errs)
	errs = checkOptional("city", r.City.Value, "max=120", errs)
	errs = checkOptional("country", r.Country.Value, "max=120", errs)
	errs = checkOptional("timezone", r.Timezone.Value, "max=60", errs)
	return errs
}

func (r ProfileRequest) ToInput() services.ProfileInput {
	return services.ProfileInput{
		Phone:    r.Phone,
		City:     r.City,
		Country:  r.Country,
		Timezone: r.Timezone,
	}
}

// ProfileResponse representa a resposta de um perfil
type ProfileResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Phone     *string   `json:"phone"`
	City      *string   `json:"city"`
	Country   *string   `json:"country"`
	Timezone  *string   `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProfileResponse(profile *entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID,
		UserID:    profile.UserID,
		Phone:     profile.Phone,
		City:      profile.City,
		Country:   profile.Country,
		Timezone:  profile.Timezone,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
