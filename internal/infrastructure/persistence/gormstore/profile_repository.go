package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/accounts-api/internal/domain/entities"
	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
	"github.com/rafabene/accounts-api/internal/domain/repositories"
)

// ProfileRepository implementa repositories.ProfileRepository
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository cria um novo ProfileRepository
func NewProfileRepository(store *Store) repositories.ProfileRepository {
	return &ProfileRepository{db: store.DB}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.UserProfile) error {
	model := toProfileModel(profile)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateError(err, domainerrors.ErrProfileConflict)
	}

	profile.ID = model.ID
	profile.CreatedAt = model.CreatedAt
	profile.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID int64) (*entities.UserProfile, error) {
	var model UserProfileModel

	db := getDB(ctx, r.db)
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, nil)
	}

	return toProfileEntity(&model), nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entities.UserProfile) error {
	model := toProfileModel(profile)

	db := getDB(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		return translateError(err, domainerrors.ErrProfileConflict)
	}

	profile.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID int64) (bool, error) {
	db := getDB(ctx, r.db)

	result := db.Where("user_id = ?", userID).Delete(&UserProfileModel{})
	if result.Error != nil {
		return false, translateError(result.Error, nil)
	}

	return result.RowsAffected > 0, nil
}

// Conversores
func toProfileModel(profile *entities.UserProfile) *UserProfileModel {
	return &UserProfileModel{
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

func toProfileEntity(model *UserProfileModel) *entities.UserProfile {
	return &entities.UserProfile{
		ID:        model.ID,
		UserID:    model.UserID,
		Phone:     model.Phone,
		City:      model.City,
		Country:   model.Country,
		Timezone:  model.Timezone,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
