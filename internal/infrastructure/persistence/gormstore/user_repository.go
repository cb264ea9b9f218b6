package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/accounts-api/internal/domain/entities"
	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
	"github.com/rafabene/accounts-api/internal/domain/repositories"
	"github.com/rafabene/accounts-api/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(store *Store) repositories.UserRepository {
	return &UserRepository{db: store.DB}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := toUserModel(user)

	db := getDB(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err, domainerrors.ErrEmailAlreadyExists)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entities.User, error) {
	var model UserModel

	db := getDB(ctx, r.db)
	if err := db.Preload("Profile").Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, nil)
	}

	return toUserEntity(&model)
}

// Update grava todos os campos da entidade; updated_at é renovado pelo GORM
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := toUserModel(user)

	db := getDB(ctx, r.db)
	if err := db.Omit(clause.Associations).Save(model).Error; err != nil {
		return translateError(err, domainerrors.ErrEmailAlreadyExists)
	}

	user.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete remove o usuário e o perfil dele; o perfil é apagado explicitamente
// para manter a cascata mesmo sem foreign keys habilitadas no SQLite.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	db := getDB(ctx, r.db)

	if err := db.Where("user_id = ?", id).Delete(&UserProfileModel{}).Error; err != nil {
		return false, translateError(err, nil)
	}

	result := db.Delete(&UserModel{}, id)
	if result.Error != nil {
		return false, translateError(result.Error, nil)
	}

	return result.RowsAffected > 0, nil
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	db := getDB(ctx, r.db)
	query := db.Model(&UserModel{}).Preload("Profile").Order("id ASC")

	// Paginação
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}
	limit := filters.Limit
	if limit < 0 {
		limit = repositories.DefaultListLimit
	}
	if limit == 0 {
		return []*entities.User{}, nil
	}

	query = query.Limit(limit).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, translateError(err, nil)
	}

	return toUserEntities(models)
}

// Conversores
func toUserModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Email:        user.Email.String(),
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toUserEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           model.ID,
		Email:        email,
		FullName:     model.FullName,
		PasswordHash: model.PasswordHash,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.Profile != nil {
		user.Profile = toProfileEntity(model.Profile)
	}

	return user, nil
}

func toUserEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := toUserEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
