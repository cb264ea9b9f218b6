package repositories

import (
	"context"

	"github.com/rafabene/accounts-api/internal/domain/entities"
)

// ProfileRepository define a interface para persistência de perfis
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.UserProfile) error
	FindByUserID(ctx context.Context, userID int64) (*entities.UserProfile, error)
	Update(ctx context.Context, profile *entities.UserProfile) error
	DeleteByUserID(ctx context.Context, userID int64) (bool, error)
}
