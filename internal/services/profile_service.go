package services

import (
	"context"

	"github.com/rafabene/accounts-api/internal/domain/entities"
	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
	"github.com/rafabene/accounts-api/internal/domain/ports"
	"github.com/rafabene/accounts-api/internal/domain/repositories"
	"github.com/rafabene/accounts-api/internal/domain/valueobjects"
)

// ProfileService contém a lógica de negócio para perfis de usuário
type ProfileService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewProfileService cria um novo ProfileService
func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		uow:         uow,
		logger:      logger,
	}
}

// ProfileInput contém os campos enviados; os ausentes não são alterados
type ProfileInput struct {
	Phone    valueobjects.Optional[string]
	City     valueobjects.Optional[string]
	Country  valueobjects.Optional[string]
	Timezone valueobjects.Optional[string]
}

func (in ProfileInput) applyTo(profile *entities.UserProfile) {
	in.Phone.ApplyTo(&profile.Phone)
	in.City.ApplyTo(&profile.City)
	in.Country.ApplyTo(&profile.Country)
	in.Timezone.ApplyTo(&profile.Timezone)
}

// CreateOrReplaceProfile cria o perfil ou mescla os campos enviados no existente
func (s *ProfileService) CreateOrReplaceProfile(ctx context.Context, userID int64, input ProfileInput) (*entities.UserProfile, error) {
	var result *entities.UserProfile

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.ensureUser(txCtx, userID); err != nil {
			return err
		}

		profile, err := s.profileRepo.FindByUserID(txCtx, userID)
		if err != nil {
			return err
		}

		if profile != nil {
			input.applyTo(profile)
			if err := s.profileRepo.Update(txCtx, profile); err != nil {
				return err
			}
			result = profile
			return nil
		}

		profile = &entities.UserProfile{UserID: userID}
		input.applyTo(profile)
		if err := s.profileRepo.Create(txCtx, profile); err != nil {
			return err
		}
		result = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile saved", "user_id", userID, "profile_id", result.ID)
	return result, nil
}

// GetProfile busca o perfil de um usuário existente
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*entities.UserProfile, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domainerrors.ErrProfileNotFound
	}
	return profile, nil
}

// DeleteProfile remove o perfil; retorna false se o usuário não tiver perfil
func (s *ProfileService) DeleteProfile(ctx context.Context, userID int64) (bool, error) {
	var deleted bool

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.ensureUser(txCtx, userID); err != nil {
			return err
		}

		var err error
		deleted, err = s.profileRepo.DeleteByUserID(txCtx, userID)
		return err
	})
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("profile deleted", "user_id", userID)
	}
	return deleted, nil
}

func (s *ProfileService) ensureUser(ctx context.Context, userID int64) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domainerrors.ErrUserNotFound
	}
	return nil
}
