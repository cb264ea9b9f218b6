package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/accounts-api/internal/domain/entities"
	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
	"github.com/rafabene/accounts-api/internal/domain/valueobjects"
	"github.com/rafabene/accounts-api/internal/infrastructure/logging"
	"github.com/rafabene/accounts-api/internal/infrastructure/persistence/gormstore"
	"github.com/rafabene/accounts-api/internal/infrastructure/persistence/gormstore/gormstoretest"
	"github.com/rafabene/accounts-api/internal/infrastructure/security"
	"github.com/rafabene/accounts-api/internal/services"
)

var _ = Describe("ProfileService", func() {
	var (
		ctx            context.Context
		userService    *services.UserService
		profileService *services.ProfileService
		user           *entities.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		store := gormstoretest.New(GinkgoT())
		userRepo := gormstore.NewUserRepository(store)
		uow := gormstore.NewUnitOfWork(store)

		userService = services.NewUserService(userRepo, uow, security.NewPBKDF2Hasher(), logging.NewNopLogger())
		profileService = services.NewProfileService(userRepo, gormstore.NewProfileRepository(store), uow, logging.NewNopLogger())

		var err error
		user, err = userService.CreateUser(ctx, services.CreateUserInput{Email: "a@x.com", Password: "secret"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("cria o perfil com os campos enviados", func() {
		profile, err := profileService.CreateOrReplaceProfile(ctx, user.ID, services.ProfileInput{
			City:    valueobjects.Some("Porto"),
			Country: valueobjects.Some("Portugal"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(profile.ID).NotTo(BeZero())
		Expect(profile.UserID).To(Equal(user.ID))
		Expect(*profile.City).To(Equal("Porto"))
		Expect(profile.Phone).To(BeNil())
	})

	It("mescla campos em chamadas sucessivas", func() {
		first, err := profileService.CreateOrReplaceProfile(ctx, user.ID, services.ProfileInput{
			Phone: valueobjects.Some("+351 900"),
			City:  valueobjects.Some("Porto"),
		})
		Expect(err).NotTo(HaveOccurred())

		second, err := profileService.CreateOrReplaceProfile(ctx, user.ID, services.ProfileInput{
			City:     valueobjects.Some("Lisboa"),
			Timezone: valueobjects.Some("Europe/Lisbon"),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(second.ID).To(Equal(first.ID))

		stored, err := profileService.GetProfile(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(*stored.Phone).To(Equal("+351 900"))
		Expect(*stored.City).To(Equal("Lisboa"))
		Expect(*stored.Timezone).To(Equal("Europe/Lisbon"))
		Expect(stored.Country).To(BeNil())
	})

	It("null explícito limpa um campo do perfil existente", func() {
		_, err := profileService.CreateOrReplaceProfile(ctx, user.ID, services.ProfileInput{Phone: valueobjects.Some("123")})
		Expect(err).NotTo(HaveOccurred())

		updated, err := profileService.CreateOrReplaceProfile(ctx, user.ID, services.ProfileInput{Phone: valueobjects.Null[string]()})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Phone).To(BeNil())
	})

	It("retorna not found quando o usuário não existe", func() {
		_, err := profileService.CreateOrReplaceProfile(ctx, user.ID+1, services.ProfileInput{})
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))

		_, err = profileService.GetProfile(ctx, user.ID+1)
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))

		_, err = profileService.DeleteProfile(ctx, user.ID+1)
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
	})

	It("distingue perfil ausente de usuário ausente", func() {
		_, err := profileService.GetProfile(ctx, user.ID)
		Expect(err).To(MatchError(domainerrors.ErrProfileNotFound))
		Expect(errors.Is(err, domainerrors.ErrUserNotFound)).To(BeFalse())

		deleted, err := profileService.DeleteProfile(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(BeFalse())
	})

	It("apaga o perfil", func() {
		_, err := profileService.CreateOrReplaceProfile(ctx, user.ID, services.ProfileInput{City: valueobjects.Some("Porto")})
		Expect(err).NotTo(HaveOccurred())

		deleted, err := profileService.DeleteProfile(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(BeTrue())

		_, err = profileService.GetProfile(ctx, user.ID)
		Expect(err).To(MatchError(domainerrors.ErrProfileNotFound))
	})

	It("gravações concorrentes do perfil terminam em um único perfil mesclado", func() {
		cities := []string{"Porto", "Lisboa", "Braga", "Faro", "Coimbra", "Évora"}

		errs := concurrently(len(cities), func(i int) error {
			_, err := profileService.CreateOrReplaceProfile(ctx, user.ID, services.ProfileInput{
				City: valueobjects.Some(cities[i]),
			})
			return err
		})

		for _, err := range errs {
			if err != nil {
				Expect(errors.Is(err, domainerrors.ErrProfileConflict)).To(BeTrue(), "erro inesperado: %v", err)
			}
		}

		stored, err := profileService.GetProfile(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(cities).To(ContainElement(*stored.City))
	})

	It("apagar o usuário apaga o perfil em cascata", func() {
		_, err := profileService.CreateOrReplaceProfile(ctx, user.ID, services.ProfileInput{City: valueobjects.Some("Porto")})
		Expect(err).NotTo(HaveOccurred())

		withProfile, err := userService.GetUser(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(withProfile.HasProfile()).To(BeTrue())

		deleted, err := userService.DeleteUser(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(BeTrue())

		_, err = profileService.GetProfile(ctx, user.ID)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, domainerrors.ErrUserNotFound) || errors.Is(err, domainerrors.ErrProfileNotFound)).To(BeTrue())
	})
})

var _ = Describe("HealthService", func() {
	It("reporta banco indisponível depois de fechado", func() {
		store := gormstoretest.New(GinkgoT())
		service := services.NewHealthService(store, logging.NewNopLogger())

		Expect(service.Check(context.Background())).To(Succeed())

		Expect(store.Close()).To(Succeed())
		Expect(service.Check(context.Background())).To(MatchError(domainerrors.ErrStoreUnavailable))
	})
})
