package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/accounts-api/internal/domain/entities"
	domainerrors "github.com/rafabene/accounts-api/internal/domain/errors"
	"github.com/rafabene/accounts-api/internal/domain/repositories"
	"github.com/rafabene/accounts-api/internal/domain/valueobjects"
	"github.com/rafabene/accounts-api/internal/infrastructure/logging"
	"github.com/rafabene/accounts-api/internal/infrastructure/persistence/gormstore"
	"github.com/rafabene/accounts-api/internal/infrastructure/persistence/gormstore/gormstoretest"
	"github.com/rafabene/accounts-api/internal/infrastructure/security"
	"github.com/rafabene/accounts-api/internal/services"
)

// staleEmailLookup simula a corrida check-then-act: a verificação prévia nunca encontra o email
type staleEmailLookup struct {
	repositories.UserRepository
}

func (staleEmailLookup) FindByEmail(context.Context, string) (*entities.User, error) {
	return nil, nil
}

// concurrently roda fn n vezes em paralelo e devolve o erro de cada chamada
func concurrently(n int, fn func(i int) error) []error {
	errs := make([]error, n)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = fn(i)
		}(i)
	}
	close(start)
	wg.Wait()

	return errs
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

var _ = Describe("UserService", func() {
	var (
		ctx      context.Context
		store    *gormstore.Store
		userRepo repositories.UserRepository
		service  *services.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = gormstoretest.New(GinkgoT())
		userRepo = gormstore.NewUserRepository(store)
		service = services.NewUserService(
			userRepo,
			gormstore.NewUnitOfWork(store),
			security.NewPBKDF2Hasher(),
			logging.NewNopLogger(),
		)
	})

	Describe("CreateUser", func() {
		It("persiste o usuário com hash da senha", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				Email:    "a@x.com",
				FullName: strPtr("Ana"),
				Password: "secret",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeZero())
			Expect(user.IsActive).To(BeTrue())
			Expect(strings.Count(user.PasswordHash, "$")).To(Equal(1))
			Expect(user.PasswordHash).NotTo(ContainSubstring("secret"))
			Expect(security.NewPBKDF2Hasher().Verify("secret", user.PasswordHash)).To(BeTrue())
		})

		It("retorna conflito para email duplicado", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{Email: "a@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateUser(ctx, services.CreateUserInput{Email: "A@X.com", Password: "other"})
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		})

		It("usa a constraint única quando a verificação prévia perde a corrida", func() {
			racy := services.NewUserService(
				staleEmailLookup{userRepo},
				gormstore.NewUnitOfWork(store),
				security.NewPBKDF2Hasher(),
				logging.NewNopLogger(),
			)

			_, err := racy.CreateUser(ctx, services.CreateUserInput{Email: "a@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())

			_, err = racy.CreateUser(ctx, services.CreateUserInput{Email: "a@x.com", Password: "secret"})
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))

			users, err := service.ListUsers(ctx, services.ListUsersInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
		})

		It("rejeita email inválido", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{Email: "not-an-email", Password: "secret"})
			Expect(err).To(MatchError(domainerrors.ErrInvalidEmail))
		})
	})

	Describe("CreateUser concorrente", func() {
		const writers = 8

		It("cria todos os usuários com emails distintos", func() {
			errs := concurrently(writers, func(i int) error {
				_, err := service.CreateUser(ctx, services.CreateUserInput{
					Email:    fmt.Sprintf("user%d@x.com", i),
					Password: "secret",
				})
				return err
			})

			for i, err := range errs {
				Expect(err).NotTo(HaveOccurred(), "escritor %d", i)
			}

			users, err := service.ListUsers(ctx, services.ListUsersInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(writers))
		})

		It("aceita exatamente um usuário para o mesmo email", func() {
			errs := concurrently(writers, func(int) error {
				_, err := service.CreateUser(ctx, services.CreateUserInput{Email: "same@x.com", Password: "secret"})
				return err
			})

			created := 0
			for _, err := range errs {
				if err == nil {
					created++
					continue
				}
				Expect(errors.Is(err, domainerrors.ErrEmailAlreadyExists)).To(BeTrue(), "erro inesperado: %v", err)
			}
			Expect(created).To(Equal(1))

			users, err := service.ListUsers(ctx, services.ListUsersInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
		})
	})

	Describe("GetUser e GetUserByEmail", func() {
		It("retorna not found para ids e emails inexistentes", func() {
			_, err := service.GetUser(ctx, 42)
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))

			_, err = service.GetUserByEmail(ctx, "ghost@x.com")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("encontra o usuário criado", func() {
			created, err := service.CreateUser(ctx, services.CreateUserInput{Email: "a@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())

			byID, err := service.GetUser(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(byID.Email.String()).To(Equal("a@x.com"))

			byEmail, err := service.GetUserByEmail(ctx, " A@x.com ")
			Expect(err).NotTo(HaveOccurred())
			Expect(byEmail.ID).To(Equal(created.ID))
		})
	})

	Describe("ListUsers", func() {
		BeforeEach(func() {
			for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
				_, err := service.CreateUser(ctx, services.CreateUserInput{Email: email, Password: "secret"})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("pagina em ordem estável", func() {
			users, err := service.ListUsers(ctx, services.ListUsersInput{Offset: 1, Limit: intPtr(2)})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
			Expect(users[0].Email.String()).To(Equal("b@x.com"))
			Expect(users[1].Email.String()).To(Equal("c@x.com"))
		})

		It("usa o limite padrão quando omitido", func() {
			users, err := service.ListUsers(ctx, services.ListUsersInput{})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(3))
		})

		It("rejeita paginação negativa", func() {
			_, err := service.ListUsers(ctx, services.ListUsersInput{Offset: -1})
			Expect(err).To(MatchError(domainerrors.ErrValidation))

			_, err = service.ListUsers(ctx, services.ListUsersInput{Limit: intPtr(-5)})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})

		It("filtra por email", func() {
			users, err := service.ListUsers(ctx, services.ListUsersInput{Email: "b@x.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Email.String()).To(Equal("b@x.com"))

			users, err = service.ListUsers(ctx, services.ListUsersInput{Email: "z@x.com"})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(BeEmpty())
		})
	})

	Describe("UpdateUser", func() {
		var user *entities.User

		BeforeEach(func() {
			var err error
			user, err = service.CreateUser(ctx, services.CreateUserInput{
				Email:    "a@x.com",
				FullName: strPtr("Ana"),
				Password: "secret",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("patch vazio não altera nada", func() {
			before, err := service.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())

			time.Sleep(5 * time.Millisecond)
			updated, err := service.UpdateUser(ctx, user.ID, services.UpdateUserInput{})
			Expect(err).NotTo(HaveOccurred())

			after, err := service.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.UpdatedAt).To(BeTemporally("==", before.UpdatedAt))
			Expect(after.UpdatedAt).To(BeTemporally("==", before.UpdatedAt))
			Expect(after.FullName).To(Equal(before.FullName))
			Expect(after.Email).To(Equal(before.Email))
		})

		It("altera apenas os campos enviados", func() {
			time.Sleep(5 * time.Millisecond)
			updated, err := service.UpdateUser(ctx, user.ID, services.UpdateUserInput{
				IsActive: valueobjects.Some(false),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsActive).To(BeFalse())
			Expect(*updated.FullName).To(Equal("Ana"))
			Expect(updated.Email.String()).To(Equal("a@x.com"))
			Expect(updated.UpdatedAt).To(BeTemporally(">", user.UpdatedAt))
		})

		It("null explícito limpa o campo opcional", func() {
			updated, err := service.UpdateUser(ctx, user.ID, services.UpdateUserInput{
				FullName: valueobjects.Null[string](),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.FullName).To(BeNil())

			reloaded, err := service.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.FullName).To(BeNil())
		})

		It("rejeita null em campos obrigatórios", func() {
			_, err := service.UpdateUser(ctx, user.ID, services.UpdateUserInput{Email: valueobjects.Null[string]()})
			Expect(err).To(MatchError(domainerrors.ErrValidation))

			_, err = service.UpdateUser(ctx, user.ID, services.UpdateUserInput{IsActive: valueobjects.Null[bool]()})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})

		It("retorna conflito e faz rollback quando o email já pertence a outro usuário", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{Email: "b@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateUser(ctx, user.ID, services.UpdateUserInput{
				Email:    valueobjects.Some("b@x.com"),
				FullName: valueobjects.Some("Changed"),
			})
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))

			reloaded, err := service.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.Email.String()).To(Equal("a@x.com"))
			Expect(*reloaded.FullName).To(Equal("Ana"))
		})

		It("retorna not found para usuário inexistente", func() {
			_, err := service.UpdateUser(ctx, user.ID+1, services.UpdateUserInput{FullName: valueobjects.Some("x")})
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("DeleteUser", func() {
		It("remove o usuário e informa quando não existe", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{Email: "a@x.com", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())

			deleted, err := service.DeleteUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			_, err = service.GetUser(ctx, user.ID)
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))

			deleted, err = service.DeleteUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())
		})
	})
})
