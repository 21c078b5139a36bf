package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	service  usecase.AuthUsecase
	userRepo *mockUserRepo
	hasher   *mockHasher
	tokens   *mockTokenService
}

func newAuthServiceFixture() *authServiceFixture {
	userRepo := new(mockUserRepo)
	hasher := new(mockHasher)
	tokens := new(mockTokenService)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &authServiceFixture{service: service, userRepo: userRepo, hasher: hasher, tokens: tokens}
}

func TestAuthService_Signup_CreatesCustomer(t *testing.T) {
	fixture := newAuthServiceFixture()

	fixture.userRepo.On("FindByEmail", mock.Anything, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fixture.hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	fixture.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()

			assert.Equal(t, entity.RoleCustomer, user.Role)
			assert.Equal(t, "hashed", user.PasswordHash)
		}).
		Return(nil)
	fixture.tokens.On("GenerateToken", mock.AnythingOfType("uuid.UUID"), entity.RoleCustomer).
		Return("token-abc", nil)

	out, err := fixture.service.Signup(context.Background(), usecase.SignupInput{
		Email:    "new@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.AccessToken)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fixture := newAuthServiceFixture()

	fixture.userRepo.On("FindByEmail", mock.Anything, "dup@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "dup@example.com"}, nil)

	_, err := fixture.service.Signup(context.Background(), usecase.SignupInput{
		Email:    "dup@example.com",
		Password: "whatever-123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

	fixture.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fixture := newAuthServiceFixture()

	user := &entity.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "hash", Role: entity.RoleCustomer}
	fixture.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	fixture.hasher.On("Check", "wrong", "hash").Return(false)

	_, err := fixture.service.Login(context.Background(), usecase.LoginInput{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailReportsInvalidCredentials(t *testing.T) {
	fixture := newAuthServiceFixture()

	fixture.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixture.service.Login(context.Background(), usecase.LoginInput{Email: "ghost@example.com", Password: "anything"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_AdminLogin_RejectsCustomerAsInvalidCredentials(t *testing.T) {
	fixture := newAuthServiceFixture()

	user := &entity.User{ID: uuid.New(), Email: "c@example.com", PasswordHash: "hash", Role: entity.RoleCustomer}
	fixture.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	fixture.hasher.On("Check", "correct", "hash").Return(true)

	// Role mismatch must look exactly like wrong credentials.
	_, err := fixture.service.AdminLogin(context.Background(), usecase.LoginInput{Email: user.Email, Password: "correct"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	fixture.tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestAuthService_AdminLogin_AllowsAdmin(t *testing.T) {
	fixture := newAuthServiceFixture()

	user := &entity.User{ID: uuid.New(), Email: "boss@example.com", PasswordHash: "hash", Role: entity.RoleAdmin}
	fixture.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	fixture.hasher.On("Check", "correct", "hash").Return(true)
	fixture.tokens.On("GenerateToken", user.ID, entity.RoleAdmin).Return("admin-token", nil)

	out, err := fixture.service.AdminLogin(context.Background(), usecase.LoginInput{Email: user.Email, Password: "correct"})
	require.NoError(t, err)
	assert.Equal(t, "admin-token", out.AccessToken)
}
