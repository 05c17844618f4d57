package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"teslo/internal/domain/entity"
	domainerrors "teslo/internal/domain/errors"
	"teslo/internal/domain/repository"
	"teslo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
		FullName: "Test User",
	}
	userID := uuid.New()

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = userID
		}).
		Return(nil)
	fx.tokenService.On("Generate", userID).Return("signed.jwt.token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.FullName, output.User.FullName)
	assert.True(t, output.User.IsActive)
	assert.Equal(t, []string{"user"}, output.User.Roles)

	fx.userRepo.AssertExpectations(t)
	fx.hasher.AssertExpectations(t)
	fx.tokenService.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
		FullName: "Test User",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
		Return(domainerrors.ErrEmailTaken.WrapMessage("email already exists"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "email", appErr.Details())

	// No token may be issued for a failed registration.
	fx.tokenService.AssertNotCalled(t, "Generate", mock.Anything)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
		FullName: "Test User",
	}

	fx.hasher.On("Hash", input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))

	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Register_StorageFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
		FullName: "Test User",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
		Return(errors.New("connection reset"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// Internal faults never surface the underlying cause.
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	assert.NotContains(t, domainerrors.ErrInternalError.Message(), "connection reset")
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}
	credential := &entity.Credential{
		UserID:       userID,
		Email:        input.Email,
		PasswordHash: "stored_hash",
	}
	storedUser := &entity.User{
		ID:       userID,
		Email:    input.Email,
		FullName: "Test User",
		IsActive: true,
		Roles:    []string{"user"},
	}

	fx.userRepo.On("FindCredentialByEmail", ctx, input.Email).Return(credential, nil)
	fx.hasher.On("Check", input.Password, "stored_hash").Return(true)
	fx.userRepo.On("FindByID", ctx, userID).Return(storedUser, nil)
	fx.tokenService.On("Generate", userID).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, storedUser, output.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.userRepo.On("FindCredentialByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	fx.tokenService.AssertNotCalled(t, "Generate", mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "WrongPassword!",
	}
	credential := &entity.Credential{
		UserID:       userID,
		Email:        input.Email,
		PasswordHash: "stored_hash",
	}

	fx.userRepo.On("FindCredentialByEmail", ctx, input.Email).Return(credential, nil)
	fx.hasher.On("Check", input.Password, "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	fx.tokenService.AssertNotCalled(t, "Generate", mock.Anything)
}

// The outward failure must be identical regardless of which check rejected
// the attempt, so a caller cannot probe which emails are registered.
func TestAuthService_Login_FailureIsUndifferentiated(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	unknownFx := createTestAuthService(t)
	unknownFx.userRepo.On("FindCredentialByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := unknownFx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	mismatchFx := createTestAuthService(t)
	mismatchFx.userRepo.On("FindCredentialByEmail", ctx, "known@example.com").
		Return(&entity.Credential{UserID: userID, Email: "known@example.com", PasswordHash: "stored_hash"}, nil)
	mismatchFx.hasher.On("Check", "Password123!", "stored_hash").Return(false)

	_, mismatchErr := mismatchFx.service.Login(ctx, &usecase.LoginInput{
		Email:    "known@example.com",
		Password: "Password123!",
	})

	require.Error(t, unknownErr)
	require.Error(t, mismatchErr)

	var unknownApp, mismatchApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(mismatchErr, &mismatchApp))
	assert.Equal(t, unknownApp.Message(), mismatchApp.Message())
	assert.Equal(t, unknownApp.HTTPCode(), mismatchApp.HTTPCode())
	assert.Equal(t, unknownApp.ErrorCode(), mismatchApp.ErrorCode())
}

func TestAuthService_CheckAuthStatus_Success(t *testing.T) {
	fx := createTestAuthService(t)

	userID := uuid.New()
	user := &entity.User{
		ID:       userID,
		Email:    "test@example.com",
		FullName: "Test User",
		IsActive: true,
		Roles:    []string{"user"},
	}

	fx.tokenService.On("Generate", userID).Return("fresh.jwt.token", nil)

	output, err := fx.service.CheckAuthStatus(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "fresh.jwt.token", output.Token)
	assert.Equal(t, user, output.User)

	// Re-issuance never touches storage or the hasher.
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestAuthService_CheckAuthStatus_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.tokenService.On("Generate", userID).Return("", errors.New("signing failure"))

	output, err := fx.service.CheckAuthStatus(context.Background(), user)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}
