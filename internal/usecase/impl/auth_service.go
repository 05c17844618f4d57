// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"teslo/internal/domain/entity"
	domainerrors "teslo/internal/domain/errors"
	"teslo/internal/domain/repository"
	"teslo/internal/domain/service"
	"teslo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It is stateless and
// request-scoped: every operation runs independently with no shared mutable
// state, so concurrent calls need no coordination here.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register orchestrates account creation: hash the plaintext, persist the
// identity with the hash in a single atomic insert, then issue a token.
// The plaintext exists only for the duration of this call.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Email:    input.Email,
		FullName: input.FullName,
		IsActive: true,
		Roles:    entity.DefaultRoles(),
	}

	// Uniqueness is enforced by the store's constraint, not by a prior
	// existence check, so concurrent registrations of the same email cannot
	// race past each other.
	if err := srv.userRepo.Create(ctx, newUser, passwordHash); err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			srv.logger.Warn("Registration conflict", slog.String("email", input.Email))

			return nil, errors.Wrap(err, "registration failed")
		}
		srv.logger.Error("Failed to persist user during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to create user")
	}

	token, err := srv.tokenService.Generate(newUser.ID)
	if err != nil {
		srv.logger.Error("Failed to issue token during registration", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to issue token")
	}

	srv.logger.Info("User registered", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, Token: token}, nil
}

// Login orchestrates credential verification: look up the stored credential
// by email, check the plaintext against the hash, then issue a token.
// Credential mismatch is never retried by this layer.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	credential, err := srv.userRepo.FindCredentialByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The reason stays in the log; the caller sees the same
			// undifferentiated failure as a wrong password.
			srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "identity not found"))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		srv.logger.Error("Failed to load credential during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to load credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "credential mismatch"))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		srv.logger.Error("Failed to load user after credential check", slog.Any("userID", credential.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to load user")
	}

	token, err := srv.tokenService.Generate(loggedInUser.ID)
	if err != nil {
		srv.logger.Error("Failed to issue token during login", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to issue token")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", loggedInUser.ID))

	return &usecase.AuthOutput{User: loggedInUser, Token: token}, nil
}

// CheckAuthStatus issues a fresh token for an already-authenticated identity.
// The caller's validity was established upstream by the request guard, so no
// lookup or credential comparison happens here.
func (srv *authService) CheckAuthStatus(_ context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		srv.logger.Error("Failed to reissue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to issue token")
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}
