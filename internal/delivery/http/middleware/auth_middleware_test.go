package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teslo/config"
	"teslo/internal/domain/entity"
	"teslo/internal/domain/repository"
	"teslo/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)

	return args.Error(0)
}

func (m *mockUserRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Credential), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUserRepository, func(uuid.UUID) string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = "test-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := &mockUserRepository{}

	issue := func(userID uuid.UUID) string {
		token, err := tokenSvc.Generate(userID)
		require.NoError(t, err)

		return token
	}

	return NewAuthMiddleware(tokenSvc, userRepo), userRepo, issue
}

func runAuthenticated(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	}

	_ = m.Authenticate(next)(c)

	return rec, reached
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	m, userRepo, issue := newTestAuthMiddleware(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com", IsActive: true, Roles: []string{"user"}}
	userRepo.On("FindByID", mock.Anything, userID).Return(user, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issue(userID))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var resolved *entity.User
	err := m.Authenticate(func(c echo.Context) error {
		resolved, _ = UserFromContext(c)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, userID, resolved.ID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m, _, _ := newTestAuthMiddleware(t)

	rec, reached := runAuthenticated(m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m, _, issue := newTestAuthMiddleware(t)

	rec, reached := runAuthenticated(m, "Basic "+issue(uuid.New()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	m, _, _ := newTestAuthMiddleware(t)

	rec, reached := runAuthenticated(m, "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_SubjectGone(t *testing.T) {
	m, userRepo, issue := newTestAuthMiddleware(t)

	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	rec, reached := runAuthenticated(m, "Bearer "+issue(userID))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_Authenticate_StoreFailure(t *testing.T) {
	m, userRepo, issue := newTestAuthMiddleware(t)

	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID).
		Return(nil, errors.New("pq: connection refused"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issue(userID))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	err := m.Authenticate(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})(c)

	// An unavailable store is not a credential failure: the error propagates
	// to the central handler instead of being answered 401 here.
	require.Error(t, err)
	assert.False(t, reached)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewHTTPErrorHandler(logger)(err, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAuthMiddleware_Authenticate_InactiveAccount(t *testing.T) {
	m, userRepo, issue := newTestAuthMiddleware(t)

	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, IsActive: false}, nil)

	rec, reached := runAuthenticated(m, "Bearer "+issue(userID))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _, _ := newTestAuthMiddleware(t)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("role present", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(userContextKey, &entity.User{ID: uuid.New(), Roles: []string{"user", "admin"}})

		err := m.RequireRole("admin")(next)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(userContextKey, &entity.User{ID: uuid.New(), Roles: []string{"user"}})

		err := m.RequireRole("admin")(next)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("identity missing", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := m.RequireRole("admin")(next)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
