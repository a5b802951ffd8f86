package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jovanamartatilova/librareads/internal/config"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/internal/service"
	"github.com/jovanamartatilova/librareads/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	changePasswordFn func(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, userID, req)
}

// ─────────────────────────────────────────────
// Mock PasswordResetService
// ─────────────────────────────────────────────

type mockPasswordResetService struct {
	requestResetFn func(ctx context.Context, email string) error
	consumeResetFn func(ctx context.Context, req models.ResetPasswordRequest) error
}

func (m *mockPasswordResetService) RequestReset(ctx context.Context, email string) error {
	return m.requestResetFn(ctx, email)
}

func (m *mockPasswordResetService) ConsumeReset(ctx context.Context, req models.ResetPasswordRequest) error {
	return m.consumeResetFn(ctx, req)
}

// ─────────────────────────────────────────────
// Mock ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	getProfileFn    func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	return m.updateProfileFn(ctx, req)
}

// ─────────────────────────────────────────────
// Mock LibraryService
// ─────────────────────────────────────────────

type mockLibraryService struct {
	listBooksFn       func(ctx context.Context) ([]models.Book, error)
	getBookContentFn  func(ctx context.Context, bookID int64, chunkNumber int) (models.BookContent, error)
	getBookContentsFn func(ctx context.Context, bookID int64) ([]models.BookContent, error)
}

func (m *mockLibraryService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return m.listBooksFn(ctx)
}

func (m *mockLibraryService) GetBookContent(ctx context.Context, bookID int64, chunkNumber int) (models.BookContent, error) {
	return m.getBookContentFn(ctx, bookID, chunkNumber)
}

func (m *mockLibraryService) GetBookContents(ctx context.Context, bookID int64) ([]models.BookContent, error) {
	return m.getBookContentsFn(ctx, bookID)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given services. Nil fields are
// filled with empty mocks so routing always has a full service set.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.PasswordResetService == nil {
		svcs.PasswordResetService = &mockPasswordResetService{}
	}
	if svcs.ProfileService == nil {
		svcs.ProfileService = &mockProfileService{}
	}
	if svcs.LibraryService == nil {
		svcs.LibraryService = &mockLibraryService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return NewHandler(svcs, config.App{AssetBaseURL: "https://cdn.test"}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
