package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jovanamartatilova/librareads/internal/service"
	"github.com/jovanamartatilova/librareads/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoutes_RoundTrip drives the fully assembled router over a real HTTP
// server, exercising the whole middleware chain the way a client would.
func TestRoutes_RoundTrip(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 7, Username: req.Username, Email: req.Email}, nil
		},
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, models.Token, error) {
			return models.User{UserID: 7, Username: req.Username}, stubToken("issued.jwt.token"), nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "issued.jwt.token" {
				return models.Token{}, service.ErrTokenInvalid
			}
			return models.Token{UserID: 7, Username: "alice"}, nil
		},
	}
	profile := &mockProfileService{
		getProfileFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Username: "alice", Email: "alice@x.com"}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth, ProfileService: profile})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	client := resty.New().SetBaseURL(srv.URL)

	t.Run("register", func(t *testing.T) {
		var ack models.StatusResponse
		resp, err := client.R().
			SetBody(models.RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "secret-password"}).
			SetResult(&ack).
			Post("/api/auth/register")
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode())
		assert.True(t, ack.Status)
		assert.NotEmpty(t, resp.Header().Get("X-Trace-ID"))
	})

	t.Run("login then fetch profile with bearer token", func(t *testing.T) {
		var loginResp models.LoginResponse
		resp, err := client.R().
			SetBody(models.LoginRequest{Username: "alice", Password: "secret-password"}).
			SetResult(&loginResp).
			Post("/api/auth/login")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		require.Equal(t, "issued.jwt.token", loginResp.Token)

		var profileResp models.ProfileResponse
		resp, err = client.R().
			SetAuthToken(loginResp.Token).
			SetResult(&profileResp).
			Get("/api/profile")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, int64(7), profileResp.UserID)
		assert.Equal(t, "alice", profileResp.Username)
	})

	t.Run("protected route without token", func(t *testing.T) {
		resp, err := client.R().Get("/api/profile")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	})

	t.Run("trace id from the client is echoed back", func(t *testing.T) {
		resp, err := client.R().
			SetHeader("X-Trace-ID", "trace-42").
			Get("/api/version")
		require.NoError(t, err)
		assert.Equal(t, "trace-42", resp.Header().Get("X-Trace-ID"))
	})

	t.Run("preflight is answered at the edge", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/books", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}
