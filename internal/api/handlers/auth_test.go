package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	service "github.com/aaravmahajanofficial/blimarket-storefront/internal/services"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/session"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuthTest(t *testing.T) (*mocks.AuthService, *handlers.AuthHandler) {
	mockAuthService := mocks.NewAuthService(t)
	return mockAuthService, handlers.NewAuthHandler(mockAuthService, testCookies())
}

func TestLogin(t *testing.T) {
	loginBody := `{"email":"jane@example.com","password":"secret"}`
	loginReq := &models.LoginRequest{Email: "jane@example.com", Password: "secret"}
	loginOK := `{"success":true,"data":{"accessToken":"a","refreshToken":"r"}}`

	t.Run("Success - Sets tokens, clears guest cart, reports merge", func(t *testing.T) {
		mockAuthService, authHandler := setupAuthTest(t)
		req := testutils.CreateTestRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(loginBody),
			map[string]string{session.GuestCartCookie: guestID}, nil)
		rr := httptest.NewRecorder()

		mockAuthService.On("Login", mock.Anything, loginReq, guestID).Return(&service.LoginResult{
			Response:     upstreamJSON(http.StatusOK, loginOK),
			Tokens:       &models.AuthTokens{AccessToken: "a", RefreshToken: "r"},
			MergeOutcome: service.MergeFailed,
		}, nil).Once()

		authHandler.Login()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, loginOK, rr.Body.String())
		assert.Equal(t, service.MergeFailed, rr.Header().Get(handlers.MergeHeader))

		access, _ := testutils.CookieValue(rr, session.AccessTokenCookie)
		refresh, _ := testutils.CookieValue(rr, session.RefreshTokenCookie)
		guest, cleared := testutils.CookieValue(rr, session.GuestCartCookie)
		assert.Equal(t, "a", access)
		assert.Equal(t, "r", refresh)
		assert.True(t, cleared)
		assert.Empty(t, guest)
	})

	t.Run("Rejected credentials set no cookies", func(t *testing.T) {
		mockAuthService, authHandler := setupAuthTest(t)
		req := testutils.CreateTestRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(loginBody),
			map[string]string{session.GuestCartCookie: guestID}, nil)
		rr := httptest.NewRecorder()

		mockAuthService.On("Login", mock.Anything, loginReq, guestID).Return(&service.LoginResult{
			Response:     upstreamJSON(http.StatusUnauthorized, `{"success":false,"message":"Invalid email or password"}`),
			MergeOutcome: service.MergeSkipped,
		}, nil).Once()

		authHandler.Login()(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
		assert.Empty(t, rr.Header().Get(handlers.MergeHeader))
	})

	t.Run("Rate limited", func(t *testing.T) {
		mockAuthService, authHandler := setupAuthTest(t)
		req := testutils.CreateTestRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(loginBody), nil, nil)
		rr := httptest.NewRecorder()

		mockAuthService.On("Login", mock.Anything, loginReq, "").Return(&service.LoginResult{RetryAfter: 9}, nil).Once()

		authHandler.Login()(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "9", rr.Header().Get("Retry-After"))
		resp := decodeAPIResponse(t, rr)
		assert.Equal(t, appErrors.ErrCodeTooManyRequests, resp.Code)
		assert.Equal(t, map[string]any{"retryAfter": float64(9)}, resp.Data)
	})

	t.Run("Failure - Validation", func(t *testing.T) {
		_, authHandler := setupAuthTest(t)
		req := testutils.CreateTestRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":"not-an-email"}`), nil, nil)
		rr := httptest.NewRecorder()

		authHandler.Login()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Len(t, decodeAPIResponse(t, rr).Details, 2)
	})

	t.Run("Failure - Member service unavailable", func(t *testing.T) {
		mockAuthService, authHandler := setupAuthTest(t)
		req := testutils.CreateTestRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(loginBody), nil, nil)
		rr := httptest.NewRecorder()

		mockAuthService.On("Login", mock.Anything, loginReq, "").
			Return(nil, appErrors.UpstreamUnavailableError("Login failed. Please try again.")).Once()

		authHandler.Login()(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Login failed. Please try again.", decodeAPIResponse(t, rr).Message)
	})
}

func TestRegister(t *testing.T) {
	t.Run("Success is always 201", func(t *testing.T) {
		mockAuthService, authHandler := setupAuthTest(t)
		body := `{"email":"jane@example.com","password":"secret","name":"Jane"}`
		req := testutils.CreateTestRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body), nil, nil)
		rr := httptest.NewRecorder()

		mockAuthService.On("Register", mock.Anything, json.RawMessage(body)).
			Return(upstreamJSON(http.StatusOK, `{"success":true,"data":{"id":"m-1"}}`), nil).Once()

		authHandler.Register()(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Conflict is passed through", func(t *testing.T) {
		mockAuthService, authHandler := setupAuthTest(t)
		req := testutils.CreateTestRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(`{}`), nil, nil)
		rr := httptest.NewRecorder()

		mockAuthService.On("Register", mock.Anything, mock.Anything).
			Return(upstreamJSON(http.StatusConflict, `{"success":false,"message":"Email already registered"}`), nil).Once()

		authHandler.Register()(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		_, authHandler := setupAuthTest(t)
		req := testutils.CreateTestRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(`{nope`), nil, nil)
		rr := httptest.NewRecorder()

		authHandler.Register()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPasswordReset(t *testing.T) {
	mockAuthService, authHandler := setupAuthTest(t)

	mockAuthService.On("ForgotPassword", mock.Anything, json.RawMessage(`{"email":"jane@example.com"}`)).
		Return(upstreamJSON(http.StatusOK, `{"success":true,"message":"Reset token sent"}`), nil).Once()
	mockAuthService.On("ResetPassword", mock.Anything, json.RawMessage(`{}`)).
		Return(nil, appErrors.UpstreamUnavailableError("Failed to reset password. Please try again.")).Once()

	rr := httptest.NewRecorder()
	authHandler.ForgotPassword()(rr, testutils.CreateTestRequest(http.MethodPost, "/api/auth/forgot-password",
		bytes.NewBufferString(`{"email":"jane@example.com"}`), nil, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	authHandler.ResetPassword()(rr, testutils.CreateTestRequest(http.MethodPost, "/api/auth/reset-password", nil, nil, nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Failed to reset password. Please try again.", decodeAPIResponse(t, rr).Message)
}

func TestLogout(t *testing.T) {
	cookies := map[string]string{
		session.AccessTokenCookie:  "a",
		session.RefreshTokenCookie: "r",
		session.GuestCartCookie:    guestID,
	}

	t.Run("API logout clears every cookie", func(t *testing.T) {
		mockAuthService, authHandler := setupAuthTest(t)
		req := testutils.CreateTestRequest(http.MethodPost, "/api/auth/logout", nil, cookies, nil)
		rr := httptest.NewRecorder()

		mockAuthService.On("Logout", mock.Anything, "a", "r").Return().Once()

		authHandler.Logout()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"message":"Logged out successfully"}`, rr.Body.String())

		for _, c := range rr.Result().Cookies() {
			assert.Empty(t, c.Value)
			assert.Equal(t, -1, c.MaxAge)
		}
		assert.Len(t, rr.Result().Cookies(), 3)
	})

	t.Run("Link logout redirects home", func(t *testing.T) {
		mockAuthService, authHandler := setupAuthTest(t)
		req := testutils.CreateTestRequest(http.MethodGet, "/logout", nil, nil, nil)
		rr := httptest.NewRecorder()

		mockAuthService.On("Logout", mock.Anything, "", "").Return().Once()

		authHandler.LogoutRedirect()(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
		assert.Len(t, rr.Result().Cookies(), 3)
	})
}
