package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	service "github.com/aaravmahajanofficial/blimarket-storefront/internal/services"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/session"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	cookies     *session.CookieWriter
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService, cookies *session.CookieWriter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		validator:   validator.New(),
	}
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		guestCartID := session.GuestCartID(r)

		result, err := h.authService.Login(r.Context(), &req, guestCartID)
		if err != nil {
			logger.Warn("Login failed", slog.String("email", req.Email), slog.String("error", err.Error()))
			response.Error(w, err, "")
			return
		}

		if result.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
			response.WriteJson(w, http.StatusTooManyRequests, response.APIResponse{
				Success: false,
				Code:    errors.ErrCodeTooManyRequests,
				Message: "Too many login attempts. Please try again later.",
				Data:    map[string]int{"retryAfter": result.RetryAfter},
			})
			return
		}

		if result.Tokens != nil {
			h.cookies.SetTokens(w, result.Tokens.AccessToken, result.Tokens.RefreshToken)

			// the guest cart is gone after a login, merged or not
			if guestCartID != "" {
				h.cookies.ClearGuestCart(w)
			}

			w.Header().Set(MergeHeader, result.MergeOutcome)
		}

		relay(w, result.Response, "Login failed. Please try again.")
	}
}

// Register answers 201 on success, whatever success status the member service used.
func (h *AuthHandler) Register() http.HandlerFunc {
	return h.relayBody(func(r *http.Request, body json.RawMessage) (*upstream.Response, error) {
		resp, err := h.authService.Register(r.Context(), body)
		if err == nil && resp.OK() {
			resp.StatusCode = http.StatusCreated
		}
		return resp, err
	}, "Registration failed. Please try again.")
}

func (h *AuthHandler) ForgotPassword() http.HandlerFunc {
	return h.relayBody(func(r *http.Request, body json.RawMessage) (*upstream.Response, error) {
		return h.authService.ForgotPassword(r.Context(), body)
	}, "Failed to send reset token. Please try again.")
}

func (h *AuthHandler) ResetPassword() http.HandlerFunc {
	return h.relayBody(func(r *http.Request, body json.RawMessage) (*upstream.Response, error) {
		return h.authService.ResetPassword(r.Context(), body)
	}, "Failed to reset password. Please try again.")
}

// Logout always succeeds and always forgets every identity cookie.
func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.authService.Logout(r.Context(), session.AccessToken(r), session.RefreshToken(r))
		h.cookies.ClearAll(w)

		response.Message(w, http.StatusOK, true, "Logged out successfully")
	}
}

// LogoutRedirect is the link version of Logout used by plain page navigation.
func (h *AuthHandler) LogoutRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.authService.Logout(r.Context(), session.AccessToken(r), session.RefreshToken(r))
		h.cookies.ClearAll(w)

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func (h *AuthHandler) relayBody(call func(r *http.Request, body json.RawMessage) (*upstream.Response, error), failure string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		body, err := utils.ReadRawBody(r)
		if err != nil {
			response.Message(w, http.StatusBadRequest, false, err.Error())
			return
		}

		resp, err := call(r, body)
		if err != nil {
			response.Error(w, err, "")
			return
		}

		relay(w, resp, failure)
	}
}
