package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/blimarket-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream"
)

const (
	loginPath          = "/api/v1/auth/login"
	registerPath       = "/api/v1/auth/register"
	logoutPath         = "/api/v1/auth/logout"
	forgotPasswordPath = "/api/v1/auth/forgot-password"
	resetPasswordPath  = "/api/v1/auth/reset-password"
)

// LoginResult carries the member service's answer untouched. The merge is
// reported beside it and never changes it.
type LoginResult struct {
	Response *upstream.Response
	// Tokens is nil unless the login succeeded.
	Tokens       *models.AuthTokens
	MergeOutcome string
	// RetryAfter is set, in seconds, when the attempt was rate limited and
	// nothing was sent upstream.
	RetryAfter int
}

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest, guestCartID string) (*LoginResult, error)
	Register(ctx context.Context, body json.RawMessage) (*upstream.Response, error)
	Logout(ctx context.Context, accessToken, refreshToken string)
	ForgotPassword(ctx context.Context, body json.RawMessage) (*upstream.Response, error)
	ResetPassword(ctx context.Context, body json.RawMessage) (*upstream.Response, error)
}

type authService struct {
	members     upstream.Doer
	cart        CartService
	rateLimiter repository.RateLimitRepository
}

func NewAuthService(members upstream.Doer, cart CartService, rateLimiter repository.RateLimitRepository) AuthService {
	return &authService{members: members, cart: cart, rateLimiter: rateLimiter}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest, guestCartID string) (*LoginResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		metrics.LoginRateLimitedTotal.Inc()
		return &LoginResult{RetryAfter: retryAfter, MergeOutcome: MergeSkipped}, nil
	}

	resp, err := s.members.Do(ctx, &upstream.Request{Method: http.MethodPost, Path: loginPath, Body: req})
	if err != nil {
		logger.Error("Login call failed", slog.String("email", req.Email), slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError("Login failed. Please try again.").WithError(err)
	}

	result := &LoginResult{Response: resp, MergeOutcome: MergeSkipped}

	if !resp.OK() {
		logger.Warn("Login rejected", slog.String("email", req.Email), slog.Int("status", resp.StatusCode), slog.Int("remainingAttempts", remaining))
		return result, nil
	}

	var tokens models.AuthTokens
	if err := resp.DecodeData(&tokens); err != nil || tokens.AccessToken == "" {
		logger.Error("Login response carried no access token", slog.String("email", req.Email))
		return nil, errors.InternalError("Login failed. Please try again.").WithError(err)
	}
	result.Tokens = &tokens

	logger.Info("Member logged in", slog.String("email", req.Email))

	if guestCartID == "" {
		return result, nil
	}

	// the login already succeeded, a failed merge only gets reported
	merge, err := s.cart.MergeGuestCart(ctx, tokens.AccessToken, guestCartID, MergeOnLogin)
	if err != nil {
		logger.Error("Cart merge after login failed", slog.String("guestCartId", guestCartID), slog.String("error", err.Error()))
	}
	result.MergeOutcome = merge.Outcome()

	logger.Info("Cart merge after login", slog.String("guestCartId", guestCartID), slog.String("outcome", result.MergeOutcome))

	return result, nil
}

func (s *authService) Register(ctx context.Context, body json.RawMessage) (*upstream.Response, error) {
	return s.passthrough(ctx, registerPath, body, "Registration failed. Please try again.")
}

// Logout tells the member service to revoke the refresh token when the
// browser holds both tokens. It never fails; the caller clears the cookies.
func (s *authService) Logout(ctx context.Context, accessToken, refreshToken string) {

	logger := middleware.LoggerFromContext(ctx)

	if accessToken == "" || refreshToken == "" {
		logger.Debug("Logout without tokens, nothing to revoke")
		return
	}

	resp, err := s.members.Do(ctx, &upstream.Request{
		Method: http.MethodPost,
		Path:   logoutPath,
		Body:   &models.LogoutRequest{RefreshToken: refreshToken},
		Bearer: accessToken,
	})

	switch {
	case err != nil:
		logger.Warn("Logout call failed", slog.String("error", err.Error()))
	case !resp.OK():
		logger.Warn("Logout rejected", slog.Int("status", resp.StatusCode))
	default:
		logger.Info("Member logged out")
	}
}

func (s *authService) ForgotPassword(ctx context.Context, body json.RawMessage) (*upstream.Response, error) {
	return s.passthrough(ctx, forgotPasswordPath, body, "Failed to send reset token. Please try again.")
}

func (s *authService) ResetPassword(ctx context.Context, body json.RawMessage) (*upstream.Response, error) {
	return s.passthrough(ctx, resetPasswordPath, body, "Failed to reset password. Please try again.")
}

func (s *authService) passthrough(ctx context.Context, path string, body json.RawMessage, failure string) (*upstream.Response, error) {

	resp, err := s.members.Do(ctx, &upstream.Request{Method: http.MethodPost, Path: path, Body: body})
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Member service call failed", slog.String("path", path), slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError(failure).WithError(err)
	}

	return resp, nil
}
