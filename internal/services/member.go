package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream"
	"github.com/microcosm-cc/bluemonday"
)

const membersPath = "/api/v1/members/"

type MemberService interface {
	GetProfile(ctx context.Context, token, memberID string) (*upstream.Response, error)
	UpdateProfile(ctx context.Context, token, memberID string, body json.RawMessage) (*upstream.Response, error)
}

type memberService struct {
	members upstream.Doer
	policy  *bluemonday.Policy
}

func NewMemberService(members upstream.Doer) MemberService {
	return &memberService{members: members, policy: bluemonday.StrictPolicy()}
}

func (s *memberService) GetProfile(ctx context.Context, token, memberID string) (*upstream.Response, error) {

	if token == "" {
		return nil, errors.UnauthorizedError("Authentication required")
	}
	if memberID == "" {
		return nil, errors.UnauthorizedError("Invalid token")
	}

	resp, err := s.members.Do(ctx, &upstream.Request{
		Method: http.MethodGet,
		Path:   membersPath + url.PathEscape(memberID),
		Bearer: token,
	})
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Profile lookup failed", slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError("Unable to load profile. Please try again later.").WithError(err)
	}

	return resp, nil
}

func (s *memberService) UpdateProfile(ctx context.Context, token, memberID string, body json.RawMessage) (*upstream.Response, error) {

	logger := middleware.LoggerFromContext(ctx)

	if token == "" {
		return nil, errors.UnauthorizedError("Authentication required")
	}
	if strings.TrimSpace(memberID) == "" {
		return nil, errors.AddValidationError("id", "must not be empty")
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errors.BadRequestError("Invalid request body").WithError(err)
	}

	sanitized, err := json.Marshal(s.sanitize(fields))
	if err != nil {
		return nil, errors.InternalError("Failed to update profile.").WithError(err)
	}

	resp, err := s.members.Do(ctx, &upstream.Request{
		Method: http.MethodPut,
		Path:   membersPath + url.PathEscape(memberID),
		Body:   json.RawMessage(sanitized),
		Bearer: token,
	})
	if err != nil {
		logger.Error("Profile update failed", slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError("Failed to update profile.").WithError(err)
	}

	return resp, nil
}

// sanitize strips markup from every string in a decoded JSON value.
func (s *memberService) sanitize(value any) any {
	switch v := value.(type) {
	case string:
		return s.policy.Sanitize(v)
	case map[string]any:
		for key, item := range v {
			v[key] = s.sanitize(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = s.sanitize(item)
		}
		return v
	default:
		return v
	}
}
