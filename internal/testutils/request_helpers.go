package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// CreateTestRequest builds a request the way it looks after the Logging
// middleware, carrying the given cookies and path values.
func CreateTestRequest(method, target string, body io.Reader, cookies map[string]string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	for name, value := range cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// WithClaims adds the claims RequireMember would have put in the context.
func WithClaims(req *http.Request, claims *models.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.ClaimsContextKey, claims))
}

// AccessToken returns an access token for memberID signed with a throwaway
// key, like the ones the member service issues.
func AccessToken(memberID, email string) string {
	claims := &models.Claims{
		Email: email,
		Role:  "MEMBER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: memberID,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	if err != nil {
		panic(err)
	}

	return token
}

// CookieValue returns the value set for name on the response, and whether it
// was set at all. Deleted cookies come back with an empty value.
func CookieValue(rr *httptest.ResponseRecorder, name string) (string, bool) {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}
