package session_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/config"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookies(cookies map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	for name, value := range cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return req
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		cookies  map[string]string
		expected session.Identity
	}{
		{
			name:     "No cookies",
			cookies:  nil,
			expected: session.Identity{Mode: session.ModeNone},
		},
		{
			name:     "Guest cookie only",
			cookies:  map[string]string{"guestCartId": "guest-1700000000000-abc123xyz"},
			expected: session.Identity{Mode: session.ModeGuest, GuestCartID: "guest-1700000000000-abc123xyz"},
		},
		{
			name:     "Access token only",
			cookies:  map[string]string{"accessToken": "tok"},
			expected: session.Identity{Mode: session.ModeAuthenticated, Token: "tok"},
		},
		{
			name:     "Token takes precedence over guest cookie",
			cookies:  map[string]string{"accessToken": "tok", "guestCartId": "guest-1-a"},
			expected: session.Identity{Mode: session.ModeAuthenticated, Token: "tok"},
		},
		{
			name:     "Empty token falls back to guest",
			cookies:  map[string]string{"accessToken": "", "guestCartId": "guest-1-a"},
			expected: session.Identity{Mode: session.ModeGuest, GuestCartID: "guest-1-a"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			identity := session.Resolve(requestWithCookies(tc.cookies))
			assert.Equal(t, tc.expected, identity)
			assert.Equal(t, tc.expected.Mode == session.ModeAuthenticated, identity.IsAuthenticated())
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "none", session.ModeNone.String())
	assert.Equal(t, "guest", session.ModeGuest.String())
	assert.Equal(t, "authenticated", session.ModeAuthenticated.String())
}

func TestIsGuestCartID(t *testing.T) {
	assert.True(t, session.IsGuestCartID("guest-1700000000000-abc"))
	assert.False(t, session.IsGuestCartID("guest-"))
	assert.False(t, session.IsGuestCartID("member-42"))
	assert.False(t, session.IsGuestCartID(""))
}

func TestGuestIDGenerator(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.UnixMilli(1700000000123))
	generator := session.NewGuestIDGenerator(clock)

	first, err := generator.New()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^guest-1700000000123-[0-9a-z]{9}$`), first)
	assert.True(t, session.IsGuestCartID(first))

	clock.Advance(time.Second)
	second, err := generator.New()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^guest-1700000001123-[0-9a-z]{9}$`), second)
	assert.NotEqual(t, first, second)
}

func TestCookieWriter(t *testing.T) {
	writer := session.NewCookieWriter(config.Cookies{
		Secure:            true,
		AccessTokenMaxAge: 15 * time.Minute,
		RefreshMaxAge:     720 * time.Hour,
		GuestCartMaxAge:   720 * time.Hour,
	})

	t.Run("Guest cart cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writer.SetGuestCart(rec, "guest-1-abc")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "guestCartId", cookies[0].Name)
		assert.Equal(t, "guest-1-abc", cookies[0].Value)
		assert.Equal(t, 30*24*60*60, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
	})

	t.Run("Tokens", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writer.SetTokens(rec, "access", "refresh")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, "accessToken", cookies[0].Name)
		assert.Equal(t, 15*60, cookies[0].MaxAge)
		assert.Equal(t, "refreshToken", cookies[1].Name)
		assert.Equal(t, "refresh", cookies[1].Value)
	})

	t.Run("Clear all", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writer.ClearAll(rec)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 3)
		for _, c := range cookies {
			assert.Empty(t, c.Value)
			assert.Equal(t, -1, c.MaxAge)
		}
	})
}

func TestDecodeClaims(t *testing.T) {
	claims := jwt.MapClaims{"sub": "member-42", "email": "jane@example.com", "role": "CUSTOMER"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("someone-elses-key"))
	require.NoError(t, err)

	decoded, err := session.DecodeClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "member-42", decoded.MemberID())
	assert.Equal(t, "jane@example.com", decoded.Email)
	assert.Equal(t, "CUSTOMER", decoded.Role)

	_, err = session.DecodeClaims("not-a-jwt")
	assert.Error(t, err)
}
