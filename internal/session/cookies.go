package session

import (
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/config"
)

type CookieWriter struct {
	cfg config.Cookies
}

func NewCookieWriter(cfg config.Cookies) *CookieWriter {
	return &CookieWriter{cfg: cfg}
}

func (c *CookieWriter) SetGuestCart(w http.ResponseWriter, guestCartID string) {
	c.set(w, GuestCartCookie, guestCartID, c.cfg.GuestCartMaxAge)
}

func (c *CookieWriter) ClearGuestCart(w http.ResponseWriter) {
	c.clear(w, GuestCartCookie)
}

func (c *CookieWriter) SetTokens(w http.ResponseWriter, accessToken, refreshToken string) {
	c.set(w, AccessTokenCookie, accessToken, c.cfg.AccessTokenMaxAge)
	if refreshToken != "" {
		c.set(w, RefreshTokenCookie, refreshToken, c.cfg.RefreshMaxAge)
	}
}

// ClearAll ends the browser session: tokens and any guest cart are forgotten.
func (c *CookieWriter) ClearAll(w http.ResponseWriter) {
	c.clear(w, AccessTokenCookie)
	c.clear(w, RefreshTokenCookie)
	c.clear(w, GuestCartCookie)
}

func (c *CookieWriter) set(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		Secure:   c.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *CookieWriter) clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
