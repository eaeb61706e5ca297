// Package session decides, per request, whether the browser is a signed-in
// member or an anonymous guest, and owns the cookies that carry that identity.
package session

import (
	"net/http"
	"strings"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
	GuestCartCookie    = "guestCartId"

	GuestCartPrefix = "guest-"
)

type Mode int

const (
	// ModeNone is a browser that has never touched a cart.
	ModeNone Mode = iota
	ModeGuest
	ModeAuthenticated
)

func (m Mode) String() string {
	switch m {
	case ModeGuest:
		return "guest"
	case ModeAuthenticated:
		return "authenticated"
	default:
		return "none"
	}
}

// Identity is the single address used for the remote cart. Only one of Token
// and GuestCartID is ever set.
type Identity struct {
	Mode        Mode
	Token       string
	GuestCartID string
}

// Resolve reads the identity cookies. A present access token always wins and
// the guest cookie is then not even read.
func Resolve(r *http.Request) Identity {
	if token := cookieValue(r, AccessTokenCookie); token != "" {
		return Identity{Mode: ModeAuthenticated, Token: token}
	}

	if guestID := cookieValue(r, GuestCartCookie); guestID != "" {
		return Identity{Mode: ModeGuest, GuestCartID: guestID}
	}

	return Identity{Mode: ModeNone}
}

func (i Identity) IsAuthenticated() bool {
	return i.Mode == ModeAuthenticated
}

func AccessToken(r *http.Request) string {
	return cookieValue(r, AccessTokenCookie)
}

func RefreshToken(r *http.Request) string {
	return cookieValue(r, RefreshTokenCookie)
}

// GuestCartID is read directly only by flows that need both identities at
// once, i.e. merging a guest cart into a member cart.
func GuestCartID(r *http.Request) string {
	return cookieValue(r, GuestCartCookie)
}

func IsGuestCartID(id string) bool {
	return strings.HasPrefix(id, GuestCartPrefix) && len(id) > len(GuestCartPrefix)
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}
