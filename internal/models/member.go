package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the member service's access token. The subject is the member id.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) MemberID() string {
	return c.Subject
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Tokens issued by the member service on a successful login, found under "data".
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type SessionUser struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	MemberID string `json:"memberId"`
}

type SessionInfo struct {
	Authenticated bool         `json:"authenticated"`
	Mode          string       `json:"mode"`
	User          *SessionUser `json:"user,omitempty"`
}

// Envelope is the {success, data, message} shape every downstream service answers with.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
