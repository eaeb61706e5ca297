package session

import (
	"fmt"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// DecodeClaims reads the access token payload without verifying it. The
// storefront holds no signing key; the gateway and member service verify
// every token they are handed, this is only used for display and addressing.
func DecodeClaims(token string) (*models.Claims, error) {

	claims := &models.Claims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}

	return claims, nil
}
