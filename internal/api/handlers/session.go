package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/session"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils/response"
)

// Session tells the browser who it is without calling any service.
func Session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		identity := session.Resolve(r)

		info := models.SessionInfo{
			Authenticated: identity.IsAuthenticated(),
			Mode:          identity.Mode.String(),
		}

		if identity.IsAuthenticated() {
			claims, err := session.DecodeClaims(identity.Token)
			if err != nil {
				middleware.LoggerFromContext(r.Context()).Warn("Unreadable access token", slog.String("error", err.Error()))
			} else {
				info.User = &models.SessionUser{
					Email:    claims.Email,
					Role:     claims.Role,
					MemberID: claims.MemberID(),
				}
			}
		}

		response.Success(w, http.StatusOK, info)
	}
}
