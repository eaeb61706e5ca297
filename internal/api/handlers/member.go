package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	service "github.com/aaravmahajanofficial/blimarket-storefront/internal/services"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/session"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils/response"
)

// MemberHandler routes are mounted behind middleware.RequireMember.
type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"), "")
			return
		}

		resp, err := h.memberService.GetProfile(r.Context(), session.AccessToken(r), claims.MemberID())
		if err != nil {
			response.Error(w, err, "")
			return
		}

		relay(w, resp, "Unable to load profile. Please try again later.")
	}
}

func (h *MemberHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		body, err := utils.ReadRawBody(r)
		if err != nil {
			response.Message(w, http.StatusBadRequest, false, err.Error())
			return
		}

		resp, err := h.memberService.UpdateProfile(r.Context(), session.AccessToken(r), r.PathValue("id"), body)
		if err != nil {
			response.Error(w, err, "")
			return
		}

		relay(w, resp, "Failed to update profile.")
	}
}
