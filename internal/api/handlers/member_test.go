package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/session"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/testutils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfile(t *testing.T) {
	t.Run("Success - Member id from the token subject", func(t *testing.T) {
		mockMembers := mocks.NewMemberService(t)
		memberHandler := handlers.NewMemberHandler(mockMembers)
		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/members/me", nil, map[string]string{session.AccessTokenCookie: "tok"}, nil)
		req = testutils.WithClaims(req, &models.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "member-42"}})
		rr := httptest.NewRecorder()

		mockMembers.On("GetProfile", mock.Anything, "tok", "member-42").
			Return(upstreamJSON(http.StatusOK, `{"success":true,"data":{"name":"Jane"}}`), nil).Once()

		memberHandler.Profile()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"data":{"name":"Jane"}}`, rr.Body.String())
	})

	t.Run("Failure - No claims", func(t *testing.T) {
		memberHandler := handlers.NewMemberHandler(mocks.NewMemberService(t))
		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/members/me", nil, nil, nil)
		rr := httptest.NewRecorder()

		memberHandler.Profile()(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	mockMembers := mocks.NewMemberService(t)
	memberHandler := handlers.NewMemberHandler(mockMembers)
	body := `{"name":"Jane"}`
	req := testutils.CreateTestRequest(http.MethodPut, "/api/members/member-42", bytes.NewBufferString(body),
		map[string]string{session.AccessTokenCookie: "tok"}, map[string]string{"id": "member-42"})
	rr := httptest.NewRecorder()

	mockMembers.On("UpdateProfile", mock.Anything, "tok", "member-42", json.RawMessage(body)).
		Return(upstreamJSON(http.StatusForbidden, `{"success":false,"message":"Forbidden"}`), nil).Once()

	memberHandler.UpdateProfile()(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
