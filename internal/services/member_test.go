package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	service "github.com/aaravmahajanofficial/blimarket-storefront/internal/services"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		members := mocks.NewDoer(t)
		memberService := service.NewMemberService(members)

		members.On("Do", ctx, mock.MatchedBy(func(r *upstream.Request) bool {
			return r.Method == http.MethodGet && r.Path == "/api/v1/members/member-42" && r.Bearer == "token"
		})).Return(jsonResponse(http.StatusOK, `{"success":true,"data":{"name":"Jane"}}`), nil).Once()

		resp, err := memberService.GetProfile(ctx, "token", "member-42")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Failure - No token", func(t *testing.T) {
		memberService := service.NewMemberService(mocks.NewDoer(t))

		_, err := memberService.GetProfile(ctx, "", "member-42")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	})

	t.Run("Failure - Member service unavailable", func(t *testing.T) {
		members := mocks.NewDoer(t)
		memberService := service.NewMemberService(members)

		members.On("Do", ctx, mock.Anything).Return(nil, errTransport).Once()

		_, err := memberService.GetProfile(ctx, "token", "member-42")

		assert.ErrorIs(t, err, upstream.ErrUnavailable)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Strips markup from strings", func(t *testing.T) {
		members := mocks.NewDoer(t)
		memberService := service.NewMemberService(members)

		var sent map[string]any
		members.On("Do", ctx, mock.MatchedBy(func(r *upstream.Request) bool {
			raw, ok := r.Body.(json.RawMessage)
			return ok && r.Method == http.MethodPut && r.Path == "/api/v1/members/member-42" &&
				r.Bearer == "token" && json.Unmarshal(raw, &sent) == nil
		})).Return(jsonResponse(http.StatusOK, `{"success":true}`), nil).Once()

		body := json.RawMessage(`{"name":"<b>Jane</b> Doe","phone":"555 0100","address":{"city":"<script>x</script>Oslo"},"tags":["<i>vip</i>"],"age":30}`)
		resp, err := memberService.UpdateProfile(ctx, "token", "member-42", body)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Jane Doe", sent["name"])
		assert.Equal(t, "555 0100", sent["phone"])
		assert.Equal(t, map[string]any{"city": "Oslo"}, sent["address"])
		assert.Equal(t, []any{"vip"}, sent["tags"])
		assert.Equal(t, float64(30), sent["age"])
	})

	t.Run("Failure - Invalid body", func(t *testing.T) {
		memberService := service.NewMemberService(mocks.NewDoer(t))

		_, err := memberService.UpdateProfile(ctx, "token", "member-42", json.RawMessage(`[1,2]`))

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})

	t.Run("Failure - No token", func(t *testing.T) {
		memberService := service.NewMemberService(mocks.NewDoer(t))

		_, err := memberService.UpdateProfile(ctx, "", "member-42", json.RawMessage(`{}`))

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	})
}
