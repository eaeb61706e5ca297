package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	service "github.com/aaravmahajanofficial/blimarket-storefront/internal/services"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/session"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	cookies     *session.CookieWriter
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService, cookies *session.CookieWriter) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		cookies:     cookies,
		validator:   validator.New(),
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		identity := session.Resolve(r)

		result, err := h.cartService.AddItem(r.Context(), identity, &req)
		if err != nil {
			response.Error(w, err, "")
			return
		}

		if result.NewGuestCartID != "" {
			h.cookies.SetGuestCart(w, result.NewGuestCartID)
		}

		logger.Info("Add to cart", slog.String("sku", req.SKU), slog.String("mode", identity.Mode.String()), slog.Int("status", result.Response.StatusCode))
		relay(w, result.Response, "Failed to add item to cart.")
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		resp, err := h.cartService.GetCart(r.Context(), session.Resolve(r))
		if err != nil {
			response.Error(w, err, "")
			return
		}

		relay(w, resp, "Failed to get cart.")
	}
}

func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateQuantityRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Message(w, http.StatusBadRequest, false, err.Error())
			return
		}

		resp, err := h.cartService.UpdateItem(r.Context(), session.Resolve(r), r.PathValue("sku"), &req)
		if err != nil {
			response.Error(w, err, "")
			return
		}

		relay(w, resp, "Failed to update cart item.")
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		resp, err := h.cartService.RemoveItem(r.Context(), session.Resolve(r), r.PathValue("sku"))
		if err != nil {
			response.Error(w, err, "")
			return
		}

		relay(w, resp, "Failed to remove item from cart.")
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		resp, err := h.cartService.ClearCart(r.Context(), session.Resolve(r))
		if err != nil {
			response.Error(w, err, "")
			return
		}

		relay(w, resp, "Failed to clear cart.")
	}
}

// MergeCart folds the browser's guest cart into the signed-in member's cart.
// The guest cookie is dropped whatever the cart service answers.
func (h *CartHandler) MergeCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		guestCartID := session.GuestCartID(r)

		result, err := h.cartService.MergeGuestCart(r.Context(), session.AccessToken(r), guestCartID, service.MergeOnDemand)

		if guestCartID != "" && !isUnauthorized(err) {
			h.cookies.ClearGuestCart(w)
		}

		if err != nil {
			if !isUnauthorized(err) {
				w.Header().Set(MergeHeader, service.MergeFailed)
			}
			response.Error(w, err, "")
			return
		}

		w.Header().Set(MergeHeader, result.Outcome())

		if result.Skipped {
			response.Message(w, http.StatusOK, true, "No guest cart to merge")
			return
		}

		relay(w, result.Response, "Failed to merge cart.")
	}
}

// CartCount answers {count} and nothing else; every failure reads as zero.
func (h *CartHandler) CartCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		count := h.cartService.CountItems(r.Context(), session.Resolve(r))

		response.WriteJson(w, http.StatusOK, models.CartCount{Count: count})
	}
}
