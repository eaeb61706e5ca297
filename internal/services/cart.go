package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/session"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream"
)

const (
	cartPath      = "/api/v1/cart"
	cartItemPath  = "/api/v1/cart/item/"
	cartMergePath = "/api/v1/cart/merge"

	guestCartParam = "memberId"
)

// Merge triggers.
const (
	MergeOnLogin  = "login"
	MergeOnDemand = "explicit"
)

// Merge outcomes, also sent to the browser in the X-Cart-Merge header.
const (
	MergeMerged  = "merged"
	MergeFailed  = "failed"
	MergeSkipped = "skipped"
)

type AddItemResult struct {
	Response *upstream.Response
	// NewGuestCartID is set when this call created the guest cart and the
	// browser has to remember it.
	NewGuestCartID string
}

type MergeResult struct {
	Response *upstream.Response
	// Skipped means there was no guest cart and nothing was sent.
	Skipped bool
}

// Outcome is merged, failed or skipped.
func (m *MergeResult) Outcome() string {
	switch {
	case m == nil:
		return MergeFailed
	case m.Skipped:
		return MergeSkipped
	case m.Response != nil && m.Response.OK():
		return MergeMerged
	default:
		return MergeFailed
	}
}

type CartService interface {
	AddItem(ctx context.Context, identity session.Identity, req *models.AddItemRequest) (*AddItemResult, error)
	GetCart(ctx context.Context, identity session.Identity) (*upstream.Response, error)
	UpdateItem(ctx context.Context, identity session.Identity, sku string, req *models.UpdateQuantityRequest) (*upstream.Response, error)
	RemoveItem(ctx context.Context, identity session.Identity, sku string) (*upstream.Response, error)
	ClearCart(ctx context.Context, identity session.Identity) (*upstream.Response, error)
	MergeGuestCart(ctx context.Context, token, guestCartID, trigger string) (*MergeResult, error)
	CountItems(ctx context.Context, identity session.Identity) int
}

type CartOptions struct {
	// MintGuestIDs makes the storefront create guest cart ids itself instead
	// of letting the cart service assign one on the first add.
	MintGuestIDs bool
}

type cartService struct {
	client   upstream.Doer
	guestIDs *session.GuestIDGenerator
	opts     CartOptions
}

func NewCartService(client upstream.Doer, guestIDs *session.GuestIDGenerator, opts CartOptions) CartService {
	return &cartService{client: client, guestIDs: guestIDs, opts: opts}
}

func (s *cartService) AddItem(ctx context.Context, identity session.Identity, req *models.AddItemRequest) (*AddItemResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	if req.SKU == "" {
		return nil, errors.AddValidationError("sku", "must not be empty")
	}
	if req.Qty <= 0 {
		return nil, errors.AddValidationError("qty", "must be a positive integer")
	}

	body := *req
	upstreamReq := &upstream.Request{Method: http.MethodPost, Path: cartPath, Body: &body}

	minted := ""

	switch identity.Mode {
	case session.ModeAuthenticated:
		body.MemberID = ""
		upstreamReq.Bearer = identity.Token
	case session.ModeGuest:
		body.MemberID = identity.GuestCartID
	default:
		body.MemberID = ""
		if s.opts.MintGuestIDs {
			id, err := s.guestIDs.New()
			if err != nil {
				return nil, errors.InternalError("Failed to create guest cart").WithError(err)
			}
			body.MemberID = id
			minted = id
		}
	}

	resp, err := s.client.Do(ctx, upstreamReq)
	if err != nil {
		logger.Error("Add to cart failed", slog.String("sku", req.SKU), slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError("Failed to add item to cart.").WithError(err)
	}

	result := &AddItemResult{Response: resp}

	if identity.Mode != session.ModeNone || !resp.OK() {
		return result, nil
	}

	if id := guestCartIDFrom(resp); id != "" {
		result.NewGuestCartID = id
	} else if minted != "" {
		result.NewGuestCartID = minted
	}

	if result.NewGuestCartID != "" {
		metrics.GuestCartsIssuedTotal.Inc()
		logger.Info("Guest cart created", slog.String("guestCartId", result.NewGuestCartID))
	}

	return result, nil
}

func (s *cartService) GetCart(ctx context.Context, identity session.Identity) (*upstream.Response, error) {

	if identity.Mode == session.ModeNone {
		return emptyCartResponse(), nil
	}

	resp, err := s.client.Do(ctx, addressed(identity, &upstream.Request{Method: http.MethodGet, Path: cartPath}))
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Get cart failed", slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError("Failed to get cart.").WithError(err)
	}

	return resp, nil
}

func (s *cartService) UpdateItem(ctx context.Context, identity session.Identity, sku string, req *models.UpdateQuantityRequest) (*upstream.Response, error) {

	if sku == "" {
		return nil, errors.AddValidationError("sku", "must not be empty")
	}

	body := *req
	body.MemberID = ""
	upstreamReq := &upstream.Request{Method: http.MethodPut, Path: cartItemPath + url.PathEscape(sku), Body: &body}

	switch identity.Mode {
	case session.ModeAuthenticated:
		upstreamReq.Bearer = identity.Token
	case session.ModeGuest:
		body.MemberID = identity.GuestCartID
	}

	resp, err := s.client.Do(ctx, upstreamReq)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Update cart failed", slog.String("sku", sku), slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError("Failed to update cart item.").WithError(err)
	}

	return resp, nil
}

func (s *cartService) RemoveItem(ctx context.Context, identity session.Identity, sku string) (*upstream.Response, error) {

	if sku == "" {
		return nil, errors.AddValidationError("sku", "must not be empty")
	}

	resp, err := s.client.Do(ctx, addressed(identity, &upstream.Request{Method: http.MethodDelete, Path: cartPath + "/" + url.PathEscape(sku)}))
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Remove from cart failed", slog.String("sku", sku), slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError("Failed to remove item from cart.").WithError(err)
	}

	return resp, nil
}

func (s *cartService) ClearCart(ctx context.Context, identity session.Identity) (*upstream.Response, error) {

	resp, err := s.client.Do(ctx, addressed(identity, &upstream.Request{Method: http.MethodDelete, Path: cartPath}))
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Clear cart failed", slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError("Failed to clear cart.").WithError(err)
	}

	return resp, nil
}

func (s *cartService) MergeGuestCart(ctx context.Context, token, guestCartID, trigger string) (*MergeResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	if token == "" {
		return nil, errors.UnauthorizedError("Authentication required")
	}

	if guestCartID == "" {
		metrics.CartMergesTotal.WithLabelValues(trigger, MergeSkipped).Inc()
		return &MergeResult{Skipped: true}, nil
	}

	logger.Info("Merging guest cart", slog.String("guestCartId", guestCartID))

	resp, err := s.client.Do(ctx, &upstream.Request{
		Method: http.MethodPost,
		Path:   cartMergePath,
		Query:  url.Values{"guestCartId": {guestCartID}},
		Body:   struct{}{},
		Bearer: token,
	})
	if err != nil {
		logger.Error("Cart merge failed", slog.String("guestCartId", guestCartID), slog.String("error", err.Error()))
		metrics.CartMergesTotal.WithLabelValues(trigger, MergeFailed).Inc()
		return nil, errors.UpstreamUnavailableError("Failed to merge cart.").WithError(err)
	}

	result := &MergeResult{Response: resp}
	metrics.CartMergesTotal.WithLabelValues(trigger, result.Outcome()).Inc()

	if !resp.OK() {
		logger.Warn("Cart merge rejected", slog.String("guestCartId", guestCartID), slog.Int("status", resp.StatusCode))
	}

	return result, nil
}

// CountItems never fails; any problem reads as an empty cart.
func (s *cartService) CountItems(ctx context.Context, identity session.Identity) int {

	resp, err := s.GetCart(ctx, identity)
	if err != nil || !resp.OK() {
		return 0
	}

	var cart models.Cart
	if err := resp.DecodeData(&cart); err != nil {
		middleware.LoggerFromContext(ctx).Debug("Cart count unreadable", slog.String("error", err.Error()))
		return 0
	}

	return cart.TotalItems
}

// addressed attaches the identity for operations that carry no body: the
// token as a bearer header, or the guest cart id as a query parameter.
func addressed(identity session.Identity, req *upstream.Request) *upstream.Request {
	switch identity.Mode {
	case session.ModeAuthenticated:
		req.Bearer = identity.Token
	case session.ModeGuest:
		req.Query = url.Values{guestCartParam: {identity.GuestCartID}}
	}
	return req
}

// guestCartIDFrom finds the id the cart service assigned to a new guest cart.
func guestCartIDFrom(resp *upstream.Response) string {

	var cart models.Cart
	if err := resp.DecodeData(&cart); err != nil {
		return ""
	}

	for _, candidate := range []string{cart.ID, cart.MemberID} {
		if session.IsGuestCartID(candidate) {
			return candidate
		}
	}

	return ""
}

func emptyCartResponse() *upstream.Response {
	body, _ := json.Marshal(struct {
		Success bool        `json:"success"`
		Data    models.Cart `json:"data"`
	}{Success: true, Data: models.EmptyCart()})

	return &upstream.Response{StatusCode: http.StatusOK, Body: body}
}
