package service

import (
	"cmp"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/cache"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils"
)

const (
	productsPath = "/api/v1/products"

	DefaultProductSort     = "name,asc"
	DefaultProductPageSize = 20

	// page size used when a product has to be found by scanning the catalog
	productLookupPageSize = 1000

	sortPriceAsc  = "price,asc"
	sortPriceDesc = "price,desc"
)

type CatalogService interface {
	ListProducts(ctx context.Context, query models.ProductQuery) (*upstream.Response, error)
	GetProduct(ctx context.Context, id string) (*upstream.Response, error)
}

type cachedResponse struct {
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body"`
}

type catalogService struct {
	products upstream.Doer
	cache    cache.Cache
}

// NewCatalogService takes a nil cache to always ask the product service.
func NewCatalogService(products upstream.Doer, cache cache.Cache) CatalogService {
	return &catalogService{products: products, cache: cache}
}

func (s *catalogService) ListProducts(ctx context.Context, query models.ProductQuery) (*upstream.Response, error) {

	logger := middleware.LoggerFromContext(ctx)

	params := productParams(query)
	key := cache.Key(cache.ProductListKeyPrefix, params.Encode())

	if resp, ok := s.cached(ctx, key); ok {
		return resp, nil
	}

	resp, err := s.products.Do(ctx, &upstream.Request{Method: http.MethodGet, Path: productsPath, Query: params})
	if err != nil {
		logger.Error("Product list failed", slog.String("error", err.Error()))
		return nil, errors.UpstreamUnavailableError("Unable to load products. Please try again later.").WithError(err)
	}

	if !resp.OK() {
		return resp, nil
	}

	if sort := params.Get("sort"); sort == sortPriceAsc || sort == sortPriceDesc {
		sorted, err := sortByListPrice(resp.Body, sort == sortPriceDesc)
		if err != nil {
			logger.Warn("Product list not re-sorted", slog.String("error", err.Error()))
		} else {
			resp = &upstream.Response{StatusCode: resp.StatusCode, Body: sorted}
		}
	}

	s.store(ctx, key, resp)

	return resp, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*upstream.Response, error) {

	logger := middleware.LoggerFromContext(ctx)

	if strings.TrimSpace(id) == "" {
		return nil, errors.AddValidationError("id", "must not be empty")
	}

	key := cache.Key(cache.ProductKeyPrefix, id)

	if resp, ok := s.cached(ctx, key); ok {
		return resp, nil
	}

	direct, directErr := s.products.Do(ctx, &upstream.Request{Method: http.MethodGet, Path: productsPath + "/" + url.PathEscape(id)})
	if directErr == nil && direct.OK() {
		s.store(ctx, key, direct)
		return direct, nil
	}

	// ids in links may be either the document id or the business productId
	logger.Debug("Direct product lookup missed, scanning catalog", slog.String("productId", id))

	found, scanErr := s.findInCatalog(ctx, id)
	if scanErr != nil {
		logger.Warn("Product catalog scan failed", slog.String("productId", id), slog.String("error", scanErr.Error()))
	}

	if found != nil {
		s.store(ctx, key, found)
		return found, nil
	}

	switch {
	case direct != nil:
		return direct, nil
	case scanErr != nil:
		return nil, errors.UpstreamUnavailableError("Unable to load product. Please try again later.").WithError(directErr)
	default:
		return nil, errors.NotFoundError("Product not found")
	}
}

func (s *catalogService) findInCatalog(ctx context.Context, id string) (*upstream.Response, error) {

	resp, err := s.products.Do(ctx, &upstream.Request{
		Method: http.MethodGet,
		Path:   productsPath,
		Query:  url.Values{"size": {strconv.Itoa(productLookupPageSize)}},
	})
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, nil
	}

	var page struct {
		Content []json.RawMessage `json:"content"`
	}
	if err := resp.DecodeData(&page); err != nil {
		return nil, err
	}

	for _, raw := range page.Content {
		var ids struct {
			ID        string `json:"id"`
			ProductID string `json:"productId"`
		}
		if json.Unmarshal(raw, &ids) != nil {
			continue
		}

		if ids.ID == id || ids.ProductID == id {
			body, err := json.Marshal(models.Envelope{Success: true, Data: raw})
			if err != nil {
				return nil, err
			}
			return &upstream.Response{StatusCode: http.StatusOK, Body: body}, nil
		}
	}

	return nil, nil
}

func (s *catalogService) cached(ctx context.Context, key string) (*upstream.Response, bool) {

	if s.cache == nil {
		return nil, false
	}

	cacheCtx, cancel := utils.WithRedisTimeout(ctx)
	defer cancel()

	var entry cachedResponse
	found, err := s.cache.Get(cacheCtx, key, &entry)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}

	if !found {
		return nil, false
	}

	return &upstream.Response{StatusCode: entry.StatusCode, Body: entry.Body}, true
}

func (s *catalogService) store(ctx context.Context, key string, resp *upstream.Response) {

	if s.cache == nil || !json.Valid(resp.Body) {
		return
	}

	cacheCtx, cancel := utils.WithRedisTimeout(ctx)
	defer cancel()

	if err := s.cache.Set(cacheCtx, key, cachedResponse{StatusCode: resp.StatusCode, Body: resp.Body}, 0); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func productParams(query models.ProductQuery) url.Values {

	if query.Sort == "" {
		query.Sort = DefaultProductSort
	}
	if query.Size <= 0 {
		query.Size = DefaultProductPageSize
	}
	if query.Page < 0 {
		query.Page = 0
	}

	return url.Values{
		"name":     {query.Name},
		"category": {query.Category},
		"page":     {strconv.Itoa(query.Page)},
		"size":     {strconv.Itoa(query.Size)},
		"sort":     {query.Sort},
	}
}

// sortByListPrice reorders data.content by the first variant's price and
// leaves every other field of the body as the product service sent it.
func sortByListPrice(body []byte, descending bool) ([]byte, error) {

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	var page map[string]json.RawMessage
	if err := json.Unmarshal(envelope["data"], &page); err != nil {
		return nil, err
	}

	var content []json.RawMessage
	if err := json.Unmarshal(page["content"], &content); err != nil {
		return nil, err
	}

	type pricedProduct struct {
		raw   json.RawMessage
		price float64
	}

	items := make([]pricedProduct, len(content))
	for i, raw := range content {
		var product models.Product
		if err := json.Unmarshal(raw, &product); err != nil {
			return nil, err
		}
		items[i] = pricedProduct{raw: raw, price: product.ListPrice()}
	}

	slices.SortStableFunc(items, func(a, b pricedProduct) int {
		if descending {
			return cmp.Compare(b.price, a.price)
		}
		return cmp.Compare(a.price, b.price)
	})

	sorted := make([]json.RawMessage, len(items))
	for i, item := range items {
		sorted[i] = item.raw
	}

	var err error
	if page["content"], err = json.Marshal(sorted); err != nil {
		return nil, err
	}
	if envelope["data"], err = json.Marshal(page); err != nil {
		return nil, err
	}

	return json.Marshal(envelope)
}
