package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	cacheMocks "github.com/aaravmahajanofficial/blimarket-storefront/internal/cache/mocks"
	appErrors "github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	service "github.com/aaravmahajanofficial/blimarket-storefront/internal/services"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const productPage = `{"success":true,"data":{"content":[
	{"id":"p1","productId":"SHIRT-1","name":"Shirt","variants":[{"sku":"S1","price":30}],"extra":"kept"},
	{"id":"p2","productId":"JEANS-1","name":"Jeans","variants":[{"sku":"J1","price":10}]},
	{"id":"p3","productId":"CAP-1","name":"Cap","variants":[]}
],"number":0,"size":20,"totalPages":1,"totalElements":3}}`

func productNames(t *testing.T, body []byte) []string {
	t.Helper()

	var env struct {
		Data models.ProductPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))

	names := make([]string, 0, len(env.Data.Content))
	for _, p := range env.Data.Content {
		names = append(names, p.Name)
	}
	return names
}

func cacheMiss(c *cacheMocks.Cache) {
	c.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults and cache fill", func(t *testing.T) {
		products := mocks.NewDoer(t)
		c := cacheMocks.NewCache(t)
		catalog := service.NewCatalogService(products, c)

		c.On("Get", mock.Anything, "catalog:products:category=&name=&page=0&size=20&sort=name%2Casc", mock.Anything).Return(false, nil).Once()
		products.On("Do", ctx, mock.MatchedBy(func(r *upstream.Request) bool {
			return r.Path == "/api/v1/products" && r.Query.Get("sort") == "name,asc" && r.Query.Get("size") == "20" && r.Query.Get("page") == "0"
		})).Return(jsonResponse(http.StatusOK, productPage), nil).Once()
		c.On("Set", mock.Anything, "catalog:products:category=&name=&page=0&size=20&sort=name%2Casc", mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := catalog.ListProducts(ctx, models.ProductQuery{})

		require.NoError(t, err)
		assert.Equal(t, []string{"Shirt", "Jeans", "Cap"}, productNames(t, resp.Body))
	})

	t.Run("Price ascending is re-sorted locally", func(t *testing.T) {
		products := mocks.NewDoer(t)
		catalog := service.NewCatalogService(products, nil)

		products.On("Do", ctx, mock.Anything).Return(jsonResponse(http.StatusOK, productPage), nil).Once()

		resp, err := catalog.ListProducts(ctx, models.ProductQuery{Sort: "price,asc"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Cap", "Jeans", "Shirt"}, productNames(t, resp.Body))
		assert.Contains(t, string(resp.Body), `"extra":"kept"`)
		assert.Contains(t, string(resp.Body), `"totalElements":3`)
	})

	t.Run("Price descending is re-sorted locally", func(t *testing.T) {
		products := mocks.NewDoer(t)
		catalog := service.NewCatalogService(products, nil)

		products.On("Do", ctx, mock.Anything).Return(jsonResponse(http.StatusOK, productPage), nil).Once()

		resp, err := catalog.ListProducts(ctx, models.ProductQuery{Sort: "price,desc"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Shirt", "Jeans", "Cap"}, productNames(t, resp.Body))
	})

	t.Run("Cache hit skips the product service", func(t *testing.T) {
		products := mocks.NewDoer(t)
		c := cacheMocks.NewCache(t)
		catalog := service.NewCatalogService(products, c)

		c.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Run(func(args mock.Arguments) {
			require.NoError(t, json.Unmarshal([]byte(`{"statusCode":200,"body":{"success":true,"data":{"content":[]}}}`), args.Get(2)))
		}).Once()

		resp, err := catalog.ListProducts(ctx, models.ProductQuery{Name: "shirt"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"success":true,"data":{"content":[]}}`, string(resp.Body))
	})

	t.Run("Cache failure falls through", func(t *testing.T) {
		products := mocks.NewDoer(t)
		c := cacheMocks.NewCache(t)
		catalog := service.NewCatalogService(products, c)

		c.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down")).Once()
		products.On("Do", ctx, mock.Anything).Return(jsonResponse(http.StatusOK, productPage), nil).Once()
		c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		resp, err := catalog.ListProducts(ctx, models.ProductQuery{})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Errors are passed through and not cached", func(t *testing.T) {
		products := mocks.NewDoer(t)
		c := cacheMocks.NewCache(t)
		catalog := service.NewCatalogService(products, c)

		cacheMiss(c)
		products.On("Do", ctx, mock.Anything).Return(jsonResponse(http.StatusBadRequest, `{"success":false,"message":"bad sort"}`), nil).Once()

		resp, err := catalog.ListProducts(ctx, models.ProductQuery{Sort: "nope"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Failure - Product service unavailable", func(t *testing.T) {
		products := mocks.NewDoer(t)
		catalog := service.NewCatalogService(products, nil)

		products.On("Do", ctx, mock.Anything).Return(nil, errTransport).Once()

		resp, err := catalog.ListProducts(ctx, models.ProductQuery{})

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstreamUnavailable, appErr.Code)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	isDirect := func(id string) any {
		return mock.MatchedBy(func(r *upstream.Request) bool { return r.Path == "/api/v1/products/"+id })
	}
	isScan := mock.MatchedBy(func(r *upstream.Request) bool {
		return r.Path == "/api/v1/products" && r.Query.Get("size") == "1000"
	})

	t.Run("Direct lookup", func(t *testing.T) {
		products := mocks.NewDoer(t)
		c := cacheMocks.NewCache(t)
		catalog := service.NewCatalogService(products, c)

		cacheMiss(c)
		products.On("Do", ctx, isDirect("p1")).Return(jsonResponse(http.StatusOK, `{"success":true,"data":{"id":"p1"}}`), nil).Once()
		c.On("Set", mock.Anything, "catalog:product:p1", mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := catalog.GetProduct(ctx, "p1")

		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":{"id":"p1"}}`, string(resp.Body))
	})

	t.Run("Falls back to scanning by productId", func(t *testing.T) {
		products := mocks.NewDoer(t)
		catalog := service.NewCatalogService(products, nil)

		products.On("Do", ctx, isDirect("JEANS-1")).Return(jsonResponse(http.StatusNotFound, `{"success":false}`), nil).Once()
		products.On("Do", ctx, isScan).Return(jsonResponse(http.StatusOK, productPage), nil).Once()

		resp, err := catalog.GetProduct(ctx, "JEANS-1")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var product models.Product
		require.NoError(t, resp.DecodeData(&product))
		assert.Equal(t, "p2", product.ID)
	})

	t.Run("Falls back after a transport failure", func(t *testing.T) {
		products := mocks.NewDoer(t)
		catalog := service.NewCatalogService(products, nil)

		products.On("Do", ctx, isDirect("p3")).Return(nil, errTransport).Once()
		products.On("Do", ctx, isScan).Return(jsonResponse(http.StatusOK, productPage), nil).Once()

		resp, err := catalog.GetProduct(ctx, "p3")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Unknown product keeps the original answer", func(t *testing.T) {
		products := mocks.NewDoer(t)
		catalog := service.NewCatalogService(products, nil)

		products.On("Do", ctx, isDirect("zzz")).Return(jsonResponse(http.StatusNotFound, `{"success":false,"message":"Product not found"}`), nil).Once()
		products.On("Do", ctx, isScan).Return(jsonResponse(http.StatusOK, productPage), nil).Once()

		resp, err := catalog.GetProduct(ctx, "zzz")

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Unknown product without an answer is not found", func(t *testing.T) {
		products := mocks.NewDoer(t)
		catalog := service.NewCatalogService(products, nil)

		products.On("Do", ctx, isDirect("zzz")).Return(nil, errTransport).Once()
		products.On("Do", ctx, isScan).Return(jsonResponse(http.StatusOK, productPage), nil).Once()

		resp, err := catalog.GetProduct(ctx, "zzz")

		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	})

	t.Run("Failure - Product service unavailable", func(t *testing.T) {
		products := mocks.NewDoer(t)
		catalog := service.NewCatalogService(products, nil)

		products.On("Do", ctx, isDirect("p1")).Return(nil, errTransport).Once()
		products.On("Do", ctx, isScan).Return(nil, errTransport).Once()

		resp, err := catalog.GetProduct(ctx, "p1")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, upstream.ErrUnavailable)
	})
}
