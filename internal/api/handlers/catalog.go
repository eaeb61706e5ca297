package handlers

import (
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/models"
	service "github.com/aaravmahajanofficial/blimarket-storefront/internal/services"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		q := r.URL.Query()

		// bad numbers fall back to the defaults
		page, _ := strconv.Atoi(q.Get("page"))
		size, _ := strconv.Atoi(q.Get("size"))

		resp, err := h.catalogService.ListProducts(r.Context(), models.ProductQuery{
			Name:     q.Get("name"),
			Category: q.Get("category"),
			Page:     page,
			Size:     size,
			Sort:     q.Get("sort"),
		})
		if err != nil {
			response.Error(w, err, "")
			return
		}

		relay(w, resp, "Unable to load products. Please try again later.")
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		resp, err := h.catalogService.GetProduct(r.Context(), r.PathValue("id"))
		if err != nil {
			response.Error(w, err, "")
			return
		}

		relay(w, resp, "Product not found")
	}
}
