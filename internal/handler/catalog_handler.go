package handler

import (
	"net/http"
	"strings"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/catalog"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/service"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog  service.CatalogService
	checkout service.CheckoutService
	logger   *zap.Logger
}

func NewCatalogHandler(catalogSvc service.CatalogService, checkout service.CheckoutService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalogSvc, checkout: checkout, logger: logger}
}

// Search reads the filter from the query string. subcategory may repeat or
// carry a comma separated list.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := catalog.Query{
		SearchQuery: values.Get("q"),
		Location:    values.Get("location"),
		MinPrice:    values.Get("min_price"),
		MaxPrice:    values.Get("max_price"),
	}
	for _, raw := range values["subcategory"] {
		for _, sub := range strings.Split(raw, ",") {
			if sub = strings.TrimSpace(sub); sub != "" {
				q.Subcategories = append(q.Subcategories, sub)
			}
		}
	}

	listings, err := h.catalog.Search(r.Context(), q)
	if err != nil {
		writeError(w, h.logger, "Search", err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *CatalogHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "GetListing", err)
		return
	}
	listing, err := h.catalog.GetListing(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, "GetListing", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *CatalogHandler) SellerProfile(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "SellerProfile", err)
		return
	}
	profile, err := h.catalog.SellerProfile(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, "SellerProfile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// BuyNow starts a purchase at the listing price, outside any conversation.
func (h *CatalogHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "BuyNow", err)
		return
	}
	intent, err := h.checkout.BuyNow(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, "BuyNow", err)
		return
	}
	writeJSON(w, http.StatusOK, intent)
}
