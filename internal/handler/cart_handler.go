package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/service"
	"go.uber.org/zap"
)

type CartHandler struct {
	carts         service.CartService
	currentUserID int64
	logger        *zap.Logger
}

func NewCartHandler(carts service.CartService, currentUserID int64, logger *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, currentUserID: currentUserID, logger: logger}
}

type addCartItemRequest struct {
	ListingID int64 `json:"listing_id"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.GetCart(r.Context(), h.currentUserID)
	if err != nil {
		writeError(w, h.logger, "GetCart", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "AddCartItem", err)
		return
	}
	view, err := h.carts.AddItem(r.Context(), h.currentUserID, req.ListingID)
	if err != nil {
		writeError(w, h.logger, "AddCartItem", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	listingID, err := idParam(r, "listingID")
	if err != nil {
		writeError(w, h.logger, "RemoveCartItem", err)
		return
	}
	view, err := h.carts.RemoveItem(r.Context(), h.currentUserID, listingID)
	if err != nil {
		writeError(w, h.logger, "RemoveCartItem", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.ClearCart(r.Context(), h.currentUserID); err != nil {
		writeError(w, h.logger, "ClearCart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
