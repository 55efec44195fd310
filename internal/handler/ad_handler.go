package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/service"
	"go.uber.org/zap"
)

type AdHandler struct {
	ads    service.AdService
	logger *zap.Logger
}

func NewAdHandler(ads service.AdService, logger *zap.Logger) *AdHandler {
	return &AdHandler{ads: ads, logger: logger}
}

type photoRequest struct {
	FileName string `json:"file_name"`
	// Data is base64 in the JSON body.
	Data []byte `json:"data"`
}

type adRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       string          `json:"price"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	Condition   string          `json:"condition"`
	Material    string          `json:"material"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	ImageURLs   []string        `json:"image_urls"`
	Photos      []photoRequest  `json:"photos"`
	Status      entity.AdStatus `json:"status"`
}

func (req adRequest) params() service.AdParams {
	p := service.AdParams{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Location:    req.Location,
		Condition:   req.Condition,
		Material:    req.Material,
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		ImageURLs:   req.ImageURLs,
	}
	for _, photo := range req.Photos {
		p.Photos = append(p.Photos, service.PhotoUpload{FileName: photo.FileName, Data: photo.Data})
	}
	return p
}

type postAdResponse struct {
	Ad      *entity.Ad      `json:"ad"`
	Listing *entity.Listing `json:"listing"`
}

func (h *AdHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.ads.ListAds(r.Context())
	if err != nil {
		writeError(w, h.logger, "ListAds", err)
		return
	}
	writeJSON(w, http.StatusOK, ads)
}

func (h *AdHandler) PostAd(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "PostAd", err)
		return
	}
	ad, listing, err := h.ads.PostAd(r.Context(), req.params())
	if err != nil {
		writeError(w, h.logger, "PostAd", err)
		return
	}
	writeJSON(w, http.StatusCreated, postAdResponse{Ad: ad, Listing: listing})
}

// UpdateAd replaces the editable fields. An empty status leaves it unchanged.
func (h *AdHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "UpdateAd", err)
		return
	}
	var req adRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "UpdateAd", err)
		return
	}
	ad, err := h.ads.UpdateAd(r.Context(), id, req.params(), req.Status)
	if err != nil {
		writeError(w, h.logger, "UpdateAd", err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

func (h *AdHandler) TogglePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "TogglePromotion", err)
		return
	}
	listing, err := h.ads.TogglePromotion(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, "TogglePromotion", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}
