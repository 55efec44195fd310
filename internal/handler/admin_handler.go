package handler

import (
	"fmt"
	"net/http"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/middleware"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/service"
	"go.uber.org/zap"
)

// AdminHandler expects to sit behind middleware.JWTAuth; the acting user is
// taken from the token.
type AdminHandler struct {
	admin  service.AdminService
	logger *zap.Logger
}

func NewAdminHandler(admin service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

func actor(r *http.Request) (int64, error) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return 0, fmt.Errorf("%w: no authenticated user", entity.ErrForbidden)
	}
	return id, nil
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actorID, err := actor(r)
	if err != nil {
		writeError(w, h.logger, "Dashboard", err)
		return
	}
	dashboard, err := h.admin.Dashboard(r.Context(), actorID)
	if err != nil {
		writeError(w, h.logger, "Dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	actorID, err := actor(r)
	if err != nil {
		writeError(w, h.logger, "ListUsers", err)
		return
	}
	users, err := h.admin.ListUsers(r.Context(), actorID)
	if err != nil {
		writeError(w, h.logger, "ListUsers", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	actorID, err := actor(r)
	if err != nil {
		writeError(w, h.logger, "DeleteListing", err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "DeleteListing", err)
		return
	}
	if err := h.admin.DeleteListing(r.Context(), actorID, id); err != nil {
		writeError(w, h.logger, "DeleteListing", err)
		return
	}
	h.logger.Info("Listing deleted by admin", zap.Int64("listing_id", id), zap.Int64("actor_id", actorID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, err := actor(r)
	if err != nil {
		writeError(w, h.logger, "DeleteUser", err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "DeleteUser", err)
		return
	}
	if err := h.admin.DeleteUser(r.Context(), actorID, id); err != nil {
		writeError(w, h.logger, "DeleteUser", err)
		return
	}
	h.logger.Info("User deleted by admin", zap.Int64("user_id", id), zap.Int64("actor_id", actorID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	actorID, err := actor(r)
	if err != nil {
		writeError(w, h.logger, "ToggleAdmin", err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "ToggleAdmin", err)
		return
	}
	user, err := h.admin.ToggleAdmin(r.Context(), actorID, id)
	if err != nil {
		writeError(w, h.logger, "ToggleAdmin", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AdminHandler) TogglePromotion(w http.ResponseWriter, r *http.Request) {
	actorID, err := actor(r)
	if err != nil {
		writeError(w, h.logger, "AdminTogglePromotion", err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "AdminTogglePromotion", err)
		return
	}
	listing, err := h.admin.TogglePromotion(r.Context(), actorID, id)
	if err != nil {
		writeError(w, h.logger, "AdminTogglePromotion", err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}
