package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/service"
	"go.uber.org/zap"
)

// AccountHandler serves the local user's profile page.
type AccountHandler struct {
	accounts      service.AccountService
	currentUserID int64
	logger        *zap.Logger
}

func NewAccountHandler(accounts service.AccountService, currentUserID int64, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, currentUserID: currentUserID, logger: logger}
}

func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.accounts.Profile(r.Context(), h.currentUserID)
	if err != nil {
		writeError(w, h.logger, "Profile", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AccountHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.accounts.ListAddresses(r.Context())
	if err != nil {
		writeError(w, h.logger, "ListAddresses", err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

// SaveAddress creates the address when id is zero and replaces it otherwise.
func (h *AccountHandler) SaveAddress(w http.ResponseWriter, r *http.Request) {
	var req entity.Address
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "SaveAddress", err)
		return
	}
	saved, err := h.accounts.SaveAddress(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, "SaveAddress", err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *AccountHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "DeleteAddress", err)
		return
	}
	if err := h.accounts.DeleteAddress(r.Context(), id); err != nil {
		writeError(w, h.logger, "DeleteAddress", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.accounts.ListPaymentMethods(r.Context())
	if err != nil {
		writeError(w, h.logger, "ListPaymentMethods", err)
		return
	}
	writeJSON(w, http.StatusOK, methods)
}

func (h *AccountHandler) SavePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req entity.PaymentMethod
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "SavePaymentMethod", err)
		return
	}
	saved, err := h.accounts.SavePaymentMethod(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, "SavePaymentMethod", err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *AccountHandler) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "DeletePaymentMethod", err)
		return
	}
	if err := h.accounts.DeletePaymentMethod(r.Context(), id); err != nil {
		writeError(w, h.logger, "DeletePaymentMethod", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
