package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/service"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
	logger   *zap.Logger
}

func NewCheckoutHandler(checkout service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: logger}
}

type confirmPaymentRequest struct {
	Intent          entity.PaymentIntent `json:"intent"`
	PaymentMethodID int64                `json:"payment_method_id"`
}

func (h *CheckoutHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req confirmPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "ConfirmPayment", err)
		return
	}
	receipt, err := h.checkout.ConfirmPayment(r.Context(), req.Intent, req.PaymentMethodID)
	if err != nil {
		writeError(w, h.logger, "ConfirmPayment", err)
		return
	}
	h.logger.Info("Payment confirmed",
		zap.String("transaction_id", receipt.TransactionID),
		zap.Int64("listing_id", receipt.ListingID),
		zap.String("amount", receipt.Amount))
	writeJSON(w, http.StatusOK, receipt)
}
