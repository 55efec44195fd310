package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/service"
	"go.uber.org/zap"
)

type ConversationHandler struct {
	negotiation service.NegotiationService
	logger      *zap.Logger
}

func NewConversationHandler(negotiation service.NegotiationService, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{negotiation: negotiation, logger: logger}
}

type sendTextRequest struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type makeOfferRequest struct {
	Sender string `json:"sender"`
	Price  string `json:"price"`
}

type actorRequest struct {
	Actor string `json:"actor"`
}

func (h *ConversationHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.negotiation.ListChats(r.Context())
	if err != nil {
		writeError(w, h.logger, "ListChats", err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

func (h *ConversationHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "GetConversation", err)
		return
	}
	conv, err := h.negotiation.GetConversation(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, "GetConversation", err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

func (h *ConversationHandler) OfferHistory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "OfferHistory", err)
		return
	}
	history, err := h.negotiation.NegotiationHistory(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, "OfferHistory", err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *ConversationHandler) SendText(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "SendText", err)
		return
	}
	var req sendTextRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "SendText", err)
		return
	}
	sender, err := entity.ParseParty(req.Sender)
	if err != nil {
		writeError(w, h.logger, "SendText", err)
		return
	}
	msg, err := h.negotiation.SendText(r.Context(), id, sender, req.Text)
	if err != nil {
		writeError(w, h.logger, "SendText", err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *ConversationHandler) MakeOffer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "MakeOffer", err)
		return
	}
	var req makeOfferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "MakeOffer", err)
		return
	}
	sender, err := entity.ParseParty(req.Sender)
	if err != nil {
		writeError(w, h.logger, "MakeOffer", err)
		return
	}
	msg, err := h.negotiation.MakeOffer(r.Context(), id, sender, req.Price)
	if err != nil {
		writeError(w, h.logger, "MakeOffer", err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *ConversationHandler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, entity.OfferAccepted)
}

func (h *ConversationHandler) DeclineOffer(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, entity.OfferDeclined)
}

func (h *ConversationHandler) resolve(w http.ResponseWriter, r *http.Request, action entity.OfferStatus) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "ResolveOffer", err)
		return
	}
	messageID, err := idParam(r, "messageID")
	if err != nil {
		writeError(w, h.logger, "ResolveOffer", err)
		return
	}
	var req actorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "ResolveOffer", err)
		return
	}
	actor, err := entity.ParseParty(req.Actor)
	if err != nil {
		writeError(w, h.logger, "ResolveOffer", err)
		return
	}
	msg, err := h.negotiation.ResolveOffer(r.Context(), id, messageID, actor, action)
	if err != nil {
		writeError(w, h.logger, "ResolveOffer", err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *ConversationHandler) PaymentIntent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, h.logger, "PaymentIntent", err)
		return
	}
	var req actorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "PaymentIntent", err)
		return
	}
	actor, err := entity.ParseParty(req.Actor)
	if err != nil {
		writeError(w, h.logger, "PaymentIntent", err)
		return
	}
	intent, err := h.negotiation.ProceedToPayment(r.Context(), id, actor)
	if err != nil {
		writeError(w, h.logger, "PaymentIntent", err)
		return
	}
	writeJSON(w, http.StatusOK, intent)
}
