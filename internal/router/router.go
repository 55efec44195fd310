package router

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/handler"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/middleware"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Catalog       *handler.CatalogHandler
	Conversations *handler.ConversationHandler
	Checkout      *handler.CheckoutHandler
	Ads           *handler.AdHandler
	Accounts      *handler.AccountHandler
	Notifications *handler.NotificationHandler
	Cart          *handler.CartHandler
	Admin         *handler.AdminHandler
}

func New(h Handlers, m *metrics.MetricsManager, jwtSecret string, logger *zap.Logger) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)
	mux.Use(middleware.Logger(logger))
	mux.Use(middleware.Metrics(m))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", m.Handler())

	SetupCatalogRoutes(mux, h.Catalog)
	SetupConversationRoutes(mux, h.Conversations, h.Checkout)
	SetupAdRoutes(mux, h.Ads)
	SetupAccountRoutes(mux, h.Accounts, h.Notifications, h.Cart)
	SetupAdminRoutes(mux, h.Admin, jwtSecret, logger)
	return mux
}

func SetupCatalogRoutes(mux *chi.Mux, h *handler.CatalogHandler) {
	mux.Get("/api/listings", h.Search)
	mux.Get("/api/listings/{id}", h.GetListing)
	mux.Post("/api/listings/{id}/buy-now", h.BuyNow)
	mux.Get("/api/categories", h.Categories)
	mux.Get("/api/sellers/{id}/listings", h.SellerProfile)
}

func SetupConversationRoutes(mux *chi.Mux, h *handler.ConversationHandler, checkout *handler.CheckoutHandler) {
	mux.Get("/api/chats", h.ListChats)
	mux.Route("/api/conversations/{id}", func(r chi.Router) {
		r.Get("/", h.GetConversation)
		r.Post("/messages", h.SendText)
		r.Get("/offers", h.OfferHistory)
		r.Post("/offers", h.MakeOffer)
		r.Post("/offers/{messageID}/accept", h.AcceptOffer)
		r.Post("/offers/{messageID}/decline", h.DeclineOffer)
		r.Post("/payment-intent", h.PaymentIntent)
	})
	mux.Post("/api/payments/confirm", checkout.ConfirmPayment)
}

func SetupAdRoutes(mux *chi.Mux, h *handler.AdHandler) {
	mux.Get("/api/ads", h.ListAds)
	mux.Post("/api/ads", h.PostAd)
	mux.Put("/api/ads/{id}", h.UpdateAd)
	mux.Post("/api/ads/{id}/promote", h.TogglePromotion)
}

func SetupAccountRoutes(mux *chi.Mux, accounts *handler.AccountHandler, notifications *handler.NotificationHandler, cart *handler.CartHandler) {
	mux.Get("/api/profile", accounts.Profile)
	mux.Get("/api/addresses", accounts.ListAddresses)
	mux.Post("/api/addresses", accounts.SaveAddress)
	mux.Delete("/api/addresses/{id}", accounts.DeleteAddress)
	mux.Get("/api/payment-methods", accounts.ListPaymentMethods)
	mux.Post("/api/payment-methods", accounts.SavePaymentMethod)
	mux.Delete("/api/payment-methods/{id}", accounts.DeletePaymentMethod)

	mux.Get("/api/notifications", notifications.List)
	mux.Post("/api/notifications/read-all", notifications.MarkAllRead)
	mux.Post("/api/notifications/{id}/read", notifications.MarkRead)

	mux.Get("/api/cart", cart.GetCart)
	mux.Post("/api/cart/items", cart.AddItem)
	mux.Delete("/api/cart/items/{listingID}", cart.RemoveItem)
	mux.Delete("/api/cart", cart.ClearCart)
}

// SetupAdminRoutes mounts the moderation endpoints behind an admin-role token.
func SetupAdminRoutes(mux *chi.Mux, h *handler.AdminHandler, jwtSecret string, logger *zap.Logger) {
	mux.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret, logger, middleware.RoleAdmin))

		r.Get("/dashboard", h.Dashboard)
		r.Get("/users", h.ListUsers)
		r.Delete("/users/{id}", h.DeleteUser)
		r.Post("/users/{id}/toggle-admin", h.ToggleAdmin)
		r.Delete("/listings/{id}", h.DeleteListing)
		r.Post("/listings/{id}/toggle-promotion", h.TogglePromotion)
	})
}
