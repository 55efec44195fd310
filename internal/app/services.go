package app

import (
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/email"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/memory"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/nats"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/payment"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/storage/s3"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/tasks"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/handler"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/router"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/service"
)

// Infra is everything the services need from the outside world. Optional
// collaborators are nil when disabled.
type Infra struct {
	Store         *memory.Store
	Conversations repository.ConversationRepository
	Carts         repository.CartRepository
	Publisher     nats.MessagePublisher
	Gateway       payment.Gateway
	Email         email.EmailSender
	Photos        s3.PhotoStorage
	Clock         clock.Clock
	Metrics       *metrics.MetricsManager
	// Receipts overrides inline receipt delivery, e.g. with the task queue.
	Receipts service.ReceiptQueue
}

type Services struct {
	Catalog       service.CatalogService
	Negotiation   service.NegotiationService
	Checkout      service.CheckoutService
	Ads           service.AdService
	Admin         service.AdminService
	Accounts      service.AccountService
	Notifications service.NotificationService
	Carts         service.CartService
	Receipts      service.ReceiptService
}

func NewServices(infra Infra, cfg *config.Config, log logger.Logger) *Services {
	store := infra.Store
	conversations := infra.Conversations
	if conversations == nil {
		conversations = store.Conversations()
	}

	notifications := service.NewNotificationService(store.Notifications(), infra.Clock, log.With("service", "notifications"))
	negotiation := service.NewNegotiationService(
		conversations,
		store.Chats(),
		notifications,
		infra.Publisher,
		infra.Clock,
		infra.Metrics,
		log.With("service", "negotiation"),
	)
	receipts := service.NewReceiptService(infra.Email, log.With("service", "receipts"))
	queue := infra.Receipts
	if queue == nil {
		queue = tasks.NewInlineEnqueuer(receipts)
	}

	ads := service.NewAdService(service.AdDeps{
		Ads:           store.Ads(),
		Listings:      store.Listings(),
		Users:         store.Users(),
		Activities:    store.Activities(),
		Photos:        infra.Photos,
		Publisher:     infra.Publisher,
		Clock:         infra.Clock,
		Metrics:       infra.Metrics,
		CurrentUserID: cfg.CurrentUserID,
	}, log.With("service", "ads"))

	return &Services{
		Catalog:     service.NewCatalogService(store.Listings(), store.Users(), store.Reviews(), cfg.Catalog.Categories, log.With("service", "catalog")),
		Negotiation: negotiation,
		Checkout: service.NewCheckoutService(service.CheckoutDeps{
			Listings:       store.Listings(),
			Conversations:  conversations,
			PaymentMethods: store.PaymentMethods(),
			Users:          store.Users(),
			Negotiation:    negotiation,
			Gateway:        infra.Gateway,
			Notifier:       notifications,
			Publisher:      infra.Publisher,
			Receipts:       queue,
			Metrics:        infra.Metrics,
			CurrentUserID:  cfg.CurrentUserID,
		}, log.With("service", "checkout")),
		Ads: ads,
		Admin: service.NewAdminService(service.AdminDeps{
			Users:      store.Users(),
			Listings:   store.Listings(),
			Ads:        store.Ads(),
			Chats:      store.Chats(),
			Activities: store.Activities(),
			AdService:  ads,
		}, log.With("service", "admin")),
		Accounts:      service.NewAccountService(store.Users(), store.Addresses(), store.PaymentMethods(), infra.Clock, log.With("service", "accounts")),
		Notifications: notifications,
		Carts:         service.NewCartService(infra.Carts, store.Listings(), cfg.Cart.TTL, log.With("service", "cart")),
		Receipts:      receipts,
	}
}

// Handlers builds the HTTP handlers over s.
func (s *Services) Handlers(cfg *config.Config, log logger.Logger) router.Handlers {
	zl := log.Desugar()
	return router.Handlers{
		Catalog:       handler.NewCatalogHandler(s.Catalog, s.Checkout, zl),
		Conversations: handler.NewConversationHandler(s.Negotiation, zl),
		Checkout:      handler.NewCheckoutHandler(s.Checkout, zl),
		Ads:           handler.NewAdHandler(s.Ads, zl),
		Accounts:      handler.NewAccountHandler(s.Accounts, cfg.CurrentUserID, zl),
		Notifications: handler.NewNotificationHandler(s.Notifications, zl),
		Cart:          handler.NewCartHandler(s.Carts, cfg.CurrentUserID, zl),
		Admin:         handler.NewAdminHandler(s.Admin, zl),
	}
}
