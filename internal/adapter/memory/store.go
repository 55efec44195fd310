// Package memory keeps every marketplace collection in process memory. It is
// the authoritative state; an optional Mirror receives a copy of each
// collection after every write and seeds the store on the next start.
package memory

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/seed"
)

const (
	KeyItems          = "db_items"
	KeyChats          = "db_chats"
	KeyAds            = "db_ads"
	KeyConversations  = "db_conversations"
	KeyNotifications  = "db_notifications"
	KeyPaymentMethods = "db_paymentMethods"
	KeyAddresses      = "db_addresses"
	KeyUsers          = "db_allUsers"
	KeyActivities     = "db_recentActivities"
	KeyInitialized    = "db_initialized"
)

type Store struct {
	mirror repository.Mirror
	log    logger.Logger

	listings       *collection[entity.Listing]
	chats          *collection[entity.ChatSummary]
	ads            *collection[entity.Ad]
	conversations  *collection[*entity.Conversation]
	notifications  *collection[entity.Notification]
	paymentMethods *collection[entity.PaymentMethod]
	addresses      *collection[entity.Address]
	users          *collection[entity.User]
	activities     *collection[entity.RecentActivity]
	reviews        *collection[entity.Review]

	conversationRepo *conversationRepository
}

// NewStore builds an empty store. mirror may be nil.
func NewStore(mirror repository.Mirror, log logger.Logger) *Store {
	s := &Store{
		mirror:         mirror,
		log:            log,
		listings:       newCollection(KeyItems, func(l entity.Listing) int64 { return l.ID }, entity.Listing.Clone, mirror, log),
		chats:          newCollection[entity.ChatSummary](KeyChats, func(c entity.ChatSummary) int64 { return c.ID }, nil, mirror, log),
		ads:            newCollection(KeyAds, func(a entity.Ad) int64 { return a.ID }, entity.Ad.Clone, mirror, log),
		conversations:  newCollection(KeyConversations, func(c *entity.Conversation) int64 { return c.ID }, (*entity.Conversation).Clone, mirror, log),
		notifications:  newCollection[entity.Notification](KeyNotifications, func(n entity.Notification) int64 { return n.ID }, nil, mirror, log),
		paymentMethods: newCollection[entity.PaymentMethod](KeyPaymentMethods, func(m entity.PaymentMethod) int64 { return m.ID }, nil, mirror, log),
		addresses:      newCollection[entity.Address](KeyAddresses, func(a entity.Address) int64 { return a.ID }, nil, mirror, log),
		users:          newCollection[entity.User](KeyUsers, func(u entity.User) int64 { return u.ID }, nil, mirror, log),
		activities:     newCollection(KeyActivities, func(a entity.RecentActivity) int64 { return a.ID }, cloneActivity, mirror, log),
		reviews:        newCollection[entity.Review]("", func(r entity.Review) int64 { return r.ID }, nil, nil, log),
	}
	s.conversationRepo = newConversationRepository(s.conversations)
	return s
}

func cloneActivity(a entity.RecentActivity) entity.RecentActivity {
	out := a
	if a.Author != nil {
		author := *a.Author
		out.Author = &author
	}
	if a.Listing != nil {
		listing := *a.Listing
		out.Listing = &listing
	}
	return out
}

// Bootstrap fills the store from the mirror when it was initialized before,
// and from data otherwise. A fresh mirror receives data and the initialized marker.
func (s *Store) Bootstrap(ctx context.Context, data seed.Data) error {
	s.listings.replaceAll(data.Listings)
	s.chats.replaceAll(data.Chats)
	s.ads.replaceAll(data.Ads)
	s.conversations.replaceAll(data.Conversations)
	s.notifications.replaceAll(data.Notifications)
	s.paymentMethods.replaceAll(data.PaymentMethods)
	s.addresses.replaceAll(data.Addresses)
	s.users.replaceAll(data.Users)
	s.activities.replaceAll(data.Activities)
	s.reviews.replaceAll(data.Reviews)

	if s.mirror == nil {
		return nil
	}

	var initialized bool
	found, err := s.mirror.Load(ctx, KeyInitialized, &initialized)
	if err != nil {
		return fmt.Errorf("failed to read mirror marker: %w", err)
	}

	if found && initialized {
		loaders := []interface {
			load(context.Context) (bool, error)
		}{s.listings, s.chats, s.ads, s.conversations, s.notifications, s.paymentMethods, s.addresses, s.users, s.activities}
		for _, c := range loaders {
			if _, err := c.load(ctx); err != nil {
				// Unreadable keys keep the seed value.
				s.log.Errorf("Error reading from mirror: %v", err)
			}
		}
		s.log.Info("Store restored from mirror")
		return nil
	}

	persisters := []interface{ persist(context.Context) }{
		s.listings, s.chats, s.ads, s.conversations, s.notifications, s.paymentMethods, s.addresses, s.users, s.activities,
	}
	for _, c := range persisters {
		c.persist(ctx)
	}
	if err := s.mirror.Save(ctx, KeyInitialized, true); err != nil {
		return fmt.Errorf("failed to write mirror marker: %w", err)
	}
	s.log.Info("Mirror initialized from seed data")
	return nil
}

func (s *Store) Listings() repository.ListingRepository { return &listingRepository{c: s.listings} }

func (s *Store) Ads() repository.AdRepository { return &adRepository{c: s.ads} }

func (s *Store) Chats() repository.ChatRepository { return &chatRepository{c: s.chats} }

func (s *Store) Conversations() repository.ConversationRepository { return s.conversationRepo }

func (s *Store) Users() repository.UserRepository { return &userRepository{c: s.users} }

func (s *Store) Addresses() repository.AddressRepository { return &addressRepository{c: s.addresses} }

func (s *Store) PaymentMethods() repository.PaymentMethodRepository {
	return &paymentMethodRepository{c: s.paymentMethods}
}

func (s *Store) Notifications() repository.NotificationRepository {
	return &notificationRepository{c: s.notifications}
}

func (s *Store) Activities() repository.ActivityRepository { return &activityRepository{c: s.activities} }

func (s *Store) Reviews() repository.ReviewRepository { return &reviewRepository{c: s.reviews} }
