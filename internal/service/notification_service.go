package service

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
)

// Notifier records an in-app notification for the local user.
type Notifier interface {
	Notify(ctx context.Context, typ entity.NotificationType, text string, relatedID int64) (*entity.Notification, error)
}

type NotificationService interface {
	Notifier
	List(ctx context.Context) ([]entity.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int64) (*entity.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
}

type notificationService struct {
	repo  repository.NotificationRepository
	clock clock.Clock
	log   logger.Logger
}

func NewNotificationService(repo repository.NotificationRepository, clk clock.Clock, log logger.Logger) NotificationService {
	return &notificationService{repo: repo, clock: clk, log: log}
}

func (s *notificationService) Notify(ctx context.Context, typ entity.NotificationType, text string, relatedID int64) (*entity.Notification, error) {
	n := entity.Notification{
		ID:        s.clock.NextID(),
		Type:      typ,
		Text:      text,
		Timestamp: s.clock.Label(),
		RelatedID: relatedID,
	}
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}
	return &n, nil
}

func (s *notificationService) List(ctx context.Context) ([]entity.Notification, error) {
	return s.repo.List(ctx)
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	unread := 0
	for _, n := range all {
		if !n.Read {
			unread++
		}
	}
	return unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) (*entity.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Read {
		return n, nil
	}
	n.Read = true
	if err := s.repo.Save(ctx, *n); err != nil {
		return nil, fmt.Errorf("failed to mark notification %d read: %w", id, err)
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	marked := 0
	for _, n := range all {
		if n.Read {
			continue
		}
		n.Read = true
		if err := s.repo.Save(ctx, n); err != nil {
			return marked, fmt.Errorf("failed to mark notification %d read: %w", n.ID, err)
		}
		marked++
	}
	s.log.Debugf("Marked %d notifications read", marked)
	return marked, nil
}
