package store

import (
	"context"
	"sync"

	"github.com/thrivehealth/thriveGo/gateway"
	"github.com/thrivehealth/thriveGo/models"
)

// Notification store operation kinds.
const (
	OpGetNotifications = "notifications/getNotifications"
	OpMarkRead         = "notifications/markRead"
)

// NotificationStore caches the signed-in user's notification list.
type NotificationStore struct {
	Tracker
	gw *gateway.Gateway

	mu            sync.RWMutex
	notifications []models.Notification
}

func NewNotificationStore(gw *gateway.Gateway) *NotificationStore {
	return &NotificationStore{gw: gw}
}

// List replaces the notification collection.
func (s *NotificationStore) List(ctx context.Context) chan struct{} {
	return s.dispatch(OpGetNotifications, "Failed to get notifications", func() error {
		notifications, err := s.gw.Notifications(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.notifications = notifications
		s.mu.Unlock()
		return nil
	})
}

// MarkRead flags one cached notification once the backend confirms. Unknown
// ids are a silent no-op.
func (s *NotificationStore) MarkRead(ctx context.Context, notificationId string) chan struct{} {
	return s.dispatch(OpMarkRead, "Failed to mark notification as read", func() error {
		if err := s.gw.MarkNotificationRead(ctx, notificationId); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.notifications {
			if s.notifications[i].Id == notificationId {
				s.notifications[i].IsRead = true
			}
		}
		return nil
	})
}

func (s *NotificationStore) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}
