package notification

import (
	"context"
)

// Service defines the notification service interface. Queueing is
// fire-and-forget: callers never block on, or fail because of, delivery.
type Service interface {
	// QueueNotification enqueues for async persistence by the
	// background workers. A full queue drops the notification.
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error

	// Direct operations
	GetNotifications(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) (*NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, recipientID string, req MarkAsReadRequest) error

	// Stop drains the queue and stops the workers
	Stop()
}
