package notification

import (
	"context"
)

// Repository defines the notification repository interface
type Repository interface {
	CreateBatch(ctx context.Context, notifications []*Notification) error
	GetByRecipient(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) ([]*Notification, int, error)
	GetUnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, ids []string, recipientID string) error
}
