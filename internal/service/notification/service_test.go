package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagepoint/wagepoint-api/internal/domain/notification"
)

type fakeNotificationRepo struct {
	mu      sync.Mutex
	stored  []*notification.Notification
	batches int
}

func (f *fakeNotificationRepo) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, notifications...)
	f.batches++
	return nil
}

func (f *fakeNotificationRepo) GetByRecipient(ctx context.Context, recipientID string, page, pageSize int, unreadOnly bool) ([]*notification.Notification, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*notification.Notification
	for _, n := range f.stored {
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out, len(out), nil
}

func (f *fakeNotificationRepo) GetUnreadCount(ctx context.Context, recipientID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.stored {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, ids []string, recipientID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.stored {
		for _, id := range ids {
			if n.ID == id && n.RecipientID == recipientID {
				n.IsRead = true
			}
		}
	}
	return nil
}

func (f *fakeNotificationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stored)
}

func queueN(t *testing.T, svc notification.Service, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := svc.QueueNotification(context.Background(), notification.CreateNotificationRequest{
			RecipientID: "emp-1",
			Category:    notification.CategoryAttendance,
			Title:       "Clock-in recorded",
			Message:     "You clocked in.",
		})
		require.NoError(t, err)
	}
}

func TestNotificationService_StopDrainsQueue(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, Config{
		BatchSize:     10,
		FlushInterval: time.Hour, // only Stop may flush
		WorkerCount:   1,
		QueueSize:     100,
	})

	queueN(t, svc, 25)
	svc.Stop()

	assert.Equal(t, 25, repo.count())
}

func TestNotificationService_BatchSizeTriggersFlush(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, Config{
		BatchSize:     5,
		FlushInterval: time.Hour,
		WorkerCount:   1,
		QueueSize:     100,
	})
	defer svc.Stop()

	queueN(t, svc, 5)

	require.Eventually(t, func() bool {
		return repo.count() == 5
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNotificationService_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, Config{
		BatchSize:     100,
		FlushInterval: time.Hour,
		WorkerCount:   1,
		QueueSize:     1,
	})

	done := make(chan struct{})
	go func() {
		queueN(t, svc, 50)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("QueueNotification blocked on a full queue")
	}

	svc.Stop()
}

func TestNotificationService_MarkAsReadScopedToRecipient(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, Config{WorkerCount: 1})

	queueN(t, svc, 2)
	svc.Stop()

	list, err := svc.GetNotifications(context.Background(), "emp-1", 1, 20, false)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, 2, list.UnreadCount)

	// Another recipient cannot mark them
	err = svc.MarkAsRead(context.Background(), "emp-2", notification.MarkAsReadRequest{
		NotificationIDs: []string{list.Notifications[0].ID},
	})
	require.NoError(t, err)
	count, err := svc.GetUnreadCount(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// The owner can
	err = svc.MarkAsRead(context.Background(), "emp-1", notification.MarkAsReadRequest{
		NotificationIDs: []string{list.Notifications[0].ID},
	})
	require.NoError(t, err)
	count, err = svc.GetUnreadCount(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
