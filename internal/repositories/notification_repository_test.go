package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/apperr"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotifications(t *testing.T, repo NotificationRepository, recipientID uint, n int) []models.Notification {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	out := make([]models.Notification, n)
	for i := 0; i < n; i++ {
		notif := models.Notification{
			RecipientID: recipientID,
			SenderID:    99,
			Kind:        models.NotificationLike,
			PostID:      fmt.Sprintf("post-%d", i),
			Message:     fmt.Sprintf("liked %d", i),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.CreateNotification(&notif))
		out[i] = notif
	}
	return out
}

func TestNotificationListNewestFirst(t *testing.T) {
	repo := NewPostgresNotificationRepository(newTestDB(t))
	seedNotifications(t, repo, 1, 5)
	seedNotifications(t, repo, 2, 3)

	items, total, err := repo.GetByRecipientID(1, 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 5)
	assert.Equal(t, "post-4", items[0].PostID)
	assert.Equal(t, "post-0", items[4].PostID)
}

func TestNotificationListPagination(t *testing.T) {
	repo := NewPostgresNotificationRepository(newTestDB(t))
	seedNotifications(t, repo, 1, 7)

	page1, total, err := repo.GetByRecipientID(1, 1, 3, false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, page1, 3)

	page3, total, err := repo.GetByRecipientID(1, 3, 3, false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, page3, 1)
}

func TestNotificationUnreadFilterAndCount(t *testing.T) {
	repo := NewPostgresNotificationRepository(newTestDB(t))
	seeded := seedNotifications(t, repo, 1, 4)

	require.NoError(t, repo.MarkAsRead(1, seeded[0].ID))

	unread, total, err := repo.GetByRecipientID(1, 1, 10, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, unread, 3)

	count, err := repo.GetUnreadCount(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationMarkAsReadScope(t *testing.T) {
	repo := NewPostgresNotificationRepository(newTestDB(t))
	seeded := seedNotifications(t, repo, 1, 1)

	// Another recipient cannot mark it.
	err := repo.MarkAsRead(2, seeded[0].ID)
	assert.True(t, apperr.IsNotFound(err))

	require.NoError(t, repo.MarkAsRead(1, seeded[0].ID))

	count, err := repo.GetUnreadCount(1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationMarkAllAsRead(t *testing.T) {
	repo := NewPostgresNotificationRepository(newTestDB(t))
	seedNotifications(t, repo, 1, 6)
	seedNotifications(t, repo, 2, 2)

	require.NoError(t, repo.MarkAllAsRead(1))

	count, err := repo.GetUnreadCount(1)
	require.NoError(t, err)
	assert.Zero(t, count)

	// The other recipient's records are untouched.
	otherCount, err := repo.GetUnreadCount(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), otherCount)
}

func TestNotificationDeleteScope(t *testing.T) {
	repo := NewPostgresNotificationRepository(newTestDB(t))
	seeded := seedNotifications(t, repo, 1, 2)

	err := repo.DeleteNotification(2, seeded[0].ID)
	assert.True(t, apperr.IsNotFound(err))

	require.NoError(t, repo.DeleteNotification(1, seeded[0].ID))

	_, total, err := repo.GetByRecipientID(1, 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	err = repo.DeleteNotification(1, seeded[0].ID)
	assert.True(t, apperr.IsNotFound(err))
}
