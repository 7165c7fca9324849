package services

import (
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/repositories"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/logger"
)

// NotificationPage is the envelope returned by List. UnreadCount is always
// computed by an independent count query, so it stays correct regardless of
// the unreadOnly filter or the requested page.
type NotificationPage struct {
	Items       []models.Notification `json:"items"`
	UnreadCount int64                 `json:"unreadCount"`
	models.PageMeta
}

// NotificationService is the stateless notification dispatcher: it holds no
// state beyond the records themselves and never stores counters.
type NotificationService struct {
	repo   repositories.NotificationRepository
	logger *logger.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(repo repositories.NotificationRepository, logger *logger.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// Notify creates an unread notification for the recipient. Self-triggered
// actions are suppressed here as a guard clause, not left to caller
// discipline: notify(U, U, ...) produces zero records.
func (s *NotificationService) Notify(recipient, sender uint, kind, message, postID, commentID string) error {
	if recipient == sender {
		return nil
	}

	return s.repo.CreateNotification(&models.Notification{
		RecipientID: recipient,
		SenderID:    sender,
		Kind:        kind,
		PostID:      postID,
		CommentID:   commentID,
		Message:     message,
		IsRead:      false,
		CreatedAt:   time.Now(),
	})
}

// List returns a page of the recipient's notifications, newest first.
func (s *NotificationService) List(recipient uint, page, pageSize int, unreadOnly bool) (*NotificationPage, error) {
	page, pageSize = NormalizePage(page, pageSize)

	items, total, err := s.repo.GetByRecipientID(recipient, page, pageSize, unreadOnly)
	if err != nil {
		return nil, err
	}

	unread, err := s.repo.GetUnreadCount(recipient)
	if err != nil {
		return nil, err
	}

	return &NotificationPage{
		Items:       items,
		UnreadCount: unread,
		PageMeta:    models.NewPageMeta(page, pageSize, total),
	}, nil
}

// UnreadCount returns the recipient's current number of unread records.
func (s *NotificationService) UnreadCount(recipient uint) (int64, error) {
	return s.repo.GetUnreadCount(recipient)
}

// MarkRead transitions one of the recipient's notifications to read.
// NotFound when the id does not belong to that recipient.
func (s *NotificationService) MarkRead(recipient, id uint) error {
	return s.repo.MarkAsRead(recipient, id)
}

// MarkAllRead transitions all of the recipient's unread notifications to
// read; the unread count becomes zero as an immediate consequence.
func (s *NotificationService) MarkAllRead(recipient uint) error {
	return s.repo.MarkAllAsRead(recipient)
}

// Delete removes one of the recipient's notifications. Unread counts need no
// adjustment because they are always recomputed.
func (s *NotificationService) Delete(recipient, id uint) error {
	return s.repo.DeleteNotification(recipient, id)
}
