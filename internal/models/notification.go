package models

import "time"

// Notification kinds.
const (
	NotificationLike       = "like"
	NotificationComment    = "comment"
	NotificationFollow     = "follow"
	NotificationMention    = "mention"
	NotificationPostShared = "post_shared"
)

// Notification represents a user notification (PostgreSQL). PostID and
// CommentID are weak references held for display only: the targets may have
// been removed without invalidating the record.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	SenderID    uint      `json:"sender_id" gorm:"index"`
	Kind        string    `json:"kind" gorm:"size:30;index"`
	PostID      string    `json:"post_id,omitempty"`
	CommentID   string    `json:"comment_id,omitempty"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
