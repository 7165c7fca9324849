package models

import "time"

// Like is the per-user liked-posts index kept in PostgreSQL alongside the
// like-set embedded in the Post document. PostID is the post's MongoDB
// ObjectID as a string.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_like_post_user"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_like_post_user"`
	CreatedAt time.Time `json:"created_at"`
}
