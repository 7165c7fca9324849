package models

import "time"

// Comment is embedded in its parent Post document and has no existence
// outside it. The ID is a UUID unique within the parent post only.
type Comment struct {
	ID        string     `json:"id" bson:"id"`
	AuthorID  uint       `json:"author_id" bson:"author_id"`
	Content   string     `json:"content" bson:"content"`
	LikedBy   []uint     `json:"-" bson:"liked_by"`
	Edited    bool       `json:"edited" bson:"edited"`
	EditedAt  *time.Time `json:"edited_at,omitempty" bson:"edited_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
}

// LikeCount returns the size of the comment's like-set.
func (c *Comment) LikeCount() int { return len(c.LikedBy) }

// IsLikedBy reports whether userID is a member of the comment's like-set.
func (c *Comment) IsLikedBy(userID uint) bool {
	for _, id := range c.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
