package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post visibility values.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Maximum content lengths, enforced before any mutation.
const (
	MaxPostContentLen    = 2000
	MaxCommentContentLen = 1000
)

// ImageRef is an opaque url+id pair returned by the object store. The core
// never interprets either field.
type ImageRef struct {
	URL string `json:"url" bson:"url"`
	ID  string `json:"id" bson:"id"`
}

// Post is the content aggregate stored as a single MongoDB document.
// Comments and like-sets are embedded so that every read-modify-write on the
// aggregate stays within one document update.
type Post struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AuthorID   uint               `json:"author_id" bson:"author_id"`
	Content    string             `json:"content" bson:"content"`
	Images     []ImageRef         `json:"images,omitempty" bson:"images,omitempty"`
	Tags       []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Visibility string             `json:"visibility" bson:"visibility"`
	LikedBy    []uint             `json:"-" bson:"liked_by"`
	Comments   []Comment          `json:"comments" bson:"comments"`
	Deleted    bool               `json:"-" bson:"deleted"`
	Edited     bool               `json:"edited" bson:"edited"`
	EditedAt   *time.Time         `json:"edited_at,omitempty" bson:"edited_at,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// LikeCount returns the size of the post's like-set.
func (p *Post) LikeCount() int { return len(p.LikedBy) }

// IsLikedBy reports whether userID is a member of the post's like-set.
func (p *Post) IsLikedBy(userID uint) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// FindComment returns the embedded comment with the given id, or nil.
func (p *Post) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content    string     `json:"content" validate:"required,min=1,max=2000"`
	Images     []ImageRef `json:"images,omitempty" validate:"omitempty,dive"`
	Tags       []string   `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
	Visibility string     `json:"visibility,omitempty" validate:"omitempty,oneof=public private"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// Nil slices / empty content mean "leave unchanged".
type UpdatePostRequest struct {
	Content string     `json:"content,omitempty" validate:"omitempty,min=1,max=2000"`
	Images  []ImageRef `json:"images,omitempty" validate:"omitempty,dive"`
	Tags    []string   `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}
