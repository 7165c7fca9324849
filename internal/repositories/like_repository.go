package repositories

import (
	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"gorm.io/gorm"
)

// LikeRepository maintains the per-user liked-posts index. Both mutations are
// idempotent: re-adding an existing entry or removing a missing one succeeds
// without effect.
type LikeRepository interface {
	AddLike(postID string, userID uint) error
	RemoveLike(postID string, userID uint) error
	HasUserLikedPost(postID string, userID uint) (bool, error)
	GetLikedPostIDs(userID uint) ([]string, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// AddLike inserts the index entry if it is not already present.
func (r *PostgresLikeRepository) AddLike(postID string, userID uint) error {
	var like models.Like
	return r.db.Where(models.Like{PostID: postID, UserID: userID}).FirstOrCreate(&like).Error
}

// RemoveLike deletes the index entry; removing a missing entry is a no-op.
func (r *PostgresLikeRepository) RemoveLike(postID string, userID uint) error {
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{}).Error
}

// HasUserLikedPost checks index membership for a post/user pair.
func (r *PostgresLikeRepository) HasUserLikedPost(postID string, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikedPostIDs returns the ids of all posts the user has liked,
// most recent first.
func (r *PostgresLikeRepository) GetLikedPostIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Like{}).Where("user_id = ?", userID).
		Order("created_at DESC").Pluck("post_id", &ids).Error
	return ids, err
}
