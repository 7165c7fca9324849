package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/apperr"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for the post aggregate. Every mutation
// targets a single document, so each call is atomic with respect to other
// writers of the same post. Like-set mutations use $addToSet/$pull and are
// therefore idempotent by construction.
type PostRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetFeed(ctx context.Context, viewerID uint, skip, limit int64) ([]models.Post, int64, error)
	GetPostsByAuthor(ctx context.Context, authorID uint, includePrivate bool, skip, limit int64) ([]models.Post, int64, error)
	SearchPosts(ctx context.Context, term string, skip, limit int64) ([]models.Post, int64, error)
	GetPostsByIDs(ctx context.Context, ids []string) ([]models.Post, error)
	UpdatePost(ctx context.Context, id string, content string, images []models.ImageRef, tags []string, editedAt time.Time) error
	SoftDeletePost(ctx context.Context, id string) error
	AddLike(ctx context.Context, id string, userID uint) error
	RemoveLike(ctx context.Context, id string, userID uint) error
	AppendComment(ctx context.Context, postID string, comment *models.Comment) error
	UpdateComment(ctx context.Context, postID, commentID, content string, editedAt time.Time) error
	RemoveComment(ctx context.Context, postID, commentID string) error
	AddCommentLike(ctx context.Context, postID, commentID string, userID uint) error
	RemoveCommentLike(ctx context.Context, postID, commentID string, userID uint) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// EnsureIndexes creates the text index backing search plus the sort/filter
// indexes used by feed queries.
func (r *MongoPostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "content", Value: "text"}, {Key: "tags", Value: "text"}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	return err
}

func objectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidInput("invalid post id")
	}
	return objID, nil
}

// CreatePost inserts a new post document
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post document by id, including soft-deleted ones.
// Callers decide whether a deleted post is visible.
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Post")
		}
		return nil, err
	}
	return &post, nil
}

func (r *MongoPostRepository) findPage(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Post, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetFeed returns non-deleted posts visible to the viewer (public posts plus
// the viewer's own), reverse-chronological.
func (r *MongoPostRepository) GetFeed(ctx context.Context, viewerID uint, skip, limit int64) ([]models.Post, int64, error) {
	filter := bson.M{
		"deleted": false,
		"$or": bson.A{
			bson.M{"visibility": models.VisibilityPublic},
			bson.M{"author_id": viewerID},
		},
	}
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findPage(ctx, filter, opts)
}

// GetPostsByAuthor returns an author's non-deleted posts, reverse-chronological.
func (r *MongoPostRepository) GetPostsByAuthor(ctx context.Context, authorID uint, includePrivate bool, skip, limit int64) ([]models.Post, int64, error) {
	filter := bson.M{"deleted": false, "author_id": authorID}
	if !includePrivate {
		filter["visibility"] = models.VisibilityPublic
	}
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findPage(ctx, filter, opts)
}

// SearchPosts runs a text search over public, non-deleted posts, ranked by
// text score with created_at as the tie-breaker. Identical inputs always
// produce the same ordering.
func (r *MongoPostRepository) SearchPosts(ctx context.Context, term string, skip, limit int64) ([]models.Post, int64, error) {
	filter := bson.M{
		"deleted":    false,
		"visibility": models.VisibilityPublic,
		"$text":      bson.M{"$search": term},
	}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "created_at", Value: -1},
		}).
		SetSkip(skip).SetLimit(limit)
	return r.findPage(ctx, filter, opts)
}

// GetPostsByIDs fetches non-deleted posts for a set of ids (liked-posts listing).
func (r *MongoPostRepository) GetPostsByIDs(ctx context.Context, ids []string) ([]models.Post, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue // dangling index entries are skipped, not fatal
		}
		objIDs = append(objIDs, objID)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}, "deleted": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// updateActive applies an update to a non-deleted post and maps a missing
// match to NotFound.
func (r *MongoPostRepository) updateActive(ctx context.Context, filter bson.M, update interface{}, resource string, opts ...*options.UpdateOptions) error {
	res, err := r.collection.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

// UpdatePost replaces the content fields and marks the post edited. Writing
// identical content still marks it edited.
func (r *MongoPostRepository) UpdatePost(ctx context.Context, id string, content string, images []models.ImageRef, tags []string, editedAt time.Time) error {
	objID, err := objectID(id)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"content":   content,
		"images":    images,
		"tags":      tags,
		"edited":    true,
		"edited_at": editedAt,
	}}
	return r.updateActive(ctx, bson.M{"_id": objID, "deleted": false}, update, "Post")
}

// SoftDeletePost flags the post deleted; comments and likes stay in place.
func (r *MongoPostRepository) SoftDeletePost(ctx context.Context, id string) error {
	objID, err := objectID(id)
	if err != nil {
		return err
	}
	return r.updateActive(ctx, bson.M{"_id": objID, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true}}, "Post")
}

// AddLike adds the user to the post's like-set ($addToSet, idempotent).
func (r *MongoPostRepository) AddLike(ctx context.Context, id string, userID uint) error {
	objID, err := objectID(id)
	if err != nil {
		return err
	}
	return r.updateActive(ctx, bson.M{"_id": objID, "deleted": false},
		bson.M{"$addToSet": bson.M{"liked_by": userID}}, "Post")
}

// RemoveLike removes the user from the post's like-set ($pull, idempotent).
func (r *MongoPostRepository) RemoveLike(ctx context.Context, id string, userID uint) error {
	objID, err := objectID(id)
	if err != nil {
		return err
	}
	return r.updateActive(ctx, bson.M{"_id": objID, "deleted": false},
		bson.M{"$pull": bson.M{"liked_by": userID}}, "Post")
}

// AppendComment appends to the embedded comment list, preserving insertion order.
func (r *MongoPostRepository) AppendComment(ctx context.Context, postID string, comment *models.Comment) error {
	objID, err := objectID(postID)
	if err != nil {
		return err
	}
	return r.updateActive(ctx, bson.M{"_id": objID, "deleted": false},
		bson.M{"$push": bson.M{"comments": comment}}, "Post")
}

// UpdateComment rewrites one embedded comment's content and marks it edited.
func (r *MongoPostRepository) UpdateComment(ctx context.Context, postID, commentID, content string, editedAt time.Time) error {
	objID, err := objectID(postID)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": objID, "deleted": false, "comments.id": commentID}
	update := bson.M{"$set": bson.M{
		"comments.$.content":   content,
		"comments.$.edited":    true,
		"comments.$.edited_at": editedAt,
	}}
	return r.updateActive(ctx, filter, update, "Comment")
}

// RemoveComment hard-removes the comment from the embedded list. There is no
// tombstone; notifications referencing the comment keep their dangling id.
func (r *MongoPostRepository) RemoveComment(ctx context.Context, postID, commentID string) error {
	objID, err := objectID(postID)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": objID, "deleted": false, "comments.id": commentID}
	update := bson.M{"$pull": bson.M{"comments": bson.M{"id": commentID}}}
	return r.updateActive(ctx, filter, update, "Comment")
}

// AddCommentLike adds the user to one comment's like-set.
func (r *MongoPostRepository) AddCommentLike(ctx context.Context, postID, commentID string, userID uint) error {
	objID, err := objectID(postID)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": objID, "deleted": false, "comments.id": commentID}
	update := bson.M{"$addToSet": bson.M{"comments.$.liked_by": userID}}
	return r.updateActive(ctx, filter, update, "Comment")
}

// RemoveCommentLike removes the user from one comment's like-set.
func (r *MongoPostRepository) RemoveCommentLike(ctx context.Context, postID, commentID string, userID uint) error {
	objID, err := objectID(postID)
	if err != nil {
		return err
	}
	filter := bson.M{"_id": objID, "deleted": false, "comments.id": commentID}
	update := bson.M{"$pull": bson.M{"comments.$.liked_by": userID}}
	return r.updateActive(ctx, filter, update, "Comment")
}
