package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/apperr"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/repositories"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9]+)`)

// ReactionService orchestrates user-facing reactions across the content and
// identity stores. The toggle decision for likes is always derived from
// current set membership, never from client-declared intent, and every
// successful state change dispatches its notification after the mutation has
// committed.
type ReactionService struct {
	postRepo   repositories.PostRepository
	userRepo   repositories.UserRepository
	likeRepo   repositories.LikeRepository
	followRepo repositories.FollowRepository
	notifier   *NotificationService
	logger     *logger.Logger
}

// NewReactionService creates a new ReactionService
func NewReactionService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
	followRepo repositories.FollowRepository,
	notifier *NotificationService,
	logger *logger.Logger,
) *ReactionService {
	return &ReactionService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		likeRepo:   likeRepo,
		followRepo: followRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (s *ReactionService) activePost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Deleted {
		return nil, apperr.NotFound("Post")
	}
	return post, nil
}

// dispatch sends a notification and logs failures without surfacing them:
// the triggering mutation has already committed and stays authoritative.
func (s *ReactionService) dispatch(recipient, sender uint, kind, message, postID, commentID string) {
	if err := s.notifier.Notify(recipient, sender, kind, message, postID, commentID); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"recipient_id": recipient,
			"kind":         kind,
		}).Error("Failed to dispatch notification")
	}
}

func (s *ReactionService) username(userID uint) string {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return "Someone"
	}
	return user.Username
}

// LikePost adds the user to the post's like-set and the user's liked-posts
// index. Liking an already-liked post is a no-op success. Returns the
// resulting like count.
func (s *ReactionService) LikePost(ctx context.Context, postID string, userID uint) (int, error) {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return 0, err
	}

	if post.IsLikedBy(userID) {
		return post.LikeCount(), nil
	}

	if err := s.postRepo.AddLike(ctx, postID, userID); err != nil {
		return 0, err
	}
	if err := s.likeRepo.AddLike(postID, userID); err != nil {
		// Reverse the aggregate half so the action reads as not applied.
		if rbErr := s.postRepo.RemoveLike(ctx, postID, userID); rbErr != nil {
			s.logger.WithError(rbErr).WithField("post_id", postID).Error("Failed to reverse like after index failure")
		}
		return 0, err
	}

	s.dispatch(post.AuthorID, userID, models.NotificationLike,
		fmt.Sprintf("%s liked your post", s.username(userID)), postID, "")

	return post.LikeCount() + 1, nil
}

// UnlikePost removes the user from both like structures. Unliking a post the
// user never liked is a no-op success.
func (s *ReactionService) UnlikePost(ctx context.Context, postID string, userID uint) (int, error) {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return 0, err
	}

	if !post.IsLikedBy(userID) {
		return post.LikeCount(), nil
	}

	if err := s.postRepo.RemoveLike(ctx, postID, userID); err != nil {
		return 0, err
	}
	if err := s.likeRepo.RemoveLike(postID, userID); err != nil {
		if rbErr := s.postRepo.AddLike(ctx, postID, userID); rbErr != nil {
			s.logger.WithError(rbErr).WithField("post_id", postID).Error("Failed to reverse unlike after index failure")
		}
		return 0, err
	}

	return post.LikeCount() - 1, nil
}

// ToggleLike decides like vs unlike from current membership. Concurrent
// duplicate requests converge to the same final membership because both
// halves are idempotent set operations.
func (s *ReactionService) ToggleLike(ctx context.Context, postID string, userID uint) (bool, int, error) {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return false, 0, err
	}

	if post.IsLikedBy(userID) {
		count, err := s.UnlikePost(ctx, postID, userID)
		return false, count, err
	}
	count, err := s.LikePost(ctx, postID, userID)
	return true, count, err
}

// AddComment appends a comment to the post and notifies the post author.
// @username mentions in the content notify each resolved user once.
func (s *ReactionService) AddComment(ctx context.Context, postID string, authorID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.InvalidInput("comment content must not be empty")
	}
	if len(content) > models.MaxCommentContentLen {
		return nil, apperr.InvalidInput("comment content exceeds 1000 characters")
	}

	post, err := s.activePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		LikedBy:   []uint{},
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.AppendComment(ctx, postID, comment); err != nil {
		return nil, err
	}

	actorName := s.username(authorID)
	s.dispatch(post.AuthorID, authorID, models.NotificationComment,
		fmt.Sprintf("%s commented on your post", actorName), postID, comment.ID)
	s.notifyMentions(post, authorID, actorName, content, comment.ID)

	return comment, nil
}

// notifyMentions resolves @username tokens. The post author is skipped (they
// already received the comment notification) and self-mentions are dropped by
// the dispatcher's own guard.
func (s *ReactionService) notifyMentions(post *models.Post, actorID uint, actorName, content, commentID string) {
	notified := map[uint]bool{post.AuthorID: true}
	for _, match := range mentionPattern.FindAllStringSubmatch(content, -1) {
		user, err := s.userRepo.GetUserByUsername(match[1])
		if err != nil || notified[user.ID] {
			continue
		}
		notified[user.ID] = true
		s.dispatch(user.ID, actorID, models.NotificationMention,
			fmt.Sprintf("%s mentioned you in a comment", actorName), post.ID.Hex(), commentID)
	}
}

// UpdateComment rewrites a comment's content; only the comment author or an
// admin may edit, and any accepted write marks the comment edited.
func (s *ReactionService) UpdateComment(ctx context.Context, postID, commentID string, editorID uint, content string) error {
	if strings.TrimSpace(content) == "" {
		return apperr.InvalidInput("comment content must not be empty")
	}
	if len(content) > models.MaxCommentContentLen {
		return apperr.InvalidInput("comment content exceeds 1000 characters")
	}

	post, err := s.activePost(ctx, postID)
	if err != nil {
		return err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return apperr.NotFound("Comment")
	}
	if comment.AuthorID != editorID {
		editor, err := s.userRepo.GetUserByID(editorID)
		if err != nil {
			return err
		}
		if !editor.IsAdmin() {
			return apperr.Forbidden("only the comment author or an admin can edit this comment")
		}
	}

	return s.postRepo.UpdateComment(ctx, postID, commentID, content, time.Now())
}

// RemoveComment hard-removes the comment from the embedded list. Allowed for
// the comment author, the post author, or an admin. Notifications referencing
// the comment are left in place (weak reference, no cascade).
func (s *ReactionService) RemoveComment(ctx context.Context, postID, commentID string, actorID uint) error {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return apperr.NotFound("Comment")
	}

	if comment.AuthorID != actorID && post.AuthorID != actorID {
		actor, err := s.userRepo.GetUserByID(actorID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() {
			return apperr.Forbidden("only the comment author, post author or an admin can remove this comment")
		}
	}

	return s.postRepo.RemoveComment(ctx, postID, commentID)
}

// ToggleCommentLike flips the user's membership in one comment's like-set.
// Same idempotent-set semantics as post likes, scoped to the one comment.
func (s *ReactionService) ToggleCommentLike(ctx context.Context, postID, commentID string, userID uint) (bool, int, error) {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return false, 0, err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return false, 0, apperr.NotFound("Comment")
	}

	if comment.IsLikedBy(userID) {
		if err := s.postRepo.RemoveCommentLike(ctx, postID, commentID, userID); err != nil {
			return false, 0, err
		}
		return false, comment.LikeCount() - 1, nil
	}

	if err := s.postRepo.AddCommentLike(ctx, postID, commentID, userID); err != nil {
		return false, 0, err
	}

	s.dispatch(comment.AuthorID, userID, models.NotificationLike,
		fmt.Sprintf("%s liked your comment", s.username(userID)), postID, commentID)

	return true, comment.LikeCount() + 1, nil
}

// Follow adds a follow-graph edge. Self-follows are rejected so a user's own
// id never enters their follower or following set; re-following is a no-op
// and does not re-notify.
func (s *ReactionService) Follow(followerID, targetID uint) error {
	if followerID == targetID {
		return apperr.InvalidInput("cannot follow yourself")
	}

	target, err := s.userRepo.GetUserByID(targetID)
	if err != nil {
		return err
	}

	following, err := s.followRepo.IsFollowing(followerID, targetID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	if err := s.followRepo.CreateFollow(&models.Follow{
		FollowerID:  followerID,
		FollowingID: targetID,
		CreatedAt:   time.Now(),
	}); err != nil {
		return err
	}

	s.dispatch(target.ID, followerID, models.NotificationFollow,
		fmt.Sprintf("%s started following you", s.username(followerID)), "", "")

	return nil
}

// Unfollow removes the edge; removing a missing edge is a no-op success.
func (s *ReactionService) Unfollow(followerID, targetID uint) error {
	if followerID == targetID {
		return apperr.InvalidInput("cannot unfollow yourself")
	}
	_, err := s.followRepo.DeleteFollow(followerID, targetID)
	return err
}

// SharePost notifies the author of a public post that the user shared it.
func (s *ReactionService) SharePost(ctx context.Context, postID string, userID uint) error {
	post, err := s.activePost(ctx, postID)
	if err != nil {
		return err
	}
	if post.Visibility != models.VisibilityPublic && post.AuthorID != userID {
		return apperr.NotFound("Post")
	}

	s.dispatch(post.AuthorID, userID, models.NotificationPostShared,
		fmt.Sprintf("%s shared your post", s.username(userID)), postID, "")

	return nil
}
