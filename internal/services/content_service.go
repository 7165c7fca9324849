package services

import (
	"context"
	"strings"
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/apperr"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/repositories"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/logger"
)

// Pagination bounds shared by all list operations.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// CommentView is a comment enriched with author info and viewer-relative flags.
type CommentView struct {
	ID        string             `json:"id"`
	Author    models.UserCompact `json:"author"`
	Content   string             `json:"content"`
	LikeCount int                `json:"like_count"`
	IsLiked   bool               `json:"is_liked"`
	Edited    bool               `json:"edited"`
	EditedAt  *time.Time         `json:"edited_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// PostView is a post enriched with author info and viewer-relative flags.
// IsLiked is computed against the viewer at read time and never stored.
type PostView struct {
	ID           string             `json:"id"`
	Author       models.UserCompact `json:"author"`
	Content      string             `json:"content"`
	Images       []models.ImageRef  `json:"images,omitempty"`
	Tags         []string           `json:"tags,omitempty"`
	Visibility   string             `json:"visibility"`
	LikeCount    int                `json:"like_count"`
	IsLiked      bool               `json:"is_liked"`
	CommentCount int                `json:"comment_count"`
	Comments     []CommentView      `json:"comments,omitempty"`
	Edited       bool               `json:"edited"`
	EditedAt     *time.Time         `json:"edited_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// PostPage is the pagination envelope for post listings.
type PostPage struct {
	Items []PostView `json:"items"`
	models.PageMeta
}

// ContentService implements the content store operations on top of the post
// aggregate repository. Validation always happens before any mutation.
type ContentService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	logger   *logger.Logger
}

// NewContentService creates a new ContentService
func NewContentService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, logger *logger.Logger) *ContentService {
	return &ContentService{postRepo: postRepo, userRepo: userRepo, logger: logger}
}

// NormalizePage clamps page/pageSize into their valid ranges.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// normalizeTags trims, lower-cases and dedupes tags, dropping empties.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func validatePostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return apperr.InvalidInput("post content must not be empty")
	}
	if len(content) > models.MaxPostContentLen {
		return apperr.InvalidInput("post content exceeds 2000 characters")
	}
	return nil
}

// CreatePost validates and persists a new post with empty like and comment
// collections. No side effects beyond persistence.
func (s *ContentService) CreatePost(ctx context.Context, authorID uint, req *models.CreatePostRequest) (*models.Post, error) {
	if err := validatePostContent(req.Content); err != nil {
		return nil, err
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if visibility != models.VisibilityPublic && visibility != models.VisibilityPrivate {
		return nil, apperr.InvalidInput("visibility must be public or private")
	}

	post := &models.Post{
		AuthorID:   authorID,
		Content:    req.Content,
		Images:     req.Images,
		Tags:       normalizeTags(req.Tags),
		Visibility: visibility,
		LikedBy:    []uint{},
		Comments:   []models.Comment{},
		CreatedAt:  time.Now(),
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// activePost fetches a post and maps soft-deleted ones to NotFound.
func (s *ContentService) activePost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Deleted {
		return nil, apperr.NotFound("Post")
	}
	return post, nil
}

// GetPost returns one post enriched for the viewer. Private posts are only
// visible to their author or an admin; everyone else sees NotFound, so the
// existence of a private post is never leaked.
func (s *ContentService) GetPost(ctx context.Context, viewerID uint, id string) (*PostView, error) {
	post, err := s.activePost(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.Visibility == models.VisibilityPrivate && post.AuthorID != viewerID {
		viewer, err := s.userRepo.GetUserByID(viewerID)
		if err != nil || !viewer.IsAdmin() {
			return nil, apperr.NotFound("Post")
		}
	}

	view := s.buildView(post, viewerID, s.authorMap([]models.Post{*post}), true)
	return &view, nil
}

// GetFeed returns the viewer's reverse-chronological feed page.
func (s *ContentService) GetFeed(ctx context.Context, viewerID uint, page, pageSize int) (*PostPage, error) {
	page, pageSize = NormalizePage(page, pageSize)
	skip := int64((page - 1) * pageSize)

	posts, total, err := s.postRepo.GetFeed(ctx, viewerID, skip, int64(pageSize))
	if err != nil {
		return nil, err
	}
	return s.buildPage(posts, viewerID, page, pageSize, total), nil
}

// SearchPosts runs a relevance-ranked search over public posts.
func (s *ContentService) SearchPosts(ctx context.Context, viewerID uint, term string, page, pageSize int) (*PostPage, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperr.InvalidInput("search term must not be empty")
	}

	page, pageSize = NormalizePage(page, pageSize)
	skip := int64((page - 1) * pageSize)

	posts, total, err := s.postRepo.SearchPosts(ctx, term, skip, int64(pageSize))
	if err != nil {
		return nil, err
	}
	return s.buildPage(posts, viewerID, page, pageSize, total), nil
}

// GetPostsByAuthor returns an author's posts; private ones are included only
// when the viewer is the author or an admin.
func (s *ContentService) GetPostsByAuthor(ctx context.Context, viewerID, authorID uint, page, pageSize int) (*PostPage, error) {
	includePrivate := viewerID == authorID
	if !includePrivate {
		if viewer, err := s.userRepo.GetUserByID(viewerID); err == nil && viewer.IsAdmin() {
			includePrivate = true
		}
	}

	page, pageSize = NormalizePage(page, pageSize)
	skip := int64((page - 1) * pageSize)

	posts, total, err := s.postRepo.GetPostsByAuthor(ctx, authorID, includePrivate, skip, int64(pageSize))
	if err != nil {
		return nil, err
	}
	return s.buildPage(posts, viewerID, page, pageSize, total), nil
}

// GetPostsByIDs resolves an ordered id list into viewer-relative views.
// Deleted posts and private posts of other authors are silently dropped.
func (s *ContentService) GetPostsByIDs(ctx context.Context, viewerID uint, ids []string) ([]PostView, error) {
	if len(ids) == 0 {
		return []PostView{}, nil
	}

	posts, err := s.postRepo.GetPostsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Post, len(posts))
	for i := range posts {
		byID[posts[i].ID.Hex()] = &posts[i]
	}

	visible := make([]models.Post, 0, len(posts))
	for _, id := range ids {
		post, ok := byID[id]
		if !ok {
			continue
		}
		if post.Visibility == models.VisibilityPrivate && post.AuthorID != viewerID {
			continue
		}
		visible = append(visible, *post)
	}

	authors := s.authorMap(visible)
	items := make([]PostView, len(visible))
	for i := range visible {
		items[i] = s.buildView(&visible[i], viewerID, authors, false)
	}
	return items, nil
}

// UpdatePost applies partial content-field updates. Any accepted write marks
// the post edited, even one carrying identical content.
func (s *ContentService) UpdatePost(ctx context.Context, editorID uint, id string, req *models.UpdatePostRequest) (*PostView, error) {
	post, err := s.activePost(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != editorID {
		editor, err := s.userRepo.GetUserByID(editorID)
		if err != nil {
			return nil, err
		}
		if !editor.IsAdmin() {
			return nil, apperr.Forbidden("only the author or an admin can edit this post")
		}
	}

	content := post.Content
	if req.Content != "" {
		content = req.Content
	}
	if err := validatePostContent(content); err != nil {
		return nil, err
	}

	images := post.Images
	if req.Images != nil {
		images = req.Images
	}
	tags := post.Tags
	if req.Tags != nil {
		tags = normalizeTags(req.Tags)
	}

	if err := s.postRepo.UpdatePost(ctx, id, content, images, tags, time.Now()); err != nil {
		return nil, err
	}

	updated, err := s.activePost(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.buildView(updated, editorID, s.authorMap([]models.Post{*updated}), true)
	return &view, nil
}

// SoftDeletePost flags the post deleted; retained comments and likes stay in
// storage but the post disappears from every read path.
func (s *ContentService) SoftDeletePost(ctx context.Context, actorID uint, id string) error {
	post, err := s.activePost(ctx, id)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID {
		actor, err := s.userRepo.GetUserByID(actorID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() {
			return apperr.Forbidden("only the author or an admin can delete this post")
		}
	}

	return s.postRepo.SoftDeletePost(ctx, id)
}

// authorMap resolves the distinct author ids of a post batch to compact users.
// Missing authors degrade to an empty compact record, never an error.
func (s *ContentService) authorMap(posts []models.Post) map[uint]models.UserCompact {
	authors := make(map[uint]models.UserCompact)
	for i := range posts {
		collectAuthors(&posts[i], authors, s.userRepo)
	}
	return authors
}

func collectAuthors(post *models.Post, authors map[uint]models.UserCompact, userRepo repositories.UserRepository) {
	resolve := func(id uint) {
		if _, ok := authors[id]; ok {
			return
		}
		if user, err := userRepo.GetUserByID(id); err == nil {
			authors[id] = user.ToCompact()
		} else {
			authors[id] = models.UserCompact{ID: id}
		}
	}
	resolve(post.AuthorID)
	for i := range post.Comments {
		resolve(post.Comments[i].AuthorID)
	}
}

func (s *ContentService) buildView(post *models.Post, viewerID uint, authors map[uint]models.UserCompact, withComments bool) PostView {
	view := PostView{
		ID:           post.ID.Hex(),
		Author:       authors[post.AuthorID],
		Content:      post.Content,
		Images:       post.Images,
		Tags:         post.Tags,
		Visibility:   post.Visibility,
		LikeCount:    post.LikeCount(),
		IsLiked:      post.IsLikedBy(viewerID),
		CommentCount: len(post.Comments),
		Edited:       post.Edited,
		EditedAt:     post.EditedAt,
		CreatedAt:    post.CreatedAt,
	}
	if withComments {
		view.Comments = make([]CommentView, len(post.Comments))
		for i := range post.Comments {
			c := &post.Comments[i]
			view.Comments[i] = CommentView{
				ID:        c.ID,
				Author:    authors[c.AuthorID],
				Content:   c.Content,
				LikeCount: c.LikeCount(),
				IsLiked:   c.IsLikedBy(viewerID),
				Edited:    c.Edited,
				EditedAt:  c.EditedAt,
				CreatedAt: c.CreatedAt,
			}
		}
	}
	return view
}

func (s *ContentService) buildPage(posts []models.Post, viewerID uint, page, pageSize int, total int64) *PostPage {
	authors := s.authorMap(posts)
	items := make([]PostView, len(posts))
	for i := range posts {
		items[i] = s.buildView(&posts[i], viewerID, authors, false)
	}
	return &PostPage{
		Items:    items,
		PageMeta: models.NewPageMeta(page, pageSize, total),
	}
}
