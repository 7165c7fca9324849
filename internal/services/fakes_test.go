package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/apperr"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logger.Logger {
	return logger.NewLogger()
}

// --- user repository fake ---

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) addUser(u models.User) *models.User {
	if u.ID == 0 {
		u.ID = r.nextID
	}
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	r.users[u.ID] = &u
	return &u
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperr.NotFound("User")
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) SearchUsers(query string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if !u.Active {
			continue
		}
		if strings.Contains(u.Username, query) || strings.Contains(u.Email, query) {
			out = append(out, *u)
		}
	}
	return out, nil
}

// --- post repository fake ---

type fakePostRepo struct {
	posts map[string]*models.Post
	order []string

	failAddLike    error
	failRemoveLike error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func clonePost(p *models.Post) *models.Post {
	clone := *p
	clone.LikedBy = append([]uint(nil), p.LikedBy...)
	clone.Comments = make([]models.Comment, len(p.Comments))
	for i, c := range p.Comments {
		clone.Comments[i] = c
		clone.Comments[i].LikedBy = append([]uint(nil), c.LikedBy...)
	}
	return &clone
}

func (r *fakePostRepo) active(id string) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok || p.Deleted {
		return nil, apperr.NotFound("Post")
	}
	return p, nil
}

func (r *fakePostRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakePostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	r.posts[post.ID.Hex()] = clonePost(post)
	r.order = append(r.order, post.ID.Hex())
	return nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	return clonePost(p), nil
}

func (r *fakePostRepo) list(filter func(*models.Post) bool, skip, limit int64) ([]models.Post, int64) {
	var matched []models.Post
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.posts[r.order[i]]
		if filter(p) {
			matched = append(matched, *clonePost(p))
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if skip >= total {
		return nil, total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return matched[skip:end], total
}

func (r *fakePostRepo) GetFeed(ctx context.Context, viewerID uint, skip, limit int64) ([]models.Post, int64, error) {
	posts, total := r.list(func(p *models.Post) bool {
		return !p.Deleted && (p.Visibility == models.VisibilityPublic || p.AuthorID == viewerID)
	}, skip, limit)
	return posts, total, nil
}

func (r *fakePostRepo) GetPostsByAuthor(ctx context.Context, authorID uint, includePrivate bool, skip, limit int64) ([]models.Post, int64, error) {
	posts, total := r.list(func(p *models.Post) bool {
		if p.Deleted || p.AuthorID != authorID {
			return false
		}
		return includePrivate || p.Visibility == models.VisibilityPublic
	}, skip, limit)
	return posts, total, nil
}

func (r *fakePostRepo) SearchPosts(ctx context.Context, term string, skip, limit int64) ([]models.Post, int64, error) {
	term = strings.ToLower(term)
	posts, total := r.list(func(p *models.Post) bool {
		if p.Deleted || p.Visibility != models.VisibilityPublic {
			return false
		}
		if strings.Contains(strings.ToLower(p.Content), term) {
			return true
		}
		for _, t := range p.Tags {
			if strings.Contains(t, term) {
				return true
			}
		}
		return false
	}, skip, limit)
	return posts, total, nil
}

func (r *fakePostRepo) GetPostsByIDs(ctx context.Context, ids []string) ([]models.Post, error) {
	var out []models.Post
	for _, id := range ids {
		if p, ok := r.posts[id]; ok && !p.Deleted {
			out = append(out, *clonePost(p))
		}
	}
	return out, nil
}

func (r *fakePostRepo) UpdatePost(ctx context.Context, id string, content string, images []models.ImageRef, tags []string, editedAt time.Time) error {
	p, err := r.active(id)
	if err != nil {
		return err
	}
	p.Content = content
	p.Images = images
	p.Tags = tags
	p.Edited = true
	p.EditedAt = &editedAt
	return nil
}

func (r *fakePostRepo) SoftDeletePost(ctx context.Context, id string) error {
	p, err := r.active(id)
	if err != nil {
		return err
	}
	p.Deleted = true
	return nil
}

func (r *fakePostRepo) AddLike(ctx context.Context, id string, userID uint) error {
	if r.failAddLike != nil {
		return r.failAddLike
	}
	p, err := r.active(id)
	if err != nil {
		return err
	}
	if !p.IsLikedBy(userID) {
		p.LikedBy = append(p.LikedBy, userID)
	}
	return nil
}

func (r *fakePostRepo) RemoveLike(ctx context.Context, id string, userID uint) error {
	if r.failRemoveLike != nil {
		return r.failRemoveLike
	}
	p, err := r.active(id)
	if err != nil {
		return err
	}
	for i, uid := range p.LikedBy {
		if uid == userID {
			p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakePostRepo) AppendComment(ctx context.Context, postID string, comment *models.Comment) error {
	p, err := r.active(postID)
	if err != nil {
		return err
	}
	p.Comments = append(p.Comments, *comment)
	return nil
}

func (r *fakePostRepo) comment(postID, commentID string) (*models.Comment, error) {
	p, err := r.active(postID)
	if err != nil {
		return nil, err
	}
	if c := p.FindComment(commentID); c != nil {
		return c, nil
	}
	return nil, apperr.NotFound("Comment")
}

func (r *fakePostRepo) UpdateComment(ctx context.Context, postID, commentID, content string, editedAt time.Time) error {
	c, err := r.comment(postID, commentID)
	if err != nil {
		return err
	}
	c.Content = content
	c.Edited = true
	c.EditedAt = &editedAt
	return nil
}

func (r *fakePostRepo) RemoveComment(ctx context.Context, postID, commentID string) error {
	p, err := r.active(postID)
	if err != nil {
		return err
	}
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Comment")
}

func (r *fakePostRepo) AddCommentLike(ctx context.Context, postID, commentID string, userID uint) error {
	c, err := r.comment(postID, commentID)
	if err != nil {
		return err
	}
	if !c.IsLikedBy(userID) {
		c.LikedBy = append(c.LikedBy, userID)
	}
	return nil
}

func (r *fakePostRepo) RemoveCommentLike(ctx context.Context, postID, commentID string, userID uint) error {
	c, err := r.comment(postID, commentID)
	if err != nil {
		return err
	}
	for i, uid := range c.LikedBy {
		if uid == userID {
			c.LikedBy = append(c.LikedBy[:i], c.LikedBy[i+1:]...)
			break
		}
	}
	return nil
}

// --- like index fake ---

type fakeLikeRepo struct {
	likes   map[string]map[uint]bool
	order   []models.Like
	failAdd error
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]map[uint]bool)}
}

func (r *fakeLikeRepo) AddLike(postID string, userID uint) error {
	if r.failAdd != nil {
		return r.failAdd
	}
	if r.likes[postID] == nil {
		r.likes[postID] = make(map[uint]bool)
	}
	if !r.likes[postID][userID] {
		r.likes[postID][userID] = true
		r.order = append(r.order, models.Like{PostID: postID, UserID: userID})
	}
	return nil
}

func (r *fakeLikeRepo) RemoveLike(postID string, userID uint) error {
	delete(r.likes[postID], userID)
	for i := range r.order {
		if r.order[i].PostID == postID && r.order[i].UserID == userID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeLikeRepo) HasUserLikedPost(postID string, userID uint) (bool, error) {
	return r.likes[postID][userID], nil
}

func (r *fakeLikeRepo) GetLikedPostIDs(userID uint) ([]string, error) {
	var out []string
	for i := len(r.order) - 1; i >= 0; i-- {
		if r.order[i].UserID == userID {
			out = append(out, r.order[i].PostID)
		}
	}
	return out, nil
}

// --- follow graph fake ---

type fakeFollowRepo struct {
	edges map[[2]uint]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[[2]uint]bool)}
}

func (r *fakeFollowRepo) CreateFollow(follow *models.Follow) error {
	r.edges[[2]uint{follow.FollowerID, follow.FollowingID}] = true
	return nil
}

func (r *fakeFollowRepo) DeleteFollow(followerID, followingID uint) (bool, error) {
	key := [2]uint{followerID, followingID}
	existed := r.edges[key]
	delete(r.edges, key)
	return existed, nil
}

func (r *fakeFollowRepo) IsFollowing(followerID, followingID uint) (bool, error) {
	return r.edges[[2]uint{followerID, followingID}], nil
}

func (r *fakeFollowRepo) GetFollowers(userID uint) ([]models.User, error) {
	return nil, nil
}

func (r *fakeFollowRepo) GetFollowing(userID uint) ([]models.User, error) {
	return nil, nil
}

func (r *fakeFollowRepo) GetFollowersCount(userID uint) (int64, error) {
	var n int64
	for edge := range r.edges {
		if edge[1] == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeFollowRepo) GetFollowingCount(userID uint) (int64, error) {
	var n int64
	for edge := range r.edges {
		if edge[0] == userID {
			n++
		}
	}
	return n, nil
}

// --- notification store fake ---

type fakeNotificationRepo struct {
	nextID  uint
	records []models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) CreateNotification(n *models.Notification) error {
	n.ID = r.nextID
	r.nextID++
	r.records = append(r.records, *n)
	return nil
}

func (r *fakeNotificationRepo) forRecipient(recipientID uint, unreadOnly bool) []models.Notification {
	var out []models.Notification
	for i := len(r.records) - 1; i >= 0; i-- {
		n := r.records[i]
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (r *fakeNotificationRepo) GetByRecipientID(recipientID uint, page, limit int, unreadOnly bool) ([]models.Notification, int64, error) {
	all := r.forRecipient(recipientID, unreadOnly)
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	return int64(len(r.forRecipient(recipientID, true))), nil
}

func (r *fakeNotificationRepo) MarkAsRead(recipientID, notificationID uint) error {
	for i := range r.records {
		if r.records[i].ID == notificationID && r.records[i].RecipientID == recipientID {
			r.records[i].IsRead = true
			return nil
		}
	}
	return apperr.NotFound("Notification")
}

func (r *fakeNotificationRepo) MarkAllAsRead(recipientID uint) error {
	for i := range r.records {
		if r.records[i].RecipientID == recipientID {
			r.records[i].IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) DeleteNotification(recipientID, notificationID uint) error {
	for i := range r.records {
		if r.records[i].ID == notificationID && r.records[i].RecipientID == recipientID {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Notification")
}

// --- mailer fake ---

type fakeMailer struct {
	sent []sentMail
	fail error
}

type sentMail struct {
	To       string
	Template string
	Payload  map[string]string
}

func (m *fakeMailer) Send(ctx context.Context, to, templateKind string, payload map[string]string) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentMail{To: to, Template: templateKind, Payload: payload})
	return nil
}
