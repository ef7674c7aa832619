package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/siherrmann/contentManager/model"

	"github.com/google/uuid"
)

// PostServiceFunctions defines the interface for post operations.
type PostServiceFunctions interface {
	InsertPost(ctx context.Context, post *model.Post) (*model.Post, error)
	UpdatePost(ctx context.Context, id int, post *model.Post) (*model.Post, error)
	DeletePost(ctx context.Context, id int) error
	SelectPost(ctx context.Context, id int) (*model.Post, error)
	SelectAllPosts(ctx context.Context) ([]*model.Post, error)
	PublishPost(ctx context.Context, id int) (*model.Post, error)
	ArchivePost(ctx context.Context, id int) (*model.Post, error)
	RestorePost(ctx context.Context, id int) (*model.Post, error)
}

// PostService keeps posts in memory. It is safe for concurrent use.
type PostService struct {
	mu     sync.RWMutex
	posts  map[int]*model.Post
	nextID int
	now    func() time.Time
	logger *slog.Logger
}

func NewPostService(logger *slog.Logger) *PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostService{
		posts:  map[int]*model.Post{},
		nextID: 1,
		now:    time.Now,
		logger: logger,
	}
}

// InsertPost stores a new post. Status defaults to draft.
func (s *PostService) InsertPost(ctx context.Context, post *model.Post) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	newPost := &model.Post{
		Title:       strings.TrimSpace(post.Title),
		Content:     post.Content,
		Author:      strings.TrimSpace(post.Author),
		Category:    post.Category,
		Status:      post.Status,
		Views:       post.Views,
		CreatedAt:   post.CreatedAt,
		PublishedAt: post.PublishedAt,
	}
	if newPost.Status == "" {
		newPost.Status = model.POST_STATUS_DRAFT
	}
	if err := validatePost(newPost); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newPost.ID = s.nextID
	newPost.RID = uuid.New()
	if newPost.CreatedAt.IsZero() {
		newPost.CreatedAt = s.now()
	}
	if newPost.Status == model.POST_STATUS_PUBLISHED && newPost.PublishedAt == nil {
		publishedAt := newPost.CreatedAt
		newPost.PublishedAt = &publishedAt
	}
	s.nextID++
	s.posts[newPost.ID] = newPost

	s.logger.Debug("Inserted post", "id", newPost.ID, "title", newPost.Title)

	return clonePost(newPost), nil
}

// UpdatePost replaces the editable fields of the post with id. Status changes go through the transition methods.
func (s *PostService) UpdatePost(ctx context.Context, id int, post *model.Post) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.posts[id]
	if !ok {
		return nil, notFound("post", id)
	}

	updated := clonePost(existing)
	updated.Title = strings.TrimSpace(post.Title)
	updated.Content = post.Content
	updated.Author = strings.TrimSpace(post.Author)
	updated.Category = post.Category
	if err := validatePost(updated); err != nil {
		return nil, err
	}

	s.posts[id] = updated

	return clonePost(updated), nil
}

func (s *PostService) DeletePost(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return notFound("post", id)
	}
	delete(s.posts, id)
	return nil
}

func (s *PostService) SelectPost(ctx context.Context, id int) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, notFound("post", id)
	}
	return clonePost(post), nil
}

// SelectAllPosts returns all posts ordered by id.
func (s *PostService) SelectAllPosts(ctx context.Context) ([]*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, clonePost(post))
	}
	slices.SortFunc(posts, func(a, b *model.Post) int {
		return a.ID - b.ID
	})
	return posts, nil
}

// PublishPost publishes a draft or archived post.
func (s *PostService) PublishPost(ctx context.Context, id int) (*model.Post, error) {
	return s.transition(ctx, id, model.ACTION_PUBLISH, func(post *model.Post) error {
		if post.Status == model.POST_STATUS_PUBLISHED {
			return conflict("post %d is already published", id)
		}
		publishedAt := s.now()
		post.Status = model.POST_STATUS_PUBLISHED
		post.PublishedAt = &publishedAt
		return nil
	})
}

// ArchivePost archives a published post.
func (s *PostService) ArchivePost(ctx context.Context, id int) (*model.Post, error) {
	return s.transition(ctx, id, model.ACTION_ARCHIVE, func(post *model.Post) error {
		if post.Status != model.POST_STATUS_PUBLISHED {
			return conflict("only published posts can be archived, post %d is %s", id, post.Status)
		}
		post.Status = model.POST_STATUS_ARCHIVED
		return nil
	})
}

// RestorePost moves an archived post back to draft.
func (s *PostService) RestorePost(ctx context.Context, id int) (*model.Post, error) {
	return s.transition(ctx, id, model.ACTION_RESTORE, func(post *model.Post) error {
		if post.Status != model.POST_STATUS_ARCHIVED {
			return conflict("only archived posts can be restored, post %d is %s", id, post.Status)
		}
		post.Status = model.POST_STATUS_DRAFT
		post.PublishedAt = nil
		return nil
	})
}

func (s *PostService) transition(ctx context.Context, id int, action model.Action, apply func(post *model.Post) error) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.posts[id]
	if !ok {
		return nil, notFound("post", id)
	}

	updated := clonePost(existing)
	if err := apply(updated); err != nil {
		return nil, err
	}
	s.posts[id] = updated

	s.logger.Debug("Post status changed", "id", id, "action", action, "status", updated.Status)

	return clonePost(updated), nil
}

func validatePost(post *model.Post) error {
	if post.Title == "" {
		return invalid("title is required")
	}
	if post.Author == "" {
		return invalid("author is required")
	}
	if post.Category != "" && !model.HasKey(model.PostCategories, post.Category) {
		return invalid("unknown category %q", post.Category)
	}
	if !model.IsValidPostStatus(post.Status) {
		return invalid("unknown status %q", post.Status)
	}
	if post.Views < 0 {
		return invalid("views must not be negative")
	}
	return nil
}

func clonePost(post *model.Post) *model.Post {
	clone := *post
	if post.PublishedAt != nil {
		publishedAt := *post.PublishedAt
		clone.PublishedAt = &publishedAt
	}
	return &clone
}
