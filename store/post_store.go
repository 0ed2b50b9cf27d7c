package store

import (
	"context"
	"sync"

	"github.com/thoas/go-funk"
	"github.com/thrivehealth/thriveGo/gateway"
	"github.com/thrivehealth/thriveGo/models"
)

// Post store operation kinds.
const (
	OpGetPosts      = "posts/getPosts"
	OpCreatePost    = "posts/createPost"
	OpLikePost      = "posts/likePost"
	OpUnlikePost    = "posts/unlikePost"
	OpBookmarkPost  = "posts/bookmarkPost"
	OpUnbookmark    = "posts/unbookmarkPost"
	OpGetComments   = "posts/getComments"
	OpCreateComment = "posts/createComment"
)

// PostStore caches the feed: a most-recent-first post collection with its
// pagination cursor and filter state, one current-post slot, and the comment
// thread of whichever post is open. All mutations are confirm-then-commit:
// nothing changes locally until the backend acknowledges.
type PostStore struct {
	Tracker
	gw    *gateway.Gateway
	users *UserTable

	mu         sync.RWMutex
	posts      []models.PostRecord
	current    *models.PostRecord
	comments   []models.CommentRecord
	filters    models.PostFilters
	pagination models.Pagination
}

func NewPostStore(gw *gateway.Gateway, users *UserTable) *PostStore {
	return &PostStore{
		gw:      gw,
		users:   users,
		filters: models.DefaultPostFilters(),
	}
}

// List fetches one feed page. Page 1 replaces the cached collection, later
// pages append (infinite scroll). Switching filters drops the cached pages
// and restarts from page 1 before the call goes out.
func (s *PostStore) List(ctx context.Context, page, limit int, filters models.PostFilters) chan struct{} {
	s.mu.Lock()
	if !funk.IsEqual(filters, s.filters) {
		s.posts = nil
		s.pagination = models.Pagination{}
		page = 1
	}
	s.filters = filters
	s.mu.Unlock()

	return s.dispatch(OpGetPosts, "Failed to get posts", func() error {
		posts, pagination, err := s.gw.Posts(ctx, page, limit, filters)
		if err != nil {
			return err
		}
		s.commitPage(posts, pagination)
		return nil
	})
}

func (s *PostStore) commitPage(posts []models.Post, pagination models.Pagination) {
	records := make([]models.PostRecord, 0, len(posts))
	for _, post := range posts {
		s.users.Upsert(post.Author)
		records = append(records, post.Record())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if pagination.Page == 1 {
		s.posts = records
	} else {
		s.posts = append(s.posts, records...)
	}
	s.pagination = pagination
}

// Create publishes a draft. The acknowledged post is prepended; the feed's
// implicit sort is most-recent-first.
func (s *PostStore) Create(ctx context.Context, draft models.PostDraft) chan struct{} {
	return s.dispatch(OpCreatePost, "Failed to create post", func() error {
		post, err := s.gw.CreatePost(ctx, draft)
		if err != nil {
			return err
		}
		s.users.Upsert(post.Author)
		record := post.Record()
		s.mu.Lock()
		s.posts = append([]models.PostRecord{record}, s.posts...)
		s.mu.Unlock()
		return nil
	})
}

func (s *PostStore) Like(ctx context.Context, postId string) chan struct{} {
	return s.dispatch(OpLikePost, "Failed to like post", func() error {
		if err := s.gw.LikePost(ctx, postId); err != nil {
			return err
		}
		s.patchPost(postId, func(post *models.PostRecord) {
			post.IsLiked = true
			post.Likes++
		})
		return nil
	})
}

func (s *PostStore) Unlike(ctx context.Context, postId string) chan struct{} {
	return s.dispatch(OpUnlikePost, "Failed to unlike post", func() error {
		if err := s.gw.UnlikePost(ctx, postId); err != nil {
			return err
		}
		s.patchPost(postId, func(post *models.PostRecord) {
			post.IsLiked = false
			post.Likes--
		})
		return nil
	})
}

func (s *PostStore) Bookmark(ctx context.Context, postId string) chan struct{} {
	return s.dispatch(OpBookmarkPost, "Failed to bookmark post", func() error {
		if err := s.gw.BookmarkPost(ctx, postId); err != nil {
			return err
		}
		s.patchPost(postId, func(post *models.PostRecord) {
			post.IsBookmarked = true
		})
		return nil
	})
}

func (s *PostStore) Unbookmark(ctx context.Context, postId string) chan struct{} {
	return s.dispatch(OpUnbookmark, "Failed to unbookmark post", func() error {
		if err := s.gw.UnbookmarkPost(ctx, postId); err != nil {
			return err
		}
		s.patchPost(postId, func(post *models.PostRecord) {
			post.IsBookmarked = false
		})
		return nil
	})
}

// ListComments replaces the whole comment thread for a post.
func (s *PostStore) ListComments(ctx context.Context, postId string) chan struct{} {
	return s.dispatch(OpGetComments, "Failed to get comments", func() error {
		comments, err := s.gw.Comments(ctx, postId)
		if err != nil {
			return err
		}
		records := make([]models.CommentRecord, 0, len(comments))
		for _, comment := range comments {
			s.users.UpsertAll(comment.Authors()...)
			records = append(records, comment.Record())
		}
		s.mu.Lock()
		s.comments = records
		s.mu.Unlock()
		return nil
	})
}

// CreateComment appends the acknowledged comment and bumps the parent post's
// comment counter everywhere that post is cached.
func (s *PostStore) CreateComment(ctx context.Context, postId, content string) chan struct{} {
	return s.dispatch(OpCreateComment, "Failed to create comment", func() error {
		comment, err := s.gw.CreateComment(ctx, postId, content)
		if err != nil {
			return err
		}
		s.users.Upsert(comment.Author)
		record := comment.Record()
		s.mu.Lock()
		s.comments = append(s.comments, record)
		s.mu.Unlock()
		s.patchPost(record.PostId, func(post *models.PostRecord) {
			post.Comments++
		})
		return nil
	})
}

// patchPost applies a counter/flag mutation wherever the post is cached: the
// feed entry and the current-post slot. A post absent from both is a silent
// no-op; counters always move ±1 from the last known value, never a
// server-supplied total.
func (s *PostStore) patchPost(postId string, patch func(*models.PostRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].Id == postId {
			patch(&s.posts[i])
		}
	}
	if s.current != nil && s.current.Id == postId {
		patch(s.current)
	}
}

// SetCurrent pins a cached feed entry into the detail slot. Returns false
// when the post is not in the cached collection.
func (s *PostStore) SetCurrent(postId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].Id == postId {
			record := s.posts[i]
			s.current = &record
			return true
		}
	}
	return false
}

func (s *PostStore) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Posts returns a snapshot of the cached feed.
func (s *PostStore) Posts() []models.PostRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PostRecord(nil), s.posts...)
}

func (s *PostStore) Current() (models.PostRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.PostRecord{}, false
	}
	return *s.current, true
}

func (s *PostStore) Comments() []models.CommentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CommentRecord(nil), s.comments...)
}

func (s *PostStore) Filters() models.PostFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

func (s *PostStore) Pagination() models.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}
