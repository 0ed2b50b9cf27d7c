package store

import (
	"context"
	"sync"

	"github.com/thoas/go-funk"
	"github.com/thrivehealth/thriveGo/gateway"
	"github.com/thrivehealth/thriveGo/models"
)

// Article store operation kinds.
const (
	OpGetArticles = "articles/getArticles"
	OpGetArticle  = "articles/getArticle"
)

// ArticleStore caches the health-education library: a paginated article
// collection plus one current-article slot for the reader view.
type ArticleStore struct {
	Tracker
	gw    *gateway.Gateway
	users *UserTable

	mu         sync.RWMutex
	articles   []models.ArticleRecord
	current    *models.ArticleRecord
	filters    models.ArticleFilters
	pagination models.Pagination
}

func NewArticleStore(gw *gateway.Gateway, users *UserTable) *ArticleStore {
	return &ArticleStore{gw: gw, users: users}
}

// List fetches one library page with the same replace/append pagination
// rule as the feed: page 1 replaces, later pages append, a filter switch
// starts over at page 1.
func (s *ArticleStore) List(ctx context.Context, page, limit int, filters models.ArticleFilters) chan struct{} {
	s.mu.Lock()
	if !funk.IsEqual(filters, s.filters) {
		s.articles = nil
		s.pagination = models.Pagination{}
		page = 1
	}
	s.filters = filters
	s.mu.Unlock()

	return s.dispatch(OpGetArticles, "Failed to get articles", func() error {
		articles, pagination, err := s.gw.Articles(ctx, page, limit, filters)
		if err != nil {
			return err
		}
		records := make([]models.ArticleRecord, 0, len(articles))
		for _, article := range articles {
			s.users.Upsert(article.Author)
			records = append(records, article.Record())
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if pagination.Page == 1 {
			s.articles = records
		} else {
			s.articles = append(s.articles, records...)
		}
		s.pagination = pagination
		return nil
	})
}

// Get loads one article into the reader slot.
func (s *ArticleStore) Get(ctx context.Context, articleId string) chan struct{} {
	return s.dispatch(OpGetArticle, "Failed to get article", func() error {
		article, err := s.gw.Article(ctx, articleId)
		if err != nil {
			return err
		}
		s.users.Upsert(article.Author)
		record := article.Record()
		s.mu.Lock()
		s.current = &record
		s.mu.Unlock()
		return nil
	})
}

func (s *ArticleStore) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *ArticleStore) Articles() []models.ArticleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ArticleRecord(nil), s.articles...)
}

func (s *ArticleStore) Current() (models.ArticleRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.ArticleRecord{}, false
	}
	return *s.current, true
}

func (s *ArticleStore) Filters() models.ArticleFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

func (s *ArticleStore) Pagination() models.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}
