package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thrivehealth/thriveGo/models"
)

// Articles fetches one page of the library.
func (g *Gateway) Articles(ctx context.Context, page, limit int, filters models.ArticleFilters) ([]models.Article, models.Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if len(filters.Category) > 0 {
		query.Set("category", filters.Category)
	}
	if len(filters.SortBy) > 0 {
		query.Set("sortBy", filters.SortBy)
	}
	if len(filters.Search) > 0 {
		query.Set("search", filters.Search)
	}
	for _, tag := range filters.Tags {
		query.Add("tags", tag)
	}

	out := struct {
		Data       []models.Article  `json:"data"`
		Pagination models.Pagination `json:"pagination"`
	}{}
	err := g.send(ctx, http.MethodGet, "/articles", nil, query, &out)
	return out.Data, out.Pagination, err
}

func (g *Gateway) Article(ctx context.Context, articleId string) (models.Article, error) {
	out := struct {
		models.Envelope
		Data models.Article `json:"data"`
	}{}
	err := g.send(ctx, http.MethodGet, "/articles/"+articleId, nil, nil, &out)
	return out.Data, err
}
