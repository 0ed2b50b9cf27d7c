package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thrivehealth/thriveGo/models"
)

// Posts fetches one page of the feed. Filter fields ride along as query
// parameters next to the page cursor.
func (g *Gateway) Posts(ctx context.Context, page, limit int, filters models.PostFilters) ([]models.Post, models.Pagination, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if len(filters.Type) > 0 {
		query.Set("type", filters.Type)
	}
	if len(filters.SortBy) > 0 {
		query.Set("sortBy", filters.SortBy)
	}
	for _, interest := range filters.Interests {
		query.Add("interests", interest)
	}

	out := struct {
		Data       []models.Post     `json:"data"`
		Pagination models.Pagination `json:"pagination"`
	}{}
	err := g.send(ctx, http.MethodGet, "/posts", nil, query, &out)
	return out.Data, out.Pagination, err
}

// CreatePost publishes a draft and returns the server's copy of the new post.
func (g *Gateway) CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	out := struct {
		models.Envelope
		Data models.Post `json:"data"`
	}{}
	err := g.send(ctx, http.MethodPost, "/posts", draft, nil, &out)
	return out.Data, err
}

func (g *Gateway) LikePost(ctx context.Context, postId string) error {
	return g.send(ctx, http.MethodPost, "/posts/"+postId+"/like", nil, nil, nil)
}

func (g *Gateway) UnlikePost(ctx context.Context, postId string) error {
	return g.send(ctx, http.MethodDelete, "/posts/"+postId+"/like", nil, nil, nil)
}

func (g *Gateway) BookmarkPost(ctx context.Context, postId string) error {
	return g.send(ctx, http.MethodPost, "/posts/"+postId+"/bookmark", nil, nil, nil)
}

func (g *Gateway) UnbookmarkPost(ctx context.Context, postId string) error {
	return g.send(ctx, http.MethodDelete, "/posts/"+postId+"/bookmark", nil, nil, nil)
}

// Comments fetches the full comment thread of a post. Comments are not
// paginated.
func (g *Gateway) Comments(ctx context.Context, postId string) ([]models.Comment, error) {
	out := struct {
		models.Envelope
		Data []models.Comment `json:"data"`
	}{}
	err := g.send(ctx, http.MethodGet, "/posts/"+postId+"/comments", nil, nil, &out)
	return out.Data, err
}

// CreateComment posts a comment and returns the server's copy.
func (g *Gateway) CreateComment(ctx context.Context, postId, content string) (models.Comment, error) {
	body := map[string]string{"content": content}
	out := struct {
		models.Envelope
		Data models.Comment `json:"data"`
	}{}
	err := g.send(ctx, http.MethodPost, "/posts/"+postId+"/comments", body, nil, &out)
	return out.Data, err
}
