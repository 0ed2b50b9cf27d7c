package gateway

import (
	"context"
	"net/http"

	"github.com/thrivehealth/thriveGo/models"
)

// CurrentUser fetches the profile behind the session token.
func (g *Gateway) CurrentUser(ctx context.Context) (models.User, error) {
	out := struct {
		models.Envelope
		Data models.User `json:"data"`
	}{}
	err := g.send(ctx, http.MethodGet, "/users/me", nil, nil, &out)
	return out.Data, err
}

// UserProfile fetches any user's public profile.
func (g *Gateway) UserProfile(ctx context.Context, userId string) (models.User, error) {
	out := struct {
		models.Envelope
		Data models.User `json:"data"`
	}{}
	err := g.send(ctx, http.MethodGet, "/users/"+userId, nil, nil, &out)
	return out.Data, err
}

// UpdateProfile saves profile edits and returns the server's copy.
func (g *Gateway) UpdateProfile(ctx context.Context, userId string, form models.ProfileForm) (models.User, error) {
	out := struct {
		models.Envelope
		Data models.User `json:"data"`
	}{}
	err := g.send(ctx, http.MethodPut, "/users/"+userId, form, nil, &out)
	return out.Data, err
}

func (g *Gateway) FollowUser(ctx context.Context, userId string) error {
	return g.send(ctx, http.MethodPost, "/users/"+userId+"/follow", nil, nil, nil)
}

func (g *Gateway) UnfollowUser(ctx context.Context, userId string) error {
	return g.send(ctx, http.MethodDelete, "/users/"+userId+"/follow", nil, nil, nil)
}

// UserInterests fetches the interest tags picked during onboarding.
func (g *Gateway) UserInterests(ctx context.Context, userId string) ([]string, error) {
	out := struct {
		models.Envelope
		Data []string `json:"data"`
	}{}
	err := g.send(ctx, http.MethodGet, "/users/"+userId+"/interests", nil, nil, &out)
	return out.Data, err
}

func (g *Gateway) UpdateUserInterests(ctx context.Context, userId string, interests []string) error {
	body := map[string][]string{"interests": interests}
	return g.send(ctx, http.MethodPut, "/users/"+userId+"/interests", body, nil, nil)
}
