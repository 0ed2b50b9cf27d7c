package gateway

import (
	"context"
	"net/http"

	"github.com/thrivehealth/thriveGo/models"
)

// Login exchanges email/password credentials for a session.
func (g *Gateway) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	out := struct {
		models.Envelope
		Data models.AuthResult `json:"data"`
	}{}
	err := g.send(ctx, http.MethodPost, "/auth/login", body, nil, &out)
	return out.Data, err
}

// Register creates an account and opens a session in one round trip.
func (g *Gateway) Register(ctx context.Context, form models.RegisterForm) (models.AuthResult, error) {
	out := struct {
		models.Envelope
		Data models.AuthResult `json:"data"`
	}{}
	err := g.send(ctx, http.MethodPost, "/auth/register", form, nil, &out)
	return out.Data, err
}

// GoogleAuth exchanges a Google OAuth token for a session.
func (g *Gateway) GoogleAuth(ctx context.Context, googleToken string) (models.AuthResult, error) {
	body := map[string]string{"token": googleToken}
	out := struct {
		models.Envelope
		Data models.AuthResult `json:"data"`
	}{}
	err := g.send(ctx, http.MethodPost, "/auth/google", body, nil, &out)
	return out.Data, err
}

// Logout invalidates the session server-side.
func (g *Gateway) Logout(ctx context.Context) error {
	return g.send(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
