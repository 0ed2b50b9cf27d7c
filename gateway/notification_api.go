package gateway

import (
	"context"
	"net/http"

	"github.com/thrivehealth/thriveGo/models"
)

func (g *Gateway) Notifications(ctx context.Context) ([]models.Notification, error) {
	out := struct {
		models.Envelope
		Data []models.Notification `json:"data"`
	}{}
	err := g.send(ctx, http.MethodGet, "/notifications", nil, nil, &out)
	return out.Data, err
}

func (g *Gateway) MarkNotificationRead(ctx context.Context, notificationId string) error {
	return g.send(ctx, http.MethodPut, "/notifications/"+notificationId+"/read", nil, nil, nil)
}
