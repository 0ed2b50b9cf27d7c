package gateway

import (
	"context"
	"net/http"

	"github.com/thrivehealth/thriveGo/models"
)

func (g *Gateway) ChatRooms(ctx context.Context) ([]models.ChatRoom, error) {
	out := struct {
		models.Envelope
		Data []models.ChatRoom `json:"data"`
	}{}
	err := g.send(ctx, http.MethodGet, "/chat/rooms", nil, nil, &out)
	return out.Data, err
}

// Messages fetches the full message history of a room in one shot.
func (g *Gateway) Messages(ctx context.Context, chatRoomId string) ([]models.Message, error) {
	out := struct {
		models.Envelope
		Data []models.Message `json:"data"`
	}{}
	err := g.send(ctx, http.MethodGet, "/chat/rooms/"+chatRoomId+"/messages", nil, nil, &out)
	return out.Data, err
}

// SendMessage delivers a message and returns the server's echo of it.
func (g *Gateway) SendMessage(ctx context.Context, chatRoomId, content string) (models.Message, error) {
	body := map[string]string{"content": content}
	out := struct {
		models.Envelope
		Data models.Message `json:"data"`
	}{}
	err := g.send(ctx, http.MethodPost, "/chat/rooms/"+chatRoomId+"/messages", body, nil, &out)
	return out.Data, err
}
