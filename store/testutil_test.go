package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thrivehealth/thriveGo/gateway"
	"github.com/thrivehealth/thriveGo/models"
)

// newTestGateway backs a real Gateway with an httptest server.
func newTestGateway(t *testing.T, handler http.Handler) *gateway.Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return gateway.New(gateway.Config{BaseURL: server.URL})
}

func writeData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func writePage(w http.ResponseWriter, data interface{}, pagination models.Pagination) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":       data,
		"pagination": pagination,
	})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func testUser(id, role string) models.User {
	return models.User{
		Id:        id,
		Email:     id + "@example.com",
		FirstName: "Test",
		LastName:  id,
		Role:      role,
	}
}

func testPost(id string, author models.User) models.Post {
	return models.Post{
		Id:        id,
		Author:    author,
		Content:   "post " + id,
		Tags:      []string{"nutrition"},
		CreatedAt: "2024-01-01T00:00:00Z",
	}
}
