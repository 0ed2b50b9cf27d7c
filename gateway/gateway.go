package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Config holds everything a Gateway needs at construction. There is no
// package-level client; callers build one instance per application session
// and inject it.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// TokenProvider yields the bearer token for the current session, or ""
	// when unauthenticated.
	TokenProvider func() string

	// OnUnauthorized runs on every 401 response, before the error reaches
	// the caller. It is expected to purge the persisted session.
	OnUnauthorized func()

	// HTTPClient overrides the default client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Gateway is the single configured HTTP client every store talks through.
// It decorates outbound requests with the bearer token and traps 401
// responses globally.
type Gateway struct {
	baseURL        string
	http           *http.Client
	tokenProvider  func() string
	onUnauthorized func()
}

func New(cfg Config) *Gateway {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Gateway{
		baseURL:        cfg.BaseURL,
		http:           httpClient,
		tokenProvider:  cfg.TokenProvider,
		onUnauthorized: cfg.OnUnauthorized,
	}
}

// Error is a failed backend call. Status is zero for transport failures,
// where no server message exists to extract.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return "network error"
	}
	if len(e.Message) == 0 {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// Reason returns the server-provided message for err when present, else the
// fallback text.
func Reason(err error, fallback string) string {
	gwErr := &Error{}
	if errors.As(err, &gwErr) && len(gwErr.Message) > 0 {
		return gwErr.Message
	}
	return fallback
}

// send performs one JSON round trip. A nil out discards the response body.
func (g *Gateway) send(ctx context.Context, method, path string, body interface{}, query url.Values, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.requestURL(path, query), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	g.decorate(req)

	resp, err := g.http.Do(req)
	if err != nil {
		logger.Error("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("requestId", req.Header.Get("X-Request-ID")),
			zap.Error(err))
		return &Error{}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{}
	}

	if resp.StatusCode >= 400 {
		return g.fail(req, resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (g *Gateway) requestURL(path string, query url.Values) string {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// decorate attaches the bearer token and a correlation id.
func (g *Gateway) decorate(req *http.Request) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if g.tokenProvider != nil {
		if token := g.tokenProvider(); len(token) > 0 {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// fail maps a non-2xx response to a typed error. A 401 fires the
// unauthorized trap first; the purge happens regardless of which operation
// triggered it.
func (g *Gateway) fail(req *http.Request, status int, data []byte) error {
	envelope := struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}{}
	json.Unmarshal(data, &envelope)

	message := envelope.Message
	if len(message) == 0 {
		message = envelope.Error
	}

	if status == http.StatusUnauthorized {
		logger.Error("Session expired, purging credentials",
			zap.String("path", req.URL.Path),
			zap.String("requestId", req.Header.Get("X-Request-ID")))
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
	}

	return &Error{Status: status, Message: message}
}
