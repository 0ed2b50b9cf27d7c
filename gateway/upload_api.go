package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// UploadImage streams an image through the backend's multipart upload
// endpoint and returns the public URL. Media never goes to object storage
// directly; the backend owns that.
func (g *Gateway) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to read image content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/upload/image", buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	g.decorate(req)

	resp, err := g.http.Do(req)
	if err != nil {
		logger.Error("Upload failed", zap.String("filename", filename), zap.Error(err))
		return "", &Error{}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{}
	}
	if resp.StatusCode >= 400 {
		return "", g.fail(req, resp.StatusCode, data)
	}

	out := struct {
		Data struct {
			Url string `json:"url"`
		} `json:"data"`
	}{}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Data.Url, nil
}
