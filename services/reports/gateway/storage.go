package gateway

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicURL string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadImage stores an image with the blob collaborator (a Cloudinary-style
// signed upload) and returns its public URL.
func (g *ReportGW) UploadImage(ctx context.Context, imageBytes []byte, mimeType string) (string, error) {
	if g.cfg.Storage.CloudName == "" || g.cfg.Storage.APIKey == "" || g.cfg.Storage.APISecret == "" {
		return "", fmt.Errorf("image storage not configured")
	}

	publicID := uuid.New().String()
	if g.cfg.Storage.Folder != "" {
		publicID = g.cfg.Storage.Folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Cloudinary signs the sorted upload parameters with the API secret.
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, g.cfg.Storage.APISecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))

	form := url.Values{}
	form.Add("file", "data:"+mimeType+";base64,"+base64.StdEncoding.EncodeToString(imageBytes))
	form.Add("api_key", g.cfg.Storage.APIKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/image/upload", g.storage.BaseURL, g.cfg.Storage.CloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.storage.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image storage unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if resp.StatusCode >= 400 || result.Error.Message != "" {
		return "", fmt.Errorf("image upload failed: status %d: %s", resp.StatusCode, result.Error.Message)
	}

	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return result.PublicURL, nil
}
