package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteProvider posts image bytes to a hosted emotion-detection endpoint.
type RemoteProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

var _ Provider = &RemoteProvider{}

func NewRemoteProvider(baseURL, apiKey string) *RemoteProvider {
	return &RemoteProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type detectResponse struct {
	Label string `json:"label"`
}

func (p *RemoteProvider) Detect(ctx context.Context, image []byte) (string, error) {
	if p.BaseURL == "" {
		return "", fmt.Errorf("classifier endpoint not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL+"/v1/detect", bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classifier error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed detectResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.Label == "" {
		return "", fmt.Errorf("classifier returned empty label")
	}

	return parsed.Label, nil
}
