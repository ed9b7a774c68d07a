package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moodmate-be/pkg/music"
)

const (
	tokenURL  = "https://accounts.spotify.com/api/token"
	searchURL = "https://api.spotify.com/v1/search"
)

// Client talks to the Spotify Web API with the client-credentials flow.
type Client struct {
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client

	token       string
	tokenExpiry time.Time
}

var _ music.Provider = &Client{}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type searchResponse struct {
	Tracks struct {
		Items []struct {
			Name    string `json:"name"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
		} `json:"items"`
	} `json:"tracks"`
	Playlists struct {
		Items []struct {
			Name         string `json:"name"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
		} `json:"items"`
	} `json:"playlists"`
}

func (c *Client) ensureToken(ctx context.Context) error {
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return nil
	}
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("spotify credentials not configured")
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	req, err := http.NewRequestWithContext(ctx, "POST", tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.ClientID, c.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify token request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify token error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var tok tokenResponse
	if err := json.Unmarshal(bodyBytes, &tok); err != nil {
		return fmt.Errorf("unmarshal token response: %w", err)
	}

	c.token = tok.AccessToken
	// Renew a minute early
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn-60) * time.Second)
	return nil
}

// Search queries tracks and playlists for the mood keyword and returns the
// bundle shape. Failures propagate to the caller, which substitutes the
// static fallback table.
func (c *Client) Search(ctx context.Context, keyword string) (*music.Result, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("q", strings.ToLower(keyword))
	q.Set("type", "track,playlist")
	q.Set("limit", "5")

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify search failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify search error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed searchResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal search response: %w", err)
	}

	bundle := &music.Bundle{}
	for _, item := range parsed.Tracks.Items {
		if item.ExternalURLs.Spotify != "" {
			bundle.Songs = append(bundle.Songs, item.ExternalURLs.Spotify)
		}
	}
	for _, item := range parsed.Playlists.Items {
		if item.ExternalURLs.Spotify != "" {
			bundle.Playlists = append(bundle.Playlists, item.ExternalURLs.Spotify)
		}
	}

	return &music.Result{Bundle: bundle}, nil
}
