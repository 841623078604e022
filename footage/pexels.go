// Package footage searches stock video clips to match enriched
// transcript chunks.
package footage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.pexels.com"

// Clip is one candidate stock video descriptor.
type Clip struct {
	ID           int
	URL          string
	ThumbnailURL string
	DurationSec  float64
	Width        int
	Height       int
	Attribution  string
}

// Client calls the Pexels video search API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client from an API key.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Pexels API key is empty")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Wire types for the /videos/search response.
type searchResponse struct {
	Videos []pexelsVideo `json:"videos"`
}

type pexelsVideo struct {
	ID       int     `json:"id"`
	URL      string  `json:"url"`
	Image    string  `json:"image"`
	Duration float64 `json:"duration"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	User     struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"user"`
	VideoFiles []struct {
		Link    string `json:"link"`
		Quality string `json:"quality"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
	} `json:"video_files"`
}

// SearchVideos returns up to perPage candidate clips for a keyword
// phrase.
func (c *Client) SearchVideos(ctx context.Context, query string, perPage int) ([]Clip, error) {
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}
	if perPage < 1 {
		perPage = 3
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	endpoint := c.baseURL + "/videos/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels returned status %d", res.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode pexels response: %w", err)
	}

	clips := make([]Clip, 0, len(payload.Videos))
	for _, v := range payload.Videos {
		clips = append(clips, Clip{
			ID:           v.ID,
			URL:          bestFileLink(v),
			ThumbnailURL: v.Image,
			DurationSec:  v.Duration,
			Width:        v.Width,
			Height:       v.Height,
			Attribution:  v.User.Name,
		})
	}
	return clips, nil
}

// bestFileLink prefers an HD rendition, falling back to the first file
// and then the video page URL.
func bestFileLink(v pexelsVideo) string {
	for _, f := range v.VideoFiles {
		if f.Quality == "hd" {
			return f.Link
		}
	}
	if len(v.VideoFiles) > 0 {
		return v.VideoFiles[0].Link
	}
	return v.URL
}
