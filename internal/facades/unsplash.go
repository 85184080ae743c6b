package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/insighteats/internal/logger"
)

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Small string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

// UnsplashFacade looks up a representative photo for a food name.
type UnsplashFacade struct {
	client    *http.Client
	baseURL   string
	accessKey string
}

// NewUnsplashFacade creates a new facade. An empty accessKey disables lookups.
func NewUnsplashFacade(client *http.Client, baseURL, accessKey string) *UnsplashFacade {
	return &UnsplashFacade{client: client, baseURL: baseURL, accessKey: accessKey}
}

// FindImage returns the URL of the first matching photo, or "" when there is none.
func (f *UnsplashFacade) FindImage(ctx context.Context, name string) (string, error) {
	if f.accessKey == "" {
		return "", nil
	}

	q := url.Values{}
	q.Set("query", name)
	q.Set("per_page", "1")
	q.Set("orientation", "squarish")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+f.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("Unsplash request failed", "name", name, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash: unexpected status %d", resp.StatusCode)
	}

	var data unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if len(data.Results) == 0 {
		return "", nil
	}
	return data.Results[0].URLs.Small, nil
}
