package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsplashFacade_FindImage(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedURL string
		expectError bool
	}{
		{
			name:        "first result",
			status:      http.StatusOK,
			body:        `{"results": [{"urls": {"small": "https://images.example/a.jpg"}}, {"urls": {"small": "https://images.example/b.jpg"}}]}`,
			expectedURL: "https://images.example/a.jpg",
		},
		{
			name:   "no results",
			status: http.StatusOK,
			body:   `{"results": []}`,
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"errors": ["OAuth error"]}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search/photos", r.URL.Path)
				assert.Equal(t, "banana", r.URL.Query().Get("query"))
				assert.Equal(t, "Client-ID access", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			url, err := NewUnsplashFacade(srv.Client(), srv.URL, "access").FindImage(context.Background(), "banana")
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedURL, url)
		})
	}
}

func TestUnsplashFacade_NoKey(t *testing.T) {
	url, err := NewUnsplashFacade(http.DefaultClient, "http://127.0.0.1:1", "").FindImage(context.Background(), "banana")
	assert.NoError(t, err)
	assert.Empty(t, url)
}
