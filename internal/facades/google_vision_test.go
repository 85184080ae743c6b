package facades

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/status"
)

type fakeAnnotator struct {
	resp    *visionpb.BatchAnnotateImagesResponse
	err     error
	request *visionpb.BatchAnnotateImagesRequest
}

func (f *fakeAnnotator) BatchAnnotateImages(_ context.Context, req *visionpb.BatchAnnotateImagesRequest, _ ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error) {
	f.request = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func labels(annotations ...*visionpb.EntityAnnotation) *visionpb.BatchAnnotateImagesResponse {
	return &visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{LabelAnnotations: annotations}},
	}
}

func TestGoogleVisionFacade_Analyze(t *testing.T) {
	client := &fakeAnnotator{resp: labels(
		&visionpb.EntityAnnotation{Description: "Pizza", Score: 0.97, Topicality: 0.97},
		&visionpb.EntityAnnotation{Description: "Cheese", Score: 0.5},
		&visionpb.EntityAnnotation{Description: "Tableware", Score: 0.31},
	)}

	facade := NewGoogleVisionFacade(client, rand.New(rand.NewSource(1)))
	result, err := facade.Analyze(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)

	require.Len(t, client.request.GetRequests(), 1)
	sent := client.request.GetRequests()[0]
	assert.Equal(t, []byte("img"), sent.GetImage().GetContent())
	assert.Equal(t, visionpb.Feature_LABEL_DETECTION, sent.GetFeatures()[0].GetType())
	assert.EqualValues(t, 10, sent.GetFeatures()[0].GetMaxResults())

	assert.Equal(t, "google", result.Provider)
	assert.Equal(t, "Identified 1 food items using Google Vision", result.Summary)
	require.Len(t, result.Foods, 1)

	food := result.Foods[0]
	assert.Equal(t, "Pizza", food.Name)
	assert.Equal(t, 97, food.Confidence)
	assert.GreaterOrEqual(t, food.EstimatedCaloriesPer100g, 50.0)
	assert.Less(t, food.EstimatedCaloriesPer100g, 250.0)
	assert.GreaterOrEqual(t, food.EstimatedFatPer100g, 2.0)
	assert.Less(t, food.EstimatedFatPer100g, 17.0)
}

func TestGoogleVisionFacade_DeterministicWithSeed(t *testing.T) {
	client := &fakeAnnotator{resp: labels(&visionpb.EntityAnnotation{Description: "Salad", Score: 0.8})}

	first, err := NewGoogleVisionFacade(client, rand.New(rand.NewSource(42))).Analyze(context.Background(), nil, "")
	require.NoError(t, err)
	second, err := NewGoogleVisionFacade(client, rand.New(rand.NewSource(42))).Analyze(context.Background(), nil, "")
	require.NoError(t, err)

	assert.Equal(t, first.Foods, second.Foods)
}

func TestGoogleVisionFacade_Errors(t *testing.T) {
	t.Run("request failure", func(t *testing.T) {
		client := &fakeAnnotator{err: errors.New("permission denied")}

		result, err := NewGoogleVisionFacade(client, rand.New(rand.NewSource(1))).Analyze(context.Background(), []byte("x"), "image/png")
		assert.EqualError(t, err, "permission denied")
		assert.Nil(t, result)
	})

	t.Run("image rejected", func(t *testing.T) {
		client := &fakeAnnotator{resp: &visionpb.BatchAnnotateImagesResponse{
			Responses: []*visionpb.AnnotateImageResponse{{Error: &status.Status{Code: 3, Message: "Bad image data."}}},
		}}

		result, err := NewGoogleVisionFacade(client, rand.New(rand.NewSource(1))).Analyze(context.Background(), []byte("x"), "image/png")
		assert.EqualError(t, err, "google vision: Bad image data.")
		assert.Nil(t, result)
	})
}

func TestNewGoogleVisionClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/images:annotate", r.URL.Path)
		key := r.Header.Get("X-Goog-Api-Key")
		if key == "" {
			key = r.URL.Query().Get("key")
		}
		assert.Equal(t, "g-key", key)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "LABEL_DETECTION")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responses": [{"labelAnnotations": [{"description": "Soup", "score": 0.9}]}]}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	client, err := NewGoogleVisionClient(ctx, "g-key", srv.URL)
	require.NoError(t, err)
	defer client.Close()

	result, err := NewGoogleVisionFacade(client, rand.New(rand.NewSource(1))).Analyze(ctx, []byte("img"), "image/jpeg")
	require.NoError(t, err)
	require.Len(t, result.Foods, 1)
	assert.Equal(t, "Soup", result.Foods[0].Name)
	assert.Equal(t, 90, result.Foods[0].Confidence)
}
