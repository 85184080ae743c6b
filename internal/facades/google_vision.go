package facades

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
)

const (
	labelScoreThreshold = 0.5
	maxLabels           = 10
)

// ImageAnnotator is the part of the Cloud Vision client used for analysis.
type ImageAnnotator interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
}

// GoogleVisionFacade labels meal photos with Google Cloud Vision. The API does not
// estimate nutrition, so macros are placeholder values drawn from rnd.
type GoogleVisionFacade struct {
	client ImageAnnotator

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGoogleVisionClient builds a REST Cloud Vision client authenticated by an
// API key. endpoint overrides the public host when set.
func NewGoogleVisionClient(ctx context.Context, apiKey, endpoint string) (*vision.ImageAnnotatorClient, error) {
	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	return vision.NewImageAnnotatorRESTClient(ctx, opts...)
}

// NewGoogleVisionFacade creates a new facade.
func NewGoogleVisionFacade(client ImageAnnotator, rnd *rand.Rand) *GoogleVisionFacade {
	return &GoogleVisionFacade{client: client, rnd: rnd}
}

// Name identifies the provider in analysis results.
func (f *GoogleVisionFacade) Name() string {
	return "google"
}

// Analyze runs label detection and keeps labels scored above 0.5.
func (f *GoogleVisionFacade) Analyze(ctx context.Context, image []byte, contentType string) (*models.AnalysisResult, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image: &visionpb.Image{Content: image},
			Features: []*visionpb.Feature{
				{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: maxLabels},
				{Type: visionpb.Feature_OBJECT_LOCALIZATION},
			},
		}},
	}

	resp, err := f.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Errorw("Google Vision request failed", "error", err)
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	foods := []models.AnalyzedFood{}
	for _, r := range resp.GetResponses() {
		if status := r.GetError(); status != nil {
			logger.FromContext(ctx).Errorw("Google Vision rejected the image", "code", status.GetCode(), "message", status.GetMessage())
			return nil, fmt.Errorf("google vision: %s", status.GetMessage())
		}
		for _, label := range r.GetLabelAnnotations() {
			if label.GetScore() <= labelScoreThreshold {
				continue
			}
			foods = append(foods, models.AnalyzedFood{
				Name:                     label.GetDescription(),
				EstimatedCaloriesPer100g: float64(f.rnd.Intn(200) + 50),
				EstimatedProteinPer100g:  float64(f.rnd.Intn(25) + 5),
				EstimatedCarbsPer100g:    float64(f.rnd.Intn(30) + 5),
				EstimatedFatPer100g:      float64(f.rnd.Intn(15) + 2),
				Confidence:               int(math.Round(float64(label.GetScore()) * 100)),
			})
		}
	}

	return &models.AnalysisResult{
		Foods:    foods,
		Summary:  fmt.Sprintf("Identified %d food items using Google Vision", len(foods)),
		Provider: f.Name(),
	}, nil
}
