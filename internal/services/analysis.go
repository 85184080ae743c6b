package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

// MaxPhotoBytes is the largest accepted meal photo.
const MaxPhotoBytes = 10 << 20

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/heic": ".heic",
}

// AnalysisService recognizes foods on meal photos.
type AnalysisService struct {
	users    UserReader
	analyzer VisionAnalyzer
	photos   PhotoStore
	catalog  CatalogResolver
}

// NewAnalysisService creates a new AnalysisService. A nil analyzer disables
// analysis; a nil photo store skips keeping the uploaded photo.
func NewAnalysisService(users UserReader, analyzer VisionAnalyzer, photos PhotoStore, catalog CatalogResolver) *AnalysisService {
	return &AnalysisService{users: users, analyzer: analyzer, photos: photos, catalog: catalog}
}

// AnalyzePhoto stores the photo, asks the vision provider for the foods on it
// and, when importFoods is set, resolves every plausible estimate into the
// catalog. The stored photo is removed again when the provider or the import
// fails.
func (s *AnalysisService) AnalyzePhoto(ctx context.Context, identityKey string, image []byte, contentType string, importFoods bool) (*models.AnalysisResult, error) {
	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, &ValidationError{Field: "image", Message: "must not be empty"}
	}
	if len(image) > MaxPhotoBytes {
		return nil, &ValidationError{Field: "image", Message: fmt.Sprintf("must be at most %d bytes", MaxPhotoBytes)}
	}
	if s.analyzer == nil {
		return nil, ErrAnalysisUnavailable
	}

	var photoKey string
	if s.photos != nil {
		photoKey = photoObjectKey(user, contentType)
		if err := s.photos.Upload(ctx, photoKey, bytes.NewReader(image), int64(len(image)), contentType); err != nil {
			logger.FromContext(ctx).Errorw("failed to store meal photo", "key", photoKey, "error", err)
			return nil, err
		}
	}

	result, err := s.analyzer.Analyze(ctx, image, contentType)
	if err != nil {
		logger.FromContext(ctx).Errorw("food analysis failed", "provider", s.analyzer.Name(), "error", err)
		s.discardPhoto(ctx, photoKey)
		return nil, err
	}
	result.PhotoKey = photoKey

	if importFoods && s.catalog != nil {
		for i, food := range result.Foods {
			candidate := food.Candidate()
			if nutrition.ValidateCandidate(candidate) != nil {
				continue
			}
			id, err := s.catalog.ResolveOrCreate(ctx, candidate)
			if err != nil {
				logger.FromContext(ctx).Errorw("failed to import analyzed food", "name", candidate.Name, "error", err)
				s.discardPhoto(ctx, photoKey)
				return nil, err
			}
			result.Foods[i].FoodID = &id
		}
	}

	return result, nil
}

func (s *AnalysisService) discardPhoto(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.photos.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Errorw("failed to remove meal photo", "key", key, "error", err)
	}
}

func photoObjectKey(user *models.UserDB, contentType string) string {
	ext, ok := photoExtensions[contentType]
	if !ok {
		ext = ".bin"
	}
	return fmt.Sprintf("%s/%s%s", user.UserID, uuid.NewString(), ext)
}
