package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
	"golang.org/x/sync/errgroup"
)

// Catalog search limits.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50

	minExternalTermLength = 3
)

// FoodService resolves, searches and enriches the food catalog.
type FoodService struct {
	foods  FoodStore
	usda   ExternalFoodSearcher
	off    ExternalFoodSearcher
	cache  FoodSearchCache
	images ImageFinder
}

// NewFoodService creates a new FoodService. External providers, cache and
// image finder are optional.
func NewFoodService(
	foods FoodStore,
	usda ExternalFoodSearcher,
	off ExternalFoodSearcher,
	cache FoodSearchCache,
	images ImageFinder,
) *FoodService {
	return &FoodService{
		foods:  foods,
		usda:   usda,
		off:    off,
		cache:  cache,
		images: images,
	}
}

// ResolveOrCreate returns the id of the catalog food named like the candidate,
// inserting the candidate when there is none. An existing row is never
// overwritten. Two concurrent first calls may both insert.
func (s *FoodService) ResolveOrCreate(ctx context.Context, candidate models.FoodCandidate) (uuid.UUID, error) {
	candidate.Name = strings.TrimSpace(candidate.Name)
	if err := nutrition.ValidateCandidate(candidate); err != nil {
		return uuid.Nil, err
	}

	existing, err := s.foods.GetByName(ctx, candidate.Name)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to look up food", "name", candidate.Name, "error", err)
		return uuid.Nil, err
	}
	if existing != nil {
		return existing.FoodID, nil
	}

	id, err := s.foods.Create(ctx, candidate)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create food", "name", candidate.Name, "error", err)
		return uuid.Nil, err
	}
	return id, nil
}

// Search returns catalog foods whose name contains term, case-insensitively.
// An empty term lists the first foods by name.
func (s *FoodService) Search(ctx context.Context, term string, limit int) ([]models.FoodDB, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		foods, err := s.foods.List(ctx, limit)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to list foods", "error", err)
			return nil, err
		}
		return foods, nil
	}

	all, err := s.foods.List(ctx, 0)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list foods", "error", err)
		return nil, err
	}

	matches := make([]models.FoodDB, 0, limit)
	for _, f := range all {
		if strings.Contains(strings.ToLower(f.Name), term) {
			matches = append(matches, f)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches, nil
}

// SearchExternal queries USDA and Open Food Facts concurrently. USDA hits come
// first; names are deduplicated case-insensitively. A failing provider
// contributes nothing and keeps the partial result out of the cache. Terms
// shorter than three characters return nothing.
func (s *FoodService) SearchExternal(ctx context.Context, term string) ([]models.ExternalFoodCandidate, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < minExternalTermLength {
		return []models.ExternalFoodCandidate{}, nil
	}
	key := strings.ToLower(term)

	if s.cache != nil {
		cached, found, err := s.cache.GetExternalFoods(ctx, key)
		if err != nil {
			logger.FromContext(ctx).Warnw("failed to read food search cache", "term", key, "error", err)
		} else if found {
			return cached, nil
		}
	}

	var (
		usdaFoods, offFoods []models.ExternalFoodCandidate
		usdaOK, offOK       bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		usdaFoods, usdaOK = s.searchProvider(gctx, s.usda, "usda", term)
		return nil
	})
	g.Go(func() error {
		offFoods, offOK = s.searchProvider(gctx, s.off, "openfoodfacts", term)
		return nil
	})
	_ = g.Wait()

	seen := make(map[string]struct{}, len(usdaFoods)+len(offFoods))
	results := make([]models.ExternalFoodCandidate, 0, len(usdaFoods)+len(offFoods))
	for _, f := range append(usdaFoods, offFoods...) {
		name := strings.ToLower(f.Name)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		results = append(results, f)
	}

	if s.cache != nil && usdaOK && offOK {
		if err := s.cache.SetExternalFoods(ctx, key, results); err != nil {
			logger.FromContext(ctx).Warnw("failed to write food search cache", "term", key, "error", err)
		}
	}

	return results, nil
}

// searchProvider reports false when the provider returned an error. A missing
// provider is not a failure.
func (s *FoodService) searchProvider(ctx context.Context, provider ExternalFoodSearcher, name, term string) ([]models.ExternalFoodCandidate, bool) {
	if provider == nil {
		return nil, true
	}
	foods, err := provider.Search(ctx, term)
	if err != nil {
		logger.FromContext(ctx).Warnw("external food search failed", "provider", name, "term", term, "error", err)
		return nil, false
	}
	return foods, true
}

// FindImage returns a photo URL for a food name, or "" when none is available.
// Lookup failures are logged and reported as no image.
func (s *FoodService) FindImage(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || s.images == nil {
		return "", nil
	}

	if s.cache != nil {
		url, found, err := s.cache.GetImageURL(ctx, name)
		if err != nil {
			logger.FromContext(ctx).Warnw("failed to read image cache", "name", name, "error", err)
		} else if found {
			return url, nil
		}
	}

	url, err := s.images.FindImage(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Warnw("image lookup failed", "name", name, "error", err)
		return "", nil
	}

	if s.cache != nil {
		if err := s.cache.SetImageURL(ctx, name, url); err != nil {
			logger.FromContext(ctx).Warnw("failed to write image cache", "name", name, "error", err)
		}
	}
	return url, nil
}
