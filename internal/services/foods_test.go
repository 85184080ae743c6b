package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foodMocks struct {
	foods  *MockFoodStore
	usda   *MockExternalFoodSearcher
	off    *MockExternalFoodSearcher
	cache  *MockFoodSearchCache
	images *MockImageFinder
}

func newFoods(ctrl *gomock.Controller) (*FoodService, foodMocks) {
	m := foodMocks{
		foods:  NewMockFoodStore(ctrl),
		usda:   NewMockExternalFoodSearcher(ctrl),
		off:    NewMockExternalFoodSearcher(ctrl),
		cache:  NewMockFoodSearchCache(ctrl),
		images: NewMockImageFinder(ctrl),
	}
	return NewFoodService(m.foods, m.usda, m.off, m.cache, m.images), m
}

func TestFoodService_ResolveOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("existing food wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newFoods(ctrl)
		m.foods.EXPECT().GetByName(ctx, "Chicken Breast").Return(&chickenBreast, nil)

		// Different macros must not overwrite the stored row.
		id, err := svc.ResolveOrCreate(ctx, models.FoodCandidate{Name: " Chicken Breast ", CaloriesPer100g: 999})
		require.NoError(t, err)
		assert.Equal(t, chickenBreast.FoodID, id)
	})

	t.Run("new food is inserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newFoods(ctrl)
		newID := uuid.New()
		candidate := models.FoodCandidate{Name: "Lentils", CaloriesPer100g: 116, ProteinPer100g: 9, CarbsPer100g: 20, FatPer100g: 0.4}

		m.foods.EXPECT().GetByName(ctx, "Lentils").Return(nil, nil)
		m.foods.EXPECT().Create(ctx, candidate).Return(newID, nil)

		id, err := svc.ResolveOrCreate(ctx, candidate)
		require.NoError(t, err)
		assert.Equal(t, newID, id)
	})

	t.Run("invalid candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newFoods(ctrl)

		_, err := svc.ResolveOrCreate(ctx, models.FoodCandidate{Name: "  "})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)

		_, err = svc.ResolveOrCreate(ctx, models.FoodCandidate{Name: "Oil", FatPer100g: -1})
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "fat_per_100g", verr.Field)
	})
}

func TestFoodService_Search(t *testing.T) {
	ctx := context.Background()

	catalog := []models.FoodDB{
		{Name: "Almonds"}, {Name: "Banana"}, {Name: "Brown Rice"}, {Name: "Chicken Breast"},
		{Name: "Rice Cakes"}, {Name: "Turkey Breast"}, {Name: "White Rice"},
	}

	tests := []struct {
		name     string
		term     string
		limit    int
		setup    func(m foodMocks)
		expected []string
	}{
		{
			name:  "empty term lists first foods",
			term:  "  ",
			limit: 0,
			setup: func(m foodMocks) {
				m.foods.EXPECT().List(ctx, DefaultSearchLimit).Return(catalog[:3], nil)
			},
			expected: []string{"Almonds", "Banana", "Brown Rice"},
		},
		{
			name:  "limit is capped",
			term:  "",
			limit: 500,
			setup: func(m foodMocks) {
				m.foods.EXPECT().List(ctx, MaxSearchLimit).Return(catalog, nil)
			},
			expected: []string{"Almonds", "Banana", "Brown Rice", "Chicken Breast", "Rice Cakes", "Turkey Breast", "White Rice"},
		},
		{
			name:  "case-insensitive substring",
			term:  " RICE ",
			limit: 10,
			setup: func(m foodMocks) {
				m.foods.EXPECT().List(ctx, 0).Return(catalog, nil)
			},
			expected: []string{"Brown Rice", "Rice Cakes", "White Rice"},
		},
		{
			name:  "truncated to limit",
			term:  "breast",
			limit: 1,
			setup: func(m foodMocks) {
				m.foods.EXPECT().List(ctx, 0).Return(catalog, nil)
			},
			expected: []string{"Chicken Breast"},
		},
		{
			name:  "no match",
			term:  "kale",
			limit: 10,
			setup: func(m foodMocks) {
				m.foods.EXPECT().List(ctx, 0).Return(catalog, nil)
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newFoods(ctrl)
			tt.setup(m)

			foods, err := svc.Search(ctx, tt.term, tt.limit)
			require.NoError(t, err)

			names := make([]string, 0, len(foods))
			for _, f := range foods {
				names = append(names, f.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestFoodService_SearchExternal(t *testing.T) {
	ctx := context.Background()

	usdaHits := []models.ExternalFoodCandidate{
		{ID: "usda-1", Name: "Banana (Raw/Foundation)", Source: models.SourceUSDA},
		{ID: "usda-2", Name: "Banana Chips", Source: models.SourceUSDA},
	}
	offHits := []models.ExternalFoodCandidate{
		{ID: "off-1", Name: "banana chips", Source: models.SourceOpenFoodFacts},
		{ID: "off-2", Name: "Banana Bread", Source: models.SourceOpenFoodFacts},
	}

	t.Run("short term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newFoods(ctrl)
		foods, err := svc.SearchExternal(ctx, " ba ")
		require.NoError(t, err)
		assert.Empty(t, foods)
	})

	t.Run("merges USDA first and deduplicates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newFoods(ctrl)
		m.cache.EXPECT().GetExternalFoods(ctx, "banana").Return(nil, false, nil)
		m.usda.EXPECT().Search(gomock.Any(), "banana").Return(usdaHits, nil)
		m.off.EXPECT().Search(gomock.Any(), "banana").Return(offHits, nil)
		m.cache.EXPECT().SetExternalFoods(ctx, "banana", gomock.Len(3)).Return(nil)

		foods, err := svc.SearchExternal(ctx, "banana")
		require.NoError(t, err)
		require.Len(t, foods, 3)
		assert.Equal(t, "usda-1", foods[0].ID)
		assert.Equal(t, "usda-2", foods[1].ID)
		assert.Equal(t, "off-2", foods[2].ID)
	})

	t.Run("failing provider degrades to the other", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newFoods(ctrl)
		m.cache.EXPECT().GetExternalFoods(ctx, "banana").Return(nil, false, errors.New("redis down"))
		m.usda.EXPECT().Search(gomock.Any(), "banana").Return(nil, errors.New("usda timeout"))
		m.off.EXPECT().Search(gomock.Any(), "banana").Return(offHits[1:], nil)
		// A partial result must not be cached for the whole TTL.
		m.cache.EXPECT().SetExternalFoods(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		foods, err := svc.SearchExternal(ctx, "banana")
		require.NoError(t, err)
		assert.Equal(t, offHits[1:], foods)
	})

	t.Run("cache key ignores case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newFoods(ctrl)
		m.cache.EXPECT().GetExternalFoods(ctx, "banana").Return(nil, false, nil)
		m.usda.EXPECT().Search(gomock.Any(), "Banana").Return(usdaHits, nil)
		m.off.EXPECT().Search(gomock.Any(), "Banana").Return(nil, nil)
		m.cache.EXPECT().SetExternalFoods(ctx, "banana", usdaHits).Return(nil)

		foods, err := svc.SearchExternal(ctx, " Banana ")
		require.NoError(t, err)
		assert.Equal(t, usdaHits, foods)

		m.cache.EXPECT().GetExternalFoods(ctx, "banana").Return(usdaHits, true, nil)
		foods, err = svc.SearchExternal(ctx, "BANANA")
		require.NoError(t, err)
		assert.Equal(t, usdaHits, foods)
	})

	t.Run("cache hit skips providers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newFoods(ctrl)
		m.cache.EXPECT().GetExternalFoods(ctx, "banana").Return(usdaHits, true, nil)

		foods, err := svc.SearchExternal(ctx, "banana")
		require.NoError(t, err)
		assert.Equal(t, usdaHits, foods)
	})

	t.Run("no providers or cache", func(t *testing.T) {
		svc := NewFoodService(nil, nil, nil, nil, nil)
		foods, err := svc.SearchExternal(ctx, "banana")
		require.NoError(t, err)
		assert.Empty(t, foods)
	})
}

func TestFoodService_FindImage(t *testing.T) {
	ctx := context.Background()

	t.Run("cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newFoods(ctrl)
		m.cache.EXPECT().GetImageURL(ctx, "Banana").Return("https://img/banana.jpg", true, nil)

		url, err := svc.FindImage(ctx, "Banana")
		require.NoError(t, err)
		assert.Equal(t, "https://img/banana.jpg", url)
	})

	t.Run("looked up and cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newFoods(ctrl)
		m.cache.EXPECT().GetImageURL(ctx, "Banana").Return("", false, nil)
		m.images.EXPECT().FindImage(ctx, "Banana").Return("https://img/banana.jpg", nil)
		m.cache.EXPECT().SetImageURL(ctx, "Banana", "https://img/banana.jpg").Return(nil)

		url, err := svc.FindImage(ctx, "Banana")
		require.NoError(t, err)
		assert.Equal(t, "https://img/banana.jpg", url)
	})

	t.Run("lookup failure means no image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newFoods(ctrl)
		m.cache.EXPECT().GetImageURL(ctx, "Banana").Return("", false, nil)
		m.images.EXPECT().FindImage(ctx, "Banana").Return("", errors.New("rate limited"))

		url, err := svc.FindImage(ctx, "Banana")
		require.NoError(t, err)
		assert.Empty(t, url)
	})

	t.Run("blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newFoods(ctrl)
		url, err := svc.FindImage(ctx, " ")
		require.NoError(t, err)
		assert.Empty(t, url)
	})
}
