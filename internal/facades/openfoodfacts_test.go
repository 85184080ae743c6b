package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const offBody = `{
  "products": [
    {"id": "111", "product_name": "Oat Drink",
     "nutriments": {"energy-kcal_100g": 46, "proteins_100g": 1, "carbohydrates_100g": 6.7, "fat_100g": 1.5, "fiber_100g": 0.8}},
    {"code": "222", "product_name": "Granola",
     "nutriments": {"energy-kcal": 450, "proteins_100g": 9, "carbohydrates_100g": 60, "fat_100g": 18}},
    {"id": "333", "product_name": "Crackers",
     "nutriments": {"energy_100g": 1841, "proteins_100g": 10, "carbohydrates_100g": 70, "fat_100g": 10}},
    {"id": "444", "product_name": "Mystery",
     "nutriments": {"energy-kcal_100g": 100, "proteins_100g": "n/a", "carbohydrates_100g": 1, "fat_100g": 1}},
    {"id": "555", "product_name": "",
     "nutriments": {"energy-kcal_100g": 100, "proteins_100g": 1, "carbohydrates_100g": 1, "fat_100g": 1}}
  ]
}`

func TestOpenFoodFactsFacade_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "oat", r.URL.Query().Get("search_terms"))
		assert.Equal(t, "5", r.URL.Query().Get("page_size"))
		_, _ = w.Write([]byte(offBody))
	}))
	defer srv.Close()

	foods, err := NewOpenFoodFactsFacade(srv.Client(), srv.URL, time.Second).Search(context.Background(), "oat")
	require.NoError(t, err)
	require.Len(t, foods, 3)

	assert.Equal(t, "off-111", foods[0].ID)
	assert.Equal(t, 46.0, foods[0].CaloriesPer100g)
	require.NotNil(t, foods[0].FiberPer100g)
	assert.Equal(t, models.SourceOpenFoodFacts, foods[0].Source)

	assert.Equal(t, "off-222", foods[1].ID)
	assert.Equal(t, 450.0, foods[1].CaloriesPer100g)
	assert.Nil(t, foods[1].FiberPer100g)

	assert.InDelta(t, 1841/4.184, foods[2].CaloriesPer100g, 1e-9)
}

func TestOpenFoodFactsFacade_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	foods, err := NewOpenFoodFactsFacade(srv.Client(), srv.URL, time.Second).Search(context.Background(), "oat")
	assert.Error(t, err)
	assert.Nil(t, foods)
}
