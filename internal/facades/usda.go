package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
)

// USDA FoodData Central nutrient ids.
var (
	usdaEnergyIDs = []int{1008, 2047, 2048}
	usdaProteinID = 1003
	usdaFatID     = 1004
	usdaCarbsID   = 1005
	usdaFiberID   = 1079
)

const usdaPageSize = 5

type usdaSearchResponse struct {
	Foods []usdaFood `json:"foods"`
}

type usdaFood struct {
	FdcID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	DataType      string         `json:"dataType"`
	BrandOwner    string         `json:"brandOwner"`
	FoodNutrients []usdaNutrient `json:"foodNutrients"`
}

type usdaNutrient struct {
	NutrientID int      `json:"nutrientId"`
	Value      *float64 `json:"value"`
}

// USDAFacade searches the USDA FoodData Central database.
type USDAFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewUSDAFacade creates a new facade. An empty apiKey disables the provider.
func NewUSDAFacade(client *http.Client, baseURL, apiKey string, timeout time.Duration) *USDAFacade {
	return &USDAFacade{client: client, baseURL: baseURL, apiKey: apiKey, timeout: timeout}
}

// Search returns up to five normalized candidates for term.
func (f *USDAFacade) Search(ctx context.Context, term string) ([]models.ExternalFoodCandidate, error) {
	if f.apiKey == "" {
		return nil, nil
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	q := url.Values{}
	q.Set("api_key", f.apiKey)
	q.Set("query", term)
	q.Set("pageSize", strconv.Itoa(usdaPageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/foods/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to query USDA", "term", term, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.FromContext(ctx).Errorw("USDA returned non-OK status", "term", term, "status", resp.StatusCode)
		return nil, fmt.Errorf("usda: unexpected status %d", resp.StatusCode)
	}

	var data usdaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.FromContext(ctx).Errorw("failed to decode USDA response", "term", term, "error", err)
		return nil, err
	}

	foods := make([]models.ExternalFoodCandidate, 0, len(data.Foods))
	for _, food := range data.Foods {
		if c, ok := normalizeUSDAFood(food); ok {
			foods = append(foods, c)
		}
	}
	return foods, nil
}

func normalizeUSDAFood(food usdaFood) (models.ExternalFoodCandidate, bool) {
	nutrient := func(ids ...int) *float64 {
		for _, n := range food.FoodNutrients {
			for _, id := range ids {
				if n.NutrientID == id && n.Value != nil {
					return n.Value
				}
			}
		}
		return nil
	}
	orZero := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}

	calories := nutrient(usdaEnergyIDs...)
	if food.Description == "" || calories == nil {
		return models.ExternalFoodCandidate{}, false
	}

	name := food.Description
	switch {
	case food.BrandOwner != "":
		name = fmt.Sprintf("%s (%s)", name, food.BrandOwner)
	case food.DataType == "Foundation":
		name = name + " (Raw/Foundation)"
	}

	return models.ExternalFoodCandidate{
		ID:              fmt.Sprintf("usda-%d", food.FdcID),
		Name:            name,
		CaloriesPer100g: *calories,
		ProteinPer100g:  orZero(nutrient(usdaProteinID)),
		CarbsPer100g:    orZero(nutrient(usdaCarbsID)),
		FatPer100g:      orZero(nutrient(usdaFatID)),
		FiberPer100g:    nutrient(usdaFiberID),
		Source:          models.SourceUSDA,
	}, true
}
