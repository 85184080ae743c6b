package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
)

const kilojoulesPerKcal = 4.184

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

type offProduct struct {
	ID          string         `json:"id"`
	Code        string         `json:"code"`
	ProductName string         `json:"product_name"`
	Nutriments  map[string]any `json:"nutriments"`
}

// OpenFoodFactsFacade searches the Open Food Facts product database.
type OpenFoodFactsFacade struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// NewOpenFoodFactsFacade creates a new facade.
func NewOpenFoodFactsFacade(client *http.Client, baseURL string, timeout time.Duration) *OpenFoodFactsFacade {
	return &OpenFoodFactsFacade{client: client, baseURL: baseURL, timeout: timeout}
}

// Search returns up to five normalized candidates for term.
func (f *OpenFoodFactsFacade) Search(ctx context.Context, term string) ([]models.ExternalFoodCandidate, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	q := url.Values{}
	q.Set("search_terms", term)
	q.Set("search_simple", "1")
	q.Set("action", "process")
	q.Set("json", "1")
	q.Set("page_size", "5")
	q.Set("fields", "product_name,nutriments,id,code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/cgi/search.pl?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to query Open Food Facts", "term", term, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.FromContext(ctx).Errorw("Open Food Facts returned non-OK status", "term", term, "status", resp.StatusCode)
		return nil, fmt.Errorf("openfoodfacts: unexpected status %d", resp.StatusCode)
	}

	var data offSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.FromContext(ctx).Errorw("failed to decode Open Food Facts response", "term", term, "error", err)
		return nil, err
	}

	foods := make([]models.ExternalFoodCandidate, 0, len(data.Products))
	for _, p := range data.Products {
		if c, ok := normalizeOFFProduct(p); ok {
			foods = append(foods, c)
		}
	}
	return foods, nil
}

func normalizeOFFProduct(p offProduct) (models.ExternalFoodCandidate, bool) {
	number := func(key string) *float64 {
		if v, ok := p.Nutriments[key].(float64); ok {
			return &v
		}
		return nil
	}

	calories := number("energy-kcal_100g")
	if calories == nil {
		calories = number("energy-kcal")
	}
	if calories == nil {
		if kj := number("energy_100g"); kj != nil {
			kcal := *kj / kilojoulesPerKcal
			calories = &kcal
		}
	}

	protein := number("proteins_100g")
	carbs := number("carbohydrates_100g")
	fat := number("fat_100g")

	if p.ProductName == "" || calories == nil || protein == nil || carbs == nil || fat == nil {
		return models.ExternalFoodCandidate{}, false
	}

	id := p.ID
	if id == "" {
		id = p.Code
	}

	return models.ExternalFoodCandidate{
		ID:              "off-" + id,
		Name:            p.ProductName,
		CaloriesPer100g: *calories,
		ProteinPer100g:  *protein,
		CarbsPer100g:    *carbs,
		FatPer100g:      *fat,
		FiberPer100g:    number("fiber_100g"),
		Source:          models.SourceOpenFoodFacts,
	}, true
}
