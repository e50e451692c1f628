package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// NutritionService talks to the Edamam food database. It only delivers a
// label and a macro tuple; correctness of the numbers is the provider's
// problem.
type NutritionService struct {
	appID  string
	appKey string
	client *http.Client
}

func NewNutritionService() *NutritionService {
	return &NutritionService{
		appID:  os.Getenv("EDAMAM_APP_ID"),
		appKey: os.Getenv("EDAMAM_APP_KEY"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// MacroSummary mirrors the four tracked quantities, per 100 g.
type MacroSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type FoodMatch struct {
	FoodID   string       `json:"food_id"`
	Label    string       `json:"label"`
	Category string       `json:"category"`
	Macros   MacroSummary `json:"macros"`
}

// Parser hits carry per-100g nutrient values.
type foodParserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string `json:"foodId"`
			Label     string `json:"label"`
			Category  string `json:"category"`
			Nutrients struct {
				Kcal    float64 `json:"ENERC_KCAL"`
				Protein float64 `json:"PROCNT"`
				Fat     float64 `json:"FAT"`
				Carbs   float64 `json:"CHOCDF"`
			} `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

func (s *NutritionService) Search(query string) ([]FoodMatch, error) {
	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		url.QueryEscape(query), s.appID, s.appKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("call food parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read food parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("parse food parser JSON: %w", err)
	}

	results := make([]FoodMatch, 0, len(pr.Hints))
	for _, h := range pr.Hints {
		results = append(results, FoodMatch{
			FoodID:   h.Food.FoodID,
			Label:    h.Food.Label,
			Category: h.Food.Category,
			Macros: MacroSummary{
				Calories: h.Food.Nutrients.Kcal,
				Protein:  h.Food.Nutrients.Protein,
				Carbs:    h.Food.Nutrients.Carbs,
				Fat:      h.Food.Nutrients.Fat,
			},
		})
	}
	return results, nil
}

// Lookup returns the best match for a food name.
func (s *NutritionService) Lookup(name string) (*FoodMatch, error) {
	matches, err := s.Search(name)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrFoodNotFound
	}
	return &matches[0], nil
}
