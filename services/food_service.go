package services

import (
	"backend/utils"
)

// FoodService chains image recognition and nutrition lookup into the
// "photograph your plate" flow: image in, loggable meal fields out.
type FoodService struct {
	vision    *RekognitionService
	nutrition *NutritionService
}

func NewFoodService(vision *RekognitionService, nutrition *NutritionService) *FoodService {
	return &FoodService{vision: vision, nutrition: nutrition}
}

// RecognizedFood is ready to submit as a meal: a name plus per-100g
// macros the client scales by portion size.
type RecognizedFood struct {
	Label    string       `json:"label"`
	Category string       `json:"category,omitempty"`
	Macros   MacroSummary `json:"macros"`
}

// Recognize takes a base64 data-URI image and returns the best food
// match. Images with nothing edible in them fail with ErrNotFood.
func (s *FoodService) Recognize(imageDataURI string) (*RecognizedFood, error) {
	if s.vision == nil {
		return nil, ErrVisionUnavailable
	}

	data, _, err := utils.DecodeImageDataURI(imageDataURI)
	if err != nil {
		return nil, validationErrorf(err.Error())
	}

	labels, err := s.vision.DetectFoodLabels(data)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, ErrNotFood
	}

	match, err := s.nutrition.Lookup(labels[0])
	if err != nil {
		return nil, err
	}

	return &RecognizedFood{
		Label:    match.Label,
		Category: match.Category,
		Macros:   match.Macros,
	}, nil
}

func (s *FoodService) Search(query string) ([]FoodMatch, error) {
	return s.nutrition.Search(query)
}
