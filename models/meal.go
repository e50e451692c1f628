package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Meal types accepted by the API.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// Meal is one logged food entry. Day is the meal's date truncated to
// local midnight; every aggregate key uses this value.
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index:idx_meals_user_day;not null" json:"user_id"`
	Name     string    `gorm:"not null" json:"name"`
	MealType string    `gorm:"default:snack" json:"meal_type"`
	Day      time.Time `gorm:"index:idx_meals_user_day;not null" json:"date"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	// Denormalized copies of upstream lookup data, no invariants.
	Image        string                      `json:"image,omitempty"`
	Category     string                      `json:"category,omitempty"`
	IsVegetarian bool                        `json:"is_vegetarian"`
	Ingredients  datatypes.JSONSlice[string] `json:"ingredients,omitempty"`
	Instructions string                      `json:"instructions,omitempty"`
}

// ValidMealType reports whether t is one of the accepted meal types.
func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}
