package models

import (
	"time"

	"gorm.io/gorm"
)

// Progress is the per-user-per-day rollup of meal macros. It is a
// materialized view over the meals table: the totals are maintained by
// delta application on every meal mutation, never recomputed on read.
type Progress struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_progress_user_day;not null" json:"user_id"`
	Day    time.Time `gorm:"uniqueIndex:idx_progress_user_day;not null" json:"date"`

	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`

	// The meals summed into this day's totals.
	Meals []Meal `gorm:"many2many:progress_meals" json:"meals"`
}
