package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string  `gorm:"uniqueIndex;not null" json:"email"`
	Password      string  `gorm:"not null" json:"-"`
	FullName      string  `gorm:"not null" json:"full_name"`
	Gender        string  `json:"gender,omitempty"`
	Age           int     `json:"age,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Height        float64 `json:"height,omitempty"`
	Goal          string  `json:"goal,omitempty"`
	ActivityLevel string  `json:"activity_level,omitempty"`
}
