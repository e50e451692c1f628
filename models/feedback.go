package models

import (
	"gorm.io/gorm"
)

const (
	FeedbackTypeSuggestion = "suggestion"
	FeedbackTypeQuestion   = "question"
	FeedbackTypeBug        = "bug"
	FeedbackTypeFeature    = "feature"
	FeedbackTypeOther      = "other"
)

const (
	FeedbackStatusPending     = "pending"
	FeedbackStatusReviewed    = "reviewed"
	FeedbackStatusImplemented = "implemented"
	FeedbackStatusDeclined    = "declined"
)

type Feedback struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Content string `gorm:"size:1000;not null" json:"content"`
	Type    string `gorm:"default:suggestion" json:"type"`
	Status  string `gorm:"default:pending" json:"status"`
}

// ValidFeedbackType reports whether t is one of the accepted feedback types.
func ValidFeedbackType(t string) bool {
	switch t {
	case FeedbackTypeSuggestion, FeedbackTypeQuestion, FeedbackTypeBug,
		FeedbackTypeFeature, FeedbackTypeOther:
		return true
	}
	return false
}
