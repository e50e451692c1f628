package services

import (
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// Create stores a feedback entry. Status always starts at pending; only
// the content and type come from the caller.
func (s *FeedbackService) Create(userID uint, content, feedbackType string) (*models.Feedback, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validationErrorf("content is required")
	}
	if len(content) > 1000 {
		return nil, validationErrorf("content must be at most 1000 characters")
	}
	if feedbackType == "" {
		feedbackType = models.FeedbackTypeSuggestion
	}
	if !models.ValidFeedbackType(feedbackType) {
		return nil, validationErrorf(fmt.Sprintf("invalid feedback type %q", feedbackType))
	}

	fb := models.Feedback{
		UserID:  userID,
		Content: content,
		Type:    feedbackType,
		Status:  models.FeedbackStatusPending,
	}
	if err := s.db.Create(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

func (s *FeedbackService) List(userID uint) ([]models.Feedback, error) {
	var entries []models.Feedback
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
