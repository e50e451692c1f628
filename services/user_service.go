package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate is a partial profile update; nil fields stay untouched.
type ProfileUpdate struct {
	FullName      *string
	Gender        *string
	Age           *int
	Weight        *float64
	Height        *float64
	Goal          *string
	ActivityLevel *string
}

func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if upd.FullName != nil {
		if *upd.FullName == "" {
			return nil, validationErrorf("full name cannot be empty")
		}
		user.FullName = *upd.FullName
	}
	if upd.Gender != nil {
		switch *upd.Gender {
		case "male", "female", "other", "":
			user.Gender = *upd.Gender
		default:
			return nil, validationErrorf("gender must be male, female or other")
		}
	}
	if upd.Age != nil {
		if *upd.Age < 0 {
			return nil, validationErrorf("age must be a positive number")
		}
		user.Age = *upd.Age
	}
	if upd.Weight != nil {
		if *upd.Weight < 0 {
			return nil, validationErrorf("weight must be a positive number")
		}
		user.Weight = *upd.Weight
	}
	if upd.Height != nil {
		if *upd.Height < 0 {
			return nil, validationErrorf("height must be a positive number")
		}
		user.Height = *upd.Height
	}
	if upd.Goal != nil {
		user.Goal = *upd.Goal
	}
	if upd.ActivityLevel != nil {
		user.ActivityLevel = *upd.ActivityLevel
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
