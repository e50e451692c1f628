package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealService owns the meal ledger. Every mutation pairs the meal write
// with the matching progress update inside one transaction: if the rollup
// cannot be applied, the meal write does not happen either.
type MealService struct {
	db       *gorm.DB
	progress *ProgressService
}

func NewMealService(db *gorm.DB, progress *ProgressService) *MealService {
	return &MealService{db: db, progress: progress}
}

// MealInput is the typed command a controller hands in after binding.
// Date may carry any time of day; the ledger truncates it.
type MealInput struct {
	Name         string
	MealType     string
	Date         time.Time
	Calories     float64
	Protein      float64
	Carbs        float64
	Fat          float64
	Image        string
	Category     string
	IsVegetarian bool
	Ingredients  []string
	Instructions string
}

func (in *MealInput) validate() error {
	if in.Name == "" {
		return validationErrorf("name is required")
	}
	if in.Date.IsZero() {
		return validationErrorf("date is required")
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return validationErrorf("macro values cannot be negative")
	}
	if in.MealType == "" {
		in.MealType = models.MealTypeSnack
	}
	if !models.ValidMealType(in.MealType) {
		return validationErrorf(fmt.Sprintf("invalid meal type %q", in.MealType))
	}
	return nil
}

func (s *MealService) Create(userID uint, in MealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:       userID,
		Name:         in.Name,
		MealType:     in.MealType,
		Day:          utils.TruncateToDay(in.Date),
		Calories:     in.Calories,
		Protein:      in.Protein,
		Carbs:        in.Carbs,
		Fat:          in.Fat,
		Image:        in.Image,
		Category:     in.Category,
		IsVegetarian: in.IsVegetarian,
		Ingredients:  datatypes.JSONSlice[string](in.Ingredients),
		Instructions: in.Instructions,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		if err := s.progress.AddMeal(tx, meal); err != nil {
			logAggregateFailure("create", userID, meal, err)
			return fmt.Errorf("progress upsert: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("day DESC, created_at DESC").
		Find(&meals).Error
	return meals, err
}

// ListByDay returns the caller's meals for one day, in logging order.
func (s *MealService) ListByDay(userID uint, day time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND day = ?", userID, day).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(userID, mealID uint) (*models.Meal, error) {
	return s.getOwned(s.db, userID, mealID)
}

func (s *MealService) getOwned(tx *gorm.DB, userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := tx.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// MealUpdate is a partial update; nil fields stay untouched.
type MealUpdate struct {
	Name         *string
	MealType     *string
	Date         *time.Time
	Calories     *float64
	Protein      *float64
	Carbs        *float64
	Fat          *float64
	Image        *string
	Category     *string
	IsVegetarian *bool
	Ingredients  *[]string
	Instructions *string
}

// Update rewrites the changed fields and keeps the rollups exact: the
// day's totals move by precisely (new - old). When the update moves the
// meal to another day, the old day gives up the old macros and the meal
// reference, and the new day gains the new ones.
func (s *MealService) Update(userID, mealID uint, upd MealUpdate) (*models.Meal, error) {
	var meal *models.Meal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		meal, err = s.getOwned(tx, userID, mealID)
		if err != nil {
			return err
		}

		before := *meal
		applyMealUpdate(meal, upd)

		if meal.Name == "" {
			return validationErrorf("name cannot be empty")
		}
		if meal.Calories < 0 || meal.Protein < 0 || meal.Carbs < 0 || meal.Fat < 0 {
			return validationErrorf("macro values cannot be negative")
		}
		if !models.ValidMealType(meal.MealType) {
			return validationErrorf(fmt.Sprintf("invalid meal type %q", meal.MealType))
		}

		if err := tx.Save(meal).Error; err != nil {
			return err
		}

		if !meal.Day.Equal(before.Day) {
			if err := s.progress.RemoveMeal(tx, &before); err != nil {
				logAggregateFailure("update", userID, meal, err)
				return fmt.Errorf("progress delta: %w", err)
			}
			if err := s.progress.AddMeal(tx, meal); err != nil {
				logAggregateFailure("update", userID, meal, err)
				return fmt.Errorf("progress delta: %w", err)
			}
			return nil
		}

		delta := MacrosOf(meal).Sub(MacrosOf(&before))
		if delta.IsZero() {
			return nil
		}
		if err := s.progress.ApplyDelta(tx, userID, meal.Day, delta); err != nil {
			logAggregateFailure("update", userID, meal, err)
			return fmt.Errorf("progress delta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(userID, mealID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		meal, err := s.getOwned(tx, userID, mealID)
		if err != nil {
			return err
		}
		if err := s.progress.RemoveMeal(tx, meal); err != nil {
			logAggregateFailure("delete", userID, meal, err)
			return fmt.Errorf("progress delta: %w", err)
		}
		return tx.Delete(meal).Error
	})
}

func applyMealUpdate(meal *models.Meal, upd MealUpdate) {
	if upd.Name != nil {
		meal.Name = *upd.Name
	}
	if upd.MealType != nil {
		meal.MealType = *upd.MealType
	}
	if upd.Date != nil {
		meal.Day = utils.TruncateToDay(*upd.Date)
	}
	if upd.Calories != nil {
		meal.Calories = *upd.Calories
	}
	if upd.Protein != nil {
		meal.Protein = *upd.Protein
	}
	if upd.Carbs != nil {
		meal.Carbs = *upd.Carbs
	}
	if upd.Fat != nil {
		meal.Fat = *upd.Fat
	}
	if upd.Image != nil {
		meal.Image = *upd.Image
	}
	if upd.Category != nil {
		meal.Category = *upd.Category
	}
	if upd.IsVegetarian != nil {
		meal.IsVegetarian = *upd.IsVegetarian
	}
	if upd.Ingredients != nil {
		meal.Ingredients = datatypes.JSONSlice[string](*upd.Ingredients)
	}
	if upd.Instructions != nil {
		meal.Instructions = *upd.Instructions
	}
}

// A failed rollup write aborts the whole mutation, but it still gets its
// own log line so drift attempts are visible in operations.
func logAggregateFailure(op string, userID uint, meal *models.Meal, err error) {
	log.WithFields(log.Fields{
		"component": "aggregate",
		"op":        op,
		"user_id":   userID,
		"meal_id":   meal.ID,
		"day":       meal.Day.Format("2006-01-02"),
	}).WithError(err).Error("progress update failed, rolling back meal mutation")
}
