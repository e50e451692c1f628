package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Macros is the tracked nutrition tuple.
type Macros struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

func MacrosOf(m *models.Meal) Macros {
	return Macros{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat}
}

func (m Macros) Sub(o Macros) Macros {
	return Macros{
		Calories: m.Calories - o.Calories,
		Protein:  m.Protein - o.Protein,
		Carbs:    m.Carbs - o.Carbs,
		Fat:      m.Fat - o.Fat,
	}
}

func (m Macros) Neg() Macros {
	return Macros{Calories: -m.Calories, Protein: -m.Protein, Carbs: -m.Carbs, Fat: -m.Fat}
}

func (m Macros) IsZero() bool {
	return m.Calories == 0 && m.Protein == 0 && m.Carbs == 0 && m.Fat == 0
}

// ProgressService maintains the per-user-per-day rollups. The meals table
// is ground truth; these rows only exist so reads never re-sum a day.
// All mutating methods take the caller's transaction handle, so a meal
// write and its rollup update commit or roll back together.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// ensureDay creates the (user, day) row if it does not exist yet. The
// first meal of a day lands here.
func (s *ProgressService) ensureDay(tx *gorm.DB, userID uint, day time.Time) error {
	row := models.Progress{UserID: userID, Day: day}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoNothing: true,
	}).Create(&row).Error
}

// ApplyDelta adds delta to the day's totals in place. The increment is a
// single "SET total = total + ?" statement, so two concurrent writers on
// the same day never lose an update to a read-modify-write race.
func (s *ProgressService) ApplyDelta(tx *gorm.DB, userID uint, day time.Time, delta Macros) error {
	if err := s.ensureDay(tx, userID, day); err != nil {
		return err
	}
	return tx.Model(&models.Progress{}).
		Where("user_id = ? AND day = ?", userID, day).
		UpdateColumns(map[string]interface{}{
			"total_calories": gorm.Expr("total_calories + ?", delta.Calories),
			"total_protein":  gorm.Expr("total_protein + ?", delta.Protein),
			"total_carbs":    gorm.Expr("total_carbs + ?", delta.Carbs),
			"total_fat":      gorm.Expr("total_fat + ?", delta.Fat),
		}).Error
}

// AddMeal credits a newly created meal to its day and records the meal
// reference.
func (s *ProgressService) AddMeal(tx *gorm.DB, meal *models.Meal) error {
	if err := s.ApplyDelta(tx, meal.UserID, meal.Day, MacrosOf(meal)); err != nil {
		return err
	}

	var prog models.Progress
	if err := tx.Where("user_id = ? AND day = ?", meal.UserID, meal.Day).First(&prog).Error; err != nil {
		return err
	}
	return tx.Model(&prog).Association("Meals").Append(meal)
}

// RemoveMeal debits a meal from its day and drops the meal reference.
// The row stays behind at zero rather than being deleted.
func (s *ProgressService) RemoveMeal(tx *gorm.DB, meal *models.Meal) error {
	if err := s.ApplyDelta(tx, meal.UserID, meal.Day, MacrosOf(meal).Neg()); err != nil {
		return err
	}

	var prog models.Progress
	if err := tx.Where("user_id = ? AND day = ?", meal.UserID, meal.Day).First(&prog).Error; err != nil {
		return err
	}
	return tx.Model(&prog).Association("Meals").Delete(meal)
}

// Get returns the stored rollup for a day, or an unpersisted zero-valued
// one when no meal has been logged yet. Reading an empty day is not an
// error.
func (s *ProgressService) Get(userID uint, day time.Time) (*models.Progress, error) {
	var prog models.Progress
	err := s.db.Preload("Meals").
		Where("user_id = ? AND day = ?", userID, day).
		First(&prog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Progress{UserID: userID, Day: day, Meals: []models.Meal{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &prog, nil
}

func (s *ProgressService) List(userID uint) ([]models.Progress, error) {
	var progress []models.Progress
	err := s.db.Preload("Meals").
		Where("user_id = ?", userID).
		Order("day DESC").
		Find(&progress).Error
	return progress, err
}

// Range returns the rollups between startDay and endDay inclusive,
// oldest first.
func (s *ProgressService) Range(userID uint, startDay, endDay time.Time) ([]models.Progress, error) {
	var progress []models.Progress
	err := s.db.Preload("Meals").
		Where("user_id = ? AND day >= ? AND day <= ?", userID, startDay, endDay).
		Order("day ASC").
		Find(&progress).Error
	return progress, err
}

// Recompute re-sums a day straight from the meals table and replaces the
// stored totals and references. Repair tool for drift: incremental deltas
// cannot self-heal once a delta is lost or doubled.
func (s *ProgressService) Recompute(userID uint, day time.Time) (*models.Progress, error) {
	var prog models.Progress
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var meals []models.Meal
		if err := tx.Where("user_id = ? AND day = ?", userID, day).Find(&meals).Error; err != nil {
			return err
		}

		var totals Macros
		for _, m := range meals {
			totals.Calories += m.Calories
			totals.Protein += m.Protein
			totals.Carbs += m.Carbs
			totals.Fat += m.Fat
		}

		if err := s.ensureDay(tx, userID, day); err != nil {
			return err
		}
		if err := tx.Where("user_id = ? AND day = ?", userID, day).First(&prog).Error; err != nil {
			return err
		}

		if err := tx.Model(&prog).UpdateColumns(map[string]interface{}{
			"total_calories": totals.Calories,
			"total_protein":  totals.Protein,
			"total_carbs":    totals.Carbs,
			"total_fat":      totals.Fat,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&prog).Association("Meals").Replace(&meals); err != nil {
			return err
		}

		prog.TotalCalories = totals.Calories
		prog.TotalProtein = totals.Protein
		prog.TotalCarbs = totals.Carbs
		prog.TotalFat = totals.Fat
		prog.Meals = meals
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &prog, nil
}
