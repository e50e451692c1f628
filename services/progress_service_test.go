package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProgressEmptyDayReturnsZeros(t *testing.T) {
	_, progress, db := newMealService(t)

	prog, err := progress.Get(1, mustDay("2024-06-15"))
	require.NoError(t, err)
	assert.Zero(t, prog.TotalCalories)
	assert.Zero(t, prog.TotalProtein)
	assert.Zero(t, prog.TotalCarbs)
	assert.Zero(t, prog.TotalFat)
	assert.Empty(t, prog.Meals)

	// the zero-valued read is not persisted
	var count int64
	require.NoError(t, db.Model(&models.Progress{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeletingLastMealKeepsZeroedDay(t *testing.T) {
	meals, progress, db := newMealService(t)
	const userID = 1

	meal, err := meals.Create(userID, oatmeal("2024-01-01"))
	require.NoError(t, err)
	require.NoError(t, meals.Delete(userID, meal.ID))

	prog, err := progress.Get(userID, mustDay("2024-01-01"))
	require.NoError(t, err)
	assert.Zero(t, prog.TotalCalories)
	assert.Empty(t, prog.Meals)

	// the day row itself survives at zero
	var count int64
	require.NoError(t, db.Model(&models.Progress{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProgressListNewestFirst(t *testing.T) {
	meals, progress, _ := newMealService(t)
	const userID = 1

	for _, d := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		_, err := meals.Create(userID, oatmeal(d))
		require.NoError(t, err)
	}

	list, err := progress.List(userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].Day.Equal(mustDay("2024-01-03")))
	assert.True(t, list[2].Day.Equal(mustDay("2024-01-01")))
}

func TestProgressRangeInclusiveAscending(t *testing.T) {
	meals, progress, _ := newMealService(t)
	const userID = 1

	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"} {
		_, err := meals.Create(userID, oatmeal(d))
		require.NoError(t, err)
	}

	got, err := progress.Range(userID, mustDay("2024-01-02"), mustDay("2024-01-05"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Day.Equal(mustDay("2024-01-02")))
	assert.True(t, got[1].Day.Equal(mustDay("2024-01-03")))
	assert.True(t, got[2].Day.Equal(mustDay("2024-01-05")))
}

func TestProgressIsolatedPerUser(t *testing.T) {
	meals, progress, _ := newMealService(t)

	_, err := meals.Create(1, oatmeal("2024-01-01"))
	require.NoError(t, err)

	prog, err := progress.Get(2, mustDay("2024-01-01"))
	require.NoError(t, err)
	assert.Zero(t, prog.TotalCalories)
	assert.Empty(t, prog.Meals)
}

func TestRecomputeRepairsDrift(t *testing.T) {
	meals, progress, db := newMealService(t)
	const userID = 1

	_, err := meals.Create(userID, oatmeal("2024-01-01"))
	require.NoError(t, err)
	_, err = meals.Create(userID, MealInput{
		Name:     "Rice Bowl",
		MealType: models.MealTypeDinner,
		Date:     mustDay("2024-01-01"),
		Calories: 600,
		Protein:  20,
		Carbs:    90,
		Fat:      12,
	})
	require.NoError(t, err)

	// simulate drift: clobber the stored totals behind the service's back
	require.NoError(t, db.Model(&models.Progress{}).
		Where("user_id = ?", userID).
		UpdateColumns(map[string]interface{}{
			"total_calories": 9999,
			"total_protein":  0,
		}).Error)

	prog, err := progress.Recompute(userID, mustDay("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 900.0, prog.TotalCalories)
	assert.Equal(t, 30.0, prog.TotalProtein)
	assert.Equal(t, 140.0, prog.TotalCarbs)
	assert.Equal(t, 17.0, prog.TotalFat)
	assert.Len(t, prog.Meals, 2)

	// and the repair is durable
	stored, err := progress.Get(userID, mustDay("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 900.0, stored.TotalCalories)
}

func TestRecomputeOnEmptyDay(t *testing.T) {
	_, progress, _ := newMealService(t)

	prog, err := progress.Recompute(1, mustDay("2024-01-01"))
	require.NoError(t, err)
	assert.Zero(t, prog.TotalCalories)
	assert.Empty(t, prog.Meals)
}
