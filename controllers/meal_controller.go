package controllers

import (
	"net/http"
	"strconv"

	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

// Macro fields are pointers so an explicit zero passes the required
// check while a missing field fails it.
type CreateMealInput struct {
	Name         string   `json:"name" binding:"required"`
	Calories     *float64 `json:"calories" binding:"required,gte=0"`
	Protein      *float64 `json:"protein" binding:"required,gte=0"`
	Carbs        *float64 `json:"carbs" binding:"required,gte=0"`
	Fat          *float64 `json:"fat" binding:"required,gte=0"`
	Date         string   `json:"date" binding:"required"`
	MealType     string   `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	IsVegetarian bool     `json:"is_vegetarian"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

func (ctl *MealController) Create(c *gin.Context) {
	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := utils.ParseDay(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.meals.Create(middlewares.CallerID(c), services.MealInput{
		Name:         input.Name,
		MealType:     input.MealType,
		Date:         date,
		Calories:     *input.Calories,
		Protein:      *input.Protein,
		Carbs:        *input.Carbs,
		Fat:          *input.Fat,
		Image:        input.Image,
		Category:     input.Category,
		IsVegetarian: input.IsVegetarian,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (ctl *MealController) List(c *gin.Context) {
	meals, err := ctl.meals.List(middlewares.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ctl *MealController) ListByDate(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required"})
		return
	}
	day, err := utils.ParseDay(dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meals, err := ctl.meals.ListByDay(middlewares.CallerID(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ctl *MealController) Get(c *gin.Context) {
	mealID, ok := parseID(c)
	if !ok {
		return
	}
	meal, err := ctl.meals.Get(middlewares.CallerID(c), mealID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

type UpdateMealInput struct {
	Name         *string  `json:"name"`
	Calories     *float64 `json:"calories" binding:"omitempty,gte=0"`
	Protein      *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs        *float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fat          *float64 `json:"fat" binding:"omitempty,gte=0"`
	Date         *string  `json:"date"`
	MealType     *string  `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Image        *string  `json:"image"`
	Category     *string  `json:"category"`
	IsVegetarian *bool    `json:"is_vegetarian"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *string  `json:"instructions"`
}

func (ctl *MealController) Update(c *gin.Context) {
	mealID, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := services.MealUpdate{
		Name:         input.Name,
		MealType:     input.MealType,
		Calories:     input.Calories,
		Protein:      input.Protein,
		Carbs:        input.Carbs,
		Fat:          input.Fat,
		Image:        input.Image,
		Category:     input.Category,
		IsVegetarian: input.IsVegetarian,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
	}
	if input.Date != nil {
		date, err := utils.ParseDay(*input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		upd.Date = &date
	}

	meal, err := ctl.meals.Update(middlewares.CallerID(c), mealID, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) Delete(c *gin.Context) {
	mealID, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.meals.Delete(middlewares.CallerID(c), mealID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted successfully"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrMealNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}
