package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	food *services.FoodService
}

func NewFoodController(food *services.FoodService) *FoodController {
	return &FoodController{food: food}
}

func (ctl *FoodController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q parameter is required"})
		return
	}

	matches, err := ctl.food.Search(query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

type RecognizeInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// Recognize runs the photo flow: detect a food label, look up its
// per-100g macros, hand back fields ready to log as a meal.
func (ctl *FoodController) Recognize(c *gin.Context) {
	var input RecognizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := ctl.food.Recognize(input.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

type UploadImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

func (ctl *FoodController) UploadImage(c *gin.Context) {
	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, _, err := utils.DecodeImageDataURI(input.ImageBase64); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := utils.UploadMealPhoto(input.ImageBase64, middlewares.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
