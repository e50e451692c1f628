package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	user, err := ctl.users.GetProfile(middlewares.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type ProfileInput struct {
	FullName      *string  `json:"full_name"`
	Gender        *string  `json:"gender"`
	Age           *int     `json:"age"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	Goal          *string  `json:"goal"`
	ActivityLevel *string  `json:"activity_level"`
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.UpdateProfile(middlewares.CallerID(c), services.ProfileUpdate{
		FullName:      input.FullName,
		Gender:        input.Gender,
		Age:           input.Age,
		Weight:        input.Weight,
		Height:        input.Height,
		Goal:          input.Goal,
		ActivityLevel: input.ActivityLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
