package routes

import (
	"net/http"

	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	progressSvc := services.NewProgressService(db)
	mealSvc := services.NewMealService(db, progressSvc)
	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	feedbackSvc := services.NewFeedbackService(db)

	nutritionSvc := services.NewNutritionService()
	visionSvc, err := services.NewRekognitionService()
	if err != nil {
		// Recognition degrades to manual entry; everything else keeps working.
		log.WithError(err).Warn("rekognition unavailable, food recognition disabled")
	}
	foodSvc := services.NewFoodService(visionSvc, nutritionSvc)

	authCtl := controllers.NewAuthController(authSvc, userSvc)
	userCtl := controllers.NewUserController(userSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	progressCtl := controllers.NewProgressController(progressSvc)
	feedbackCtl := controllers.NewFeedbackController(feedbackSvc)
	foodCtl := controllers.NewFoodController(foodSvc)

	r := gin.Default()
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/status", middlewares.AuthMiddleware(), authCtl.Status)
	}

	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
	}

	meals := api.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.GET("", mealCtl.List)
		meals.POST("", mealCtl.Create)
		meals.GET("/by-date", mealCtl.ListByDate)
		meals.GET("/:id", mealCtl.Get)
		meals.PUT("/:id", mealCtl.Update)
		meals.PATCH("/:id", mealCtl.Update)
		meals.DELETE("/:id", mealCtl.Delete)
	}

	progress := api.Group("/progress")
	progress.Use(middlewares.AuthMiddleware())
	{
		progress.GET("", progressCtl.List)
		progress.GET("/date/:date", progressCtl.GetByDate)
		progress.GET("/range", progressCtl.GetRange)
		progress.POST("/date/:date/recompute", progressCtl.Recompute)
	}

	feedback := api.Group("/feedback")
	feedback.Use(middlewares.AuthMiddleware())
	{
		feedback.POST("", feedbackCtl.Create)
		feedback.GET("", feedbackCtl.List)
	}

	food := api.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/search", foodCtl.Search)
		food.POST("/recognize", foodCtl.Recognize)
		food.POST("/image", foodCtl.UploadImage)
	}

	return r
}
