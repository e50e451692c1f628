package main

import (
	"os"

	"backend/config"
	"backend/routes"
	"backend/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
