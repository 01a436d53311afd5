package main

import (
	"context"
	"time"

	"kala-hive/config"
	"kala-hive/database"
	routes "kala-hive/internal/app/http"
	"kala-hive/internal/infra/media"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	if err := media.Init(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to init media storage")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	logrus.WithField("port", config.PORT).Info("kala-hive listening")
	r.Run(":" + config.PORT)
}
