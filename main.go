package main

import (
	"os"

	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	config.Load()
	config.InitDB()

	if err := os.MkdirAll(config.App.UploadDir, 0o755); err != nil {
		logrus.Fatal("failed to create upload directory: ", err)
	}

	// Default middleware: logger + recovery
	r := gin.Default()

	// Dashboards and the display app run on separate origins
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Menuboard API",
		})
	})

	routes.SetupRoutes(r)

	logrus.Infof("server running on port %s", config.App.Port)
	if err := r.Run(":" + config.App.Port); err != nil {
		logrus.Fatal("failed to start server: ", err)
	}
}
