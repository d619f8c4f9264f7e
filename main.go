package main

import (
	"os"

	"github.com/kathanshah28/clinic-management/CronJobs"
	"github.com/kathanshah28/clinic-management/Models"
	"github.com/kathanshah28/clinic-management/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectSheet()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"}, // Replace with your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	},
	))
	Routes.ConfigRoutes(router)
	reminderService := CronJobs.NewVisitReminder(Models.Sheet)
	scheduler := reminderService.StartReminderCron()
	_ = scheduler

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	router.Run(":" + port)
}
