package main

import (
	"fmt"
	"log"
	"os"

	"creativedesk-backend/config"
	"creativedesk-backend/models"
	"creativedesk-backend/routes"
	"creativedesk-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.Connect()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer config.Close(db)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.PersonalDetail{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	scheduler := services.StartReminderScheduler(db)
	defer scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
