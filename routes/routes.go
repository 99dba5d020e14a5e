package routes

import (
	"os"

	"creativedesk-backend/config"
	"creativedesk-backend/controllers"
	"creativedesk-backend/middleware"
	"creativedesk-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientURL, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.Static("/uploads", utils.UploadDir())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "API is running..."})
	})

	authController := controllers.NewAuthController(db)
	serviceController := controllers.NewServiceController(db)
	personalDetailController := controllers.NewPersonalDetailController(db)
	bookingController := controllers.NewBookingController(db)

	protect := middleware.Protect(db)
	adminOnly := middleware.AdminOnly()

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)

		auth.GET("/profile", protect, authController.GetProfile)
		auth.PUT("/profile", protect, authController.UpdateProfile)

		auth.GET("/all-users", protect, adminOnly, authController.GetAllUsers)
	}

	services := r.Group("/api/services")
	{
		services.POST("", protect, adminOnly, serviceController.CreateService)
		services.GET("", protect, adminOnly, serviceController.GetAllServices)
		services.PUT("/:id", protect, adminOnly, serviceController.UpdateService)
		services.DELETE("/:id", protect, adminOnly, serviceController.DeleteService)

		services.GET("/public", serviceController.GetActiveServices)
		services.GET("/public/:id", serviceController.GetActiveServiceByID)
	}

	personalDetails := r.Group("/api/personal-details")
	personalDetails.Use(protect)
	{
		personalDetails.POST("", personalDetailController.CreatePersonalDetail)
		personalDetails.GET("", personalDetailController.GetPersonalDetails)
		personalDetails.PUT("/:id", personalDetailController.UpdatePersonalDetail)
		personalDetails.DELETE("/:id", personalDetailController.DeletePersonalDetail)
		personalDetails.PUT("/select/:id", personalDetailController.SelectPersonalDetail)
	}

	bookings := r.Group("/api/bookings")
	bookings.Use(protect)
	{
		bookings.POST("", bookingController.CreateBooking)
		bookings.GET("/my", bookingController.GetMyBookings)
		bookings.GET("/my/:id", bookingController.GetMyBookingByID)

		bookings.GET("", adminOnly, bookingController.GetAllBookings)
		bookings.GET("/:id", adminOnly, bookingController.GetBookingByID)
		bookings.PUT("/:id/status", adminOnly, bookingController.UpdateBookingStatus)
	}

	return r
}
