package controllers

import (
	"errors"
	"net/http"

	"creativedesk-backend/middleware"
	"creativedesk-backend/models"
	"creativedesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required"`
	Remark string `json:"remark"`
}

// adminUser limits the expanded user reference to id, name and email.
func adminUser(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

// CreateBooking places a booking against a service. Multipart: serviceId,
// personalDetailId and transactionId fields plus an optional payment
// screenshot. Price fields are snapshotted from the service at this instant.
// The service is resolved by id only, not by status, so bookings against
// inactive listings are allowed.
func (b *BookingController) CreateBooking(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	serviceID, err := uuid.Parse(c.PostForm("serviceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}
	personalDetailID, err := uuid.Parse(c.PostForm("personalDetailId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid personal detail ID format")
		return
	}

	var service models.Service
	if err := b.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	screenshot := ""
	if file, err := c.FormFile("screenshot"); err == nil {
		screenshot, err = utils.SaveUpload(c, file)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	booking := models.Booking{
		UserID:           user.ID,
		ServiceID:        service.ID,
		PersonalDetailID: personalDetailID,
		Price:            service.Price,
		SellingPrice:     service.SellingPrice,
		TransactionID:    c.PostForm("transactionId"),
		Screenshot:       screenshot,
		Status:           models.BookingCreated,
	}

	if err := b.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Echo the booking back with its references expanded.
	err = b.DB.Preload("Service").Preload("PersonalDetail").
		First(&booking, "id = ?", booking.ID).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetMyBookings lists the caller's bookings, newest first
func (b *BookingController) GetMyBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var bookings []models.Booking
	err := b.DB.Where("user_id = ?", user.ID).
		Preload("Service").
		Preload("PersonalDetail").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetMyBookingByID returns one of the caller's bookings. The id and the owner
// are matched together, so another user's booking id reads as not found.
func (b *BookingController) GetMyBookingByID(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	var booking models.Booking
	err = b.DB.Where("id = ? AND user_id = ?", bookingID, user.ID).
		Preload("Service").
		Preload("PersonalDetail").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GetAllBookings lists every booking with a total count. Admin only.
func (b *BookingController) GetAllBookings(c *gin.Context) {
	var bookings []models.Booking
	err := b.DB.Preload("User", adminUser).
		Preload("Service").
		Preload("PersonalDetail").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	var total int64
	if err := b.DB.Model(&models.Booking{}).Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBookings": total,
		"bookings":      bookings,
	})
}

// GetBookingByID returns any booking by id. Admin only.
func (b *BookingController) GetBookingByID(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	var booking models.Booking
	err = b.DB.Preload("User", adminUser).
		Preload("Service").
		Preload("PersonalDetail").
		First(&booking, "id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// UpdateBookingStatus overwrites a booking's status. Admin only. Any current
// status may move to any enumerated value; the controller passes the string
// through and leaves enum enforcement to the schema constraint. An optional
// remark is stored alongside.
func (b *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := b.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	booking.Status = models.BookingStatus(input.Status)
	if input.Remark != "" {
		booking.StatusRemark = input.Remark
	}

	if err := b.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}
