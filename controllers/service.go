// controllers/service.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"creativedesk-backend/models"
	"creativedesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// CreateService creates a catalog listing. Multipart: text fields plus an
// optional image; features arrives as a JSON-encoded string array.
func (s *ServiceController) CreateService(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")
	if title == "" || description == "" || category == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Title, description and category are required")
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price")
		return
	}
	sellingPrice, err := strconv.ParseFloat(c.PostForm("sellingPrice"), 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid selling price")
		return
	}

	features := models.StringSlice{}
	if raw := c.PostForm("features"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &features); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid features")
			return
		}
	}

	image := ""
	if file, err := c.FormFile("image"); err == nil {
		image, err = utils.SaveUpload(c, file)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	service := models.Service{
		Title:        title,
		Description:  description,
		Category:     category,
		Image:        image,
		Features:     features,
		Price:        price,
		SellingPrice: sellingPrice,
		Status:       models.ServiceStatus(c.PostForm("status")),
	}

	if err := s.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Service created successfully",
		"service": service,
	})
}

// GetAllServices lists the full catalog, newest first. Admin only.
func (s *ServiceController) GetAllServices(c *gin.Context) {
	var services []models.Service
	if err := s.DB.Order("created_at DESC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetActiveServices lists only active listings. Public.
func (s *ServiceController) GetActiveServices(c *gin.Context) {
	var services []models.Service
	if err := s.DB.Where("status = ?", models.ServiceActive).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetActiveServiceByID returns one active listing. Public. Inactive listings
// are indistinguishable from absent ones.
func (s *ServiceController) GetActiveServiceByID(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	err = s.DB.Where("id = ? AND status = ?", serviceID, models.ServiceActive).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

// UpdateService applies a partial update. Multipart; numeric fields arrive as
// form strings and are coerced, removeImage=true clears the image.
func (s *ServiceController) UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := s.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if title, ok := c.GetPostForm("title"); ok {
		service.Title = title
	}
	if description, ok := c.GetPostForm("description"); ok {
		service.Description = description
	}
	if category, ok := c.GetPostForm("category"); ok {
		service.Category = category
	}
	if status, ok := c.GetPostForm("status"); ok {
		service.Status = models.ServiceStatus(status)
	}
	if raw, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid price")
			return
		}
		service.Price = price
	}
	if raw, ok := c.GetPostForm("sellingPrice"); ok {
		sellingPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid selling price")
			return
		}
		service.SellingPrice = sellingPrice
	}
	if raw, ok := c.GetPostForm("features"); ok && raw != "" {
		var features models.StringSlice
		if err := json.Unmarshal([]byte(raw), &features); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid features")
			return
		}
		service.Features = features
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUpload(c, file)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		service.Image = path
	}
	if c.PostForm("removeImage") == "true" {
		service.Image = ""
	}

	if err := s.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service updated successfully",
		"service": service,
	})
}

// DeleteService removes a listing. Existing bookings keep their snapshotted
// price and reference, there is no cascade.
func (s *ServiceController) DeleteService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := s.DB.Delete(&models.Service{}, "id = ?", serviceID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
