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

type PersonalDetailController struct {
	DB *gorm.DB
}

func NewPersonalDetailController(db *gorm.DB) *PersonalDetailController {
	return &PersonalDetailController{DB: db}
}

type CreatePersonalDetailInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pin         string `json:"pin"`
	Profession  string `json:"profession"`
	AddressType string `json:"addressType" binding:"omitempty,oneof=home office other"`
}

type UpdatePersonalDetailInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pin         *string `json:"pin"`
	Profession  *string `json:"profession"`
	AddressType *string `json:"addressType" binding:"omitempty,oneof=home office other"`
}

// CreatePersonalDetail saves a delivery profile for the caller
func (p *PersonalDetailController) CreatePersonalDetail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input CreatePersonalDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	detail := models.PersonalDetail{
		UserID:      user.ID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		City:        input.City,
		State:       input.State,
		Pin:         input.Pin,
		Profession:  input.Profession,
		AddressType: models.AddressType(input.AddressType),
	}

	if err := p.DB.Create(&detail).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Personal detail added",
		"detail":  detail,
	})
}

// GetPersonalDetails lists the caller's saved profiles, newest first
func (p *PersonalDetailController) GetPersonalDetails(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var details []models.PersonalDetail
	err := p.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&details).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"details": details})
}

// UpdatePersonalDetail applies a partial update. Ownership sits in the WHERE
// clause, so another user's detail id looks absent.
func (p *PersonalDetailController) UpdatePersonalDetail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	detailID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid detail ID format")
		return
	}

	var input UpdatePersonalDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	var detail models.PersonalDetail
	err = p.DB.Where("id = ? AND user_id = ?", detailID, user.ID).
		First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Personal detail not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if input.Name != nil {
		detail.Name = *input.Name
	}
	if input.Email != nil {
		detail.Email = *input.Email
	}
	if input.Phone != nil {
		detail.Phone = *input.Phone
	}
	if input.City != nil {
		detail.City = *input.City
	}
	if input.State != nil {
		detail.State = *input.State
	}
	if input.Pin != nil {
		detail.Pin = *input.Pin
	}
	if input.Profession != nil {
		detail.Profession = *input.Profession
	}
	if input.AddressType != nil {
		detail.AddressType = models.AddressType(*input.AddressType)
	}

	if err := p.DB.Save(&detail).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Updated successfully",
		"detail":  detail,
	})
}

// DeletePersonalDetail removes one of the caller's profiles
func (p *PersonalDetailController) DeletePersonalDetail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	detailID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid detail ID format")
		return
	}

	result := p.DB.Where("id = ? AND user_id = ?", detailID, user.ID).
		Delete(&models.PersonalDetail{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Personal detail not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// SelectPersonalDetail marks one profile as the caller's selected one. The
// unselect-all plus select-one pair runs in a single transaction so the caller
// never ends up with zero selected profiles on a partial failure.
func (p *PersonalDetailController) SelectPersonalDetail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	detailID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid detail ID format")
		return
	}

	var detail models.PersonalDetail
	err = p.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PersonalDetail{}).
			Where("user_id = ?", user.ID).
			Update("is_selected", false).Error; err != nil {
			return err
		}

		result := tx.Model(&models.PersonalDetail{}).
			Where("id = ? AND user_id = ?", detailID, user.ID).
			Update("is_selected", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.First(&detail, "id = ?", detailID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Personal detail not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Selected successfully",
		"detail":  detail,
	})
}
