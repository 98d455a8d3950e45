package serviceControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/models"
)

type createServiceRequest struct {
	ID              string          `json:"id"`
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	FullDescription string          `json:"full_description"`
	Prices          models.PriceMap `json:"prices"`
	DeliveryTime    string          `json:"delivery_time"`
	Guarantee       string          `json:"guarantee"`
	Image           string          `json:"image"`
	Platform        string          `json:"platform" binding:"required"`
	ServiceType     string          `json:"service_type"`
	SubmissionType  string          `json:"submission_type"`
	RequiresPayment *bool           `json:"requires_payment"`
}

type updateServiceRequest struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	FullDescription *string          `json:"full_description"`
	Prices          *models.PriceMap `json:"prices"`
	DeliveryTime    *string          `json:"delivery_time"`
	Guarantee       *string          `json:"guarantee"`
	Image           *string          `json:"image"`
	Platform        *string          `json:"platform"`
	ServiceType     *string          `json:"service_type"`
	SubmissionType  *string          `json:"submission_type"`
	RequiresPayment *bool            `json:"requires_payment"`
}

// GetServicesHandler lists all services for the storefront.
func GetServicesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var services []models.Service
		query := db
		if platform := c.Query("platform"); platform != "" {
			query = query.Where("platform = ?", platform)
		}
		if err := query.Find(&services).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

func CreateServiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		svc := models.Service{
			ID:              req.ID,
			Title:           req.Title,
			Description:     req.Description,
			FullDescription: req.FullDescription,
			Prices:          req.Prices,
			DeliveryTime:    req.DeliveryTime,
			Guarantee:       req.Guarantee,
			Image:           req.Image,
			Platform:        req.Platform,
			ServiceType:     req.ServiceType,
			SubmissionType:  req.SubmissionType,
			RequiresPayment: true,
		}
		if svc.ID == "" {
			svc.ID = uuid.NewString()
		}
		if svc.SubmissionType == "" {
			svc.SubmissionType = "url"
		}
		if req.RequiresPayment != nil {
			svc.RequiresPayment = *req.RequiresPayment
		}

		if err := db.Create(&svc).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
			return
		}
		c.JSON(http.StatusCreated, svc)
	}
}

func UpdateServiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var svc models.Service
		if err := db.First(&svc, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var req updateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.FullDescription != nil {
			updates["full_description"] = *req.FullDescription
		}
		if req.Prices != nil {
			updates["prices"] = *req.Prices
		}
		if req.DeliveryTime != nil {
			updates["delivery_time"] = *req.DeliveryTime
		}
		if req.Guarantee != nil {
			updates["guarantee"] = *req.Guarantee
		}
		if req.Image != nil {
			updates["image"] = *req.Image
		}
		if req.Platform != nil {
			updates["platform"] = *req.Platform
		}
		if req.ServiceType != nil {
			updates["service_type"] = *req.ServiceType
		}
		if req.SubmissionType != nil {
			updates["submission_type"] = *req.SubmissionType
		}
		if req.RequiresPayment != nil {
			updates["requires_payment"] = *req.RequiresPayment
		}

		if len(updates) > 0 {
			if err := db.Model(&svc).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
				return
			}
		}
		c.JSON(http.StatusOK, svc)
	}
}

func DeleteServiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("service_id = ?", id).Delete(&models.ServicePackage{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", id).Delete(&models.Service{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
	}
}
