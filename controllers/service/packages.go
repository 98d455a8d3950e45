package serviceControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/models"
)

type createPackageRequest struct {
	ServiceID   string          `json:"service_id" binding:"required"`
	Units       int             `json:"units" binding:"required"`
	Price       models.PriceMap `json:"price"`
	Visible     *bool           `json:"visible"`
	OrderIndex  *int            `json:"order_index"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
}

type updatePackageRequest struct {
	Units       *int             `json:"units"`
	Price       *models.PriceMap `json:"price"`
	Visible     *bool            `json:"visible"`
	OrderIndex  *int             `json:"order_index"`
	Label       *string          `json:"label"`
	Description *string          `json:"description"`
}

// GetPackagesHandler lists packages, optionally for one service, smallest
// tier first.
func GetPackagesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var packages []models.ServicePackage
		query := db.Order("units ASC")
		if serviceID := c.Query("service_id"); serviceID != "" {
			query = query.Where("service_id = ?", serviceID)
		}
		if err := query.Find(&packages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
			return
		}
		c.JSON(http.StatusOK, packages)
	}
}

func CreatePackageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPackageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pkg := models.ServicePackage{
			// Tier ids are stable per (service, units) so re-adding the same
			// tier overwrites instead of duplicating.
			ID:          fmt.Sprintf("%s-%d", req.ServiceID, req.Units),
			ServiceID:   req.ServiceID,
			Units:       req.Units,
			Price:       req.Price,
			Visible:     true,
			OrderIndex:  req.OrderIndex,
			Label:       req.Label,
			Description: req.Description,
		}
		if req.Visible != nil {
			pkg.Visible = *req.Visible
		}

		if err := db.Create(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
			return
		}
		c.JSON(http.StatusCreated, pkg)
	}
}

func UpdatePackageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var pkg models.ServicePackage
		if err := db.First(&pkg, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var req updatePackageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Units != nil {
			updates["units"] = *req.Units
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Visible != nil {
			updates["visible"] = *req.Visible
		}
		if req.OrderIndex != nil {
			updates["order_index"] = *req.OrderIndex
		}
		if req.Label != nil {
			updates["label"] = *req.Label
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}

		if len(updates) > 0 {
			if err := db.Model(&pkg).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
				return
			}
		}
		c.JSON(http.StatusOK, pkg)
	}
}

func DeletePackageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Where("id = ?", id).Delete(&models.ServicePackage{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
	}
}
