package handlers

import (
	"net/http"
	"time"

	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/middleware"
	"github.com/menuboard/menuboard-api/models"
	"github.com/menuboard/menuboard-api/storage"

	"github.com/gin-gonic/gin"
)

// parsePromotionDate accepts RFC 3339 or plain YYYY-MM-DD, matching what
// the dashboard date pickers submit.
func parsePromotionDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ListPromotions returns the caller's promotions
func ListPromotions(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	promotions := []models.Promotion{}
	if err := config.DB.Where("owner_id = ?", ownerID).Find(&promotions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
		return
	}
	c.JSON(http.StatusOK, promotions)
}

// CreatePromotion adds a promotion for the caller, with an optional image
func CreatePromotion(c *gin.Context) {
	createPromotionFor(c, middleware.GetUserID(c))
}

func createPromotionFor(c *gin.Context, ownerID uint) {
	imageURL, err := storage.SaveImage(c)
	if uploadError(c, err) {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		discardImage(imageURL)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	startDate := time.Now()
	if v := c.PostForm("startDate"); v != "" {
		t, ok := parsePromotionDate(v)
		if !ok {
			discardImage(imageURL)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		startDate = t
	}
	var endDate *time.Time
	if v := c.PostForm("endDate"); v != "" {
		t, ok := parsePromotionDate(v)
		if !ok {
			discardImage(imageURL)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		endDate = &t
	}

	isActive := true
	if v, ok := c.GetPostForm("isActive"); ok {
		isActive = v == "true"
	}

	promotion := models.Promotion{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    isActive,
	}
	if err := config.DB.Create(&promotion).Error; err != nil {
		discardImage(imageURL)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promotion"})
		return
	}
	c.JSON(http.StatusCreated, promotion)
}

// UpdatePromotion updates a promotion owned by the caller
func UpdatePromotion(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var promotion models.Promotion
	if err := config.DB.First(&promotion, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
		return
	}
	if !canMutate(claims, promotion.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this promotion"})
		return
	}

	imageURL, err := storage.SaveImage(c)
	if uploadError(c, err) {
		return
	}

	if v, ok := c.GetPostForm("title"); ok && v != "" {
		promotion.Title = v
	}
	if v, ok := c.GetPostForm("description"); ok && v != "" {
		promotion.Description = v
	}
	if v, ok := c.GetPostForm("startDate"); ok && v != "" {
		t, parsed := parsePromotionDate(v)
		if !parsed {
			discardImage(imageURL)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		promotion.StartDate = t
	}
	if v, ok := c.GetPostForm("endDate"); ok {
		if v == "" {
			promotion.EndDate = nil
		} else {
			t, parsed := parsePromotionDate(v)
			if !parsed {
				discardImage(imageURL)
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
				return
			}
			promotion.EndDate = &t
		}
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		promotion.IsActive = v == "true"
	}
	if imageURL != "" {
		discardImage(promotion.ImageURL)
		promotion.ImageURL = imageURL
	}

	if err := config.DB.Save(&promotion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promotion"})
		return
	}
	c.JSON(http.StatusOK, promotion)
}

// DeletePromotion removes a promotion and its stored image
func DeletePromotion(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var promotion models.Promotion
	if err := config.DB.First(&promotion, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
		return
	}
	if !canMutate(claims, promotion.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this promotion"})
		return
	}

	if promotion.ImageURL != "" {
		if err := storage.Remove(promotion.ImageURL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promotion image"})
			return
		}
	}
	if err := config.DB.Delete(&promotion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promotion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted successfully"})
}
