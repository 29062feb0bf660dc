package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/models"
	"github.com/menuboard/menuboard-api/storage"

	"github.com/gin-gonic/gin"
)

// ListAdvertisements returns all platform advertisements, newest first
func ListAdvertisements(c *gin.Context) {
	ads := []models.Advertisement{}
	if err := config.DB.Order("created_at desc").Find(&ads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch advertisements"})
		return
	}
	c.JSON(http.StatusOK, ads)
}

// CreateAdvertisement creates a platform ad. Requires a title, exactly
// one image, and a JSON-encoded list of target user ids, each of which
// must reference an existing user.
func CreateAdvertisement(c *gin.Context) {
	imageURL, err := storage.SaveRequiredImage(c)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrImageType), errors.Is(err, storage.ErrImageTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title and image are required"})
		}
		return
	}

	title := c.PostForm("title")
	if title == "" {
		discardImage(imageURL)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and image are required"})
		return
	}

	var targetUserIDs []uint
	if raw := c.PostForm("targetUserIds"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &targetUserIDs); err != nil {
			discardImage(imageURL)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid targetUserIds format"})
			return
		}
	}
	if len(targetUserIDs) == 0 {
		discardImage(imageURL)
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one target user is required"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("id IN ?", targetUserIDs).Count(&count).Error; err != nil {
		discardImage(imageURL)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify target users"})
		return
	}
	if count != int64(len(dedupe(targetUserIDs))) {
		discardImage(imageURL)
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetUserIds contains unknown users"})
		return
	}

	ad := models.Advertisement{
		Title:         title,
		ImageURL:      imageURL,
		TargetUserIDs: dedupe(targetUserIDs),
		Active:        true,
	}
	if err := config.DB.Create(&ad).Error; err != nil {
		discardImage(imageURL)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create advertisement"})
		return
	}
	c.JSON(http.StatusCreated, ad)
}

// DeleteAdvertisement removes an ad and its stored image
func DeleteAdvertisement(c *gin.Context) {
	var ad models.Advertisement
	if err := config.DB.First(&ad, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Advertisement not found"})
		return
	}

	if ad.ImageURL != "" {
		if err := storage.Remove(ad.ImageURL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete advertisement image"})
			return
		}
	}
	if err := config.DB.Delete(&ad).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete advertisement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Advertisement deleted successfully"})
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
