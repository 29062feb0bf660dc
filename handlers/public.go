package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/models"

	"github.com/gin-gonic/gin"
)

func parseUserIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// PublicMenu returns a restaurant's available menu items for the
// display app (no auth)
func PublicMenu(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	items := []models.MenuItem{}
	err := config.DB.
		Where("owner_id = ? AND is_available = ?", userID, true).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// PublicPromotions returns a restaurant's currently valid promotions:
// active, and not yet past their end date (no auth)
func PublicPromotions(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	promotions := []models.Promotion{}
	err := config.DB.
		Where("owner_id = ? AND is_active = ?", userID, true).
		Where("end_date IS NULL OR end_date > ?", time.Now()).
		Find(&promotions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
		return
	}
	c.JSON(http.StatusOK, promotions)
}

// PublicAdvertisements returns active platform ads targeting the given
// restaurant, newest first (no auth). Target lists are serialized JSON,
// so the membership check happens here rather than in SQL.
func PublicAdvertisements(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	var all []models.Advertisement
	err := config.DB.
		Where("active = ?", true).
		Order("created_at desc").
		Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch advertisements"})
		return
	}

	ads := []models.Advertisement{}
	for _, ad := range all {
		if ad.Targets(userID) {
			ads = append(ads, ad)
		}
	}
	c.JSON(http.StatusOK, ads)
}
