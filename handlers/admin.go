package handlers

import (
	"net/http"

	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/models"
	"github.com/menuboard/menuboard-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminListUsers returns all user accounts — platform admin only
func AdminListUsers(c *gin.Context) {
	users := []models.User{}
	if err := config.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminGetUser returns a single user account
func AdminGetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("userId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// AdminCreateUser creates a restaurant account. The role is always
// standard: the admin role exists only through the bootstrap path.
func AdminCreateUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing); result.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   string(hash),
		RestaurantName: req.RestaurantName,
		Role:           models.RoleStandard,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    sanitizedUser(&user),
	})
}

// AdminDeleteUser removes a user and cascades to their menu items and
// promotions. The record deletes run in one transaction; image files
// are unlinked best-effort after commit.
func AdminDeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("userId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.Role == models.RolePlatformAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The platform admin account cannot be deleted"})
		return
	}

	// Collect image references before the rows disappear.
	var imageRefs []string
	var items []models.MenuItem
	config.DB.Where("owner_id = ?", user.ID).Find(&items)
	for _, item := range items {
		if item.ImageURL != "" {
			imageRefs = append(imageRefs, item.ImageURL)
		}
	}
	var promotions []models.Promotion
	config.DB.Where("owner_id = ?", user.ID).Find(&promotions)
	for _, p := range promotions {
		if p.ImageURL != "" {
			imageRefs = append(imageRefs, p.ImageURL)
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", user.ID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", user.ID).Delete(&models.Promotion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	for _, ref := range imageRefs {
		if err := storage.Remove(ref); err != nil {
			logrus.WithError(err).WithField("image", ref).Warn("failed to remove image of deleted user")
		}
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"menu_items": len(items),
		"promotions": len(promotions),
	}).Info("deleted user and owned records")

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// AdminListMenuItems returns any user's menu items
func AdminListMenuItems(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}
	items := []models.MenuItem{}
	if err := config.DB.Where("owner_id = ?", userID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AdminCreateMenuItem creates a menu item on behalf of any user
func AdminCreateMenuItem(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	createMenuItemFor(c, user.ID)
}

// AdminListPromotions returns any user's promotions
func AdminListPromotions(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}
	promotions := []models.Promotion{}
	if err := config.DB.Where("owner_id = ?", userID).Find(&promotions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
		return
	}
	c.JSON(http.StatusOK, promotions)
}

// AdminCreatePromotion creates a promotion on behalf of any user
func AdminCreatePromotion(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	createPromotionFor(c, user.ID)
}
