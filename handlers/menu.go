package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/middleware"
	"github.com/menuboard/menuboard-api/models"
	"github.com/menuboard/menuboard-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// uploadError writes the right status for a failed image save and
// reports whether there was an error at all.
func uploadError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, storage.ErrImageType) || errors.Is(err, storage.ErrImageTooLarge) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
	}
	return true
}

// discardImage removes an image persisted earlier in a request whose
// validation later failed, so no orphaned file is left behind.
func discardImage(ref string) {
	if ref == "" {
		return
	}
	if err := storage.Remove(ref); err != nil {
		logrus.WithError(err).Warn("failed to remove discarded upload")
	}
}

// canMutate applies the ownership rule: the owner or the platform admin.
func canMutate(claims *middleware.Claims, ownerID uint) bool {
	return claims.UserID == ownerID || claims.Role == models.RolePlatformAdmin
}

// menuItemForm is the typed shape of the multipart create payload.
// Everything arrives as form-encoded text and is coerced here.
type menuItemForm struct {
	Name        string
	Description string
	Price       float64
	Category    models.Category
	IsAvailable bool
}

func parseMenuItemForm(c *gin.Context) (*menuItemForm, string) {
	form := &menuItemForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    models.Category(c.PostForm("category")),
		IsAvailable: true,
	}
	priceStr := c.PostForm("price")
	if form.Name == "" || form.Description == "" || priceStr == "" || form.Category == "" {
		return nil, "Name, description, price, and category are required"
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		return nil, "Price must be a non-negative number"
	}
	form.Price = price
	if !form.Category.IsValid() {
		return nil, "Category must be one of: appetizer, main, dessert, drink"
	}
	if v, ok := c.GetPostForm("available"); ok {
		form.IsAvailable = v == "true"
	}
	return form, ""
}

// ListMenuItems returns the caller's menu items
func ListMenuItems(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	items := []models.MenuItem{}
	if err := config.DB.Where("owner_id = ?", ownerID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItem adds a menu item for the caller, with an optional image
func CreateMenuItem(c *gin.Context) {
	createMenuItemFor(c, middleware.GetUserID(c))
}

func createMenuItemFor(c *gin.Context, ownerID uint) {
	imageURL, err := storage.SaveImage(c)
	if uploadError(c, err) {
		return
	}

	form, msg := parseMenuItemForm(c)
	if msg != "" {
		discardImage(imageURL)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	item := models.MenuItem{
		OwnerID:     ownerID,
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Category:    form.Category,
		IsAvailable: form.IsAvailable,
		ImageURL:    imageURL,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		discardImage(imageURL)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem updates a menu item owned by the caller. A newly
// uploaded image replaces the old file on disk.
func UpdateMenuItem(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !canMutate(claims, item.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}

	imageURL, err := storage.SaveImage(c)
	if uploadError(c, err) {
		return
	}

	if v, ok := c.GetPostForm("name"); ok && v != "" {
		item.Name = v
	}
	if v, ok := c.GetPostForm("description"); ok && v != "" {
		item.Description = v
	}
	if v, ok := c.GetPostForm("price"); ok && v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			discardImage(imageURL)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative number"})
			return
		}
		item.Price = price
	}
	if v, ok := c.GetPostForm("category"); ok && v != "" {
		category := models.Category(v)
		if !category.IsValid() {
			discardImage(imageURL)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be one of: appetizer, main, dessert, drink"})
			return
		}
		item.Category = category
	}
	if v, ok := c.GetPostForm("available"); ok {
		item.IsAvailable = v == "true"
	}
	if imageURL != "" {
		discardImage(item.ImageURL)
		item.ImageURL = imageURL
	}

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes a menu item and its stored image
func DeleteMenuItem(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !canMutate(claims, item.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}

	// File first: a failed unlink surfaces before the record is gone.
	if item.ImageURL != "" {
		if err := storage.Remove(item.ImageURL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item image"})
			return
		}
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
