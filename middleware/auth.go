package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID         uint        `json:"user_id"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	RestaurantName string      `json:"restaurant_name"`
	Role           models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:         user.ID,
		Username:       user.Username,
		Email:          user.Email,
		RestaurantName: user.RestaurantName,
		Role:           user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.App.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.App.JWTSecret)
}

// AuthRequired validates the JWT and injects claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.App.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}

// PlatformAdminRequired enforces the platform-admin role. The role is
// re-read from the database rather than trusted from the token, so
// revoking admin status takes effect before the token expires.
func PlatformAdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		var user models.User
		if err := config.DB.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Platform admin privileges required"})
			c.Abort()
			return
		}
		if user.Role != models.RolePlatformAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Platform admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims extracts the caller's token claims from context
func GetClaims(c *gin.Context) *Claims {
	val, exists := c.Get("claims")
	if !exists {
		return nil
	}
	return val.(*Claims)
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	claims := GetClaims(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}
