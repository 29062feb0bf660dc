package models

import (
	"time"
)

// Role defines the two-tier access model: restaurant accounts manage
// their own records, the single platform admin manages everything.
type Role string

const (
	RoleStandard      Role = "standard"
	RolePlatformAdmin Role = "platform-admin"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"not null"`
	RestaurantName string    `json:"restaurant_name"`
	Role           Role      `json:"role" gorm:"not null;default:'standard'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
