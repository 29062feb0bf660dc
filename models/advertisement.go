package models

import "time"

// Advertisement is platform-owned: it has no single owner, only a list
// of users it is shown to. Deleting a user does not prune target lists.
type Advertisement struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	ImageURL      string    `json:"image_url" gorm:"not null"`
	TargetUserIDs []uint    `json:"target_user_ids" gorm:"serializer:json"`
	Active        bool      `json:"active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
}

// Targets reports whether the advertisement is shown to the given user.
func (a *Advertisement) Targets(userID uint) bool {
	for _, id := range a.TargetUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
