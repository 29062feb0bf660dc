package models

import "time"

type Promotion struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	OwnerID     uint       `json:"owner_id" gorm:"not null;index"`
	Owner       User       `json:"-" gorm:"foreignKey:OwnerID"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	ImageURL    string     `json:"image_url"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CurrentlyValid reports whether the promotion should appear on the
// public display: active, and either open-ended or not yet expired.
func (p *Promotion) CurrentlyValid(at time.Time) bool {
	if !p.IsActive {
		return false
	}
	return p.EndDate == nil || p.EndDate.After(at)
}
