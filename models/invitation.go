package models

import (
	"time"

	"gorm.io/gorm"
)

// Invitation is a single-use, time-limited token binding an email to a hotel.
// The token itself is the primary key, matching how invite links carry it.
type Invitation struct {
	Token string `gorm:"primaryKey;size:32" json:"token"`

	Email   string `gorm:"index;size:150" json:"email"`
	Name    string `gorm:"size:255" json:"name"`
	HotelID uint   `gorm:"index;column:hotel_id" json:"hotel_id"`

	ExpiresAt time.Time  `gorm:"column:expires_at" json:"expires_at"`
	Used      bool       `gorm:"default:false" json:"used"`
	UsedAt    *time.Time `gorm:"column:used_at" json:"used_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Expired reports whether the invitation can no longer be redeemed at t.
func (i *Invitation) Expired(t time.Time) bool {
	return !i.ExpiresAt.After(t)
}
