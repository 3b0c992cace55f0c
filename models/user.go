package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleAdmin      = "ADMIN"
	RoleCleaner    = "CLEANER"
	RoleSuperAdmin = "SUPERADMIN"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:255" json:"name"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role     string `gorm:"size:32;default:ADMIN" json:"role"`
	PhotoURL string `gorm:"column:photo_url;size:512" json:"photo_url,omitempty"`

	// HotelRefs lists the hotels this user manages or cleans for, mutated by
	// invitation redemption or administrative removal.
	HotelRefs datatypes.JSON `gorm:"column:hotel_refs" json:"hotel_refs,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Hotels decodes the hotel reference list.
func (u *User) Hotels() []uint {
	if len(u.HotelRefs) == 0 {
		return []uint{}
	}
	var out []uint
	if err := json.Unmarshal(u.HotelRefs, &out); err != nil {
		return []uint{}
	}
	return out
}

// SetHotels re-encodes the hotel reference list.
func (u *User) SetHotels(ids []uint) error {
	if ids == nil {
		ids = []uint{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	u.HotelRefs = datatypes.JSON(raw)
	return nil
}

// HasHotel reports whether the user already references the hotel.
func (u *User) HasHotel(hotelID uint) bool {
	for _, id := range u.Hotels() {
		if id == hotelID {
			return true
		}
	}
	return false
}
