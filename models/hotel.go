package models

import "gorm.io/gorm"

type Hotel struct {
	gorm.Model

	Name     string `gorm:"size:255" json:"name"`
	Address  string `gorm:"size:512" json:"address,omitempty"`
	PhotoURL string `gorm:"column:photo_url;size:512" json:"photo_url,omitempty"`

	// CreatedBy is the admin account that registered the hotel. The full
	// access list lives on each user's hotel_refs column.
	CreatedBy uint `gorm:"column:created_by;index" json:"created_by"`
}
