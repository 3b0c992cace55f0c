package models

import (
	"time"

	"gorm.io/gorm"
)

const BookingStatusReserved = "Reserved"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID uint `gorm:"index;column:hotel_id" json:"hotel_id"`
	RoomID  uint `gorm:"index;column:room_id" json:"room_id"`

	ReferenceCode string    `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code,omitempty"`
	GuestName     string    `gorm:"column:guest_name;size:255" json:"guest_name"`
	CheckInDate   time.Time `gorm:"column:check_in_date;index" json:"check_in_date"`
	CheckOutDate  time.Time `gorm:"column:check_out_date;index" json:"check_out_date"`
	Status        string    `gorm:"size:64" json:"status,omitempty"`
	Observations  string    `gorm:"type:text" json:"observations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// Covers reports whether the stay includes the given instant, end-exclusive.
func (b *Booking) Covers(t time.Time) bool {
	return !b.CheckInDate.After(t) && b.CheckOutDate.After(t)
}
