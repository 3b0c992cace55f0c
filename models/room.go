package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoomStatusFree     = "FREE"
	RoomStatusOccupied = "OCCUPIED"
)

// ReservedRange is one [From, To) pair cached on a room, mirroring a live
// booking for that room. End-exclusive: a range whose To equals another
// range's From does not overlap it.
type ReservedRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type Room struct {
	gorm.Model

	HotelID uint   `gorm:"index;column:hotel_id" json:"hotel_id"`
	Number  string `gorm:"column:number;size:50" json:"number"`

	// Status is a read-optimization cache of booking occupancy: OCCUPIED iff a
	// booking currently covers now. Updated on every booking write and
	// reconciled by RoomService.SyncRoomStatuses.
	Status   string  `gorm:"size:32;default:FREE" json:"status"`
	IsClean  bool    `gorm:"column:is_clean;default:true" json:"is_clean"`
	Category string  `gorm:"size:64" json:"category,omitempty"`
	Price    float64 `json:"price"`

	// ReservedRanges mirrors the active bookings referencing this room.
	ReservedRanges datatypes.JSON `gorm:"column:reserved_ranges" json:"reserved_ranges,omitempty"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}

// Ranges decodes the cached reserved ranges. A missing or malformed column
// yields an empty slice; the cache is advisory, bookings are the source of
// truth.
func (r *Room) Ranges() []ReservedRange {
	if len(r.ReservedRanges) == 0 {
		return []ReservedRange{}
	}
	var out []ReservedRange
	if err := json.Unmarshal(r.ReservedRanges, &out); err != nil {
		return []ReservedRange{}
	}
	return out
}

// SetRanges re-encodes the cached reserved ranges.
func (r *Room) SetRanges(ranges []ReservedRange) error {
	if ranges == nil {
		ranges = []ReservedRange{}
	}
	raw, err := json.Marshal(ranges)
	if err != nil {
		return err
	}
	r.ReservedRanges = datatypes.JSON(raw)
	return nil
}
