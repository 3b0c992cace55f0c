package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"roomplanner-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns reservations and keeps room occupancy state mirrored to
// the live bookings of each room.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// lockForUpdate row-locks the rows read inside a transaction so the overlap
// check and the subsequent write are serialized per room. sqlite (used by the
// test suite) has no row locks; its writes are serialized by the database.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// hasOverlap reports whether any booking for (hotelID, roomID) conflicts with
// the candidate [checkIn, checkOut) range. Half-open semantics: a stay ending
// exactly when another starts is not a conflict. excludeID skips the
// booking's own row when re-validating an edit.
//
// The primary query filters check_in_date < checkOut in the store and the
// other bound in memory. If it fails, fall back to scanning every booking for
// the room and applying both bounds in memory; if the fallback fails too, the
// error propagates rather than silently reporting no conflict.
func (s *BookingService) hasOverlap(tx *gorm.DB, hotelID, roomID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	var candidates []models.Booking

	q := tx.Where("hotel_id = ? AND room_id = ? AND check_in_date < ?", hotelID, roomID, checkOut)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&candidates).Error; err != nil {
		log.Printf("overlap query failed, falling back to full room scan: %v", err)

		fb := tx.Where("hotel_id = ? AND room_id = ?", hotelID, roomID)
		if excludeID != 0 {
			fb = fb.Where("id <> ?", excludeID)
		}
		if err2 := fb.Find(&candidates).Error; err2 != nil {
			return false, fmt.Errorf("overlap check failed: %w", err2)
		}
	}

	for _, b := range candidates {
		if b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn) {
			return true, nil
		}
	}
	return false, nil
}

// HasOverlap is the read-only availability probe used by the calendar UI.
func (s *BookingService) HasOverlap(hotelID, roomID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	return s.hasOverlap(s.DB, hotelID, roomID, checkIn, checkOut, excludeID)
}

// syncRoomCache rewrites a room's cached occupancy fields from its live
// bookings: reserved_ranges mirrors every booking, status is OCCUPIED iff a
// booking covers now. Never touches is_clean.
func syncRoomCache(tx *gorm.DB, roomID uint) error {
	var bookings []models.Booking
	if err := tx.Where("room_id = ?", roomID).Order("check_in_date").Find(&bookings).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	status := models.RoomStatusFree
	ranges := make([]models.ReservedRange, 0, len(bookings))
	for i := range bookings {
		ranges = append(ranges, models.ReservedRange{From: bookings[i].CheckInDate, To: bookings[i].CheckOutDate})
		if bookings[i].Covers(now) {
			status = models.RoomStatusOccupied
		}
	}

	var room models.Room
	room.ID = roomID
	if err := room.SetRanges(ranges); err != nil {
		return err
	}

	return tx.Model(&models.Room{}).Where("id = ?", roomID).
		Updates(map[string]interface{}{
			"status":          status,
			"reserved_ranges": room.ReservedRanges,
		}).Error
}

func lockRoom(tx *gorm.DB, hotelID, roomID uint) (models.Room, error) {
	var room models.Room
	err := lockForUpdate(tx).Where("hotel_id = ?", hotelID).First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, ErrRoomNotFound
	}
	return room, err
}

// Create stores the booking if the room is available for the requested range
// and mirrors the room's occupancy state. The room row is locked before the
// overlap check so two concurrent creates for the same room cannot both pass.
func (s *BookingService) Create(b *models.Booking) error {
	if !b.CheckOutDate.After(b.CheckInDate) {
		return ErrInvalidStayRange
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := lockRoom(tx, b.HotelID, b.RoomID); err != nil {
			return err
		}

		conflict, err := s.hasOverlap(tx, b.HotelID, b.RoomID, b.CheckInDate, b.CheckOutDate, 0)
		if err != nil {
			return err
		}
		if conflict {
			return ErrBookingConflict
		}

		if b.ReferenceCode == "" {
			b.ReferenceCode = uuid.NewString()
		}
		if b.Status == "" {
			b.Status = models.BookingStatusReserved
		}

		if err := tx.Create(b).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return syncRoomCache(tx, b.RoomID)
	})
}

// Update re-validates availability excluding the booking's own id and
// overwrites it. If the booking moved to another room, the previous room is
// freed (clean flag untouched) and the new one mirrored.
func (s *BookingService) Update(b *models.Booking) error {
	if !b.CheckOutDate.After(b.CheckInDate) {
		return ErrInvalidStayRange
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Booking
		if err := lockForUpdate(tx).First(&existing, b.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if _, err := lockRoom(tx, b.HotelID, b.RoomID); err != nil {
			return err
		}

		conflict, err := s.hasOverlap(tx, b.HotelID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.ID)
		if err != nil {
			return err
		}
		if conflict {
			return ErrBookingConflict
		}

		if b.ReferenceCode == "" {
			b.ReferenceCode = existing.ReferenceCode
		}
		if b.Status == "" {
			b.Status = existing.Status
		}
		b.CreatedAt = existing.CreatedAt
		if err := tx.Save(b).Error; err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if existing.RoomID != b.RoomID {
			if err := syncRoomCache(tx, existing.RoomID); err != nil {
				return err
			}
		}
		return syncRoomCache(tx, b.RoomID)
	})
}

// Remove deletes a booking, drops its reserved range from the room cache and
// recomputes the room's status. markDirty additionally flags the room for
// housekeeping; a plain cancellation leaves the clean flag untouched.
func (s *BookingService) Remove(bookingID uint, markDirty bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := lockForUpdate(tx).First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := tx.Delete(&b).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if err := syncRoomCache(tx, b.RoomID); err != nil {
			return err
		}

		if markDirty {
			return tx.Model(&models.Room{}).Where("id = ?", b.RoomID).
				Update("is_clean", false).Error
		}
		return nil
	})
}

// Cancel is the guest-facing soft cancellation: the room is freed but not
// marked dirty, nobody slept in it.
func (s *BookingService) Cancel(bookingID uint) error {
	return s.Remove(bookingID, false)
}

// SweepCheckouts frees and dirties rooms for every booking whose checkout has
// passed, then deletes the booking. Runs on dashboard load, not on a server
// cron. Per-booking failures are logged and skipped; whatever is left over is
// picked up by the next sweep.
func (s *BookingService) SweepCheckouts(hotelIDs []uint) {
	now := time.Now().UTC()

	for _, hotelID := range hotelIDs {
		var expired []models.Booking
		if err := s.DB.Where("hotel_id = ? AND check_out_date <= ?", hotelID, now).Find(&expired).Error; err != nil {
			log.Printf("sweep: listing expired bookings for hotel %d: %v", hotelID, err)
			continue
		}

		for i := range expired {
			if err := s.sweepOne(expired[i]); err != nil {
				log.Printf("sweep: booking %d: %v", expired[i].ID, err)
			}
		}
	}
}

func (s *BookingService) sweepOne(b models.Booking) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Booking{}, b.ID).Error; err != nil {
			return err
		}
		if err := syncRoomCache(tx, b.RoomID); err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", b.RoomID).
			Update("is_clean", false).Error
	})
}

// GetUpcoming lists a hotel's bookings whose check-in falls inside [from, to],
// ordered by check-in.
func (s *BookingService) GetUpcoming(hotelID uint, from, to time.Time) ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Where("hotel_id = ? AND check_in_date >= ? AND check_in_date <= ?", hotelID, from, to).
		Order("check_in_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(bookingID uint) (models.Booking, error) {
	var b models.Booking
	if err := s.DB.Preload("Room").First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return b, ErrBookingNotFound
		}
		return b, fmt.Errorf("failed to load booking: %w", err)
	}
	return b, nil
}

// GetForRoom lists every booking of one room, soonest first.
func (s *BookingService) GetForRoom(hotelID, roomID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Where("hotel_id = ? AND room_id = ?", hotelID, roomID).
		Order("check_in_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list room bookings: %w", err)
	}
	return list, nil
}
