package services

import (
	"errors"
	"fmt"
	"time"

	"roomplanner-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if room.Status == "" {
		room.Status = models.RoomStatusFree
	}
	if len(room.ReservedRanges) == 0 {
		if err := room.SetRanges(nil); err != nil {
			return err
		}
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) GetForHotel(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("hotel_id = ?", hotelID).Order("number ASC").Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(roomID uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to load room: %w", err)
	}
	return room, nil
}

// Update overwrites the editable room fields. Occupancy cache fields are
// owned by the booking writer and left alone here.
func (s *RoomService) Update(room models.Room) error {
	res := s.DB.Model(&models.Room{}).Where("id = ?", room.ID).
		Updates(map[string]interface{}{
			"number":   room.Number,
			"category": room.Category,
			"price":    room.Price,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (s *RoomService) Delete(roomID uint) error {
	res := s.DB.Delete(&models.Room{}, roomID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// SetClean flips the housekeeping flag, e.g. a cleaner marking a room done.
func (s *RoomService) SetClean(roomID uint, clean bool) error {
	res := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Update("is_clean", clean)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// SyncRoomStatuses reconciles every room's cached status against its most
// recent booking: OCCUPIED iff a booking with check-in <= now checks out in
// the future. Writes only when the stored value drifted; deletes nothing.
func (s *RoomService) SyncRoomStatuses(hotelID uint) error {
	rooms, err := s.GetForHotel(hotelID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	for i := range rooms {
		var last models.Booking
		err := s.DB.
			Where("hotel_id = ? AND room_id = ? AND check_in_date <= ?", hotelID, rooms[i].ID, now).
			Order("check_in_date DESC").
			First(&last).Error

		occupied := false
		switch {
		case err == nil:
			occupied = last.CheckOutDate.After(now)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no booking has started yet, room is free
		default:
			return fmt.Errorf("failed to load last booking for room %d: %w", rooms[i].ID, err)
		}

		desired := models.RoomStatusFree
		if occupied {
			desired = models.RoomStatusOccupied
		}
		if rooms[i].Status == desired {
			continue
		}
		if err := s.DB.Model(&models.Room{}).Where("id = ?", rooms[i].ID).
			Update("status", desired).Error; err != nil {
			return fmt.Errorf("failed to sync room %d status: %w", rooms[i].ID, err)
		}
	}
	return nil
}
