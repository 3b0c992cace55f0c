package services

import (
	"errors"
	"fmt"

	"roomplanner-backend/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// Create stores the hotel and adds it to the creator's hotel list in the same
// transaction.
func (s *HotelService) Create(hotel *models.Hotel, creatorID uint) error {
	hotel.CreatedBy = creatorID

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(hotel).Error; err != nil {
			return fmt.Errorf("failed to create hotel: %w", err)
		}

		var user models.User
		if err := lockForUpdate(tx).First(&user, creatorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return addHotelRef(tx, &user, hotel.ID)
	})
}

func (s *HotelService) GetByID(hotelID uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel, ErrHotelNotFound
		}
		return hotel, fmt.Errorf("failed to load hotel: %w", err)
	}
	return hotel, nil
}

// GetAll lists every hotel, for SUPERADMIN visibility.
func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// GetForUser lists only the hotels referenced by the user's hotel list.
func (s *HotelService) GetForUser(user models.User) ([]models.Hotel, error) {
	ids := user.Hotels()
	if len(ids) == 0 {
		return []models.Hotel{}, nil
	}
	var hotels []models.Hotel
	if err := s.DB.Where("id IN ?", ids).Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list user hotels: %w", err)
	}
	return hotels, nil
}

func (s *HotelService) Update(hotel models.Hotel) error {
	res := s.DB.Model(&models.Hotel{}).Where("id = ?", hotel.ID).
		Updates(map[string]interface{}{
			"name":      hotel.Name,
			"address":   hotel.Address,
			"photo_url": hotel.PhotoURL,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHotelNotFound
	}
	return nil
}

// DeleteCascade removes the hotel together with its rooms, bookings and
// invitations, and pulls its reference from every user that had access.
func (s *HotelService) DeleteCascade(hotelID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Hotel{}, hotelID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrHotelNotFound
		}

		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("failed to delete hotel bookings: %w", err)
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Room{}).Error; err != nil {
			return fmt.Errorf("failed to delete hotel rooms: %w", err)
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Invitation{}).Error; err != nil {
			return fmt.Errorf("failed to delete hotel invitations: %w", err)
		}

		// hotel refs live in a JSON column, filter in memory
		var users []models.User
		if err := tx.Find(&users).Error; err != nil {
			return fmt.Errorf("failed to list users for cleanup: %w", err)
		}
		for i := range users {
			if !users[i].HasHotel(hotelID) {
				continue
			}
			if err := removeHotelRef(tx, &users[i], hotelID); err != nil {
				return err
			}
		}
		return nil
	})
}
