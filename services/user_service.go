package services

import (
	"errors"
	"fmt"
	"strings"

	"roomplanner-backend/models"

	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) GetByID(userID uint) (models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (models.User, error) {
	var user models.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// GetForHotel lists the staff (admins and cleaners) assigned to a hotel. The
// hotel list is a JSON column, so membership is filtered in memory.
func (s *UserService) GetForHotel(hotelID uint) ([]models.User, error) {
	var users []models.User
	err := s.DB.
		Where("role IN ?", []string{models.RoleAdmin, models.RoleCleaner}).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]models.User, 0, len(users))
	for i := range users {
		if users[i].HasHotel(hotelID) {
			out = append(out, users[i])
		}
	}
	return out, nil
}

// RemoveFromHotel revokes a user's access to one hotel.
func (s *UserService) RemoveFromHotel(userID, hotelID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return removeHotelRef(tx, &user, hotelID)
	})
}

func (s *UserService) Delete(userID uint) error {
	res := s.DB.Delete(&models.User{}, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func removeHotelRef(tx *gorm.DB, user *models.User, hotelID uint) error {
	ids := user.Hotels()
	kept := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != hotelID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	if err := user.SetHotels(kept); err != nil {
		return err
	}
	return tx.Model(&models.User{}).Where("id = ?", user.ID).
		Update("hotel_refs", user.HotelRefs).Error
}
