package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"roomplanner-backend/models"
	"roomplanner-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const inviteTokenLength = 8

// InvitationService issues and redeems single-use staff invitations.
type InvitationService struct {
	DB *gorm.DB

	// TTLDays is the default invitation lifetime, applied whenever a call
	// site does not specify one.
	TTLDays     int
	FrontendURL string
}

func NewInvitationService(db *gorm.DB, ttlDays int, frontendURL string) *InvitationService {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	return &InvitationService{DB: db, TTLDays: ttlDays, FrontendURL: frontendURL}
}

// Create stores a new invitation keyed by its token and emails the invite
// link (best-effort: a failed send is logged, the token is still valid).
func (s *InvitationService) Create(email, name string, hotelID uint, ttlDays int) (models.Invitation, error) {
	var inv models.Invitation

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return inv, errors.New("email_required")
	}
	if ttlDays <= 0 {
		ttlDays = s.TTLDays
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inv, ErrHotelNotFound
		}
		return inv, fmt.Errorf("failed to load hotel: %w", err)
	}

	now := time.Now().UTC()

	// retry on the (unlikely) token collision, the token is the primary key
	var createErr error
	for attempt := 0; attempt < 5; attempt++ {
		token, err := utils.GenerateInviteToken(inviteTokenLength)
		if err != nil {
			return inv, fmt.Errorf("failed to generate token: %w", err)
		}

		inv = models.Invitation{
			Token:     token,
			Email:     email,
			Name:      strings.TrimSpace(name),
			HotelID:   hotelID,
			ExpiresAt: now.Add(time.Duration(ttlDays) * 24 * time.Hour),
			Used:      false,
		}

		createErr = s.DB.Create(&inv).Error
		if createErr == nil {
			break
		}
		if isDuplicateErr(createErr) {
			log.Printf("invitation token collision (attempt %d), retrying", attempt+1)
			continue
		}
		return inv, fmt.Errorf("failed to create invitation: %w", createErr)
	}
	if createErr != nil {
		return inv, fmt.Errorf("failed to create invitation after retries: %w", createErr)
	}

	link := fmt.Sprintf("%s/join?token=%s", strings.TrimRight(s.FrontendURL, "/"), inv.Token)
	if mailErr := utils.SendHotelInviteEmail(email, link, inv.Name, hotel.Name, inv.Token); mailErr != nil {
		log.Printf("warning: invite email to %s failed: %v", email, mailErr)
	}

	return inv, nil
}

// load fetches and row-locks an invitation inside tx, normalizing the token
// and classifying why it cannot be redeemed.
func (s *InvitationService) load(tx *gorm.DB, token string, now time.Time) (models.Invitation, error) {
	var inv models.Invitation

	token = utils.NormalizeInviteToken(token)
	if !utils.IsValidInviteTokenFormat(token) {
		return inv, ErrInvitationInvalid
	}

	if err := lockForUpdate(tx).First(&inv, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inv, ErrInvitationInvalid
		}
		return inv, fmt.Errorf("failed to load invitation: %w", err)
	}
	if inv.Used {
		return inv, ErrInvitationUsed
	}
	if inv.Expired(now) {
		return inv, ErrInvitationExpired
	}
	return inv, nil
}

// Redeem associates the calling user with the invitation's hotel and burns
// the token, all inside one transaction so two racing redemptions cannot both
// succeed. A used or expired invitation is rejected here regardless of what
// any earlier validation saw.
func (s *InvitationService) Redeem(token string, userID uint) (uint, error) {
	var hotelID uint
	now := time.Now().UTC()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		inv, err := s.load(tx, token, now)
		if err != nil {
			return err
		}

		var user models.User
		if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := addHotelRef(tx, &user, inv.HotelID); err != nil {
			return err
		}

		hotelID = inv.HotelID
		return markUsed(tx, &inv, now)
	})
	return hotelID, err
}

// Accept is the onboarding path for invitees without an account: it creates a
// CLEANER user (or attaches the hotel to an existing account with that email)
// and burns the token in the same transaction.
func (s *InvitationService) Accept(token, name, email, password string) (models.User, error) {
	var user models.User
	now := time.Now().UTC()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 6 {
		return user, errors.New("invalid_signup")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		inv, err := s.load(tx, token, now)
		if err != nil {
			return err
		}

		err = lockForUpdate(tx).Where("email = ?", email).First(&user).Error
		switch {
		case err == nil:
			// existing account, only attach the hotel
			if err := addHotelRef(tx, &user, inv.HotelID); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if hashErr != nil {
				return fmt.Errorf("failed to hash password: %w", hashErr)
			}
			user = models.User{
				Name:     strings.TrimSpace(name),
				Email:    email,
				Password: string(hash),
				Role:     models.RoleCleaner,
			}
			if err := user.SetHotels([]uint{inv.HotelID}); err != nil {
				return err
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to create invited user: %w", err)
			}
		default:
			return err
		}

		return markUsed(tx, &inv, now)
	})
	return user, err
}

// Get returns the invitation for pre-filling the accept form, with the same
// validity classification as redemption.
func (s *InvitationService) Get(token string) (models.Invitation, error) {
	return s.load(s.DB, token, time.Now().UTC())
}

func addHotelRef(tx *gorm.DB, user *models.User, hotelID uint) error {
	if user.HasHotel(hotelID) {
		return nil
	}
	if err := user.SetHotels(append(user.Hotels(), hotelID)); err != nil {
		return err
	}
	return tx.Model(&models.User{}).Where("id = ?", user.ID).
		Update("hotel_refs", user.HotelRefs).Error
}

func markUsed(tx *gorm.DB, inv *models.Invitation, now time.Time) error {
	return tx.Model(&models.Invitation{}).Where("token = ?", inv.Token).
		Updates(map[string]interface{}{
			"used":    true,
			"used_at": now,
		}).Error
}
