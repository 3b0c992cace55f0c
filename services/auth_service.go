package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"roomplanner-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

// AuthService handles account registration and credential checks, standing in
// for the managed auth provider: the rest of the system only ever consumes
// the authenticated user's id.
type AuthService struct {
	DB     *gorm.DB
	Secret string
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{DB: db, Secret: secret}
}

// Register creates a hotel-manager account. Staff accounts are created via
// invitation acceptance instead.
func (s *AuthService) Register(name, email, password string) (models.User, error) {
	var user models.User

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 6 {
		return user, errors.New("invalid_signup")
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return user, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return user, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user, fmt.Errorf("failed to hash password: %w", err)
	}

	user = models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := user.SetHotels(nil); err != nil {
		return user, err
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// the email has a unique index, two racing signups resolve here
		if isDuplicateErr(err) {
			return user, ErrEmailTaken
		}
		return user, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns a signed JWT plus the user profile.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	var user models.User

	email = strings.ToLower(strings.TrimSpace(email))
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", user, ErrInvalidCredentials
	}
	if err != nil {
		return "", user, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", user, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", user, err
	}
	return token, user, nil
}

// GenerateToken signs a JWT carrying the user's id and role.
func (s *AuthService) GenerateToken(user models.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", user.ID),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
