package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors returned across the service boundary. Controllers map these
// to HTTP status codes; anything else is a remote/store failure and surfaces
// as a 500.
var (
	ErrBookingConflict  = errors.New("booking_conflict")
	ErrBookingNotFound  = errors.New("booking_not_found")
	ErrInvalidStayRange = errors.New("invalid_stay_range")

	ErrRoomNotFound  = errors.New("room_not_found")
	ErrHotelNotFound = errors.New("hotel_not_found")
	ErrUserNotFound  = errors.New("user_not_found")

	ErrInvitationInvalid = errors.New("invitation_invalid")
	ErrInvitationExpired = errors.New("invitation_expired")
	ErrInvitationUsed    = errors.New("invitation_used")

	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// isDuplicateErr reports whether err is a unique-constraint violation. MySQL
// reports errno 1062; other drivers only expose it in the message.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") ||
		strings.Contains(lc, "constraint")
}
