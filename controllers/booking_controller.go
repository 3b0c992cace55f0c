package controllers

import (
	"net/http"
	"time"

	"roomplanner-backend/models"
	"roomplanner-backend/services"
	"roomplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
	Users    *services.UserService
}

func NewBookingController(bookings *services.BookingService, users *services.UserService) *BookingController {
	return &BookingController{Bookings: bookings, Users: users}
}

type bookingRequest struct {
	HotelID      uint   `json:"hotel_id" binding:"required"`
	RoomID       uint   `json:"room_id" binding:"required"`
	GuestName    string `json:"guest_name" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Observations string `json:"observations"`
}

func (r bookingRequest) toModel() (models.Booking, error) {
	ci, err := parseDate(r.CheckInDate)
	if err != nil {
		return models.Booking{}, err
	}
	co, err := parseDate(r.CheckOutDate)
	if err != nil {
		return models.Booking{}, err
	}
	return models.Booking{
		HotelID:      r.HotelID,
		RoomID:       r.RoomID,
		GuestName:    r.GuestName,
		CheckInDate:  ci,
		CheckOutDate: co,
		Observations: r.Observations,
	}, nil
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	b, err := req.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_date_format")
		return
	}

	if err := bc.Bookings.Create(&b); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, b)
}

// UpdateBooking handles PUT /api/bookings/:id.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	b, err := req.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_date_format")
		return
	}
	b.ID = id

	if err := bc.Bookings.Update(&b); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b)
}

// GetBooking handles GET /api/bookings/:id.
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	b, err := bc.Bookings.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b)
}

// GetUpcoming handles GET /api/hotels/:id/bookings?from=...&to=...
func (bc *BookingController) GetUpcoming(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	from := time.Now().UTC()
	to := from.AddDate(0, 1, 0)
	if raw := c.Query("from"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid_date_format")
			return
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid_date_format")
			return
		}
		to = t
	}

	list, err := bc.Bookings.GetUpcoming(hotelID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// CancelBooking handles POST /api/bookings/:id/cancel — frees the room
// without dirtying it.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := bc.Bookings.Cancel(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "booking_cancelled")
}

// DeleteBooking handles DELETE /api/bookings/:id — the administrative
// removal path.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := bc.Bookings.Remove(id, false); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "booking_deleted")
}

// SweepCheckouts handles POST /api/bookings/sweep. The dashboard calls this
// on load; the sweep covers the hotels the caller can see.
func (bc *BookingController) SweepCheckouts(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	user, err := bc.Users.GetByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	bc.Bookings.SweepCheckouts(user.Hotels())
	utils.JSONMessage(c, http.StatusOK, "sweep_completed")
}

// CheckAvailability handles GET /api/hotels/:id/rooms/:roomId/availability.
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	roomID, ok := paramUint(c, "roomId")
	if !ok {
		return
	}

	ci, err := parseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_date_format")
		return
	}
	co, err := parseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_date_format")
		return
	}

	conflict, err := bc.Bookings.HasOverlap(hotelID, roomID, ci, co, 0)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": !conflict})
}
