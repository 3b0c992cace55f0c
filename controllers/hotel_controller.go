package controllers

import (
	"net/http"

	"roomplanner-backend/middleware"
	"roomplanner-backend/models"
	"roomplanner-backend/services"
	"roomplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Hotels *services.HotelService
	Users  *services.UserService
}

func NewHotelController(hotels *services.HotelService, users *services.UserService) *HotelController {
	return &HotelController{Hotels: hotels, Users: users}
}

type hotelRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	PhotoURL string `json:"photo_url"`
}

// GetHotels handles GET /api/hotels. Superadmins see everything, everyone
// else only the hotels on their own list.
func (hc *HotelController) GetHotels(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	if middleware.CurrentRole(c) == models.RoleSuperAdmin {
		hotels, err := hc.Hotels.GetAll()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, hotels)
		return
	}

	user, err := hc.Users.GetByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	hotels, err := hc.Hotels.GetForUser(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// CreateHotel handles POST /api/hotels.
func (hc *HotelController) CreateHotel(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	hotel := models.Hotel{Name: req.Name, Address: req.Address, PhotoURL: req.PhotoURL}
	if err := hc.Hotels.Create(&hotel, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// GetHotel handles GET /api/hotels/:id.
func (hc *HotelController) GetHotel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	hotel, err := hc.Hotels.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// UpdateHotel handles PUT /api/hotels/:id.
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	hotel := models.Hotel{Name: req.Name, Address: req.Address, PhotoURL: req.PhotoURL}
	hotel.ID = id
	if err := hc.Hotels.Update(hotel); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "hotel_updated")
}

// DeleteHotel handles DELETE /api/hotels/:id — cascades to rooms, bookings
// and invitations, and revokes every user's reference.
func (hc *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := hc.Hotels.DeleteCascade(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "hotel_deleted")
}
