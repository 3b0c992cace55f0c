package controllers

import (
	"net/http"

	"roomplanner-backend/models"
	"roomplanner-backend/services"
	"roomplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

type roomRequest struct {
	Number   string  `json:"number" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// GetRooms handles GET /api/hotels/:id/rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	rooms, err := rc.Rooms.GetForHotel(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CreateRoom handles POST /api/hotels/:id/rooms.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	room := models.Room{
		HotelID:  hotelID,
		Number:   req.Number,
		Category: req.Category,
		Price:    req.Price,
		IsClean:  true,
	}
	if err := rc.Rooms.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/rooms/:id.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	room := models.Room{Number: req.Number, Category: req.Category, Price: req.Price}
	room.ID = id
	if err := rc.Rooms.Update(room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room_updated")
}

// DeleteRoom handles DELETE /api/rooms/:id.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room_deleted")
}

// SetClean handles PATCH /api/rooms/:id/clean.
func (rc *RoomController) SetClean(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req struct {
		Clean *bool `json:"clean" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Clean == nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	if err := rc.Rooms.SetClean(id, *req.Clean); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room_clean_updated")
}

// SyncStatuses handles POST /api/hotels/:id/rooms/sync, the drift
// reconciliation pass for cached room statuses.
func (rc *RoomController) SyncStatuses(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := rc.Rooms.SyncRoomStatuses(hotelID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "rooms_synced")
}
