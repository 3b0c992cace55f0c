package controllers

import (
	"net/http"

	"roomplanner-backend/services"
	"roomplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// Me handles GET /api/users/me.
func (uc *UserController) Me(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	user, err := uc.Users.GetByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// GetHotelStaff handles GET /api/hotels/:id/users.
func (uc *UserController) GetHotelStaff(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	users, err := uc.Users.GetForHotel(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

// RemoveFromHotel handles DELETE /api/hotels/:id/users/:userId, revoking a
// staff member's access.
func (uc *UserController) RemoveFromHotel(c *gin.Context) {
	hotelID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	if err := uc.Users.RemoveFromHotel(userID, hotelID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "user_removed_from_hotel")
}

// DeleteUser handles DELETE /api/users/:id.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := uc.Users.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "user_deleted")
}
