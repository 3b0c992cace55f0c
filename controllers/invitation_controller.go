package controllers

import (
	"net/http"

	"roomplanner-backend/services"
	"roomplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type InvitationController struct {
	Invitations *services.InvitationService
	Auth        *services.AuthService
}

func NewInvitationController(invitations *services.InvitationService, auth *services.AuthService) *InvitationController {
	return &InvitationController{Invitations: invitations, Auth: auth}
}

// CreateInvitation handles POST /api/invitations.
func (ic *InvitationController) CreateInvitation(c *gin.Context) {
	var req struct {
		Email   string `json:"email" binding:"required,email"`
		Name    string `json:"name" binding:"required"`
		HotelID uint   `json:"hotel_id" binding:"required"`
		TTLDays int    `json:"ttl_days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	inv, err := ic.Invitations.Create(req.Email, req.Name, req.HotelID, req.TTLDays)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, inv)
}

// GetInvitation handles GET /api/invitations/:token, used by the accept form
// to pre-fill name and email. Returns the same validity errors as redemption.
func (ic *InvitationController) GetInvitation(c *gin.Context) {
	inv, err := ic.Invitations.Get(c.Param("token"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inv)
}

// RedeemInvitation handles POST /api/invitations/redeem for an authenticated
// user joining a hotel.
func (ic *InvitationController) RedeemInvitation(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	hotelID, err := ic.Invitations.Redeem(req.Token, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotel_id": hotelID})
}

// AcceptInvitation handles POST /api/invitations/accept: onboarding for
// invitees without an account. Returns a login token for the new session.
func (ic *InvitationController) AcceptInvitation(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload")
		return
	}

	user, err := ic.Invitations.Accept(req.Token, req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := ic.Auth.GenerateToken(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "user": user})
}
