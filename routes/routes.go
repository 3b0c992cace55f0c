package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roomplanner-backend/controllers"
	"roomplanner-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances into the route tree.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	ic *controllers.InvitationController,
	uc *controllers.UserController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}

	// invite acceptance happens before the invitee has a session
	api.GET("/invitations/:token", ic.GetInvitation)
	api.POST("/invitations/accept", ic.AcceptInvitation)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(jwtSecret))
	{
		authed.GET("/users/me", uc.Me)
		authed.DELETE("/users/:id", uc.DeleteUser)

		hotels := authed.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.POST("", hc.CreateHotel)
			hotels.GET("/:id", hc.GetHotel)
			hotels.PUT("/:id", hc.UpdateHotel)
			hotels.DELETE("/:id", hc.DeleteHotel)

			hotels.GET("/:id/rooms", rc.GetRooms)
			hotels.POST("/:id/rooms", rc.CreateRoom)
			hotels.POST("/:id/rooms/sync", rc.SyncStatuses)
			hotels.GET("/:id/rooms/:roomId/availability", bc.CheckAvailability)

			hotels.GET("/:id/bookings", bc.GetUpcoming)

			hotels.GET("/:id/users", uc.GetHotelStaff)
			hotels.DELETE("/:id/users/:userId", uc.RemoveFromHotel)
		}

		rooms := authed.Group("/rooms")
		{
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
			rooms.PATCH("/:id/clean", rc.SetClean)
		}

		bookings := authed.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.POST("/sweep", bc.SweepCheckouts)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.POST("/:id/cancel", bc.CancelBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		invitations := authed.Group("/invitations")
		{
			invitations.POST("", ic.CreateInvitation)
			invitations.POST("/redeem", ic.RedeemInvitation)
		}
	}

	return r
}
