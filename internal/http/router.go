// Package http assembles the gin engines for the two API surfaces.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"reservio/internal/config"
	"reservio/internal/http/handlers"
	"reservio/internal/http/middleware"
)

func newEngine(env config.Env, log *zerolog.Logger) *gin.Engine {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     env.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.Metrics(),
	)

	r.GET("/api/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return r
}

// NewTravelRouter wires the vacation package API.
func NewTravelRouter(env config.Env, h *handlers.TravelHandler, log *zerolog.Logger) *gin.Engine {
	r := newEngine(env, log)

	api := r.Group("/api")
	{
		api.GET("/destinations", h.ListDestinations)
		api.GET("/destinations/:id", h.GetDestination)
		api.GET("/packages", h.ListPackages)
		api.GET("/packages/search", h.SearchPackages)
		api.GET("/packages/:id", h.GetPackage)
		api.GET("/activities", h.ListActivities)
		api.POST("/bookings", h.CreateBooking)
		api.POST("/contacts", h.CreateContact)
	}
	return r
}

// NewRoomsRouter wires the conference room API.
func NewRoomsRouter(env config.Env, h *handlers.RoomsHandler, log *zerolog.Logger) *gin.Engine {
	r := newEngine(env, log)

	api := r.Group("/api")
	{
		api.GET("/conference-rooms", h.ListRooms)
		api.GET("/conference-rooms/:id", h.GetRoom)
		api.POST("/conference-rooms", h.CreateRoom)
		api.PUT("/conference-rooms/:id", h.UpdateRoom)

		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.GET("/bookings/:id/confirmation.pdf", h.BookingConfirmationPDF)
		api.POST("/bookings", h.CreateBooking)
		api.PUT("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)

		api.POST("/rooms/check-availability", h.CheckAvailability)

		api.GET("/analytics/room-usage", h.RoomUsage)
		api.GET("/analytics/booking-trends", h.BookingTrends)
		api.GET("/analytics/popular-times", h.PopularTimeSlots)
		api.GET("/analytics/revenue", h.TotalRevenue)
		api.GET("/analytics/occupancy", h.OccupancyRate)
		api.GET("/analytics/dashboard", h.Dashboard)

		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
	}
	return r
}
