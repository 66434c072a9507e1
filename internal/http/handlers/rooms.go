package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"reservio/internal/auth"
	"reservio/internal/domain/models"
	"reservio/internal/services"
	"reservio/internal/storage"
)

// RoomsHandler serves the conference room API.
type RoomsHandler struct {
	Store     storage.RoomStore
	Bookings  *services.BookingService
	Analytics *services.AnalyticsService
	Auth      *auth.Service
	Log       *zerolog.Logger
}

// GET /api/conference-rooms
func (h *RoomsHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Store.ActiveRooms(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list rooms")
		respondError(c, http.StatusInternalServerError, "Failed to fetch conference rooms", nil)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/conference-rooms/:id
func (h *RoomsHandler) GetRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	room, found, err := h.Store.Room(c.Request.Context(), id)
	if err != nil {
		h.Log.Error().Err(err).Msg("get room")
		respondError(c, http.StatusInternalServerError, "Failed to fetch conference room", nil)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Conference room not found", nil)
		return
	}
	c.JSON(http.StatusOK, room)
}

type roomPayload struct {
	Name        string   `json:"name" binding:"required"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	Location    string   `json:"location" binding:"required"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	HourlyRate  int64    `json:"hourlyRate" binding:"required,min=1"`
	ImageURL    string   `json:"imageUrl"`
	IsActive    *bool    `json:"isActive"`
}

// POST /api/conference-rooms
func (h *RoomsHandler) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if !bindJSON(c, &payload, "conference room") {
		return
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}
	room, err := h.Store.CreateRoom(c.Request.Context(), models.ConferenceRoom{
		Name:        payload.Name,
		Capacity:    payload.Capacity,
		Location:    payload.Location,
		Description: payload.Description,
		Amenities:   payload.Amenities,
		HourlyRate:  payload.HourlyRate,
		ImageURL:    payload.ImageURL,
		IsActive:    active,
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("create room")
		respondError(c, http.StatusInternalServerError, "Failed to create conference room", nil)
		return
	}

	h.Log.Info().Int64("room_id", room.ID).Str("name", room.Name).Msg("room created")
	c.JSON(http.StatusCreated, room)
}

type roomPatchPayload struct {
	Name        *string   `json:"name"`
	Capacity    *int      `json:"capacity"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	Amenities   *[]string `json:"amenities"`
	HourlyRate  *int64    `json:"hourlyRate"`
	ImageURL    *string   `json:"imageUrl"`
	IsActive    *bool     `json:"isActive"`
}

// PUT /api/conference-rooms/:id
func (h *RoomsHandler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload roomPatchPayload
	if !bindJSON(c, &payload, "conference room") {
		return
	}
	if payload.Capacity != nil && *payload.Capacity < 1 {
		respondError(c, http.StatusBadRequest, "Invalid conference room data", "capacity must be at least 1")
		return
	}
	if payload.HourlyRate != nil && *payload.HourlyRate < 1 {
		respondError(c, http.StatusBadRequest, "Invalid conference room data", "hourlyRate must be positive")
		return
	}

	room, found, err := h.Store.UpdateRoom(c.Request.Context(), id, storage.RoomPatch{
		Name:        payload.Name,
		Capacity:    payload.Capacity,
		Location:    payload.Location,
		Description: payload.Description,
		Amenities:   payload.Amenities,
		HourlyRate:  payload.HourlyRate,
		ImageURL:    payload.ImageURL,
		IsActive:    payload.IsActive,
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("update room")
		respondError(c, http.StatusInternalServerError, "Failed to update conference room", nil)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Conference room not found", nil)
		return
	}
	c.JSON(http.StatusOK, room)
}
