package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"reservio/internal/domain/models"
	"reservio/internal/storage"
)

// TravelHandler serves the vacation package API. The store is injected at
// startup; handlers hold no other state.
type TravelHandler struct {
	Store storage.TravelStore
	Log   *zerolog.Logger
}

func NewTravelHandler(store storage.TravelStore, log *zerolog.Logger) *TravelHandler {
	return &TravelHandler{Store: store, Log: log}
}

// GET /api/destinations
func (h *TravelHandler) ListDestinations(c *gin.Context) {
	destinations, err := h.Store.Destinations(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list destinations")
		respondError(c, http.StatusInternalServerError, "Failed to fetch destinations", nil)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

// GET /api/destinations/:id
func (h *TravelHandler) GetDestination(c *gin.Context) {
	destination, found, err := h.Store.Destination(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Log.Error().Err(err).Msg("get destination")
		respondError(c, http.StatusInternalServerError, "Failed to fetch destination", nil)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Destination not found", nil)
		return
	}
	c.JSON(http.StatusOK, destination)
}

// GET /api/packages?priceMin&priceMax&duration&type&destinationId
func (h *TravelHandler) ListPackages(c *gin.Context) {
	var filter models.PackageFilter
	hasFilter := false

	for name, dst := range map[string]**int64{"priceMin": &filter.PriceMin, "priceMax": &filter.PriceMax} {
		if raw := strings.TrimSpace(c.Query(name)); raw != "" {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || v < 0 {
				respondError(c, http.StatusBadRequest, "Invalid "+name, nil)
				return
			}
			*dst = &v
			hasFilter = true
		}
	}
	if filter.Duration = strings.TrimSpace(c.Query("duration")); filter.Duration != "" {
		hasFilter = true
	}
	if filter.Type = strings.TrimSpace(c.Query("type")); filter.Type != "" {
		hasFilter = true
	}
	if filter.DestinationID = strings.TrimSpace(c.Query("destinationId")); filter.DestinationID != "" {
		hasFilter = true
	}

	var f *models.PackageFilter
	if hasFilter {
		f = &filter
	}

	packages, err := h.Store.Packages(c.Request.Context(), f)
	if err != nil {
		h.Log.Error().Err(err).Msg("list packages")
		respondError(c, http.StatusInternalServerError, "Failed to fetch packages", nil)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/packages/search?q=
func (h *TravelHandler) SearchPackages(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		respondError(c, http.StatusBadRequest, "Search query is required", nil)
		return
	}

	packages, err := h.Store.SearchPackages(c.Request.Context(), q)
	if err != nil {
		h.Log.Error().Err(err).Msg("search packages")
		respondError(c, http.StatusInternalServerError, "Failed to search packages", nil)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/packages/:id
func (h *TravelHandler) GetPackage(c *gin.Context) {
	pkg, found, err := h.Store.Package(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Log.Error().Err(err).Msg("get package")
		respondError(c, http.StatusInternalServerError, "Failed to fetch package", nil)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Package not found", nil)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GET /api/activities
func (h *TravelHandler) ListActivities(c *gin.Context) {
	activities, err := h.Store.Activities(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list activities")
		respondError(c, http.StatusInternalServerError, "Failed to fetch activities", nil)
		return
	}
	c.JSON(http.StatusOK, activities)
}

type travelBookingPayload struct {
	PackageID       string `json:"packageId" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	TravelDate      string `json:"travelDate" binding:"required"`
	Travelers       int    `json:"travelers" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

// POST /api/bookings
func (h *TravelHandler) CreateBooking(c *gin.Context) {
	var payload travelBookingPayload
	if !bindJSON(c, &payload, "booking") {
		return
	}
	if _, err := time.Parse("2006-01-02", payload.TravelDate); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid booking data", "travelDate must be YYYY-MM-DD")
		return
	}

	booking, err := h.Store.CreateBooking(c.Request.Context(), models.TravelBooking{
		PackageID:       payload.PackageID,
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Email:           payload.Email,
		Phone:           payload.Phone,
		TravelDate:      payload.TravelDate,
		Travelers:       payload.Travelers,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("create booking")
		respondError(c, http.StatusInternalServerError, "Failed to create booking", nil)
		return
	}

	h.Log.Info().Str("booking_id", booking.ID).Str("package_id", booking.PackageID).Msg("travel booking created")
	c.JSON(http.StatusCreated, booking)
}

type contactPayload struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Destination string `json:"destination"`
	Message     string `json:"message" binding:"required"`
}

// POST /api/contacts
func (h *TravelHandler) CreateContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "contact") {
		return
	}

	contact, err := h.Store.CreateContact(c.Request.Context(), models.Contact{
		Name:        payload.Name,
		Email:       payload.Email,
		Destination: payload.Destination,
		Message:     payload.Message,
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("create contact")
		respondError(c, http.StatusInternalServerError, "Failed to create contact", nil)
		return
	}
	c.JSON(http.StatusCreated, contact)
}
