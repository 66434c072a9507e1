package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"reservio/internal/domain/models"
	"reservio/internal/pdf"
	"reservio/internal/storage"
)

// GET /api/bookings?roomId=&startDate=&endDate=
func (h *RoomsHandler) ListBookings(c *gin.Context) {
	ctx := c.Request.Context()
	startDate := strings.TrimSpace(c.Query("startDate"))
	endDate := strings.TrimSpace(c.Query("endDate"))

	if raw := strings.TrimSpace(c.Query("roomId")); raw != "" {
		roomID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || roomID <= 0 {
			respondError(c, http.StatusBadRequest, "Invalid roomId", nil)
			return
		}
		bookings, err := h.Store.BookingsByRoom(ctx, roomID)
		if err != nil {
			h.Log.Error().Err(err).Msg("list bookings by room")
			respondError(c, http.StatusInternalServerError, "Failed to fetch bookings", nil)
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}

	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			respondError(c, http.StatusBadRequest, "Both startDate and endDate are required for date filtering", nil)
			return
		}
		bookings, err := h.Store.BookingsByDateRange(ctx, startDate, endDate)
		if err != nil {
			h.Log.Error().Err(err).Msg("list bookings by date range")
			respondError(c, http.StatusInternalServerError, "Failed to fetch bookings", nil)
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}

	bookings, err := h.Store.Bookings(ctx)
	if err != nil {
		h.Log.Error().Err(err).Msg("list bookings")
		respondError(c, http.StatusInternalServerError, "Failed to fetch bookings", nil)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (h *RoomsHandler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, found, err := h.Store.Booking(c.Request.Context(), id)
	if err != nil {
		h.Log.Error().Err(err).Msg("get booking")
		respondError(c, http.StatusInternalServerError, "Failed to fetch booking", nil)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Booking not found", nil)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type equipmentPayload struct {
	EquipmentName string `json:"equipmentName" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
}

type roomBookingPayload struct {
	RoomID          int64              `json:"roomId" binding:"required"`
	Title           string             `json:"title" binding:"required"`
	Description     string             `json:"description"`
	OrganizerName   string             `json:"organizerName" binding:"required"`
	OrganizerEmail  string             `json:"organizerEmail" binding:"required,email"`
	OrganizerPhone  string             `json:"organizerPhone"`
	AttendeeCount   int                `json:"attendeeCount" binding:"required,min=1"`
	StartDate       string             `json:"startDate" binding:"required"`
	EndDate         string             `json:"endDate" binding:"required"`
	StartTime       string             `json:"startTime" binding:"required"`
	EndTime         string             `json:"endTime" binding:"required"`
	SpecialRequests string             `json:"specialRequests"`
	Equipment       []equipmentPayload `json:"equipment"`
}

// POST /api/bookings
func (h *RoomsHandler) CreateBooking(c *gin.Context) {
	var payload roomBookingPayload
	if !bindJSON(c, &payload, "booking") {
		return
	}

	equipment := make([]models.BookingEquipment, 0, len(payload.Equipment))
	for _, e := range payload.Equipment {
		equipment = append(equipment, models.BookingEquipment{
			EquipmentName: e.EquipmentName,
			Quantity:      e.Quantity,
		})
	}

	booking, err := h.Bookings.Create(c.Request.Context(), models.RoomBooking{
		RoomID:          payload.RoomID,
		Title:           payload.Title,
		Description:     payload.Description,
		OrganizerName:   payload.OrganizerName,
		OrganizerEmail:  payload.OrganizerEmail,
		OrganizerPhone:  payload.OrganizerPhone,
		AttendeeCount:   payload.AttendeeCount,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		StartTime:       payload.StartTime,
		EndTime:         payload.EndTime,
		SpecialRequests: payload.SpecialRequests,
	}, equipment)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

type roomBookingPatchPayload struct {
	RoomID          *int64  `json:"roomId"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	OrganizerName   *string `json:"organizerName"`
	OrganizerEmail  *string `json:"organizerEmail"`
	OrganizerPhone  *string `json:"organizerPhone"`
	AttendeeCount   *int    `json:"attendeeCount"`
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	StartTime       *string `json:"startTime"`
	EndTime         *string `json:"endTime"`
	Status          *string `json:"status"`
	SpecialRequests *string `json:"specialRequests"`
}

// PUT /api/bookings/:id
func (h *RoomsHandler) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload roomBookingPatchPayload
	if !bindJSON(c, &payload, "booking") {
		return
	}
	if payload.AttendeeCount != nil && *payload.AttendeeCount < 1 {
		respondError(c, http.StatusBadRequest, "Invalid booking data", "attendeeCount must be at least 1")
		return
	}
	if payload.Status != nil {
		switch *payload.Status {
		case models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted:
		default:
			respondError(c, http.StatusBadRequest, "Invalid booking data", "unknown status")
			return
		}
	}

	booking, err := h.Bookings.Update(c.Request.Context(), id, storage.BookingPatch{
		RoomID:          payload.RoomID,
		Title:           payload.Title,
		Description:     payload.Description,
		OrganizerName:   payload.OrganizerName,
		OrganizerEmail:  payload.OrganizerEmail,
		OrganizerPhone:  payload.OrganizerPhone,
		AttendeeCount:   payload.AttendeeCount,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		StartTime:       payload.StartTime,
		EndTime:         payload.EndTime,
		Status:          payload.Status,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:id
func (h *RoomsHandler) CancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := h.Bookings.Cancel(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully", "booking": booking})
}

type availabilityPayload struct {
	RoomID           int64  `json:"roomId" binding:"required"`
	StartDate        string `json:"startDate" binding:"required"`
	EndDate          string `json:"endDate" binding:"required"`
	StartTime        string `json:"startTime" binding:"required"`
	EndTime          string `json:"endTime" binding:"required"`
	ExcludeBookingID int64  `json:"excludeBookingId"`
}

// POST /api/rooms/check-availability
func (h *RoomsHandler) CheckAvailability(c *gin.Context) {
	var payload availabilityPayload
	if !bindJSON(c, &payload, "availability request") {
		return
	}

	available, err := h.Bookings.Availability(c.Request.Context(),
		payload.RoomID, payload.StartDate, payload.EndDate,
		payload.StartTime, payload.EndTime, payload.ExcludeBookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// GET /api/bookings/:id/confirmation.pdf
func (h *RoomsHandler) BookingConfirmationPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, found, err := h.Store.Booking(c.Request.Context(), id)
	if err != nil {
		h.Log.Error().Err(err).Msg("get booking for confirmation")
		respondError(c, http.StatusInternalServerError, "Failed to fetch booking", nil)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Booking not found", nil)
		return
	}

	doc, err := pdf.BookingConfirmation(booking)
	if err != nil {
		h.Log.Error().Err(err).Int64("booking_id", id).Msg("render confirmation pdf")
		respondError(c, http.StatusInternalServerError, "Failed to generate confirmation", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=booking-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", doc)
}
