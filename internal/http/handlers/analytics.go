package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// dateRange pulls optional startDate/endDate query params, format-checking
// whatever is present. requireBoth additionally rejects a missing pair.
func dateRange(c *gin.Context, requireBoth bool) (startDate, endDate string, ok bool) {
	startDate = strings.TrimSpace(c.Query("startDate"))
	endDate = strings.TrimSpace(c.Query("endDate"))

	if requireBoth && (startDate == "" || endDate == "") {
		respondError(c, http.StatusBadRequest, "startDate and endDate are required", nil)
		return "", "", false
	}
	for name, v := range map[string]string{"startDate": startDate, "endDate": endDate} {
		if v == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", v); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid "+name, "must be YYYY-MM-DD")
			return "", "", false
		}
	}
	return startDate, endDate, true
}

// GET /api/analytics/room-usage?startDate=&endDate=
func (h *RoomsHandler) RoomUsage(c *gin.Context) {
	startDate, endDate, ok := dateRange(c, false)
	if !ok {
		return
	}

	stats, err := h.Analytics.RoomUsage(c.Request.Context(), startDate, endDate)
	if err != nil {
		h.Log.Error().Err(err).Msg("room usage")
		respondError(c, http.StatusInternalServerError, "Failed to fetch room usage statistics", nil)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/analytics/booking-trends?startDate=&endDate=
func (h *RoomsHandler) BookingTrends(c *gin.Context) {
	startDate, endDate, ok := dateRange(c, true)
	if !ok {
		return
	}

	trends, err := h.Analytics.BookingTrends(c.Request.Context(), startDate, endDate)
	if err != nil {
		h.Log.Error().Err(err).Msg("booking trends")
		respondError(c, http.StatusInternalServerError, "Failed to fetch booking trends", nil)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// GET /api/analytics/popular-times
func (h *RoomsHandler) PopularTimeSlots(c *gin.Context) {
	slots, err := h.Analytics.PopularTimeSlots(c.Request.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("popular time slots")
		respondError(c, http.StatusInternalServerError, "Failed to fetch popular time slots", nil)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GET /api/analytics/revenue?startDate=&endDate=
func (h *RoomsHandler) TotalRevenue(c *gin.Context) {
	startDate, endDate, ok := dateRange(c, false)
	if !ok {
		return
	}

	revenue, err := h.Analytics.TotalRevenue(c.Request.Context(), startDate, endDate)
	if err != nil {
		h.Log.Error().Err(err).Msg("total revenue")
		respondError(c, http.StatusInternalServerError, "Failed to fetch revenue", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalRevenue": revenue})
}

// GET /api/analytics/occupancy?roomId=&startDate=&endDate=
func (h *RoomsHandler) OccupancyRate(c *gin.Context) {
	startDate, endDate, ok := dateRange(c, false)
	if !ok {
		return
	}

	var roomID int64
	if raw := strings.TrimSpace(c.Query("roomId")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondError(c, http.StatusBadRequest, "Invalid roomId", nil)
			return
		}
		roomID = id
	}

	rate, err := h.Analytics.OccupancyRate(c.Request.Context(), roomID, startDate, endDate)
	if err != nil {
		h.Log.Error().Err(err).Msg("occupancy rate")
		respondError(c, http.StatusInternalServerError, "Failed to fetch occupancy rate", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"occupancyRate": rate})
}

// GET /api/analytics/dashboard?startDate=&endDate=
func (h *RoomsHandler) Dashboard(c *gin.Context) {
	startDate, endDate, ok := dateRange(c, false)
	if !ok {
		return
	}

	dash, err := h.Analytics.Dashboard(c.Request.Context(), startDate, endDate)
	if err != nil {
		h.Log.Error().Err(err).Msg("dashboard")
		respondError(c, http.StatusInternalServerError, "Failed to fetch dashboard analytics", nil)
		return
	}
	c.JSON(http.StatusOK, dash)
}
