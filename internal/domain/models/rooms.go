package models

import (
	"time"
)

// Booking statuses for the conference room variant.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ConferenceRoom is a bookable meeting room.
type ConferenceRoom struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Amenities   []string  `json:"amenities"`
	HourlyRate  int64     `json:"hourlyRate"` // cents per hour
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RoomBooking occupies a contiguous date+time span in one room. Dates are
// YYYY-MM-DD and times HH:MM; both zero-padded, so lexicographic comparison
// orders them correctly.
type RoomBooking struct {
	ID              int64     `json:"id"`
	RoomID          int64     `json:"roomId"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	OrganizerName   string    `json:"organizerName"`
	OrganizerEmail  string    `json:"organizerEmail"`
	OrganizerPhone  string    `json:"organizerPhone,omitempty"`
	AttendeeCount   int       `json:"attendeeCount"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	TotalAmount     int64     `json:"totalAmount"` // cents
	Status          string    `json:"status"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookingEquipment is a child row attached to a booking.
type BookingEquipment struct {
	ID            int64  `json:"id"`
	BookingID     int64  `json:"bookingId"`
	EquipmentName string `json:"equipmentName"`
	Quantity      int    `json:"quantity"`
}

// BookingWithDetails is the API shape for booking reads: the booking plus its
// room and equipment list.
type BookingWithDetails struct {
	RoomBooking
	Room      ConferenceRoom     `json:"room"`
	Equipment []BookingEquipment `json:"equipment"`
}

// OverlapsSlot reports whether the booking's span shares any point with the
// given span. Bounds are inclusive on both dates and times: a booking ending
// exactly when another starts counts as a conflict.
func (b RoomBooking) OverlapsSlot(startDate, endDate, startTime, endTime string) bool {
	dateOverlap := b.StartDate <= endDate && b.EndDate >= startDate
	timeOverlap := b.StartTime <= endTime && b.EndTime >= startTime
	return dateOverlap && timeOverlap
}

// SlotDuration returns the length of a date+time span.
func SlotDuration(startDate, startTime, endDate, endTime string) (time.Duration, error) {
	const layout = "2006-01-02 15:04"
	start, err := time.Parse(layout, startDate+" "+startTime)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse(layout, endDate+" "+endTime)
	if err != nil {
		return 0, err
	}
	return end.Sub(start), nil
}

// SlotCost is the authoritative booking cost in cents:
// ceil(hours * hourlyRate), hours derived from whole seconds.
func SlotCost(d time.Duration, hourlyRate int64) int64 {
	seconds := int64(d / time.Second)
	if seconds <= 0 {
		return 0
	}
	// ceil(seconds * rate / 3600) in integer arithmetic
	return (seconds*hourlyRate + 3599) / 3600
}

// RoomUsageStats aggregates confirmed bookings per room.
type RoomUsageStats struct {
	RoomID           int64   `json:"roomId"`
	RoomName         string  `json:"roomName"`
	Capacity         int     `json:"capacity"`
	TotalBookings    int     `json:"totalBookings"`
	TotalHours       int     `json:"totalHours"`
	TotalRevenue     int64   `json:"totalRevenue"` // cents
	UtilizationRate  int     `json:"utilizationRate"` // % of a 168h week
	AverageOccupancy float64 `json:"averageOccupancy"`
}

// BookingTrend is a per-day aggregate of confirmed bookings.
type BookingTrend struct {
	Date         string `json:"date"`
	BookingCount int    `json:"bookingCount"`
	Revenue      int64  `json:"revenue"` // cents
	TotalHours   int    `json:"totalHours"`
}

// PopularTimeSlot is a booking-count histogram bucket per start hour.
type PopularTimeSlot struct {
	Hour         int `json:"hour"`
	BookingCount int `json:"bookingCount"`
	Utilization  int `json:"utilization"` // % of total confirmed bookings
}

// Dashboard joins the independent analytics reads into one payload.
type Dashboard struct {
	TotalRevenue  int64             `json:"totalRevenue"`
	OccupancyRate float64           `json:"occupancyRate"`
	RoomUsage     []RoomUsageStats  `json:"roomUsage"`
	PopularTimes  []PopularTimeSlot `json:"popularTimes"`
	Trends        []BookingTrend    `json:"trends"`
}
