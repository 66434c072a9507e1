package storage

import (
	"context"

	"reservio/internal/domain/models"
)

// RoomPatch carries partial room updates; nil fields are left untouched.
type RoomPatch struct {
	Name        *string
	Capacity    *int
	Location    *string
	Description *string
	Amenities   *[]string
	HourlyRate  *int64
	ImageURL    *string
	IsActive    *bool
}

// BookingPatch carries partial booking updates; nil fields are left
// untouched.
type BookingPatch struct {
	RoomID          *int64
	Title           *string
	Description     *string
	OrganizerName   *string
	OrganizerEmail  *string
	OrganizerPhone  *string
	AttendeeCount   *int
	StartDate       *string
	EndDate         *string
	StartTime       *string
	EndTime         *string
	Status          *string
	SpecialRequests *string
}

// TouchesSlot reports whether the patch moves the booking in space or time,
// which forces an availability re-check and a cost re-derivation.
func (p BookingPatch) TouchesSlot() bool {
	return p.RoomID != nil || p.StartDate != nil || p.EndDate != nil ||
		p.StartTime != nil || p.EndTime != nil
}

// RoomStore is the storage contract for the conference room variant.
//
// CreateBooking and UpdateBooking perform the availability check and the
// write under one lock (memstore) or one transaction (sqlstore), so two
// concurrent requests for the same slot cannot both succeed. A taken slot
// surfaces as domain.ConflictError. Both derive TotalAmount from the room's
// hourly rate; whatever the caller put there is ignored.
type RoomStore interface {
	Rooms(ctx context.Context) ([]models.ConferenceRoom, error)
	ActiveRooms(ctx context.Context) ([]models.ConferenceRoom, error)
	Room(ctx context.Context, id int64) (models.ConferenceRoom, bool, error)
	CreateRoom(ctx context.Context, r models.ConferenceRoom) (models.ConferenceRoom, error)
	UpdateRoom(ctx context.Context, id int64, patch RoomPatch) (models.ConferenceRoom, bool, error)

	Bookings(ctx context.Context) ([]models.BookingWithDetails, error)
	BookingsByRoom(ctx context.Context, roomID int64) ([]models.RoomBooking, error)
	BookingsByDateRange(ctx context.Context, startDate, endDate string) ([]models.BookingWithDetails, error)
	Booking(ctx context.Context, id int64) (models.BookingWithDetails, bool, error)
	CreateBooking(ctx context.Context, b models.RoomBooking, equipment []models.BookingEquipment) (models.RoomBooking, error)
	UpdateBooking(ctx context.Context, id int64, patch BookingPatch) (models.RoomBooking, bool, error)
	// CancelBooking sets status to cancelled and leaves every other field
	// unchanged (soft cancel).
	CancelBooking(ctx context.Context, id int64) (models.RoomBooking, bool, error)
	// CheckAvailability reports whether the slot is free of overlapping
	// confirmed bookings in the room. excludeBookingID (0 = none) skips one
	// booking so edits don't collide with themselves.
	CheckAvailability(ctx context.Context, roomID int64, startDate, endDate, startTime, endTime string, excludeBookingID int64) (bool, error)

	RoomUsage(ctx context.Context, startDate, endDate string) ([]models.RoomUsageStats, error)
	BookingTrends(ctx context.Context, startDate, endDate string) ([]models.BookingTrend, error)
	PopularTimeSlots(ctx context.Context) ([]models.PopularTimeSlot, error)
	TotalRevenue(ctx context.Context, startDate, endDate string) (int64, error)
	OccupancyRate(ctx context.Context, roomID int64, startDate, endDate string) (float64, error)

	User(ctx context.Context, id int64) (models.User, bool, error)
	UserByEmail(ctx context.Context, email string) (models.User, bool, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
}
