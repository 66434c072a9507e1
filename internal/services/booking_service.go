package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"reservio/internal/domain"
	"reservio/internal/domain/models"
	"reservio/internal/metrics"
	"reservio/internal/storage"
)

// BookingService orchestrates room booking writes: slot validation, the
// store-level availability-checked write, metrics and logging. The store owns
// atomicity; this layer owns semantics.
type BookingService struct {
	Store storage.RoomStore
	Log   *zerolog.Logger
}

func NewBookingService(store storage.RoomStore, log *zerolog.Logger) *BookingService {
	return &BookingService{Store: store, Log: log}
}

// ValidateSlot checks the date/time formats and that the span has positive
// length. Dates are YYYY-MM-DD, times HH:MM.
func ValidateSlot(startDate, endDate, startTime, endTime string) error {
	for field, v := range map[string]string{"startDate": startDate, "endDate": endDate} {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return domain.ValidationError{Field: field, Msg: "must be YYYY-MM-DD"}
		}
	}
	for field, v := range map[string]string{"startTime": startTime, "endTime": endTime} {
		if _, err := time.Parse("15:04", v); err != nil {
			return domain.ValidationError{Field: field, Msg: "must be HH:MM"}
		}
	}
	d, err := models.SlotDuration(startDate, startTime, endDate, endTime)
	if err != nil {
		return domain.ValidationError{Field: "startDate", Msg: "invalid date or time", Err: err}
	}
	if d <= 0 {
		return domain.ValidationError{Field: "endTime", Msg: "booking must end after it starts"}
	}
	return nil
}

func (s *BookingService) Create(ctx context.Context, b models.RoomBooking, equipment []models.BookingEquipment) (models.RoomBooking, error) {
	if err := ValidateSlot(b.StartDate, b.EndDate, b.StartTime, b.EndTime); err != nil {
		return models.RoomBooking{}, err
	}

	created, err := s.Store.CreateBooking(ctx, b, equipment)
	if err != nil {
		if domain.IsConflict(err) {
			metrics.IncAvailabilityConflict()
			s.Log.Info().
				Int64("room_id", b.RoomID).
				Str("start", b.StartDate+" "+b.StartTime).
				Str("end", b.EndDate+" "+b.EndTime).
				Msg("booking rejected: slot taken")
		}
		return models.RoomBooking{}, err
	}

	metrics.IncBookingCreated(created.Status)
	s.Log.Info().
		Int64("booking_id", created.ID).
		Int64("room_id", created.RoomID).
		Int64("total_amount", created.TotalAmount).
		Msg("booking created")
	return created, nil
}

func (s *BookingService) Update(ctx context.Context, id int64, patch storage.BookingPatch) (models.RoomBooking, error) {
	if patch.TouchesSlot() {
		// Partial slot changes merge against the stored booking inside the
		// store, so only fully supplied fields can be format-checked here.
		for field, v := range map[string]*string{"startDate": patch.StartDate, "endDate": patch.EndDate} {
			if v != nil {
				if _, err := time.Parse("2006-01-02", *v); err != nil {
					return models.RoomBooking{}, domain.ValidationError{Field: field, Msg: "must be YYYY-MM-DD"}
				}
			}
		}
		for field, v := range map[string]*string{"startTime": patch.StartTime, "endTime": patch.EndTime} {
			if v != nil {
				if _, err := time.Parse("15:04", *v); err != nil {
					return models.RoomBooking{}, domain.ValidationError{Field: field, Msg: "must be HH:MM"}
				}
			}
		}
	}

	updated, found, err := s.Store.UpdateBooking(ctx, id, patch)
	if err != nil {
		if domain.IsConflict(err) {
			metrics.IncAvailabilityConflict()
		}
		return models.RoomBooking{}, err
	}
	if !found {
		return models.RoomBooking{}, domain.NotFoundError{Resource: "booking"}
	}

	s.Log.Info().Int64("booking_id", id).Msg("booking updated")
	return updated, nil
}

func (s *BookingService) Cancel(ctx context.Context, id int64) (models.RoomBooking, error) {
	cancelled, found, err := s.Store.CancelBooking(ctx, id)
	if err != nil {
		return models.RoomBooking{}, err
	}
	if !found {
		return models.RoomBooking{}, domain.NotFoundError{Resource: "booking"}
	}

	metrics.IncBookingCancelled()
	s.Log.Info().Int64("booking_id", id).Msg("booking cancelled")
	return cancelled, nil
}

// Availability answers the standalone availability probe.
func (s *BookingService) Availability(ctx context.Context, roomID int64, startDate, endDate, startTime, endTime string, excludeBookingID int64) (bool, error) {
	if err := ValidateSlot(startDate, endDate, startTime, endTime); err != nil {
		return false, err
	}
	return s.Store.CheckAvailability(ctx, roomID, startDate, endDate, startTime, endTime, excludeBookingID)
}
