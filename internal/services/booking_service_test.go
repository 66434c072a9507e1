package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"reservio/internal/domain"
	"reservio/internal/domain/models"
	"reservio/internal/storage"
	"reservio/internal/storage/memstore"
)

func TestValidateSlot(t *testing.T) {
	cases := []struct {
		name                                   string
		startDate, endDate, startTime, endTime string
		wantErr                                bool
	}{
		{"valid", "2026-03-10", "2026-03-10", "09:00", "11:00", false},
		{"multi-day", "2026-03-10", "2026-03-12", "09:00", "11:00", false},
		{"bad date", "10-03-2026", "2026-03-10", "09:00", "11:00", true},
		{"bad time", "2026-03-10", "2026-03-10", "9am", "11:00", true},
		{"zero length", "2026-03-10", "2026-03-10", "09:00", "09:00", true},
		{"ends before start", "2026-03-10", "2026-03-10", "11:00", "09:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSlot(tc.startDate, tc.endDate, tc.startTime, tc.endTime)
			if tc.wantErr && !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func newTestBookingService() *BookingService {
	log := zerolog.Nop()
	return NewBookingService(memstore.NewRooms(), &log)
}

func testRoomBooking() models.RoomBooking {
	return models.RoomBooking{
		RoomID:         1,
		Title:          "Sprint planning",
		OrganizerName:  "Dana Reyes",
		OrganizerEmail: "dana@example.com",
		AttendeeCount:  6,
		StartDate:      "2026-03-10",
		EndDate:        "2026-03-10",
		StartTime:      "09:00",
		EndTime:        "11:00",
	}
}

func TestBookingService_CreateRejectsBadSlotBeforeStore(t *testing.T) {
	s := newTestBookingService()

	b := testRoomBooking()
	b.EndTime = "08:00" // before start
	if _, err := s.Create(context.Background(), b, nil); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookingService_CreateThenConflict(t *testing.T) {
	s := newTestBookingService()
	ctx := context.Background()

	created, err := s.Create(ctx, testRoomBooking(), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.TotalAmount != 10000 {
		t.Fatalf("total amount = %d, want 10000", created.TotalAmount)
	}

	if _, err := s.Create(ctx, testRoomBooking(), nil); !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestBookingService_UpdateValidatesPatchFormats(t *testing.T) {
	s := newTestBookingService()
	ctx := context.Background()

	created, err := s.Create(ctx, testRoomBooking(), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bad := "noon"
	_, err = s.Update(ctx, created.ID, storage.BookingPatch{StartTime: &bad})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookingService_UpdateNotFound(t *testing.T) {
	s := newTestBookingService()

	title := "Renamed"
	_, err := s.Update(context.Background(), 999, storage.BookingPatch{Title: &title})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestBookingService_CancelNotFound(t *testing.T) {
	s := newTestBookingService()

	_, err := s.Cancel(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestBookingService_Availability(t *testing.T) {
	s := newTestBookingService()
	ctx := context.Background()

	created, err := s.Create(ctx, testRoomBooking(), nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	free, err := s.Availability(ctx, 1, "2026-03-10", "2026-03-10", "10:00", "12:00", 0)
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if free {
		t.Fatalf("slot should be taken")
	}

	free, err = s.Availability(ctx, 1, "2026-03-10", "2026-03-10", "10:00", "12:00", created.ID)
	if err != nil {
		t.Fatalf("availability failed: %v", err)
	}
	if !free {
		t.Fatalf("excluding the booking itself should free the slot")
	}

	if _, err := s.Availability(ctx, 1, "bad", "2026-03-10", "10:00", "12:00", 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
