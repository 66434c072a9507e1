package sqlstore

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"reservio/internal/domain"
	"reservio/internal/domain/models"
)

func newRoomsMock(t *testing.T) (*Rooms, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRooms(db), mock
}

func expectDone(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBooking_LocksChecksAndCommits(t *testing.T) {
	s, mock := newRoomsMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT hourly_rate FROM conference_rooms WHERE id = \\? FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"hourly_rate"}).AddRow(5000))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs(int64(1), int64(0), "2026-03-10", "2026-03-10", "11:00", "09:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO booking_equipment").
		WithArgs(int64(7), "Projector", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	b, err := s.CreateBooking(context.Background(), models.RoomBooking{
		RoomID: 1, Title: "Sprint planning",
		OrganizerName: "Dana Reyes", OrganizerEmail: "dana@example.com",
		AttendeeCount: 6,
		StartDate:     "2026-03-10", EndDate: "2026-03-10",
		StartTime: "09:00", EndTime: "11:00",
	}, []models.BookingEquipment{{EquipmentName: "Projector", Quantity: 1}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if b.ID != 7 {
		t.Fatalf("booking id = %d, want 7", b.ID)
	}
	if b.TotalAmount != 10000 {
		t.Fatalf("total amount = %d, want 10000", b.TotalAmount)
	}
	if b.Status != models.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", b.Status)
	}
	expectDone(t, mock)
}

func TestCreateBooking_SlotTakenRollsBack(t *testing.T) {
	s, mock := newRoomsMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT hourly_rate FROM conference_rooms").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"hourly_rate"}).AddRow(5000))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := s.CreateBooking(context.Background(), models.RoomBooking{
		RoomID:    1,
		StartDate: "2026-03-10", EndDate: "2026-03-10",
		StartTime: "09:00", EndTime: "11:00",
	}, nil)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	expectDone(t, mock)
}

func TestCreateBooking_UnknownRoom(t *testing.T) {
	s, mock := newRoomsMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT hourly_rate FROM conference_rooms").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"hourly_rate"}))
	mock.ExpectRollback()

	_, err := s.CreateBooking(context.Background(), models.RoomBooking{
		RoomID:    42,
		StartDate: "2026-03-10", EndDate: "2026-03-10",
		StartTime: "09:00", EndTime: "11:00",
	}, nil)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	expectDone(t, mock)
}

func TestCheckAvailability_ArgOrder(t *testing.T) {
	s, mock := newRoomsMock(t)

	// Inclusive overlap predicate: (start <= wantEnd) AND (end >= wantStart).
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs(int64(3), int64(9), "2026-03-11", "2026-03-10", "12:00", "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	free, err := s.CheckAvailability(context.Background(), 3, "2026-03-10", "2026-03-11", "10:00", "12:00", 9)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !free {
		t.Fatalf("expected slot to be free")
	}
	expectDone(t, mock)
}

func TestCancelBooking_NotFound(t *testing.T) {
	s, mock := newRoomsMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings b WHERE b.id = \\?").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, found, err := s.CancelBooking(context.Background(), 99)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found {
		t.Fatalf("unknown booking reported found")
	}
	expectDone(t, mock)
}

func TestTotalRevenue_RangeArgs(t *testing.T) {
	s, mock := newRoomsMock(t)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_amount\\), 0\\) FROM bookings").
		WithArgs("2026-03-01", "2026-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(15000))

	total, err := s.TotalRevenue(context.Background(), "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 15000 {
		t.Fatalf("revenue = %d, want 15000", total)
	}
	expectDone(t, mock)
}

func TestRoomUsage_ComputesUtilization(t *testing.T) {
	s, mock := newRoomsMock(t)

	mock.ExpectQuery("FROM conference_rooms r").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "capacity", "total_bookings", "total_hours", "total_revenue", "average_occupancy"}).
			AddRow(1, "Boardroom Alpha", 12, 3, 42, 210000, 6.5).
			AddRow(2, "Huddle Beta", 4, 0, 0, 0, 0))

	stats, err := s.RoomUsage(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %d rows, want 2", len(stats))
	}
	// 42h of a 168h week = 25%.
	if stats[0].UtilizationRate != 25 {
		t.Fatalf("utilization = %d, want 25", stats[0].UtilizationRate)
	}
	if stats[1].UtilizationRate != 0 {
		t.Fatalf("idle room utilization = %d, want 0", stats[1].UtilizationRate)
	}
	expectDone(t, mock)
}
