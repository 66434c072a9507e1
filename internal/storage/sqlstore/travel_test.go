package sqlstore

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"reservio/internal/domain/models"
)

func newTravelMock(t *testing.T) (*Travel, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewTravel(db), mock
}

func packageRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "destination_id", "description", "image_url",
		"price", "duration", "max_guests", "rating", "type",
		"features", "included", "activities",
	})
}

func TestPackages_FilterBuildsWhereClause(t *testing.T) {
	s, mock := newTravelMock(t)

	min := int64(50000)
	mock.ExpectQuery("FROM packages p WHERE p.price >= \\? AND p.duration >= \\? AND p.duration <= \\? AND p.type = \\?").
		WithArgs(min, 5, 8, "beach").
		WillReturnRows(packageRows().
			AddRow("pkg-dive-week", "Maldives Dive Week", "dest-maldives", "", "",
				219900, 7, 4, 4.6, "beach", "[]", "[]", "[]"))

	got, err := s.Packages(context.Background(), &models.PackageFilter{
		PriceMin: &min,
		Duration: "medium",
		Type:     "beach",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "pkg-dive-week" {
		t.Fatalf("unexpected packages: %+v", got)
	}
	if got[0].Features == nil {
		t.Fatalf("features should decode to empty slice, not nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchPackages_FiveLikeArgs(t *testing.T) {
	s, mock := newTravelMock(t)

	like := "%maldives%"
	mock.ExpectQuery("LEFT JOIN destinations d").
		WithArgs(like, like, like, like, like).
		WillReturnRows(packageRows())

	got, err := s.SearchPackages(context.Background(), "maldives")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateTravelBooking_AssignsIDAndPending(t *testing.T) {
	s, mock := newTravelMock(t)

	mock.ExpectExec("INSERT INTO travel_bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	b, err := s.CreateBooking(context.Background(), models.TravelBooking{
		PackageID: "pkg-dive-week",
		FirstName: "Ana", LastName: "Silva", Email: "ana@example.com",
		TravelDate: "2026-06-01", Travelers: 2,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if b.ID == "" {
		t.Fatalf("booking id not assigned")
	}
	if b.Status != models.TravelBookingPending {
		t.Fatalf("status = %q, want pending", b.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDestination_NotFound(t *testing.T) {
	s, mock := newTravelMock(t)

	mock.ExpectQuery("FROM destinations WHERE id = \\?").
		WithArgs("dest-nowhere").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, found, err := s.Destination(context.Background(), "dest-nowhere")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found {
		t.Fatalf("unknown destination reported found")
	}
}

func TestScanListHandlesBadData(t *testing.T) {
	if got := scanList([]byte("not json")); len(got) != 0 || got == nil {
		t.Fatalf("bad JSON should decode to empty slice, got %#v", got)
	}
	if got := scanList(nil); got == nil {
		t.Fatalf("nil input should decode to empty slice")
	}
	if got := scanList([]byte(`["a","b"]`)); len(got) != 2 {
		t.Fatalf("valid list decoded to %#v", got)
	}
}
