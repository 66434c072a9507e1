package memstore

import (
	"context"
	"testing"

	"reservio/internal/domain/models"
)

func TestPackages_FilterCombinesWithAND(t *testing.T) {
	s := NewTravel()
	ctx := context.Background()

	all, err := s.Packages(ctx, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("seeded packages = %d, want 4", len(all))
	}

	maxPrice := int64(200000)
	got, err := s.Packages(ctx, &models.PackageFilter{
		PriceMax:      &maxPrice,
		Type:          "beach",
		DestinationID: "dest-maldives",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "pkg-overwater-escape" {
		t.Fatalf("filter returned %+v, want only pkg-overwater-escape", got)
	}
}

func TestPackages_DurationBuckets(t *testing.T) {
	s := NewTravel()
	ctx := context.Background()

	short, err := s.Packages(ctx, &models.PackageFilter{Duration: "short"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(short) != 1 || short[0].ID != "pkg-alpine-ski" {
		t.Fatalf("short bucket returned %+v", short)
	}

	long, err := s.Packages(ctx, &models.PackageFilter{Duration: "long"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(long) != 1 || long[0].ID != "pkg-kyoto-temples" {
		t.Fatalf("long bucket returned %+v", long)
	}
}

func TestSearchPackages_MatchesDestinationName(t *testing.T) {
	s := NewTravel()
	ctx := context.Background()

	got, err := s.SearchPackages(ctx, "MALDIVES")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("search returned %d packages, want 2", len(got))
	}

	none, err := s.SearchPackages(ctx, "antarctica")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("search returned %d packages, want 0", len(none))
	}
}

func TestCreateBooking_AssignsIDAndPendingStatus(t *testing.T) {
	s := NewTravel()
	ctx := context.Background()

	b, err := s.CreateBooking(ctx, models.TravelBooking{
		PackageID:  "pkg-overwater-escape",
		FirstName:  "Ana",
		LastName:   "Silva",
		Email:      "ana@example.com",
		TravelDate: "2026-06-01",
		Travelers:  2,
		Status:     "confirmed", // caller-supplied status must be overridden
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
	if s.BookingCount() != 1 {
		t.Fatalf("booking count = %d, want 1", s.BookingCount())
	}
}

func TestDestination_NotFound(t *testing.T) {
	s := NewTravel()

	_, found, err := s.Destination(context.Background(), "dest-nowhere")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found {
		t.Fatalf("unknown destination reported found")
	}
}
