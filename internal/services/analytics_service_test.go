package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"reservio/internal/cache"
	"reservio/internal/storage/memstore"
)

func TestDashboard_JoinsAllReads(t *testing.T) {
	store := memstore.NewRooms()
	log := zerolog.Nop()
	bookings := NewBookingService(store, &log)
	analytics := NewAnalyticsService(store, nil)
	ctx := context.Background()

	if _, err := bookings.Create(ctx, testRoomBooking(), nil); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	dash, err := analytics.Dashboard(ctx, "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if dash.TotalRevenue != 10000 {
		t.Fatalf("revenue = %d, want 10000", dash.TotalRevenue)
	}
	if len(dash.RoomUsage) == 0 {
		t.Fatalf("room usage missing")
	}
	if len(dash.Trends) != 1 {
		t.Fatalf("trends = %d entries, want 1", len(dash.Trends))
	}
	if len(dash.PopularTimes) != 1 || dash.PopularTimes[0].Hour != 9 {
		t.Fatalf("unexpected popular times: %+v", dash.PopularTimes)
	}
}

func TestDashboard_TrendsEmptyWithoutRange(t *testing.T) {
	analytics := NewAnalyticsService(memstore.NewRooms(), nil)

	dash, err := analytics.Dashboard(context.Background(), "", "")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if dash.Trends == nil || len(dash.Trends) != 0 {
		t.Fatalf("trends should be an empty slice, got %#v", dash.Trends)
	}
}

func TestAnalytics_ServesCachedAggregates(t *testing.T) {
	store := memstore.NewRooms()
	log := zerolog.Nop()
	bookings := NewBookingService(store, &log)

	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })
	analytics := NewAnalyticsService(store, cache.New(rdb, time.Minute))
	ctx := context.Background()

	if _, err := bookings.Create(ctx, testRoomBooking(), nil); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	first, err := analytics.PopularTimeSlots(ctx)
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("slots = %d, want 1", len(first))
	}

	// A new booking at another hour is invisible until the TTL passes.
	second := testRoomBooking()
	second.StartDate, second.EndDate = "2026-03-11", "2026-03-11"
	second.StartTime, second.EndTime = "14:00", "15:00"
	if _, err := bookings.Create(ctx, second, nil); err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	stale, err := analytics.PopularTimeSlots(ctx)
	if err != nil {
		t.Fatalf("cached read failed: %v", err)
	}
	if len(stale) != 1 {
		t.Fatalf("expected stale cached result with 1 slot, got %d", len(stale))
	}

	srv.FastForward(2 * time.Minute)
	fresh, err := analytics.PopularTimeSlots(ctx)
	if err != nil {
		t.Fatalf("fresh read failed: %v", err)
	}
	if len(fresh) != 2 {
		t.Fatalf("expected 2 slots after expiry, got %d", len(fresh))
	}
}
