package services

import (
	"context"
	"sync"

	"reservio/internal/cache"
	"reservio/internal/domain/models"
	"reservio/internal/storage"
)

// AnalyticsService serves the aggregate reads, fronted by an optional
// read-through cache. Aggregates change on every booking write, so the TTL is
// kept short and staleness is accepted.
type AnalyticsService struct {
	Store storage.RoomStore
	Cache *cache.Cache
}

func NewAnalyticsService(store storage.RoomStore, c *cache.Cache) *AnalyticsService {
	return &AnalyticsService{Store: store, Cache: c}
}

func (s *AnalyticsService) RoomUsage(ctx context.Context, startDate, endDate string) ([]models.RoomUsageStats, error) {
	key := "analytics:room-usage:" + startDate + ":" + endDate
	var cached []models.RoomUsageStats
	if s.Cache.Get(ctx, key, &cached) {
		return cached, nil
	}
	stats, err := s.Store.RoomUsage(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, key, stats)
	return stats, nil
}

func (s *AnalyticsService) BookingTrends(ctx context.Context, startDate, endDate string) ([]models.BookingTrend, error) {
	key := "analytics:trends:" + startDate + ":" + endDate
	var cached []models.BookingTrend
	if s.Cache.Get(ctx, key, &cached) {
		return cached, nil
	}
	trends, err := s.Store.BookingTrends(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, key, trends)
	return trends, nil
}

func (s *AnalyticsService) PopularTimeSlots(ctx context.Context) ([]models.PopularTimeSlot, error) {
	key := "analytics:popular-times"
	var cached []models.PopularTimeSlot
	if s.Cache.Get(ctx, key, &cached) {
		return cached, nil
	}
	slots, err := s.Store.PopularTimeSlots(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, key, slots)
	return slots, nil
}

func (s *AnalyticsService) TotalRevenue(ctx context.Context, startDate, endDate string) (int64, error) {
	return s.Store.TotalRevenue(ctx, startDate, endDate)
}

func (s *AnalyticsService) OccupancyRate(ctx context.Context, roomID int64, startDate, endDate string) (float64, error) {
	return s.Store.OccupancyRate(ctx, roomID, startDate, endDate)
}

// Dashboard issues the five independent reads concurrently and joins them.
// The reads share no state; the first error wins.
func (s *AnalyticsService) Dashboard(ctx context.Context, startDate, endDate string) (models.Dashboard, error) {
	var (
		dash models.Dashboard
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	run(func() error {
		revenue, err := s.Store.TotalRevenue(ctx, startDate, endDate)
		if err == nil {
			dash.TotalRevenue = revenue
		}
		return err
	})
	run(func() error {
		rate, err := s.Store.OccupancyRate(ctx, 0, startDate, endDate)
		if err == nil {
			dash.OccupancyRate = rate
		}
		return err
	})
	run(func() error {
		usage, err := s.Store.RoomUsage(ctx, startDate, endDate)
		if err == nil {
			dash.RoomUsage = usage
		}
		return err
	})
	run(func() error {
		slots, err := s.Store.PopularTimeSlots(ctx)
		if err == nil {
			dash.PopularTimes = slots
		}
		return err
	})
	run(func() error {
		if startDate == "" || endDate == "" {
			dash.Trends = []models.BookingTrend{}
			return nil
		}
		trends, err := s.Store.BookingTrends(ctx, startDate, endDate)
		if err == nil {
			dash.Trends = trends
		}
		return err
	})

	wg.Wait()
	if len(errs) > 0 {
		return models.Dashboard{}, errs[0]
	}
	return dash, nil
}
