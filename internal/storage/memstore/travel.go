// Package memstore provides the map-backed store variant. Every instance is
// seeded with a small fixture set and owns its own mutex; nothing here is
// process-global, the instance is handed to the router at startup.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"reservio/internal/domain/models"
)

// Travel is the in-memory TravelStore.
type Travel struct {
	mu           sync.RWMutex
	destinations map[string]models.Destination
	packages     map[string]models.Package
	activities   map[string]models.Activity
	bookings     map[string]models.TravelBooking
	contacts     map[string]models.Contact
}

// NewTravel returns a seeded store.
func NewTravel() *Travel {
	t := &Travel{
		destinations: make(map[string]models.Destination),
		packages:     make(map[string]models.Package),
		activities:   make(map[string]models.Activity),
		bookings:     make(map[string]models.TravelBooking),
		contacts:     make(map[string]models.Contact),
	}
	t.seed()
	return t
}

func (t *Travel) Destinations(ctx context.Context) ([]models.Destination, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.Destination, 0, len(t.destinations))
	for _, d := range t.destinations {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (t *Travel) Destination(ctx context.Context, id string) (models.Destination, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	d, ok := t.destinations[id]
	return d, ok, nil
}

func (t *Travel) Packages(ctx context.Context, filter *models.PackageFilter) ([]models.Package, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.Package, 0, len(t.packages))
	for _, p := range t.packages {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (t *Travel) SearchPackages(ctx context.Context, q string) ([]models.Package, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(q))
	out := make([]models.Package, 0)
	for _, p := range t.packages {
		haystacks := []string{p.Title, p.Description, p.Type}
		if d, ok := t.destinations[p.DestinationID]; ok {
			haystacks = append(haystacks, d.Name, d.Country)
		}
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				out = append(out, p)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (t *Travel) Package(ctx context.Context, id string) (models.Package, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.packages[id]
	return p, ok, nil
}

func (t *Travel) Activities(ctx context.Context) ([]models.Activity, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.Activity, 0, len(t.activities))
	for _, a := range t.activities {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (t *Travel) CreateBooking(ctx context.Context, b models.TravelBooking) (models.TravelBooking, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	b.ID = uuid.NewString()
	b.Status = models.TravelBookingPending
	b.CreatedAt = time.Now().UTC()
	t.bookings[b.ID] = b
	return b, nil
}

func (t *Travel) CreateContact(ctx context.Context, c models.Contact) (models.Contact, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	t.contacts[c.ID] = c
	return c, nil
}

// BookingCount is a test hook; it is not part of the store contract.
func (t *Travel) BookingCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.bookings)
}

func (t *Travel) seed() {
	destinations := []models.Destination{
		{ID: "dest-maldives", Name: "Maldives", Country: "Maldives", Description: "Turquoise lagoons and overwater villas.", ImageURL: "/images/destinations/maldives.jpg", PackageCount: 2, StartingPrice: 189900, Featured: true},
		{ID: "dest-swiss-alps", Name: "Swiss Alps", Country: "Switzerland", Description: "Peaks, glaciers and alpine villages.", ImageURL: "/images/destinations/swiss-alps.jpg", PackageCount: 1, StartingPrice: 99900, Featured: true},
		{ID: "dest-kyoto", Name: "Kyoto", Country: "Japan", Description: "Temples, gardens and tea houses.", ImageURL: "/images/destinations/kyoto.jpg", PackageCount: 1, StartingPrice: 159900, Featured: false},
	}
	for _, d := range destinations {
		t.destinations[d.ID] = d
	}

	packages := []models.Package{
		{
			ID: "pkg-overwater-escape", Title: "Maldives Overwater Escape", DestinationID: "dest-maldives",
			Description: "Five nights in an overwater villa with reef access.", ImageURL: "/images/packages/overwater.jpg",
			Price: 189900, Duration: 5, MaxGuests: 2, Rating: 4.8, Type: "beach",
			Features: []string{"overwater villa", "private deck"}, Included: []string{"breakfast", "airport transfer"},
			Activities: []string{"snorkeling", "sunset cruise"},
		},
		{
			ID: "pkg-dive-week", Title: "Maldives Dive Week", DestinationID: "dest-maldives",
			Description: "Seven days of guided dives across three atolls.", ImageURL: "/images/packages/dive-week.jpg",
			Price: 219900, Duration: 7, MaxGuests: 4, Rating: 4.6, Type: "beach",
			Features: []string{"dive boat", "equipment rental"}, Included: []string{"full board", "12 dives"},
			Activities: []string{"diving", "night dive"},
		},
		{
			ID: "pkg-alpine-ski", Title: "Alpine Ski Adventure", DestinationID: "dest-swiss-alps",
			Description: "Four days on groomed pistes with a mountain guide.", ImageURL: "/images/packages/alpine-ski.jpg",
			Price: 99900, Duration: 4, MaxGuests: 6, Rating: 4.5, Type: "adventure",
			Features: []string{"ski pass", "guide"}, Included: []string{"half board", "lift tickets"},
			Activities: []string{"skiing", "fondue night"},
		},
		{
			ID: "pkg-kyoto-temples", Title: "Kyoto Temples & Tea", DestinationID: "dest-kyoto",
			Description: "Ten slow days of temples, gardens and tea ceremonies.", ImageURL: "/images/packages/kyoto.jpg",
			Price: 159900, Duration: 10, MaxGuests: 8, Rating: 4.9, Type: "culture",
			Features: []string{"local guide", "ryokan stay"}, Included: []string{"breakfast", "rail pass"},
			Activities: []string{"tea ceremony", "temple walk"},
		},
	}
	for _, p := range packages {
		t.packages[p.ID] = p
	}

	activities := []models.Activity{
		{ID: "act-snorkeling", Name: "Snorkeling Safari", Description: "Guided reef snorkeling.", ImageURL: "/images/activities/snorkeling.jpg", Category: "water"},
		{ID: "act-glacier-hike", Name: "Glacier Hike", Description: "Roped glacier crossing with a guide.", ImageURL: "/images/activities/glacier.jpg", Category: "mountain"},
		{ID: "act-tea-ceremony", Name: "Tea Ceremony", Description: "Traditional tea ceremony in a machiya.", ImageURL: "/images/activities/tea.jpg", Category: "culture"},
	}
	for _, a := range activities {
		t.activities[a.ID] = a
	}
}
