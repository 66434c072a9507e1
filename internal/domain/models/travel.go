package models

import "time"

// Destination is a browsable travel destination. Seeded at startup and
// immutable afterwards; no write endpoint exists for it.
type Destination struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	PackageCount  int    `json:"packageCount"`
	StartingPrice int64  `json:"startingPrice"` // cents
	Featured      bool   `json:"featured"`
}

// Package is a bookable vacation package tied to one destination.
type Package struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	DestinationID string   `json:"destinationId"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	Price         int64    `json:"price"` // cents
	Duration      int      `json:"duration"` // days
	MaxGuests     int      `json:"maxGuests"`
	Rating        float64  `json:"rating"`
	Type          string   `json:"type"`
	Features      []string `json:"features"`
	Included      []string `json:"included"`
	Activities    []string `json:"activities"`
}

// Activity is an independent browsable activity, no relations.
type Activity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}

// TravelBooking is a customer booking submission for a package. It is created
// as "pending" and never transitions; no cancel or edit endpoint exists.
type TravelBooking struct {
	ID              string    `json:"id"`
	PackageID       string    `json:"packageId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	TravelDate      string    `json:"travelDate"` // YYYY-MM-DD
	Travelers       int       `json:"travelers"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Contact is a write-only record of an inbound inquiry.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Destination string    `json:"destination,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

const TravelBookingPending = "pending"

// PackageFilter narrows package listings. Nil/zero fields mean "no
// constraint"; set fields combine with logical AND.
type PackageFilter struct {
	PriceMin      *int64
	PriceMax      *int64
	Duration      string // bucket: short, medium, long
	Type          string
	DestinationID string
}

// DurationBounds maps a duration bucket to an inclusive day range. A zero max
// means unbounded. Unknown buckets report ok=false and filter nothing.
func DurationBounds(bucket string) (min, max int, ok bool) {
	switch bucket {
	case "short":
		return 1, 4, true
	case "medium":
		return 5, 8, true
	case "long":
		return 9, 0, true
	default:
		return 0, 0, false
	}
}

// Matches reports whether p satisfies every constraint set on f.
func (f *PackageFilter) Matches(p Package) bool {
	if f == nil {
		return true
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	if f.Duration != "" {
		if min, max, ok := DurationBounds(f.Duration); ok {
			if p.Duration < min {
				return false
			}
			if max > 0 && p.Duration > max {
				return false
			}
		}
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.DestinationID != "" && p.DestinationID != f.DestinationID {
		return false
	}
	return true
}
