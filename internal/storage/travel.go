// Package storage declares the store contracts both backends implement: the
// seeded in-memory maps in memstore and the MySQL queries in sqlstore. The
// route layer only ever sees these interfaces.
package storage

import (
	"context"

	"reservio/internal/domain/models"
)

// TravelStore is the storage contract for the vacation package variant.
// Get-by-id methods report absence through the bool, not an error.
type TravelStore interface {
	Destinations(ctx context.Context) ([]models.Destination, error)
	Destination(ctx context.Context, id string) (models.Destination, bool, error)

	// Packages returns all packages matching every constraint in the filter.
	// A nil filter returns everything.
	Packages(ctx context.Context, filter *models.PackageFilter) ([]models.Package, error)
	// SearchPackages matches q case-insensitively against package title,
	// description, type and the referenced destination's name and country.
	SearchPackages(ctx context.Context, q string) ([]models.Package, error)
	Package(ctx context.Context, id string) (models.Package, bool, error)

	Activities(ctx context.Context) ([]models.Activity, error)

	// CreateBooking stores a pending booking and assigns its id and
	// creation timestamp.
	CreateBooking(ctx context.Context, b models.TravelBooking) (models.TravelBooking, error)
	CreateContact(ctx context.Context, c models.Contact) (models.Contact, error)
}
