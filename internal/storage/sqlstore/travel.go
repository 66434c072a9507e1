// Package sqlstore implements the store contracts on MySQL. Queries follow
// the backend convention of COALESCE-ing nullable text columns into empty
// strings so handlers never deal with sql.Null types.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"reservio/internal/domain/models"
)

// Travel is the MySQL TravelStore.
type Travel struct {
	DB *sql.DB
}

func NewTravel(db *sql.DB) *Travel {
	return &Travel{DB: db}
}

// jsonList marshals a string slice for a JSON column; nil becomes [].
func jsonList(v []string) []byte {
	if v == nil {
		v = []string{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("[]")
	}
	return data
}

// scanList unmarshals a JSON column into a string slice, empty on bad data.
func scanList(raw []byte) []string {
	var out []string
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return []string{}
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

const destinationColumns = `
	id,
	name,
	country,
	COALESCE(description, '') AS description,
	COALESCE(image_url, '') AS image_url,
	package_count,
	starting_price,
	featured
`

func scanDestination(rs interface{ Scan(...any) error }) (models.Destination, error) {
	var d models.Destination
	err := rs.Scan(&d.ID, &d.Name, &d.Country, &d.Description, &d.ImageURL,
		&d.PackageCount, &d.StartingPrice, &d.Featured)
	return d, err
}

func (s *Travel) Destinations(ctx context.Context) ([]models.Destination, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Travel) Destination(ctx context.Context, id string) (models.Destination, bool, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id = ?`, id)
	d, err := scanDestination(row)
	if err == sql.ErrNoRows {
		return models.Destination{}, false, nil
	}
	if err != nil {
		return models.Destination{}, false, err
	}
	return d, true, nil
}

const packageColumns = `
	p.id,
	p.title,
	p.destination_id,
	COALESCE(p.description, '') AS description,
	COALESCE(p.image_url, '') AS image_url,
	p.price,
	p.duration,
	p.max_guests,
	p.rating,
	p.type,
	COALESCE(p.features, '[]') AS features,
	COALESCE(p.included, '[]') AS included,
	COALESCE(p.activities, '[]') AS activities
`

func scanPackage(rs interface{ Scan(...any) error }) (models.Package, error) {
	var (
		p                              models.Package
		features, included, activities []byte
	)
	err := rs.Scan(&p.ID, &p.Title, &p.DestinationID, &p.Description, &p.ImageURL,
		&p.Price, &p.Duration, &p.MaxGuests, &p.Rating, &p.Type,
		&features, &included, &activities)
	if err != nil {
		return models.Package{}, err
	}
	p.Features = scanList(features)
	p.Included = scanList(included)
	p.Activities = scanList(activities)
	return p, nil
}

func (s *Travel) Packages(ctx context.Context, filter *models.PackageFilter) ([]models.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages p`
	where := ""
	args := []any{}

	appendCond := func(cond string, condArgs ...any) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, condArgs...)
	}

	if filter != nil {
		if filter.PriceMin != nil {
			appendCond("p.price >= ?", *filter.PriceMin)
		}
		if filter.PriceMax != nil {
			appendCond("p.price <= ?", *filter.PriceMax)
		}
		if filter.Duration != "" {
			if min, max, ok := models.DurationBounds(filter.Duration); ok {
				appendCond("p.duration >= ?", min)
				if max > 0 {
					appendCond("p.duration <= ?", max)
				}
			}
		}
		if filter.Type != "" {
			appendCond("p.type = ?", filter.Type)
		}
		if filter.DestinationID != "" {
			appendCond("p.destination_id = ?", filter.DestinationID)
		}
	}

	rows, err := s.DB.QueryContext(ctx, query+where+" ORDER BY p.title", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Travel) SearchPackages(ctx context.Context, q string) ([]models.Package, error) {
	like := "%" + q + "%"
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+packageColumns+`
		FROM packages p
		LEFT JOIN destinations d ON d.id = p.destination_id
		WHERE p.title LIKE ?
		   OR p.description LIKE ?
		   OR p.type LIKE ?
		   OR d.name LIKE ?
		   OR d.country LIKE ?
		ORDER BY p.title
	`, like, like, like, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Travel) Package(ctx context.Context, id string) (models.Package, bool, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+packageColumns+` FROM packages p WHERE p.id = ?`, id)
	p, err := scanPackage(row)
	if err == sql.ErrNoRows {
		return models.Package{}, false, nil
	}
	if err != nil {
		return models.Package{}, false, err
	}
	return p, true, nil
}

func (s *Travel) Activities(ctx context.Context) ([]models.Activity, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), COALESCE(image_url, ''), category
		FROM activities
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.ImageURL, &a.Category); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Travel) CreateBooking(ctx context.Context, b models.TravelBooking) (models.TravelBooking, error) {
	b.ID = uuid.NewString()
	b.Status = models.TravelBookingPending
	b.CreatedAt = time.Now().UTC()

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO travel_bookings
			(id, package_id, first_name, last_name, email, phone, travel_date, travelers, special_requests, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.PackageID, b.FirstName, b.LastName, b.Email, nullIfEmpty(b.Phone),
		b.TravelDate, b.Travelers, nullIfEmpty(b.SpecialRequests), b.Status, b.CreatedAt)
	if err != nil {
		return models.TravelBooking{}, err
	}
	return b, nil
}

func (s *Travel) CreateContact(ctx context.Context, c models.Contact) (models.Contact, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO contacts (id, name, email, destination, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, nullIfEmpty(c.Destination), c.Message, c.CreatedAt)
	if err != nil {
		return models.Contact{}, err
	}
	return c, nil
}

// nullIfEmpty stores optional strings as NULL instead of empty text.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
