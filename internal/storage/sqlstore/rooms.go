package sqlstore

import (
	"context"
	"database/sql"
	"math"
	"time"

	"reservio/internal/domain"
	"reservio/internal/domain/models"
	"reservio/internal/storage"
)

// Rooms is the MySQL RoomStore. Booking writes run inside a transaction that
// locks the room row before the availability check, so concurrent requests
// for the same slot serialize instead of double-booking.
type Rooms struct {
	DB *sql.DB
}

func NewRooms(db *sql.DB) *Rooms {
	return &Rooms{DB: db}
}

const roomColumns = `
	id,
	name,
	capacity,
	location,
	COALESCE(description, '') AS description,
	COALESCE(amenities, '[]') AS amenities,
	hourly_rate,
	COALESCE(image_url, '') AS image_url,
	is_active,
	created_at
`

func scanRoom(rs interface{ Scan(...any) error }) (models.ConferenceRoom, error) {
	var (
		r         models.ConferenceRoom
		amenities []byte
	)
	err := rs.Scan(&r.ID, &r.Name, &r.Capacity, &r.Location, &r.Description,
		&amenities, &r.HourlyRate, &r.ImageURL, &r.IsActive, &r.CreatedAt)
	if err != nil {
		return models.ConferenceRoom{}, err
	}
	r.Amenities = scanList(amenities)
	return r, nil
}

func (s *Rooms) listRooms(ctx context.Context, activeOnly bool) ([]models.ConferenceRoom, error) {
	query := `SELECT ` + roomColumns + ` FROM conference_rooms`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	rows, err := s.DB.QueryContext(ctx, query+` ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ConferenceRoom{}
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Rooms) Rooms(ctx context.Context) ([]models.ConferenceRoom, error) {
	return s.listRooms(ctx, false)
}

func (s *Rooms) ActiveRooms(ctx context.Context) ([]models.ConferenceRoom, error) {
	return s.listRooms(ctx, true)
}

func (s *Rooms) Room(ctx context.Context, id int64) (models.ConferenceRoom, bool, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM conference_rooms WHERE id = ?`, id)
	r, err := scanRoom(row)
	if err == sql.ErrNoRows {
		return models.ConferenceRoom{}, false, nil
	}
	if err != nil {
		return models.ConferenceRoom{}, false, err
	}
	return r, true, nil
}

func (s *Rooms) CreateRoom(ctx context.Context, r models.ConferenceRoom) (models.ConferenceRoom, error) {
	r.CreatedAt = time.Now().UTC()
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO conference_rooms
			(name, capacity, location, description, amenities, hourly_rate, image_url, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Name, r.Capacity, r.Location, nullIfEmpty(r.Description), jsonList(r.Amenities),
		r.HourlyRate, nullIfEmpty(r.ImageURL), r.IsActive, r.CreatedAt)
	if err != nil {
		return models.ConferenceRoom{}, err
	}
	r.ID, err = res.LastInsertId()
	if err != nil {
		return models.ConferenceRoom{}, err
	}
	if r.Amenities == nil {
		r.Amenities = []string{}
	}
	return r, nil
}

func (s *Rooms) UpdateRoom(ctx context.Context, id int64, patch storage.RoomPatch) (models.ConferenceRoom, bool, error) {
	r, ok, err := s.Room(ctx, id)
	if err != nil || !ok {
		return models.ConferenceRoom{}, ok, err
	}
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Capacity != nil {
		r.Capacity = *patch.Capacity
	}
	if patch.Location != nil {
		r.Location = *patch.Location
	}
	if patch.Description != nil {
		r.Description = *patch.Description
	}
	if patch.Amenities != nil {
		r.Amenities = *patch.Amenities
	}
	if patch.HourlyRate != nil {
		r.HourlyRate = *patch.HourlyRate
	}
	if patch.ImageURL != nil {
		r.ImageURL = *patch.ImageURL
	}
	if patch.IsActive != nil {
		r.IsActive = *patch.IsActive
	}

	_, err = s.DB.ExecContext(ctx, `
		UPDATE conference_rooms
		SET name = ?, capacity = ?, location = ?, description = ?, amenities = ?,
		    hourly_rate = ?, image_url = ?, is_active = ?
		WHERE id = ?
	`, r.Name, r.Capacity, r.Location, nullIfEmpty(r.Description), jsonList(r.Amenities),
		r.HourlyRate, nullIfEmpty(r.ImageURL), r.IsActive, id)
	if err != nil {
		return models.ConferenceRoom{}, true, err
	}
	return r, true, nil
}

const bookingColumns = `
	b.id,
	b.room_id,
	b.title,
	COALESCE(b.description, '') AS description,
	b.organizer_name,
	b.organizer_email,
	COALESCE(b.organizer_phone, '') AS organizer_phone,
	b.attendee_count,
	b.start_date,
	b.end_date,
	b.start_time,
	b.end_time,
	b.total_amount,
	b.status,
	COALESCE(b.special_requests, '') AS special_requests,
	b.created_at,
	b.updated_at
`

func scanBooking(rs interface{ Scan(...any) error }) (models.RoomBooking, error) {
	var b models.RoomBooking
	err := rs.Scan(&b.ID, &b.RoomID, &b.Title, &b.Description,
		&b.OrganizerName, &b.OrganizerEmail, &b.OrganizerPhone, &b.AttendeeCount,
		&b.StartDate, &b.EndDate, &b.StartTime, &b.EndTime,
		&b.TotalAmount, &b.Status, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// bookingsWithDetails runs a booking+room+equipment join and regroups the
// flat rows into one entry per booking, equipment collected into its list.
func (s *Rooms) bookingsWithDetails(ctx context.Context, where string, order string, args ...any) ([]models.BookingWithDetails, error) {
	query := `
		SELECT ` + bookingColumns + `,
			r.id, r.name, r.capacity, r.location, COALESCE(r.description, ''),
			COALESCE(r.amenities, '[]'), r.hourly_rate, COALESCE(r.image_url, ''), r.is_active, r.created_at,
			e.id, e.equipment_name, e.quantity
		FROM bookings b
		JOIN conference_rooms r ON r.id = b.room_id
		LEFT JOIN booking_equipment e ON e.booking_id = b.id
	` + where + order

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int64]*models.BookingWithDetails)
	ordered := []int64{}
	for rows.Next() {
		var (
			b         models.RoomBooking
			r         models.ConferenceRoom
			amenities []byte
			eqID      sql.NullInt64
			eqName    sql.NullString
			eqQty     sql.NullInt64
		)
		err := rows.Scan(&b.ID, &b.RoomID, &b.Title, &b.Description,
			&b.OrganizerName, &b.OrganizerEmail, &b.OrganizerPhone, &b.AttendeeCount,
			&b.StartDate, &b.EndDate, &b.StartTime, &b.EndTime,
			&b.TotalAmount, &b.Status, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt,
			&r.ID, &r.Name, &r.Capacity, &r.Location, &r.Description,
			&amenities, &r.HourlyRate, &r.ImageURL, &r.IsActive, &r.CreatedAt,
			&eqID, &eqName, &eqQty)
		if err != nil {
			return nil, err
		}

		entry, ok := byID[b.ID]
		if !ok {
			r.Amenities = scanList(amenities)
			entry = &models.BookingWithDetails{RoomBooking: b, Room: r, Equipment: []models.BookingEquipment{}}
			byID[b.ID] = entry
			ordered = append(ordered, b.ID)
		}
		if eqID.Valid {
			entry.Equipment = append(entry.Equipment, models.BookingEquipment{
				ID:            eqID.Int64,
				BookingID:     b.ID,
				EquipmentName: eqName.String,
				Quantity:      int(eqQty.Int64),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]models.BookingWithDetails, 0, len(ordered))
	for _, id := range ordered {
		out = append(out, *byID[id])
	}
	return out, nil
}

func (s *Rooms) Bookings(ctx context.Context) ([]models.BookingWithDetails, error) {
	return s.bookingsWithDetails(ctx, "", " ORDER BY b.created_at DESC")
}

func (s *Rooms) BookingsByDateRange(ctx context.Context, startDate, endDate string) ([]models.BookingWithDetails, error) {
	return s.bookingsWithDetails(ctx,
		" WHERE b.start_date >= ? AND b.end_date <= ?",
		" ORDER BY b.start_date, b.start_time",
		startDate, endDate)
}

func (s *Rooms) BookingsByRoom(ctx context.Context, roomID int64) ([]models.RoomBooking, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings b
		WHERE b.room_id = ?
		ORDER BY b.start_date DESC, b.start_time DESC
	`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RoomBooking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Rooms) Booking(ctx context.Context, id int64) (models.BookingWithDetails, bool, error) {
	list, err := s.bookingsWithDetails(ctx, " WHERE b.id = ?", "", id)
	if err != nil {
		return models.BookingWithDetails{}, false, err
	}
	if len(list) == 0 {
		return models.BookingWithDetails{}, false, nil
	}
	return list[0], true, nil
}

const conflictCountQuery = `
	SELECT COUNT(*)
	FROM bookings
	WHERE room_id = ?
	  AND status = 'confirmed'
	  AND id <> ?
	  AND start_date <= ? AND end_date >= ?
	  AND start_time <= ? AND end_time >= ?
`

// slotTaken runs the inclusive overlap predicate against confirmed bookings.
func slotTaken(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, roomID int64, startDate, endDate, startTime, endTime string, excludeID int64) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx, conflictCountQuery,
		roomID, excludeID, endDate, startDate, endTime, startTime).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Rooms) CheckAvailability(ctx context.Context, roomID int64, startDate, endDate, startTime, endTime string, excludeBookingID int64) (bool, error) {
	taken, err := slotTaken(ctx, s.DB, roomID, startDate, endDate, startTime, endTime, excludeBookingID)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (s *Rooms) CreateBooking(ctx context.Context, b models.RoomBooking, equipment []models.BookingEquipment) (models.RoomBooking, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.RoomBooking{}, err
	}
	defer tx.Rollback()

	// Lock the room row so concurrent bookings for it serialize here.
	var hourlyRate int64
	err = tx.QueryRowContext(ctx, `SELECT hourly_rate FROM conference_rooms WHERE id = ? FOR UPDATE`, b.RoomID).Scan(&hourlyRate)
	if err == sql.ErrNoRows {
		return models.RoomBooking{}, domain.ValidationError{Field: "roomId", Msg: "room does not exist"}
	}
	if err != nil {
		return models.RoomBooking{}, err
	}

	taken, err := slotTaken(ctx, tx, b.RoomID, b.StartDate, b.EndDate, b.StartTime, b.EndTime, 0)
	if err != nil {
		return models.RoomBooking{}, err
	}
	if taken {
		return models.RoomBooking{}, domain.ConflictError{Resource: "booking", Msg: "room is not available for the selected time slot"}
	}

	d, err := models.SlotDuration(b.StartDate, b.StartTime, b.EndDate, b.EndTime)
	if err != nil {
		return models.RoomBooking{}, domain.ValidationError{Field: "startDate", Msg: "invalid date or time", Err: err}
	}
	b.TotalAmount = models.SlotCost(d, hourlyRate)
	if b.Status == "" {
		b.Status = models.StatusConfirmed
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	res, err := tx.ExecContext(ctx, `
		INSERT INTO bookings
			(room_id, title, description, organizer_name, organizer_email, organizer_phone,
			 attendee_count, start_date, end_date, start_time, end_time,
			 total_amount, status, special_requests, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.RoomID, b.Title, nullIfEmpty(b.Description), b.OrganizerName, b.OrganizerEmail,
		nullIfEmpty(b.OrganizerPhone), b.AttendeeCount, b.StartDate, b.EndDate,
		b.StartTime, b.EndTime, b.TotalAmount, b.Status, nullIfEmpty(b.SpecialRequests),
		b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return models.RoomBooking{}, err
	}
	b.ID, err = res.LastInsertId()
	if err != nil {
		return models.RoomBooking{}, err
	}

	for _, e := range equipment {
		qty := e.Quantity
		if qty <= 0 {
			qty = 1
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO booking_equipment (booking_id, equipment_name, quantity)
			VALUES (?, ?, ?)
		`, b.ID, e.EquipmentName, qty); err != nil {
			return models.RoomBooking{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.RoomBooking{}, err
	}
	return b, nil
}

func (s *Rooms) UpdateBooking(ctx context.Context, id int64, patch storage.BookingPatch) (models.RoomBooking, bool, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.RoomBooking{}, false, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		SELECT `+bookingColumns+` FROM bookings b WHERE b.id = ? FOR UPDATE
	`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.RoomBooking{}, false, nil
	}
	if err != nil {
		return models.RoomBooking{}, false, err
	}

	if patch.RoomID != nil {
		b.RoomID = *patch.RoomID
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.OrganizerName != nil {
		b.OrganizerName = *patch.OrganizerName
	}
	if patch.OrganizerEmail != nil {
		b.OrganizerEmail = *patch.OrganizerEmail
	}
	if patch.OrganizerPhone != nil {
		b.OrganizerPhone = *patch.OrganizerPhone
	}
	if patch.AttendeeCount != nil {
		b.AttendeeCount = *patch.AttendeeCount
	}
	if patch.StartDate != nil {
		b.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		b.EndDate = *patch.EndDate
	}
	if patch.StartTime != nil {
		b.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		b.EndTime = *patch.EndTime
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.SpecialRequests != nil {
		b.SpecialRequests = *patch.SpecialRequests
	}

	if patch.TouchesSlot() {
		var hourlyRate int64
		err = tx.QueryRowContext(ctx, `SELECT hourly_rate FROM conference_rooms WHERE id = ? FOR UPDATE`, b.RoomID).Scan(&hourlyRate)
		if err == sql.ErrNoRows {
			return models.RoomBooking{}, true, domain.ValidationError{Field: "roomId", Msg: "room does not exist"}
		}
		if err != nil {
			return models.RoomBooking{}, true, err
		}

		taken, err := slotTaken(ctx, tx, b.RoomID, b.StartDate, b.EndDate, b.StartTime, b.EndTime, id)
		if err != nil {
			return models.RoomBooking{}, true, err
		}
		if taken {
			return models.RoomBooking{}, true, domain.ConflictError{Resource: "booking", Msg: "room is not available for the selected time slot"}
		}

		d, err := models.SlotDuration(b.StartDate, b.StartTime, b.EndDate, b.EndTime)
		if err != nil {
			return models.RoomBooking{}, true, domain.ValidationError{Field: "startDate", Msg: "invalid date or time", Err: err}
		}
		b.TotalAmount = models.SlotCost(d, hourlyRate)
	}

	b.UpdatedAt = time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		UPDATE bookings
		SET room_id = ?, title = ?, description = ?, organizer_name = ?, organizer_email = ?,
		    organizer_phone = ?, attendee_count = ?, start_date = ?, end_date = ?,
		    start_time = ?, end_time = ?, total_amount = ?, status = ?, special_requests = ?,
		    updated_at = ?
		WHERE id = ?
	`, b.RoomID, b.Title, nullIfEmpty(b.Description), b.OrganizerName, b.OrganizerEmail,
		nullIfEmpty(b.OrganizerPhone), b.AttendeeCount, b.StartDate, b.EndDate,
		b.StartTime, b.EndTime, b.TotalAmount, b.Status, nullIfEmpty(b.SpecialRequests),
		b.UpdatedAt, id)
	if err != nil {
		return models.RoomBooking{}, true, err
	}

	if err := tx.Commit(); err != nil {
		return models.RoomBooking{}, true, err
	}
	return b, true, nil
}

func (s *Rooms) CancelBooking(ctx context.Context, id int64) (models.RoomBooking, bool, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = ?`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.RoomBooking{}, false, nil
	}
	if err != nil {
		return models.RoomBooking{}, false, err
	}

	b.Status = models.StatusCancelled
	b.UpdatedAt = time.Now().UTC()
	_, err = s.DB.ExecContext(ctx, `UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		b.Status, b.UpdatedAt, id)
	if err != nil {
		return models.RoomBooking{}, true, err
	}
	return b, true, nil
}

const slotSecondsExpr = `TIMESTAMPDIFF(SECOND,
	STR_TO_DATE(CONCAT(b.start_date, ' ', b.start_time), '%Y-%m-%d %H:%i'),
	STR_TO_DATE(CONCAT(b.end_date, ' ', b.end_time), '%Y-%m-%d %H:%i'))`

func (s *Rooms) RoomUsage(ctx context.Context, startDate, endDate string) ([]models.RoomUsageStats, error) {
	join := `LEFT JOIN bookings b ON b.room_id = r.id AND b.status = 'confirmed'`
	args := []any{}
	if startDate != "" && endDate != "" {
		join += ` AND b.start_date >= ? AND b.end_date <= ?`
		args = append(args, startDate, endDate)
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT r.id, r.name, r.capacity,
			COUNT(b.id) AS total_bookings,
			COALESCE(SUM(`+slotSecondsExpr+`), 0) DIV 3600 AS total_hours,
			COALESCE(SUM(b.total_amount), 0) AS total_revenue,
			COALESCE(ROUND(AVG(b.attendee_count), 1), 0) AS average_occupancy
		FROM conference_rooms r
		`+join+`
		GROUP BY r.id, r.name, r.capacity
		ORDER BY r.name
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RoomUsageStats{}
	for rows.Next() {
		var st models.RoomUsageStats
		if err := rows.Scan(&st.RoomID, &st.RoomName, &st.Capacity,
			&st.TotalBookings, &st.TotalHours, &st.TotalRevenue, &st.AverageOccupancy); err != nil {
			return nil, err
		}
		if st.TotalHours > 0 {
			st.UtilizationRate = int(math.Round(float64(st.TotalHours) / (24 * 7) * 100))
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *Rooms) BookingTrends(ctx context.Context, startDate, endDate string) ([]models.BookingTrend, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT b.start_date,
			COUNT(*) AS booking_count,
			COALESCE(SUM(b.total_amount), 0) AS revenue,
			COALESCE(SUM(`+slotSecondsExpr+`), 0) DIV 3600 AS total_hours
		FROM bookings b
		WHERE b.status = 'confirmed' AND b.start_date >= ? AND b.end_date <= ?
		GROUP BY b.start_date
		ORDER BY b.start_date
	`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingTrend{}
	for rows.Next() {
		var tr models.BookingTrend
		if err := rows.Scan(&tr.Date, &tr.BookingCount, &tr.Revenue, &tr.TotalHours); err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

func (s *Rooms) PopularTimeSlots(ctx context.Context) ([]models.PopularTimeSlot, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT CAST(SUBSTRING(b.start_time, 1, 2) AS UNSIGNED) AS hr, COUNT(*) AS booking_count
		FROM bookings b
		WHERE b.status = 'confirmed'
		GROUP BY hr
		ORDER BY hr
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PopularTimeSlot{}
	total := 0
	for rows.Next() {
		var slot models.PopularTimeSlot
		if err := rows.Scan(&slot.Hour, &slot.BookingCount); err != nil {
			return nil, err
		}
		total += slot.BookingCount
		out = append(out, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if total > 0 {
			out[i].Utilization = int(math.Round(float64(out[i].BookingCount) / float64(total) * 100))
		}
	}
	return out, nil
}

func (s *Rooms) TotalRevenue(ctx context.Context, startDate, endDate string) (int64, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE status = 'confirmed'`
	args := []any{}
	if startDate != "" && endDate != "" {
		query += ` AND start_date >= ? AND end_date <= ?`
		args = append(args, startDate, endDate)
	}
	var total int64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Rooms) OccupancyRate(ctx context.Context, roomID int64, startDate, endDate string) (float64, error) {
	query := `
		SELECT COALESCE(ROUND(AVG(b.attendee_count / r.capacity) * 100, 1), 0)
		FROM bookings b
		JOIN conference_rooms r ON r.id = b.room_id
		WHERE b.status = 'confirmed'`
	args := []any{}
	if roomID != 0 {
		query += ` AND b.room_id = ?`
		args = append(args, roomID)
	}
	if startDate != "" && endDate != "" {
		query += ` AND b.start_date >= ? AND b.end_date <= ?`
		args = append(args, startDate, endDate)
	}
	var rate float64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&rate); err != nil {
		return 0, err
	}
	return rate, nil
}

const userColumns = `id, username, email, full_name, role, password_hash, created_at`

func scanUser(rs interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := rs.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Role, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func (s *Rooms) User(ctx context.Context, id int64) (models.User, bool, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return u, true, nil
}

func (s *Rooms) UserByEmail(ctx context.Context, email string) (models.User, bool, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return u, true, nil
}

func (s *Rooms) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	u.CreatedAt = time.Now().UTC()
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO users (username, email, full_name, role, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Username, u.Email, u.FullName, u.Role, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	u.ID, err = res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}
