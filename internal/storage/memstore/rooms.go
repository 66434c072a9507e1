package memstore

import (
	"context"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"reservio/internal/domain"
	"reservio/internal/domain/models"
	"reservio/internal/storage"
)

// Rooms is the in-memory RoomStore. A single mutex guards reads and writes;
// holding it across the availability check and the insert is what closes the
// double-booking race in this backend.
type Rooms struct {
	mu        sync.Mutex
	rooms     map[int64]models.ConferenceRoom
	bookings  map[int64]models.RoomBooking
	equipment map[int64][]models.BookingEquipment // keyed by booking id
	users     map[int64]models.User

	nextRoomID      int64
	nextBookingID   int64
	nextEquipmentID int64
	nextUserID      int64
}

// NewRooms returns a store seeded with three rooms.
func NewRooms() *Rooms {
	s := &Rooms{
		rooms:     make(map[int64]models.ConferenceRoom),
		bookings:  make(map[int64]models.RoomBooking),
		equipment: make(map[int64][]models.BookingEquipment),
		users:     make(map[int64]models.User),
	}
	now := time.Now().UTC()
	for _, r := range []models.ConferenceRoom{
		{Name: "Boardroom Alpha", Capacity: 12, Location: "3rd floor east", Description: "Large boardroom with video wall.", Amenities: []string{"projector", "whiteboard", "video conferencing"}, HourlyRate: 5000, ImageURL: "/images/rooms/alpha.jpg", IsActive: true},
		{Name: "Huddle Beta", Capacity: 4, Location: "2nd floor west", Description: "Small huddle space.", Amenities: []string{"display", "whiteboard"}, HourlyRate: 2500, ImageURL: "/images/rooms/beta.jpg", IsActive: true},
		{Name: "Auditorium", Capacity: 80, Location: "ground floor", Description: "Tiered seating, stage and AV booth.", Amenities: []string{"stage", "sound system", "projector"}, HourlyRate: 12000, ImageURL: "/images/rooms/auditorium.jpg", IsActive: true},
	} {
		s.nextRoomID++
		r.ID = s.nextRoomID
		r.CreatedAt = now
		s.rooms[r.ID] = r
	}
	return s
}

func (s *Rooms) Rooms(ctx context.Context) ([]models.ConferenceRoom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomsLocked(false), nil
}

func (s *Rooms) ActiveRooms(ctx context.Context) ([]models.ConferenceRoom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomsLocked(true), nil
}

func (s *Rooms) roomsLocked(activeOnly bool) []models.ConferenceRoom {
	out := make([]models.ConferenceRoom, 0, len(s.rooms))
	for _, r := range s.rooms {
		if activeOnly && !r.IsActive {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Rooms) Room(ctx context.Context, id int64) (models.ConferenceRoom, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	return r, ok, nil
}

func (s *Rooms) CreateRoom(ctx context.Context, r models.ConferenceRoom) (models.ConferenceRoom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRoomID++
	r.ID = s.nextRoomID
	r.CreatedAt = time.Now().UTC()
	if r.Amenities == nil {
		r.Amenities = []string{}
	}
	s.rooms[r.ID] = r
	return r, nil
}

func (s *Rooms) UpdateRoom(ctx context.Context, id int64, patch storage.RoomPatch) (models.ConferenceRoom, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[id]
	if !ok {
		return models.ConferenceRoom{}, false, nil
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
	s.rooms[id] = r
	return r, true, nil
}

func (s *Rooms) Bookings(ctx context.Context) ([]models.BookingWithDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.BookingWithDetails, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, s.withDetailsLocked(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Rooms) BookingsByRoom(ctx context.Context, roomID int64) ([]models.RoomBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RoomBooking, 0)
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate > out[j].StartDate
		}
		return out[i].StartTime > out[j].StartTime
	})
	return out, nil
}

func (s *Rooms) BookingsByDateRange(ctx context.Context, startDate, endDate string) ([]models.BookingWithDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.BookingWithDetails, 0)
	for _, b := range s.bookings {
		if b.StartDate >= startDate && b.EndDate <= endDate {
			out = append(out, s.withDetailsLocked(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate < out[j].StartDate
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (s *Rooms) Booking(ctx context.Context, id int64) (models.BookingWithDetails, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.BookingWithDetails{}, false, nil
	}
	return s.withDetailsLocked(b), true, nil
}

func (s *Rooms) withDetailsLocked(b models.RoomBooking) models.BookingWithDetails {
	eq := s.equipment[b.ID]
	if eq == nil {
		eq = []models.BookingEquipment{}
	}
	return models.BookingWithDetails{
		RoomBooking: b,
		Room:        s.rooms[b.RoomID],
		Equipment:   append([]models.BookingEquipment(nil), eq...),
	}
}

func (s *Rooms) CreateBooking(ctx context.Context, b models.RoomBooking, equipment []models.BookingEquipment) (models.RoomBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[b.RoomID]
	if !ok {
		return models.RoomBooking{}, domain.ValidationError{Field: "roomId", Msg: "room does not exist"}
	}
	if b.Status == "" {
		b.Status = models.StatusConfirmed
	}
	if !s.slotFreeLocked(b.RoomID, b.StartDate, b.EndDate, b.StartTime, b.EndTime, 0) {
		return models.RoomBooking{}, domain.ConflictError{Resource: "booking", Msg: "room is not available for the selected time slot"}
	}

	d, err := models.SlotDuration(b.StartDate, b.StartTime, b.EndDate, b.EndTime)
	if err != nil {
		return models.RoomBooking{}, domain.ValidationError{Field: "startDate", Msg: "invalid date or time", Err: err}
	}
	b.TotalAmount = models.SlotCost(d, room.HourlyRate)

	now := time.Now().UTC()
	s.nextBookingID++
	b.ID = s.nextBookingID
	b.CreatedAt = now
	b.UpdatedAt = now
	s.bookings[b.ID] = b

	for _, e := range equipment {
		s.nextEquipmentID++
		e.ID = s.nextEquipmentID
		e.BookingID = b.ID
		if e.Quantity <= 0 {
			e.Quantity = 1
		}
		s.equipment[b.ID] = append(s.equipment[b.ID], e)
	}
	return b, nil
}

func (s *Rooms) UpdateBooking(ctx context.Context, id int64, patch storage.BookingPatch) (models.RoomBooking, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.RoomBooking{}, false, nil
	}

	merged := b
	if patch.RoomID != nil {
		merged.RoomID = *patch.RoomID
	}
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.OrganizerName != nil {
		merged.OrganizerName = *patch.OrganizerName
	}
	if patch.OrganizerEmail != nil {
		merged.OrganizerEmail = *patch.OrganizerEmail
	}
	if patch.OrganizerPhone != nil {
		merged.OrganizerPhone = *patch.OrganizerPhone
	}
	if patch.AttendeeCount != nil {
		merged.AttendeeCount = *patch.AttendeeCount
	}
	if patch.StartDate != nil {
		merged.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		merged.EndDate = *patch.EndDate
	}
	if patch.StartTime != nil {
		merged.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		merged.EndTime = *patch.EndTime
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}
	if patch.SpecialRequests != nil {
		merged.SpecialRequests = *patch.SpecialRequests
	}

	if patch.TouchesSlot() {
		room, ok := s.rooms[merged.RoomID]
		if !ok {
			return models.RoomBooking{}, true, domain.ValidationError{Field: "roomId", Msg: "room does not exist"}
		}
		if !s.slotFreeLocked(merged.RoomID, merged.StartDate, merged.EndDate, merged.StartTime, merged.EndTime, id) {
			return models.RoomBooking{}, true, domain.ConflictError{Resource: "booking", Msg: "room is not available for the selected time slot"}
		}
		d, err := models.SlotDuration(merged.StartDate, merged.StartTime, merged.EndDate, merged.EndTime)
		if err != nil {
			return models.RoomBooking{}, true, domain.ValidationError{Field: "startDate", Msg: "invalid date or time", Err: err}
		}
		merged.TotalAmount = models.SlotCost(d, room.HourlyRate)
	}

	merged.UpdatedAt = time.Now().UTC()
	s.bookings[id] = merged
	return merged, true, nil
}

func (s *Rooms) CancelBooking(ctx context.Context, id int64) (models.RoomBooking, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.RoomBooking{}, false, nil
	}
	b.Status = models.StatusCancelled
	b.UpdatedAt = time.Now().UTC()
	s.bookings[id] = b
	return b, true, nil
}

func (s *Rooms) CheckAvailability(ctx context.Context, roomID int64, startDate, endDate, startTime, endTime string, excludeBookingID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slotFreeLocked(roomID, startDate, endDate, startTime, endTime, excludeBookingID), nil
}

func (s *Rooms) slotFreeLocked(roomID int64, startDate, endDate, startTime, endTime string, excludeID int64) bool {
	for _, b := range s.bookings {
		if b.RoomID != roomID || b.Status != models.StatusConfirmed || b.ID == excludeID {
			continue
		}
		if b.OverlapsSlot(startDate, endDate, startTime, endTime) {
			return false
		}
	}
	return true
}

func inRange(b models.RoomBooking, startDate, endDate string) bool {
	if startDate == "" || endDate == "" {
		return true
	}
	return b.StartDate >= startDate && b.EndDate <= endDate
}

func slotSeconds(b models.RoomBooking) int64 {
	d, err := models.SlotDuration(b.StartDate, b.StartTime, b.EndDate, b.EndTime)
	if err != nil {
		return 0
	}
	return int64(d / time.Second)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *Rooms) RoomUsage(ctx context.Context, startDate, endDate string) ([]models.RoomUsageStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RoomUsageStats, 0, len(s.rooms))
	for _, r := range s.roomsLocked(false) {
		stat := models.RoomUsageStats{RoomID: r.ID, RoomName: r.Name, Capacity: r.Capacity}
		var seconds, attendees int64
		for _, b := range s.bookings {
			if b.RoomID != r.ID || b.Status != models.StatusConfirmed || !inRange(b, startDate, endDate) {
				continue
			}
			stat.TotalBookings++
			seconds += slotSeconds(b)
			stat.TotalRevenue += b.TotalAmount
			attendees += int64(b.AttendeeCount)
		}
		stat.TotalHours = int(seconds / 3600)
		if stat.TotalBookings > 0 {
			stat.AverageOccupancy = round1(float64(attendees) / float64(stat.TotalBookings))
		}
		if stat.TotalHours > 0 {
			// utilization against a full week of availability
			stat.UtilizationRate = int(math.Round(float64(stat.TotalHours) / (24 * 7) * 100))
		}
		out = append(out, stat)
	}
	return out, nil
}

func (s *Rooms) BookingTrends(ctx context.Context, startDate, endDate string) ([]models.BookingTrend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate := make(map[string]*models.BookingTrend)
	secondsByDate := make(map[string]int64)
	for _, b := range s.bookings {
		if b.Status != models.StatusConfirmed || !inRange(b, startDate, endDate) {
			continue
		}
		tr, ok := byDate[b.StartDate]
		if !ok {
			tr = &models.BookingTrend{Date: b.StartDate}
			byDate[b.StartDate] = tr
		}
		tr.BookingCount++
		tr.Revenue += b.TotalAmount
		secondsByDate[b.StartDate] += slotSeconds(b)
	}

	out := make([]models.BookingTrend, 0, len(byDate))
	for date, tr := range byDate {
		tr.TotalHours = int(secondsByDate[date] / 3600)
		out = append(out, *tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *Rooms) PopularTimeSlots(ctx context.Context) ([]models.PopularTimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byHour := make(map[int]int)
	total := 0
	for _, b := range s.bookings {
		if b.Status != models.StatusConfirmed {
			continue
		}
		if len(b.StartTime) < 2 {
			continue
		}
		hour, err := strconv.Atoi(b.StartTime[:2])
		if err != nil {
			continue
		}
		byHour[hour]++
		total++
	}

	out := make([]models.PopularTimeSlot, 0, len(byHour))
	for hour, count := range byHour {
		slot := models.PopularTimeSlot{Hour: hour, BookingCount: count}
		if total > 0 {
			slot.Utilization = int(math.Round(float64(count) / float64(total) * 100))
		}
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out, nil
}

func (s *Rooms) TotalRevenue(ctx context.Context, startDate, endDate string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, b := range s.bookings {
		if b.Status == models.StatusConfirmed && inRange(b, startDate, endDate) {
			total += b.TotalAmount
		}
	}
	return total, nil
}

func (s *Rooms) OccupancyRate(ctx context.Context, roomID int64, startDate, endDate string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	var count int
	for _, b := range s.bookings {
		if b.Status != models.StatusConfirmed || !inRange(b, startDate, endDate) {
			continue
		}
		if roomID != 0 && b.RoomID != roomID {
			continue
		}
		room, ok := s.rooms[b.RoomID]
		if !ok || room.Capacity == 0 {
			continue
		}
		sum += float64(b.AttendeeCount) / float64(room.Capacity)
		count++
	}
	if count == 0 {
		return 0, nil
	}
	return round1(sum / float64(count) * 100), nil
}

func (s *Rooms) User(ctx context.Context, id int64) (models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok, nil
}

func (s *Rooms) UserByEmail(ctx context.Context, email string) (models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (s *Rooms) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	u.ID = s.nextUserID
	u.CreatedAt = time.Now().UTC()
	s.users[u.ID] = u
	return u, nil
}
