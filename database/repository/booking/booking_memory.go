package bookingRepo

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"playzone/database/repository"
	"playzone/models"
)

// MemoryBookingRepo is an in-memory BookingRepository used in tests and
// local development. It mirrors the Mongo implementation's validation
// and version semantics.
type MemoryBookingRepo struct {
	mu       sync.Mutex
	seq      int
	bookings map[string]models.Booking
}

// NewMemoryBookingRepo creates an empty in-memory repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: map[string]models.Booking{}}
}

// Create inserts a booking after the same validation the Mongo
// implementation performs.
func (r *MemoryBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.Message == "" {
		b.Message = models.StatusPending
	}
	if err := validateNew(b); err != nil {
		return err
	}

	r.seq++
	if b.ID == "" {
		b.ID = fmt.Sprintf("bk-%d", r.seq)
	}
	b.Version = 1
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.bookings[b.ID] = *b
	return nil
}

func (r *MemoryBookingRepo) list(match func(models.Booking) bool) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// GetAll returns all bookings sorted by date, newest first.
func (r *MemoryBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(models.Booking) bool { return true }), nil
}

// GetByEmail returns the bookings for one email, newest first.
func (r *MemoryBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(b models.Booking) bool { return b.Email == email }), nil
}

// GetByID returns one booking or repository.ErrNotFound.
func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

// Update applies a partial update, enforcing the version check when
// an expected version is supplied.
func (r *MemoryBookingRepo) Update(id string, upd BookingUpdate) (*models.Booking, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.ExpectedVersion != nil && *upd.ExpectedVersion != b.Version {
		return nil, repository.ErrVersionConflict
	}

	if upd.PackageType != nil {
		b.PackageType = *upd.PackageType
	}
	if upd.Date != nil {
		b.Date = *upd.Date
	}
	if upd.TimeSlot != nil {
		b.TimeSlot = *upd.TimeSlot
	}
	if upd.SpecialRequests != nil {
		b.SpecialRequests = *upd.SpecialRequests
	}
	if upd.Message != nil {
		b.Message = *upd.Message
	}
	b.Version++
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	return &b, nil
}

// Delete removes a booking and returns the removed record.
func (r *MemoryBookingRepo) Delete(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.bookings, id)
	return &b, nil
}
