package bookingRepo

import (
	"time"

	"playzone/models"
)

// BookingUpdate is a partial update applied to a stored booking. Nil
// fields are left untouched. ExpectedVersion, when set, makes the write
// conditional on the stored version matching.
type BookingUpdate struct {
	PackageType     *string
	Date            *time.Time
	TimeSlot        *string
	SpecialRequests *string
	Message         *models.BookingStatus
	ExpectedVersion *int64
}

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetAll() ([]models.Booking, error)
	GetByEmail(email string) ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	Update(id string, upd BookingUpdate) (*models.Booking, error)
	Delete(id string) (*models.Booking, error)
}
