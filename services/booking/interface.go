package booking

import (
	bookingRepo "playzone/database/repository/booking"
	"playzone/models"

	"github.com/go-redis/redis/v8"
)

// CreateInput carries the fields a customer submits when booking.
type CreateInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	PackageType     string `json:"packageType"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
	Message         string `json:"message"`
	SpecialRequests string `json:"specialRequests"`
}

// CustomerUpdateInput carries the fields a customer resubmits on an
// edit request. Version, when non-zero, enables the conflict check.
type CustomerUpdateInput struct {
	PackageType     string `json:"packageType"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
	SpecialRequests string `json:"specialRequests"`
	Version         int64  `json:"version"`
}

// AdminUpdateInput carries the status an administrator assigns.
type AdminUpdateInput struct {
	Message string `json:"message"`
	Version int64  `json:"version"`
}

// BookingService defines the booking operations exposed to handlers.
type BookingService interface {
	CreateBooking(in CreateInput) (*models.Booking, error)
	ListAll() ([]models.Booking, error)
	ListByEmail(email string) ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	CustomerUpdate(id string, in CustomerUpdateInput) (*models.Booking, error)
	AdminUpdateStatus(id string, in AdminUpdateInput) (*models.Booking, error)
	DeleteBooking(id string) (*models.Booking, error)
	ExportAll() ([]byte, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Cache *redis.Client
}
