package models

import "time"

// BookingStatus is the lifecycle field of a booking. The wire name is
// "message" for compatibility with the existing frontend.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

// ValidStatus reports whether s belongs to the closed status set.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Actor identifies who is performing a status transition.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorAdmin    Actor = "admin"
)

// Booking is a customer's reservation for a package and time slot.
// Email is not unique: one customer may hold several bookings.
type Booking struct {
	ID              string        `bson:"id" json:"_id"`
	Username        string        `bson:"username" json:"username"`
	Email           string        `bson:"email" json:"email"`
	PackageType     string        `bson:"packageType" json:"packageType"`
	Date            time.Time     `bson:"date" json:"date"`
	TimeSlot        string        `bson:"timeSlot" json:"timeSlot"`
	Message         BookingStatus `bson:"message" json:"message"`
	SpecialRequests string        `bson:"specialRequests" json:"specialRequests"`
	Version         int64         `bson:"version" json:"version"`
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updatedAt"`
}
