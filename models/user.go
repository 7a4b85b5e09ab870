package models

import "time"

// UserStatus is the account state of a platform user.
type UserStatus string

const (
	UserActive    UserStatus = "Active"
	UserInactive  UserStatus = "Inactive"
	UserSuspended UserStatus = "Suspended"
)

// User represents a registered customer account. Bookings copy the
// username and email at creation time and never join back against this
// collection.
type User struct {
	ID           string     `bson:"id" json:"_id"`
	Name         string     `bson:"name" json:"name"`
	Email        string     `bson:"email" json:"email"`
	Age          string     `bson:"age" json:"age"`
	Gender       string     `bson:"gender" json:"gender"`
	Phone        string     `bson:"phone" json:"phone"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	JoinDate     time.Time  `bson:"joinDate" json:"joinDate"`
	LastLogin    time.Time  `bson:"lastLogin" json:"lastLogin"`
	Status       UserStatus `bson:"status" json:"status"`
}
