package userRepo

import "playzone/models"

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	Age          *string
	Gender       *string
	Phone        *string
	PasswordHash *string
	Status       *models.UserStatus
}

// UserRepository defines the interface for user account data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(id string, upd UserUpdate) (*models.User, error)
	Delete(id string) error
}
