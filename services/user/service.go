package user

import (
	"fmt"

	userRepo "playzone/database/repository/user"
	"playzone/models"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the fields of a signup request.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UpdateInput carries a partial account update; empty fields are ignored.
type UpdateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

// UserService defines user account operations exposed to handlers.
type UserService interface {
	Register(in RegisterInput) (*models.User, error)
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(id string, in UpdateInput) (*models.User, error)
	Delete(id string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new account with a bcrypt-hashed password.
func (s *DefaultUserService) Register(in RegisterInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Age:          in.Age,
		Gender:       in.Gender,
		Phone:        in.Phone,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetAll returns every user account.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// GetByID returns one account or repository.ErrNotFound.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// GetByEmail returns one account or repository.ErrNotFound.
func (s *DefaultUserService) GetByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// Update changes only the provided fields. A new password is hashed
// before it is stored.
func (s *DefaultUserService) Update(id string, in UpdateInput) (*models.User, error) {
	upd := userRepo.UserUpdate{}
	if in.Name != "" {
		upd.Name = &in.Name
	}
	if in.Email != "" {
		upd.Email = &in.Email
	}
	if in.Age != "" {
		upd.Age = &in.Age
	}
	if in.Gender != "" {
		upd.Gender = &in.Gender
	}
	if in.Phone != "" {
		upd.Phone = &in.Phone
	}
	if in.Status != "" {
		status := models.UserStatus(in.Status)
		upd.Status = &status
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		upd.PasswordHash = &hashed
	}
	return s.Repo.Update(id, upd)
}

// Delete removes an account permanently.
func (s *DefaultUserService) Delete(id string) error {
	return s.Repo.Delete(id)
}
