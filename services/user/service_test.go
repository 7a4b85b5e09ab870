package user

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"playzone/database/repository"
	userRepo "playzone/database/repository/user"
	"playzone/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	seq   int
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}}
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.seq++
	if u.ID == "" {
		u.ID = fmt.Sprintf("u-%d", r.seq)
	}
	if u.Status == "" {
		u.Status = models.UserActive
	}
	now := time.Now()
	u.JoinDate = now
	u.LastLogin = now
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(id string, upd userRepo.UserUpdate) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Age != nil {
		u.Age = *upd.Age
	}
	if upd.Gender != nil {
		u.Gender = *upd.Gender
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	r.users[id] = u
	return &u, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Age:      "29",
		Gender:   "female",
		Phone:    "0712345678",
		Password: "s3cret-pass",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	created, err := svc.Register(registerInput())
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")))
}

func TestRegisterDefaults(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	created, err := svc.Register(registerInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.UserActive, created.Status)
	assert.False(t, created.JoinDate.IsZero())
}

func TestPasswordNeverSerialized(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	created, err := svc.Register(registerInput())
	require.NoError(t, err)

	data, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), created.PasswordHash)
}

func TestUpdatePartial(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	created, err := svc.Register(registerInput())
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, UpdateInput{Phone: "0798765432", Status: "Suspended"})
	require.NoError(t, err)

	assert.Equal(t, "0798765432", updated.Phone)
	assert.Equal(t, models.UserSuspended, updated.Status)

	// Untouched fields survive a partial update.
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, "ann@example.com", updated.Email)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
}

func TestUpdatePasswordRehashed(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	created, err := svc.Register(registerInput())
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, UpdateInput{Password: "new-pass"})
	require.NoError(t, err)

	assert.NotEqual(t, created.PasswordHash, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-pass")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("s3cret-pass")))
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Update("missing", UpdateInput{Name: "Bob"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	created, err := svc.Register(registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
