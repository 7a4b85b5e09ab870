package booking

import (
	"errors"
	"testing"

	"playzone/database/repository"
	bookingRepo "playzone/database/repository/booking"
	"playzone/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultBookingService, *bookingRepo.MemoryBookingRepo) {
	repo := bookingRepo.NewMemoryBookingRepo()
	return &DefaultBookingService{Repo: repo}, repo
}

func validCreateInput() CreateInput {
	return CreateInput{
		Username:    "Ann",
		Email:       "a@x.com",
		PackageType: "Basic",
		Date:        "2025-06-01",
		TimeSlot:    "Morning (9AM-12PM)",
	}
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, created.Message)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(1), created.Version)
	assert.Equal(t, "2025-06-01", created.Date.Format("2006-01-02"))
}

func TestCreateBookingKeepsSuppliedStatus(t *testing.T) {
	svc, _ := newTestService()

	in := validCreateInput()
	in.Message = "Confirmed"
	created, err := svc.CreateBooking(in)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, created.Message)
}

func TestCreateBookingNamesMissingFields(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBooking(CreateInput{Username: "Ann"})
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)

	assert.Equal(t, map[string]bool{
		"email":       true,
		"packageType": true,
		"date":        true,
		"timeSlot":    true,
	}, missing.Fields)
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	svc, _ := newTestService()

	in := validCreateInput()
	in.Date = "not-a-date"
	_, err := svc.CreateBooking(in)
	var badDate *InvalidDateError
	require.ErrorAs(t, err, &badDate)
}

func TestCreateBookingRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService()

	in := validCreateInput()
	in.Message = "Maybe"
	_, err := svc.CreateBooking(in)
	_, ok := repository.AsValidation(err)
	assert.True(t, ok)
}

func TestListByEmailEmptyIsNotAnError(t *testing.T) {
	svc, _ := newTestService()

	bookings, err := svc.ListByEmail("nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestListAllSortsNewestFirst(t *testing.T) {
	svc, _ := newTestService()

	early := validCreateInput()
	early.Date = "2025-06-01"
	late := validCreateInput()
	late.Date = "2025-07-15"

	_, err := svc.CreateBooking(early)
	require.NoError(t, err)
	_, err = svc.CreateBooking(late)
	require.NoError(t, err)

	bookings, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "2025-07-15", bookings[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-06-01", bookings[1].Date.Format("2006-01-02"))
}

func TestCustomerUpdateResetsStatusToPending(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	// Confirm first, as an admin would.
	_, err = svc.AdminUpdateStatus(created.ID, AdminUpdateInput{Message: "Confirmed"})
	require.NoError(t, err)

	updated, err := svc.CustomerUpdate(created.ID, CustomerUpdateInput{
		PackageType:     "Deluxe",
		Date:            "2025-06-20",
		TimeSlot:        "Evening (4PM-7PM)",
		SpecialRequests: "birthday banner",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, updated.Message)
	assert.Equal(t, "Deluxe", updated.PackageType)
	assert.Equal(t, "birthday banner", updated.SpecialRequests)
}

func TestCustomerUpdateRequiresCoreFields(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	_, err = svc.CustomerUpdate(created.ID, CustomerUpdateInput{PackageType: "Deluxe"})
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, map[string]bool{"date": true, "timeSlot": true}, missing.Fields)
}

func TestCustomerUpdateDefaultsSpecialRequestsToEmpty(t *testing.T) {
	svc, _ := newTestService()

	in := validCreateInput()
	in.SpecialRequests = "clown"
	created, err := svc.CreateBooking(in)
	require.NoError(t, err)

	updated, err := svc.CustomerUpdate(created.ID, CustomerUpdateInput{
		PackageType: "Basic",
		Date:        "2025-06-01",
		TimeSlot:    "Morning (9AM-12PM)",
	})
	require.NoError(t, err)
	assert.Equal(t, "", updated.SpecialRequests)
}

func TestAdminUpdateChangesOnlyStatus(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	updated, err := svc.AdminUpdateStatus(created.ID, AdminUpdateInput{Message: "Confirmed"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, updated.Message)
	assert.Equal(t, created.Username, updated.Username)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.PackageType, updated.PackageType)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.TimeSlot, updated.TimeSlot)
	assert.Equal(t, created.SpecialRequests, updated.SpecialRequests)
}

func TestAdminUpdateRequiresStatus(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	_, err = svc.AdminUpdateStatus(created.ID, AdminUpdateInput{})
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
}

func TestAdminCannotReopenCancelledBooking(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	_, err = svc.AdminUpdateStatus(created.ID, AdminUpdateInput{Message: "Cancelled"})
	require.NoError(t, err)

	_, err = svc.AdminUpdateStatus(created.ID, AdminUpdateInput{Message: "Confirmed"})
	var transition *InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, models.StatusCancelled, transition.From)
	assert.Equal(t, models.StatusConfirmed, transition.To)
}

func TestStaleVersionIsRejected(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	// A first admin write bumps the version.
	_, err = svc.AdminUpdateStatus(created.ID, AdminUpdateInput{Message: "Confirmed"})
	require.NoError(t, err)

	// A second write still carrying version 1 must conflict.
	_, err = svc.AdminUpdateStatus(created.ID, AdminUpdateInput{Message: "Cancelled", Version: 1})
	assert.True(t, errors.Is(err, repository.ErrVersionConflict))
}

func TestUpdateWithoutVersionIsLastWriteWins(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	_, err = svc.AdminUpdateStatus(created.ID, AdminUpdateInput{Message: "Confirmed"})
	require.NoError(t, err)
	updated, err := svc.AdminUpdateStatus(created.ID, AdminUpdateInput{Message: "Cancelled"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Message)
}

func TestDeleteBooking(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	deleted, err := svc.DeleteBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetByID(created.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestDeleteUnknownBookingIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.DeleteBooking("missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestRoundTripPreservesFields(t *testing.T) {
	svc, _ := newTestService()

	in := validCreateInput()
	in.SpecialRequests = "window table"
	created, err := svc.CreateBooking(in)
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)

	assert.Equal(t, in.Username, fetched.Username)
	assert.Equal(t, in.Email, fetched.Email)
	assert.Equal(t, in.PackageType, fetched.PackageType)
	assert.Equal(t, in.TimeSlot, fetched.TimeSlot)
	assert.Equal(t, in.SpecialRequests, fetched.SpecialRequests)
	assert.Equal(t, "2025-06-01", fetched.Date.Format("2006-01-02"))
}
