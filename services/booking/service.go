package booking

import (
	bookingRepo "playzone/database/repository/booking"
	"playzone/models"
	"playzone/utils"

	"go.uber.org/zap"
)

// CreateBooking validates the payload and persists a new booking. The
// status defaults to Pending when the client omits it.
func (s *DefaultBookingService) CreateBooking(in CreateInput) (*models.Booking, error) {
	if err := checkRequired(map[string]string{
		"username":    in.Username,
		"email":       in.Email,
		"packageType": in.PackageType,
		"date":        in.Date,
		"timeSlot":    in.TimeSlot,
	}); err != nil {
		return nil, err
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	status := models.BookingStatus(in.Message)
	if in.Message == "" {
		status = models.StatusPending
	}

	booking := &models.Booking{
		Username:        in.Username,
		Email:           in.Email,
		PackageType:     in.PackageType,
		Date:            date,
		TimeSlot:        in.TimeSlot,
		Message:         status,
		SpecialRequests: in.SpecialRequests,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	utils.GetLogger().Info("booking created",
		zap.String("id", booking.ID),
		zap.String("email", booking.Email),
		zap.String("package", booking.PackageType))
	return booking, nil
}

// ListAll returns every booking, newest first. The result may come
// from the short-lived list cache.
func (s *DefaultBookingService) ListAll() ([]models.Booking, error) {
	if cached, ok := s.cachedList(); ok {
		return cached, nil
	}
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	s.storeListCache(bookings)
	return bookings, nil
}

// ListByEmail returns the bookings held by one customer, newest first.
// An empty result is a valid outcome, not an error.
func (s *DefaultBookingService) ListByEmail(email string) ([]models.Booking, error) {
	return s.Repo.GetByEmail(email)
}

// GetByID returns a single booking or repository.ErrNotFound.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// CustomerUpdate applies an edit request: the resubmitted fields are
// merged and the status is reset to Pending so an administrator
// re-reviews the booking.
func (s *DefaultBookingService) CustomerUpdate(id string, in CustomerUpdateInput) (*models.Booking, error) {
	if err := checkRequired(map[string]string{
		"packageType": in.PackageType,
		"date":        in.Date,
		"timeSlot":    in.TimeSlot,
	}); err != nil {
		return nil, err
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	next := models.StatusPending
	if !CanTransition(current.Message, next, models.ActorCustomer) {
		return nil, &InvalidTransitionError{From: current.Message, To: next, Actor: models.ActorCustomer}
	}

	special := in.SpecialRequests
	upd := bookingRepo.BookingUpdate{
		PackageType:     &in.PackageType,
		Date:            &date,
		TimeSlot:        &in.TimeSlot,
		SpecialRequests: &special,
		Message:         &next,
	}
	if in.Version != 0 {
		upd.ExpectedVersion = &in.Version
	}

	updated, err := s.Repo.Update(id, upd)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache()
	utils.GetLogger().Info("booking edit requested",
		zap.String("id", id),
		zap.String("from", string(current.Message)))
	return updated, nil
}

// AdminUpdateStatus writes only the status field, leaving every other
// field untouched. This is the sole path to Confirmed or Cancelled.
func (s *DefaultBookingService) AdminUpdateStatus(id string, in AdminUpdateInput) (*models.Booking, error) {
	if err := checkRequired(map[string]string{"message": in.Message}); err != nil {
		return nil, err
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	next := models.BookingStatus(in.Message)
	if !CanTransition(current.Message, next, models.ActorAdmin) {
		return nil, &InvalidTransitionError{From: current.Message, To: next, Actor: models.ActorAdmin}
	}

	upd := bookingRepo.BookingUpdate{Message: &next}
	if in.Version != 0 {
		upd.ExpectedVersion = &in.Version
	}

	updated, err := s.Repo.Update(id, upd)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache()
	utils.GetLogger().Info("booking status updated",
		zap.String("id", id),
		zap.String("from", string(current.Message)),
		zap.String("to", string(next)))
	return updated, nil
}

// DeleteBooking removes a booking permanently and returns the removed
// record. There is no soft delete.
func (s *DefaultBookingService) DeleteBooking(id string) (*models.Booking, error) {
	deleted, err := s.Repo.Delete(id)
	if err != nil {
		return nil, err
	}
	s.invalidateListCache()
	utils.GetLogger().Info("booking deleted", zap.String("id", id))
	return deleted, nil
}
