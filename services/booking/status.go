package booking

import "playzone/models"

// adminTransitions is the status graph an administrator may walk.
// Cancelled is terminal for admins; only a customer edit request
// reopens a booking by resetting it to Pending.
var adminTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCancelled},
	models.StatusCancelled: {},
}

// CanTransition reports whether actor may move a booking from current
// to next. Same-state writes are always allowed.
func CanTransition(current, next models.BookingStatus, actor models.Actor) bool {
	if !models.ValidStatus(next) {
		return false
	}
	if current == next {
		return true
	}
	switch actor {
	case models.ActorCustomer:
		// An edit request resets any booking to Pending for re-review.
		return next == models.StatusPending
	case models.ActorAdmin:
		for _, allowed := range adminTransitions[current] {
			if next == allowed {
				return true
			}
		}
	}
	return false
}
