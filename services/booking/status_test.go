package booking

import (
	"testing"

	"playzone/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.BookingStatus
		to      models.BookingStatus
		actor   models.Actor
		allowed bool
	}{
		{"admin confirms pending", models.StatusPending, models.StatusConfirmed, models.ActorAdmin, true},
		{"admin cancels pending", models.StatusPending, models.StatusCancelled, models.ActorAdmin, true},
		{"admin cancels confirmed", models.StatusConfirmed, models.StatusCancelled, models.ActorAdmin, true},
		{"admin cannot reopen cancelled", models.StatusCancelled, models.StatusConfirmed, models.ActorAdmin, false},
		{"admin cannot reset confirmed to pending", models.StatusConfirmed, models.StatusPending, models.ActorAdmin, false},
		{"admin same state is a no-op", models.StatusConfirmed, models.StatusConfirmed, models.ActorAdmin, true},
		{"customer reopens confirmed", models.StatusConfirmed, models.StatusPending, models.ActorCustomer, true},
		{"customer reopens cancelled", models.StatusCancelled, models.StatusPending, models.ActorCustomer, true},
		{"customer keeps pending", models.StatusPending, models.StatusPending, models.ActorCustomer, true},
		{"customer cannot confirm", models.StatusPending, models.StatusConfirmed, models.ActorCustomer, false},
		{"customer cannot cancel", models.StatusPending, models.StatusCancelled, models.ActorCustomer, false},
		{"unknown target status", models.StatusPending, "Rejected", models.ActorAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to, tt.actor))
		})
	}
}
