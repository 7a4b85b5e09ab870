package booking

import (
	"testing"

	bookingRepo "playzone/database/repository/booking"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedService(t *testing.T) (*DefaultBookingService, *bookingRepo.MemoryBookingRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := bookingRepo.NewMemoryBookingRepo()
	return &DefaultBookingService{Repo: repo, Cache: client}, repo, mr
}

func TestListAllPopulatesCache(t *testing.T) {
	svc, _, mr := newCachedService(t)

	_, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	bookings, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.True(t, mr.Exists(listCacheKey))
}

func TestListAllServesFromCache(t *testing.T) {
	svc, repo, _ := newCachedService(t)

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	_, err = svc.ListAll()
	require.NoError(t, err)

	// Mutate the store behind the cache's back; the cached payload
	// must still be served until it is invalidated.
	_, err = repo.Delete(created.ID)
	require.NoError(t, err)

	bookings, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestMutationsInvalidateCache(t *testing.T) {
	svc, _, mr := newCachedService(t)

	created, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	_, err = svc.ListAll()
	require.NoError(t, err)
	require.True(t, mr.Exists(listCacheKey))

	_, err = svc.AdminUpdateStatus(created.ID, AdminUpdateInput{Message: "Confirmed"})
	require.NoError(t, err)
	assert.False(t, mr.Exists(listCacheKey))

	_, err = svc.ListAll()
	require.NoError(t, err)
	require.True(t, mr.Exists(listCacheKey))

	_, err = svc.DeleteBooking(created.ID)
	require.NoError(t, err)
	assert.False(t, mr.Exists(listCacheKey))
}

func TestCacheDisabledWithoutClient(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBooking(validCreateInput())
	require.NoError(t, err)

	bookings, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
