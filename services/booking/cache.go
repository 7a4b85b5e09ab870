package booking

import (
	"context"
	"encoding/json"
	"time"

	"playzone/models"
	"playzone/utils"

	"go.uber.org/zap"
)

const (
	listCacheKey = "bookings:all"
	listCacheTTL = 30 * time.Second
)

// cachedList returns the cached list-all payload if present. A nil
// cache client or any Redis error falls back to the store.
func (s *DefaultBookingService) cachedList() ([]models.Booking, bool) {
	if s.Cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var bookings []models.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		utils.GetLogger().Warn("corrupt booking list cache entry", zap.Error(err))
		return nil, false
	}
	return bookings, true
}

func (s *DefaultBookingService) storeListCache(bookings []models.Booking) {
	if s.Cache == nil || bookings == nil {
		return
	}
	raw, err := json.Marshal(bookings)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Set(ctx, listCacheKey, raw, listCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to store booking list cache", zap.Error(err))
	}
}

// invalidateListCache drops the cached list after any mutation so
// reads never serve a deleted or stale booking beyond the TTL.
func (s *DefaultBookingService) invalidateListCache() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Del(ctx, listCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate booking list cache", zap.Error(err))
	}
}
