package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
)

const slotTTL = 60 * time.Second

// SlotCache keeps computed slot grids in redis for a short while. A cache
// or connection failure degrades to a miss; slot queries never fail
// because of redis.
type SlotCache struct {
	rdb *redis.Client
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	return &SlotCache{rdb: rdb}
}

func key(date time.Time, serviceID, hairdresserID uint) string {
	return fmt.Sprintf(
		"slots:%s:%d:%d",
		date.Format("2006-01-02"), serviceID, hairdresserID,
	)
}

func (c *SlotCache) Get(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(in.Date, in.ServiceID, in.HairdresserID)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	in domain.AvailabilityInput,
	slots []domain.TimeSlot,
) {

	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(in.Date, in.ServiceID, in.HairdresserID), raw, slotTTL).Err(); err != nil {
		log.Printf("slot cache set failed: %v", err)
	}
}

// InvalidateDay drops every cached grid for the given date, regardless of
// service or hairdresser. Called after any booking mutation.
func (c *SlotCache) InvalidateDay(ctx context.Context, date time.Time) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("slots:%s:*", date.Format("2006-01-02"))

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("slot cache invalidate failed: %v", err)
			return
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("slot cache scan failed: %v", err)
	}
}
