// Package cart wraps the two persisted pieces of storefront state: the
// cart item counter and the most recent order record.
package cart

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/abokichi/storefront/kvstore"
	"github.com/abokichi/storefront/models"
	"github.com/abokichi/storefront/surface"
)

const (
	countKey = "abokichi_cart_count"
	orderKey = "abokichi_latest_order"
)

// Store exposes the cart counter and last-order record. Writes are
// last-write-wins and immediately visible to the next read.
type Store struct {
	kv kvstore.Store

	mu     sync.Mutex
	badges []surface.Surface
}

// NewStore builds a cart store over the given key-value backend.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Count returns the persisted counter, or 0 when it was never set or
// does not parse.
func (s *Store) Count() int {
	raw, ok := s.kv.Get(countKey)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SetCount persists n and propagates it to every bound badge. This is
// the only write path for the counter; callers wanting an increment
// compute Count()+1 themselves.
func (s *Store) SetCount(n int) {
	s.kv.Set(countKey, strconv.Itoa(n))
	s.UpdateBadges(n)
}

// Bind registers a badge surface and immediately displays the current
// count on it, as happens on page load.
func (s *Store) Bind(badge surface.Surface) {
	if badge == nil {
		return
	}
	s.mu.Lock()
	s.badges = append(s.badges, badge)
	s.mu.Unlock()
	s.UpdateBadges()
}

// UpdateBadges writes the given count (or the current one when omitted)
// to every bound badge. A count of 0 hides the badge instead of showing
// a zero.
func (s *Store) UpdateBadges(explicit ...int) {
	count := 0
	if len(explicit) > 0 {
		count = explicit[0]
	} else {
		count = s.Count()
	}

	s.mu.Lock()
	badges := make([]surface.Surface, len(s.badges))
	copy(badges, s.badges)
	s.mu.Unlock()

	for _, badge := range badges {
		badge.SetText(strconv.Itoa(count))
		if count == 0 {
			badge.Hide()
		} else {
			badge.Show()
		}
	}
}

// RecordOrder persists the order record, overwriting any prior record.
func (s *Store) RecordOrder(order models.OrderRecord) {
	raw, err := json.Marshal(order)
	if err != nil {
		return
	}
	s.kv.Set(orderKey, string(raw))
}

// LastOrder returns the persisted record, or false when none exists or
// the stored value does not parse.
func (s *Store) LastOrder() (models.OrderRecord, bool) {
	raw, ok := s.kv.Get(orderKey)
	if !ok {
		return models.OrderRecord{}, false
	}
	var order models.OrderRecord
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return models.OrderRecord{}, false
	}
	return order, true
}
