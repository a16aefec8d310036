package source

import (
	"sync"
	"time"
)

// IDSequence hands out timestamp-derived IDs that strictly increase, even when
// several are requested within the same millisecond.
type IDSequence struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDSequence creates a sequence that never returns a value <= floor.
func NewIDSequence(now func() time.Time, floor int64) *IDSequence {
	if now == nil {
		now = time.Now
	}
	return &IDSequence{now: now, last: floor}
}

// Next returns the next ID.
func (s *IDSequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
