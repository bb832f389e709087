package rangeindex

import "sync"

// SyncIndex guards a RangeIndex with a readers-writer lock. Reads run
// concurrently with each other; Update and Add run alone.
type SyncIndex struct {
	mu sync.RWMutex
	ri *RangeIndex
}

// NewSync takes ownership of ri, which must not be used directly afterwards.
func NewSync(ri *RangeIndex) *SyncIndex {
	ri.mustBeReady()
	return &SyncIndex{ri: ri}
}

// Len returns the length of the sequence under the read lock.
func (s *SyncIndex) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ri.Len()
}

// Get returns the element at pos under the read lock, or ErrIndexOutOfRange.
func (s *SyncIndex) Get(pos int) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ri.Get(pos)
}

// Query returns the sum of [l, r] under the read lock. It may run
// alongside other readers and fails like RangeIndex.Query.
func (s *SyncIndex) Query(l, r int) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ri.Query(l, r)
}

// Total returns the sum of the whole sequence under the read lock.
func (s *SyncIndex) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ri.Total()
}

// Values returns a copy of the sequence under the read lock.
func (s *SyncIndex) Values() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ri.Values()
}

// Update sets the element at pos to val. It waits for every reader and
// writer to finish, and fails with ErrIndexOutOfRange without writing.
func (s *SyncIndex) Update(pos int, val int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ri.Update(pos, val)
}

// Add adds delta to the element at pos under the write lock.
func (s *SyncIndex) Add(pos int, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ri.Add(pos, delta)
}

// Snapshot returns an unsynchronized copy of the current state.
func (s *SyncIndex) Snapshot() *RangeIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ri.Clone()
}
