package models

import (
	"sync"
	"time"
)

// DefaultMaxEntries caps the history when the config does not.
const DefaultMaxEntries = 500

// HistoryStore is a capped, mutex-guarded record list. Records are kept
// oldest first; List returns them newest first. When the cap is exceeded
// the oldest records are dropped (the service archives them first via
// PruneOlderThan on the scheduler tick).
type HistoryStore struct {
	mu      sync.RWMutex
	records []*HistoryRecord
	max     int
}

func NewHistoryStore(maxEntries int) *HistoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &HistoryStore{
		records: make([]*HistoryRecord, 0),
		max:     maxEntries,
	}
}

func (hs *HistoryStore) Add(r *HistoryRecord) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	hs.records = append(hs.records, r)
	if over := len(hs.records) - hs.max; over > 0 {
		hs.records = append(hs.records[:0:0], hs.records[over:]...)
	}
}

// List returns a newest-first copy of the records.
func (hs *HistoryStore) List() []*HistoryRecord {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	out := make([]*HistoryRecord, len(hs.records))
	for i, r := range hs.records {
		out[len(hs.records)-1-i] = r
	}
	return out
}

func (hs *HistoryStore) Size() int {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return len(hs.records)
}

func (hs *HistoryStore) Clear() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.records = hs.records[:0]
}

// PruneOlderThan removes and returns every record created before cutoff.
func (hs *HistoryStore) PruneOlderThan(cutoff time.Time) []*HistoryRecord {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	// records are append-ordered, so the expired prefix is contiguous
	i := 0
	for i < len(hs.records) && hs.records[i].CreatedAt.Before(cutoff) {
		i++
	}
	if i == 0 {
		return nil
	}
	pruned := hs.records[:i:i]
	hs.records = append(hs.records[:0:0], hs.records[i:]...)
	return pruned
}

// Put replaces the store contents, used when restoring a snapshot.
// Records beyond the cap are dropped from the oldest end.
func (hs *HistoryStore) Put(records []*HistoryRecord) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if over := len(records) - hs.max; over > 0 {
		records = records[over:]
	}
	hs.records = append(hs.records[:0:0], records...)
}

// Snapshot returns the on-disk representation, oldest first.
func (hs *HistoryStore) Snapshot() *Storage {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	return &Storage{Records: append(hs.records[:0:0], hs.records...)}
}
