package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(n int, createdAt time.Time) *HistoryRecord {
	return &HistoryRecord{
		ID:        fmt.Sprintf("rec-%d", n),
		Op:        OpDifference,
		Calendar:  "gregorian",
		CreatedAt: createdAt,
	}
}

func TestHistoryStore_AddAndList_NewestFirst(t *testing.T) {
	hs := NewHistoryStore(10)
	now := time.Now()

	hs.Add(record(1, now))
	hs.Add(record(2, now.Add(time.Second)))
	hs.Add(record(3, now.Add(2*time.Second)))

	list := hs.List()
	require.Len(t, list, 3)
	assert.Equal(t, "rec-3", list[0].ID)
	assert.Equal(t, "rec-1", list[2].ID)
}

func TestHistoryStore_CapEvictsOldest(t *testing.T) {
	hs := NewHistoryStore(3)
	now := time.Now()

	for i := 1; i <= 5; i++ {
		hs.Add(record(i, now.Add(time.Duration(i)*time.Second)))
	}

	list := hs.List()
	require.Len(t, list, 3)
	assert.Equal(t, "rec-5", list[0].ID)
	assert.Equal(t, "rec-3", list[2].ID)
}

func TestHistoryStore_DefaultCap(t *testing.T) {
	hs := NewHistoryStore(0)
	now := time.Now()
	for i := 0; i < DefaultMaxEntries+10; i++ {
		hs.Add(record(i, now))
	}
	assert.Equal(t, DefaultMaxEntries, hs.Size())
}

func TestHistoryStore_Clear(t *testing.T) {
	hs := NewHistoryStore(10)
	hs.Add(record(1, time.Now()))
	hs.Clear()
	assert.Zero(t, hs.Size())
	assert.Empty(t, hs.List())
}

func TestHistoryStore_PruneOlderThan(t *testing.T) {
	hs := NewHistoryStore(10)
	now := time.Now()

	hs.Add(record(1, now.Add(-2*time.Hour)))
	hs.Add(record(2, now.Add(-time.Hour)))
	hs.Add(record(3, now))

	pruned := hs.PruneOlderThan(now.Add(-30 * time.Minute))
	require.Len(t, pruned, 2)
	assert.Equal(t, "rec-1", pruned[0].ID)
	assert.Equal(t, "rec-2", pruned[1].ID)
	assert.Equal(t, 1, hs.Size())
}

func TestHistoryStore_PruneOlderThan_NothingExpired(t *testing.T) {
	hs := NewHistoryStore(10)
	hs.Add(record(1, time.Now()))

	pruned := hs.PruneOlderThan(time.Now().Add(-time.Hour))
	assert.Nil(t, pruned)
	assert.Equal(t, 1, hs.Size())
}

func TestHistoryStore_SnapshotRoundtrip(t *testing.T) {
	hs := NewHistoryStore(10)
	now := time.Now()
	hs.Add(record(1, now))
	hs.Add(record(2, now.Add(time.Second)))

	snap := hs.Snapshot()
	require.Len(t, snap.Records, 2)

	restored := NewHistoryStore(10)
	restored.Put(snap.Records)
	assert.Equal(t, hs.List(), restored.List())
}

func TestHistoryStore_PutRespectsCap(t *testing.T) {
	hs := NewHistoryStore(2)
	now := time.Now()

	hs.Put([]*HistoryRecord{
		record(1, now),
		record(2, now.Add(time.Second)),
		record(3, now.Add(2*time.Second)),
	})

	list := hs.List()
	require.Len(t, list, 2)
	assert.Equal(t, "rec-3", list[0].ID)
}
