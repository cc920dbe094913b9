package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/tinyplayerss/hyteserve/internal/catalog"
	"github.com/tinyplayerss/hyteserve/internal/source"
)

// Snapshot represents the latest loaded data available to the UI.
type Snapshot struct {
	Source     source.Source
	HasCatalog bool
	Items      []catalog.Item

	// Newest is the freshness baseline for the current collection; zero
	// when HasNewest is false (no item carried a parseable date).
	Newest    time.Time
	HasNewest bool

	// Cross-catalog rollups and the social panel. These arrive
	// independently of the primary catalog and may lag behind it.
	Keywords []string
	Counts   map[string]int
	Social   []source.LinkCount

	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when loads have failed repeatedly.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The UI, the data
// watcher, and the aux refresher all write here; readers always get clones.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetCatalog replaces the loaded collection and recomputes the freshness
// baseline. When err is non-nil the previous collection is kept untouched
// and only the error is recorded, so a failed load never corrupts the view.
func (s *Store) SetCatalog(src source.Source, items []catalog.Item, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Source = src
	s.snapshot.Items = cloneItems(items)
	s.snapshot.HasCatalog = true
	s.snapshot.Newest, s.snapshot.HasNewest = catalog.NewestDate(items)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// SetAggregate records the cross-catalog keyword set and per-source counts.
func (s *Store) SetAggregate(agg source.Aggregate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Keywords = append([]string(nil), agg.Keywords...)
	s.snapshot.Counts = cloneCounts(agg.Counts)
}

// SetSocial records the social panel entries with their resolved counts.
func (s *Store) SetSocial(social []source.LinkCount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Social = append([]source.LinkCount(nil), social...)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Items = cloneItems(s.snapshot.Items)
	snap.Keywords = append([]string(nil), s.snapshot.Keywords...)
	snap.Counts = cloneCounts(s.snapshot.Counts)
	snap.Social = append([]source.LinkCount(nil), s.snapshot.Social...)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneItems(items []catalog.Item) []catalog.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]catalog.Item, len(items))
	copy(dup, items)
	return dup
}

func cloneCounts(counts map[string]int) map[string]int {
	if counts == nil {
		return nil
	}
	dup := make(map[string]int, len(counts))
	for k, v := range counts {
		dup[k] = v
	}
	return dup
}
