package checklist

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crushlist/crushlist/internal/model"
)

// Store manages the checklist entries for one session
type Store struct {
	entries      []*model.ChecklistEntry
	entriesMutex sync.RWMutex
	rng          *rand.Rand
	onUpdate     func(*model.ChecklistEntry) // callback for UI updates
	onReset      func()                      // callback fired after a generation swap
}

// NewStore creates a new store with a freshly initialized entry list
func NewStore() *Store {
	s := &Store{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.entries = s.buildGeneration()
	return s
}

// SetUpdateCallback sets the callback function for single-entry updates
func (s *Store) SetUpdateCallback(callback func(*model.ChecklistEntry)) {
	s.onUpdate = callback
}

// SetResetCallback sets the callback invoked after Reset swaps the list
func (s *Store) SetResetCallback(callback func()) {
	s.onReset = callback
}

// Entries returns a snapshot of the current generation in catalog order
func (s *Store) Entries() []*model.ChecklistEntry {
	s.entriesMutex.RLock()
	defer s.entriesMutex.RUnlock()

	entries := make([]*model.ChecklistEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Get returns an entry by ID
func (s *Store) Get(id string) (*model.ChecklistEntry, bool) {
	s.entriesMutex.RLock()
	defer s.entriesMutex.RUnlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return nil, false
}

// Len returns the number of entries in the current generation
func (s *Store) Len() int {
	s.entriesMutex.RLock()
	defer s.entriesMutex.RUnlock()
	return len(s.entries)
}

// CheckedCount returns how many entries are currently checked
func (s *Store) CheckedCount() int {
	s.entriesMutex.RLock()
	defer s.entriesMutex.RUnlock()

	count := 0
	for _, entry := range s.entries {
		if entry.Checked {
			count++
		}
	}
	return count
}

// SetChecked marks one entry checked or leaves it alone. The operation is
// idempotent, and an unknown id is a silent no-op: the only window where an
// id can be missing is a reset race, which resolves on the next layout pass
// against the new generation.
func (s *Store) SetChecked(id string, checked bool) {
	s.entriesMutex.Lock()

	var updated *model.ChecklistEntry
	for _, entry := range s.entries {
		if entry.ID != id {
			continue
		}
		if entry.Checked == checked {
			break
		}
		if !checked {
			// Checked is monotonic within a generation; only Reset clears it.
			log.Printf("Ignoring un-check request for entry %s", id)
			break
		}
		entry.Checked = true
		entry.CheckedAt = time.Now()
		updated = entry
		break
	}
	s.entriesMutex.Unlock()

	if updated != nil {
		s.notifyUpdate(updated)
	}
}

// Reset discards the current generation and builds a fresh one with new ids
// and newly randomized insights. The swap is atomic: observers see either
// the old generation or the new one, never a mix.
func (s *Store) Reset() {
	s.entriesMutex.Lock()
	s.entries = s.buildGeneration()
	s.entriesMutex.Unlock()

	log.Printf("Checklist reset: %d fresh entries", len(model.EntryTitles))

	if s.onReset != nil {
		s.onReset()
	}
}

// buildGeneration constructs the fixed catalog with fresh ids and insights.
// Callers hold the write lock or own the store exclusively.
func (s *Store) buildGeneration() []*model.ChecklistEntry {
	entries := make([]*model.ChecklistEntry, 0, len(model.EntryTitles))
	for _, title := range model.EntryTitles {
		entries = append(entries, &model.ChecklistEntry{
			ID:      generateEntryID(),
			Title:   title,
			Insight: model.InsightPool[s.rng.Intn(len(model.InsightPool))],
		})
	}
	return entries
}

func (s *Store) notifyUpdate(entry *model.ChecklistEntry) {
	if s.onUpdate != nil {
		s.onUpdate(entry)
	}
}

// generateEntryID generates a unique entry ID using UUID v7 for better uniqueness and time ordering
func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("entry-%d", time.Now().UnixNano())
	}
	return id.String()
}
