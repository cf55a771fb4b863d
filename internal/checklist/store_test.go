package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crushlist/crushlist/internal/model"
)

func TestNewStore(t *testing.T) {
	store := NewStore()

	entries := store.Entries()
	require.Len(t, entries, len(model.EntryTitles))

	for i, entry := range entries {
		assert.Equal(t, model.EntryTitles[i], entry.Title, "entries keep catalog order")
		assert.NotEmpty(t, entry.ID)
		assert.NotEmpty(t, entry.Insight)
		assert.False(t, entry.Checked)
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		assert.False(t, seen[entry.ID], "ids must be unique")
		seen[entry.ID] = true
	}
}

func TestStore_SetChecked(t *testing.T) {
	store := NewStore()
	entry := store.Entries()[0]

	var notified []string
	store.SetUpdateCallback(func(e *model.ChecklistEntry) {
		notified = append(notified, e.ID)
	})

	store.SetChecked(entry.ID, true)

	got, ok := store.Get(entry.ID)
	require.True(t, ok)
	assert.True(t, got.Checked)
	assert.False(t, got.CheckedAt.IsZero())
	assert.Equal(t, 1, store.CheckedCount())
	require.Len(t, notified, 1)

	// Idempotent: checking again changes nothing and fires no callback
	store.SetChecked(entry.ID, true)
	assert.Len(t, notified, 1)
	assert.Equal(t, 1, store.CheckedCount())
}

func TestStore_SetChecked_Monotonic(t *testing.T) {
	store := NewStore()
	entry := store.Entries()[0]

	store.SetChecked(entry.ID, true)
	store.SetChecked(entry.ID, false)

	got, ok := store.Get(entry.ID)
	require.True(t, ok)
	assert.True(t, got.Checked, "un-check must be ignored short of a full reset")
}

func TestStore_SetChecked_UnknownID(t *testing.T) {
	store := NewStore()

	var notified int
	store.SetUpdateCallback(func(*model.ChecklistEntry) { notified++ })

	// Must be a silent no-op, not an error or panic.
	store.SetChecked("not-a-real-id", true)

	assert.Zero(t, notified)
	assert.Zero(t, store.CheckedCount())
}

func TestStore_Reset(t *testing.T) {
	store := NewStore()

	oldIDs := make(map[string]bool)
	for _, entry := range store.Entries() {
		oldIDs[entry.ID] = true
		store.SetChecked(entry.ID, true)
	}
	require.Equal(t, store.Len(), store.CheckedCount())

	resetFired := 0
	store.SetResetCallback(func() { resetFired++ })

	store.Reset()

	assert.Equal(t, 1, resetFired)
	assert.Zero(t, store.CheckedCount(), "all entries pending after reset")
	require.Equal(t, len(model.EntryTitles), store.Len())

	for i, entry := range store.Entries() {
		assert.False(t, oldIDs[entry.ID], "no prior-generation id may survive a reset")
		assert.Equal(t, model.EntryTitles[i], entry.Title)
	}

	// Ids from the old generation are gone entirely.
	for id := range oldIDs {
		_, ok := store.Get(id)
		assert.False(t, ok)
	}
}

func TestGenerateEntryID(t *testing.T) {
	a := generateEntryID()
	b := generateEntryID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
