package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/crushlist/crushlist/internal/compression"
	"github.com/crushlist/crushlist/internal/model"
)

func newTestCard(t *testing.T) *EntryCard {
	t.Helper()
	_ = test.NewApp()
	entry := &model.ChecklistEntry{
		ID:      "card-1",
		Title:   "Clear your desk surface",
		Insight: "Order outside, calm inside.",
	}
	return NewEntryCard(entry, NewLocalization())
}

func TestEntryCard_MinSizeFollowsCompression(t *testing.T) {
	card := newTestCard(t)

	rest := card.MinSize()
	assert.Equal(t, CardHeight+CardSpacing, rest.Height)

	card.ApplyCompression(compression.RenderValues{Height: 30, Scale: 1, SecondaryOpacity: 0.75, Tint: 0.75})
	assert.Equal(t, float32(30)+CardSpacing, card.MinSize().Height)

	// Fully compressed under height-shrink: the slot collapses to spacing.
	card.ApplyCompression(compression.RenderValues{Height: 0, Scale: 1, Tint: 1})
	assert.Equal(t, CardSpacing, card.MinSize().Height)
}

func TestEntryCard_FixedSlotUnderScale(t *testing.T) {
	card := newTestCard(t)

	// Scale and offset-pin strategies report a constant layout height; only
	// the drawn card shrinks.
	card.ApplyCompression(compression.RenderValues{Height: CardHeight, Scale: 0.85, SecondaryOpacity: 0, Tint: 1})
	assert.Equal(t, CardHeight+CardSpacing, card.MinSize().Height)
}

func TestEntryCard_InsightCallback(t *testing.T) {
	card := newTestCard(t)

	var shown *model.ChecklistEntry
	card.SetShowInsightCallback(func(e *model.ChecklistEntry) { shown = e })

	card.Tapped(nil)

	assert.NotNil(t, shown)
	assert.Equal(t, "card-1", shown.ID)
}

func TestEntryCard_UpdateEntry(t *testing.T) {
	card := newTestCard(t)

	checked := &model.ChecklistEntry{ID: "card-1", Title: "Clear your desk surface", Checked: true}
	card.UpdateEntry(checked)

	assert.True(t, card.Entry().Checked)

	// Nil updates are ignored rather than crashing the row.
	card.UpdateEntry(nil)
	assert.Equal(t, "card-1", card.Entry().ID)
}

func TestCompressionLine(t *testing.T) {
	_ = test.NewApp()

	line := NewCompressionLine(CompressionLineOffset)
	assert.Equal(t, CompressionLineOffset, line.OffsetY())
}
