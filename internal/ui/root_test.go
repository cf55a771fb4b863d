package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crushlist/crushlist/internal/checklist"
	"github.com/crushlist/crushlist/internal/compression"
	"github.com/crushlist/crushlist/internal/config"
	"github.com/crushlist/crushlist/internal/haptics"
	"github.com/crushlist/crushlist/internal/model"
)

func newTestUI(t *testing.T) (*RootUI, *checklist.Store) {
	t.Helper()

	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	cfg, err := settings.EngineConfig(CardHeight, CompressionLineOffset)
	require.NoError(t, err)

	store := checklist.NewStore()
	ui := NewRootUI(window, app, store,
		compression.NewEngine(cfg),
		haptics.NewService(false),
		settings)

	return ui, store
}

func TestNewRootUI(t *testing.T) {
	ui, store := newTestUI(t)

	assert.Len(t, ui.cards, len(model.EntryTitles))
	assert.Equal(t, store.Len(), len(ui.cardIndex))
	assert.Equal(t, "0 / 16", ui.progressLabel.Text)
}

func TestRootUI_EntryComplete(t *testing.T) {
	ui, store := newTestUI(t)
	entry := store.Entries()[0]

	ui.onEntryComplete(entry.ID)

	got, ok := store.Get(entry.ID)
	require.True(t, ok)
	assert.True(t, got.Checked)
	assert.Equal(t, "1 / 16", ui.progressLabel.Text)
}

func TestRootUI_CompletionFlowsThroughEngine(t *testing.T) {
	ui, store := newTestUI(t)
	entry := store.Entries()[0]

	// Drive the engine directly with a crossing sequence for the first card.
	ui.engine.Evaluate(entry.ID, CompressionLineOffset) // resting on the line
	result := ui.engine.Evaluate(entry.ID, CompressionLineOffset-CardHeight)

	assert.True(t, result.Crossed)
	got, _ := store.Get(entry.ID)
	assert.True(t, got.Checked, "engine crossing must mutate the store")

	// Further saturated frames change nothing.
	result = ui.engine.Evaluate(entry.ID, CompressionLineOffset-2*CardHeight)
	assert.False(t, result.Crossed)
}

func TestRootUI_Reset(t *testing.T) {
	ui, store := newTestUI(t)

	oldIDs := make([]string, 0, store.Len())
	for _, entry := range store.Entries() {
		oldIDs = append(oldIDs, entry.ID)
		ui.onEntryComplete(entry.ID)
	}
	require.Equal(t, store.Len(), store.CheckedCount())

	store.Reset()

	assert.Equal(t, "0 / 16", ui.progressLabel.Text)
	assert.Len(t, ui.cards, len(model.EntryTitles))

	for _, id := range oldIDs {
		_, ok := ui.cardIndex[id]
		assert.False(t, ok, "cards of the prior generation must be gone")
	}

	// The fresh generation can complete again from scratch.
	entry := store.Entries()[0]
	result := ui.engine.Evaluate(entry.ID, CompressionLineOffset-CardHeight)
	assert.True(t, result.Crossed)
}

func TestRootUI_ApplySettings(t *testing.T) {
	ui, store := newTestUI(t)
	entry := store.Entries()[0]

	ui.onEntryComplete(entry.ID)

	ui.settings.SetCompressionThreshold(0.99)
	ui.settings.SetMappingStrategy(compression.StrategyScale)
	ui.applySettings()

	assert.Equal(t, float32(0.99), ui.engine.Config().Threshold)
	assert.Equal(t, compression.StrategyScale, ui.engine.Config().Strategy)

	// The checked entry stays terminal in the rebuilt engine.
	result := ui.engine.Evaluate(entry.ID, CompressionLineOffset-CardHeight)
	assert.False(t, result.Crossed)
	assert.Equal(t, model.EntryStateComplete, ui.engine.State(entry.ID))
}

func TestRootUI_RefreshUITexts(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.settings.SetLanguage("ru")
	ui.applySettings()

	assert.Contains(t, ui.resetBtn.Text, "Сбросить")
}
