package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/crushlist/crushlist/internal/checklist"
	"github.com/crushlist/crushlist/internal/compression"
	"github.com/crushlist/crushlist/internal/config"
	"github.com/crushlist/crushlist/internal/haptics"
	"github.com/crushlist/crushlist/internal/model"
)

// Overlay alpha ceiling for the reset fade
const resetOverlayMaxAlpha float32 = 200

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	store        checklist.Checklister
	engine       *compression.Engine
	haptics      *haptics.Service
	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI

	// UI components
	titleLabel    *widget.Label
	progressLabel *widget.Label
	resetBtn      *widget.Button
	settingsBtn   *widget.Button
	cardsBox      *fyne.Container
	scroll        *container.Scroll
	fadeOverlay   *canvas.Rectangle

	cards     []*EntryCard
	cardIndex map[string]*EntryCard

	resetting bool
}

// NewRootUI creates the main UI and wires the store, engine and haptics
func NewRootUI(window fyne.Window, app fyne.App, store checklist.Checklister,
	engine *compression.Engine, hapticsSvc *haptics.Service, settings *config.Settings) *RootUI {

	ui := &RootUI{
		window:       window,
		app:          app,
		store:        store,
		engine:       engine,
		haptics:      hapticsSvc,
		settings:     settings,
		localization: NewLocalization(),
		mobileUI:     NewMobileUI(app),
		cardIndex:    make(map[string]*EntryCard),
	}

	ui.localization.SetLanguage(settings.GetLanguage())

	store.SetUpdateCallback(ui.onEntryUpdate)
	store.SetResetCallback(ui.onStoreReset)
	engine.SetCompleteCallback(ui.onEntryComplete)

	ui.setupUI()
	ui.rebuildCards()

	return ui
}

// setupUI creates the window content
func (ui *RootUI) setupUI() {
	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.progressLabel = widget.NewLabel("")
	ui.progressLabel.Alignment = fyne.TextAlignTrailing

	ui.resetBtn = ui.mobileUI.CreateMobileButton(
		IconReset+" "+ui.localization.GetText(KeyReset), ui.onResetClick)
	ui.settingsBtn = ui.mobileUI.CreateMobileButton(IconSettings, ui.onShowSettings)

	header := container.NewBorder(nil, widget.NewSeparator(), ui.titleLabel,
		container.NewHBox(ui.progressLabel, ui.settingsBtn, ui.resetBtn))

	// The list content starts one line-offset below the viewport top so a
	// resting card sits exactly on the threshold line with ratio 0.
	topSpacer := canvas.NewRectangle(color.Transparent)
	topSpacer.SetMinSize(fyne.NewSize(1, CompressionLineOffset))

	ui.cardsBox = container.NewVBox(topSpacer)
	ui.scroll = container.NewScroll(ui.cardsBox)
	ui.scroll.OnScrolled = ui.onScrolled

	ui.fadeOverlay = canvas.NewRectangle(color.Transparent)
	ui.fadeOverlay.Hide()

	content := container.NewStack(
		ui.scroll,
		NewCompressionLine(CompressionLineOffset),
		ui.fadeOverlay,
	)

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, content))
}

// rebuildCards recreates the card widgets from the store's current generation
func (ui *RootUI) rebuildCards() {
	entries := ui.store.Entries()

	ui.cards = ui.cards[:0]
	ui.cardIndex = make(map[string]*EntryCard, len(entries))

	objects := make([]fyne.CanvasObject, 0, len(entries)+1)
	objects = append(objects, ui.cardsBox.Objects[0]) // keep the top spacer

	for _, entry := range entries {
		card := NewEntryCard(entry, ui.localization)
		card.SetShowInsightCallback(ui.showInsight)
		if entry.Checked {
			// Checked entries must never re-fire completion side effects.
			ui.engine.MarkComplete(entry.ID)
		}
		ui.cards = append(ui.cards, card)
		ui.cardIndex[entry.ID] = card
		objects = append(objects, card)
	}

	ui.cardsBox.Objects = objects
	ui.cardsBox.Refresh()
	ui.updateProgress()
}

// onScrolled is the per-frame layout callback: every card's live viewport
// offset is pushed through the engine, and the resulting render values are
// applied immediately.
func (ui *RootUI) onScrolled(offset fyne.Position) {
	for _, card := range ui.cards {
		viewportY := card.Position().Y - offset.Y
		result := ui.engine.Evaluate(card.ID(), viewportY)
		card.ApplyCompression(ui.engine.Render(result.Ratio))
	}
}

// onEntryComplete fires exactly once per entry, on the frame its ratio
// first crosses the threshold.
func (ui *RootUI) onEntryComplete(entryID string) {
	log.Printf("Entry %s auto-completed", entryID)

	ui.haptics.Impact(haptics.StrongImpact)

	if card, ok := ui.cardIndex[entryID]; ok {
		card.PlayCheckAnimation()
	}

	ui.store.SetChecked(entryID, true)
}

// onEntryUpdate reflects a single-entry mutation in the UI
func (ui *RootUI) onEntryUpdate(entry *model.ChecklistEntry) {
	if card, ok := ui.cardIndex[entry.ID]; ok {
		card.UpdateEntry(entry)
	}
	ui.updateProgress()
}

// onStoreReset rebuilds the UI against the fresh generation
func (ui *RootUI) onStoreReset() {
	ui.engine.Reset()
	ui.rebuildCards()
	ui.scroll.ScrollToTop()
}

func (ui *RootUI) updateProgress() {
	checked := ui.store.CheckedCount()
	total := ui.store.Len()

	text := fmt.Sprintf(DoneCountFormat, checked, total)
	if total > 0 && checked == total {
		text = IconCheck + " " + text
	}
	ui.progressLabel.SetText(text)
}

// onResetClick swaps the checklist inside a fade so the replacement reads
// as one smooth transition instead of a flash-cut.
func (ui *RootUI) onResetClick() {
	if ui.resetting {
		return
	}
	ui.resetting = true
	ui.fadeOverlay.Show()

	fadeIn := fyne.NewAnimation(ResetFadeDuration, func(p float32) {
		ui.setOverlayAlpha(p)
		if p >= 1 {
			ui.performReset()
		}
	})
	fadeIn.Curve = fyne.AnimationEaseInOut
	fadeIn.Start()
}

func (ui *RootUI) performReset() {
	ui.store.Reset()

	fadeOut := fyne.NewAnimation(ResetFadeDuration, func(p float32) {
		ui.setOverlayAlpha(1 - p)
		if p >= 1 {
			ui.fadeOverlay.Hide()
			ui.resetting = false
		}
	})
	fadeOut.Curve = fyne.AnimationEaseInOut
	fadeOut.Start()
}

func (ui *RootUI) setOverlayAlpha(p float32) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	ui.fadeOverlay.FillColor = color.RGBA{A: uint8(p * resetOverlayMaxAlpha)}
	canvas.Refresh(ui.fadeOverlay)
}

// showInsight pops up the entry's advisory text
func (ui *RootUI) showInsight(entry *model.ChecklistEntry) {
	label := widget.NewLabel(entry.GetDisplayInsight())
	label.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(
		IconInsight+" "+entry.GetDisplayTitle(),
		ui.localization.GetText(KeyClose),
		label,
		ui.window,
	)
	d.Resize(fyne.NewSize(InsightDialogWidth, 0))
	d.Show()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings rebuilds the engine from the stored preferences and
// refreshes translated texts. Called after the settings dialog saves.
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())

	cfg, err := ui.settings.EngineConfig(CardHeight, CompressionLineOffset)
	if err != nil {
		log.Printf("Rejecting engine configuration: %v", err)
		return
	}

	ui.engine = compression.NewEngine(cfg)
	ui.engine.SetCompleteCallback(ui.onEntryComplete)

	// Already-checked entries stay terminal across reconfiguration.
	for _, entry := range ui.store.Entries() {
		if entry.Checked {
			ui.engine.MarkComplete(entry.ID)
		}
	}

	ui.haptics.SetEnabled(ui.settings.GetHapticsEnabled())
	ui.refreshUITexts()
	ui.onScrolled(ui.scroll.Offset)
}

// refreshUITexts updates all visible strings after a language change
func (ui *RootUI) refreshUITexts() {
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.resetBtn.SetText(IconReset + " " + ui.localization.GetText(KeyReset))
	ui.updateProgress()
}
