package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/crushlist/crushlist/internal/compression"
	"github.com/crushlist/crushlist/internal/config"
)

// SettingsDialog exposes the compression variants as runtime configuration
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onApplied    func()

	// UI components
	thresholdEntry *widget.Entry
	rangeSelect    *widget.Select
	strategySelect *widget.Select
	hapticsCheck   *widget.Check
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization,
	window fyne.Window, onApplied func()) *SettingsDialog {

	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onApplied:    onApplied,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder("0.01 – 1.00")

	sd.rangeSelect = widget.NewSelect([]string{
		loc.GetText(KeyRangeFull),
		loc.GetText(KeyRangeHalf),
	}, nil)

	strategyOptions := make([]string, 0, 3)
	for _, strategy := range sd.settings.GetStrategyOptions() {
		strategyOptions = append(strategyOptions, sd.strategyLabel(strategy))
	}
	sd.strategySelect = widget.NewSelect(strategyOptions, nil)

	sd.hapticsCheck = widget.NewCheck(loc.GetText(KeyHaptics), nil)

	langOptions := make([]string, 0)
	for _, name := range sd.settings.GetLanguageOptions() {
		langOptions = append(langOptions, name)
	}
	sd.languageSelect = widget.NewSelect(langOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyThreshold)),
		sd.thresholdEntry,
		widget.NewLabel(loc.GetText(KeyRangeVariant)),
		sd.rangeSelect,
		widget.NewLabel(loc.GetText(KeyStrategy)),
		sd.strategySelect,
		sd.hapticsCheck,
		widget.NewLabel(IconLanguage+" "+loc.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onConfirm,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings fills the form from stored preferences
func (sd *SettingsDialog) loadCurrentSettings() {
	loc := sd.localization

	sd.thresholdEntry.SetText(fmt.Sprintf(ThresholdDisplay, sd.settings.GetCompressionThreshold()))

	if sd.settings.GetRangeVariant() == config.RangeHalfCard {
		sd.rangeSelect.SetSelected(loc.GetText(KeyRangeHalf))
	} else {
		sd.rangeSelect.SetSelected(loc.GetText(KeyRangeFull))
	}

	sd.strategySelect.SetSelected(sd.strategyLabel(sd.settings.GetMappingStrategy()))
	sd.hapticsCheck.SetChecked(sd.settings.GetHapticsEnabled())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onConfirm validates and persists the form values
func (sd *SettingsDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	threshold, err := strconv.ParseFloat(sd.thresholdEntry.Text, 64)
	if err != nil || threshold <= 0 || threshold > 1 {
		dialog.ShowInformation(
			sd.localization.GetText(KeySettings),
			sd.localization.GetText(KeyInvalidValue),
			sd.window,
		)
		return
	}
	sd.settings.SetCompressionThreshold(threshold)

	if sd.rangeSelect.Selected == sd.localization.GetText(KeyRangeHalf) {
		sd.settings.SetRangeVariant(config.RangeHalfCard)
	} else {
		sd.settings.SetRangeVariant(config.RangeFullCard)
	}

	for _, strategy := range sd.settings.GetStrategyOptions() {
		if sd.strategyLabel(strategy) == sd.strategySelect.Selected {
			sd.settings.SetMappingStrategy(strategy)
			break
		}
	}

	sd.settings.SetHapticsEnabled(sd.hapticsCheck.Checked)

	for code, name := range sd.settings.GetLanguageOptions() {
		if name == sd.languageSelect.Selected {
			sd.settings.SetLanguage(code)
			break
		}
	}

	if sd.onApplied != nil {
		sd.onApplied()
	}
}

func (sd *SettingsDialog) strategyLabel(strategy compression.Strategy) string {
	switch strategy {
	case compression.StrategyScale:
		return sd.localization.GetText(KeyStrategyScale)
	case compression.StrategyOffsetPin:
		return sd.localization.GetText(KeyStrategyPin)
	default:
		return sd.localization.GetText(KeyStrategyHeight)
	}
}
