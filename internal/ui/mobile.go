package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button sized for comfortable touch targets
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(btn.MinSize().Width, MobileButtonHeight))
	}

	return btn
}

// GetMobileSpacing returns appropriate spacing for the current device
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.IsMobileDevice() {
		return 16
	}
	return 8
}

// GetMobilePadding returns appropriate padding for the current device
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20
	}
	return 10
}

// IsPortrait returns true if device is in portrait orientation
func (m *MobileUI) IsPortrait() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}
