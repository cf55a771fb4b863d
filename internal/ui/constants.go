package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReset    = "↺"
	IconCheck    = "✓"
	IconInsight  = "💡"
	IconLanguage = "🌐"
)

// Text fragments
const (
	DashPlaceholder  = "—"
	DoneCountFormat  = "%d / %d"
	ThresholdDisplay = "%.2f"
)

// Card geometry. CardHeight and CompressionLineOffset feed the engine config;
// the line offset is measured in the scroll viewport's coordinate space.
const (
	CardHeight            float32 = 120
	CardSpacing           float32 = 8
	CardCornerInset       float32 = 12
	CardPadding           float32 = 14
	CompressionLineOffset float32 = 150
	MinCompressedHeight   float32 = 0

	CardMinWidth float32 = 300

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Window sizing (portrait, phone-shaped)
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 760
)

// Animation durations
const (
	CheckAnimationDuration = 300 * time.Millisecond
	ResetFadeDuration      = 100 * time.Millisecond
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 380
	InsightDialogWidth   float32 = 320
)
