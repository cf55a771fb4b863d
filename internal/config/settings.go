package config

import (
	"fyne.io/fyne/v2"

	"github.com/crushlist/crushlist/internal/compression"
)

// RangeVariant selects how far a card travels past the line before full compression
type RangeVariant string

const (
	// RangeFullCard ramps compression over one full card height
	RangeFullCard RangeVariant = "full"

	// RangeHalfCard ramps compression over half a card height
	RangeHalfCard RangeVariant = "half"
)

// Settings keys for Fyne preferences
const (
	KeyCompressionThreshold = "compression_threshold"
	KeyRangeVariant         = "compression_range_variant"
	KeyMappingStrategy      = "mapping_strategy"
	KeyHapticsEnabled       = "haptics_enabled"
	KeyLanguage             = "app_language"
)

// Default values
const (
	DefaultThreshold      float64 = 0.8
	DefaultRangeVariant   = RangeFullCard
	DefaultStrategy       = "height-shrink"
	DefaultHapticsEnabled = true
	DefaultLanguage       = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCompressionThreshold returns the ratio at which entries auto-complete.
// Out-of-range stored values are replaced with the default rather than fed
// into the engine.
func (s *Settings) GetCompressionThreshold() float64 {
	value := s.app.Preferences().Float(KeyCompressionThreshold)
	if value <= 0 || value > 1 {
		s.SetCompressionThreshold(DefaultThreshold)
		return DefaultThreshold
	}
	return value
}

// SetCompressionThreshold sets the completion threshold, clamped to (0,1]
func (s *Settings) SetCompressionThreshold(threshold float64) {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	s.app.Preferences().SetFloat(KeyCompressionThreshold, threshold)
}

// GetRangeVariant returns the configured compression range variant
func (s *Settings) GetRangeVariant() RangeVariant {
	variant := RangeVariant(s.app.Preferences().String(KeyRangeVariant))
	if variant != RangeFullCard && variant != RangeHalfCard {
		s.SetRangeVariant(DefaultRangeVariant)
		return DefaultRangeVariant
	}
	return variant
}

// SetRangeVariant sets the compression range variant
func (s *Settings) SetRangeVariant(variant RangeVariant) {
	if variant != RangeFullCard && variant != RangeHalfCard {
		variant = DefaultRangeVariant
	}
	s.app.Preferences().SetString(KeyRangeVariant, string(variant))
}

// RangeFor resolves the variant into an absolute range for a card height
func (s *Settings) RangeFor(cardHeight float32) float32 {
	if s.GetRangeVariant() == RangeHalfCard {
		return cardHeight / 2
	}
	return cardHeight
}

// GetMappingStrategy returns the configured visual mapping strategy
func (s *Settings) GetMappingStrategy() compression.Strategy {
	value := s.app.Preferences().String(KeyMappingStrategy)
	if value == "" {
		s.SetMappingStrategy(compression.ParseStrategy(DefaultStrategy))
		return compression.ParseStrategy(DefaultStrategy)
	}
	return compression.ParseStrategy(value)
}

// SetMappingStrategy sets the visual mapping strategy
func (s *Settings) SetMappingStrategy(strategy compression.Strategy) {
	s.app.Preferences().SetString(KeyMappingStrategy, strategy.String())
}

// GetStrategyOptions returns the selectable mapping strategies
func (s *Settings) GetStrategyOptions() []compression.Strategy {
	return []compression.Strategy{
		compression.StrategyHeightShrink,
		compression.StrategyScale,
		compression.StrategyOffsetPin,
	}
}

// GetHapticsEnabled returns whether completion pulses are delivered
func (s *Settings) GetHapticsEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyHapticsEnabled, DefaultHapticsEnabled)
}

// SetHapticsEnabled toggles completion pulses
func (s *Settings) SetHapticsEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyHapticsEnabled, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// EngineConfig assembles a validated engine configuration from the stored
// preferences and the given layout geometry.
func (s *Settings) EngineConfig(cardHeight, lineOffset float32) (compression.Config, error) {
	return compression.NewConfig(
		cardHeight,
		lineOffset,
		s.RangeFor(cardHeight),
		float32(s.GetCompressionThreshold()),
		s.GetMappingStrategy(),
	)
}
