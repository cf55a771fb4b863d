package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/crushlist/crushlist/internal/compression"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestCompressionThreshold(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	threshold := settings.GetCompressionThreshold()
	if threshold != DefaultThreshold {
		t.Errorf("Expected default threshold %v, got %v", DefaultThreshold, threshold)
	}

	// Test setting custom value
	settings.SetCompressionThreshold(0.99)
	if got := settings.GetCompressionThreshold(); got != 0.99 {
		t.Errorf("Expected threshold 0.99, got %v", got)
	}

	// Test boundary values — invalid thresholds fall back to the default
	settings.SetCompressionThreshold(0)
	if got := settings.GetCompressionThreshold(); got != DefaultThreshold {
		t.Errorf("Expected zero threshold to reset to default, got %v", got)
	}

	settings.SetCompressionThreshold(1.5)
	if got := settings.GetCompressionThreshold(); got != DefaultThreshold {
		t.Errorf("Expected over-range threshold to reset to default, got %v", got)
	}

	settings.SetCompressionThreshold(1.0)
	if got := settings.GetCompressionThreshold(); got != 1.0 {
		t.Errorf("Expected threshold 1.0 to be accepted, got %v", got)
	}
}

func TestRangeVariant(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetRangeVariant(); got != DefaultRangeVariant {
		t.Errorf("Expected default range variant %s, got %s", DefaultRangeVariant, got)
	}

	settings.SetRangeVariant(RangeHalfCard)
	if got := settings.GetRangeVariant(); got != RangeHalfCard {
		t.Errorf("Expected range variant %s, got %s", RangeHalfCard, got)
	}

	settings.SetRangeVariant("bogus")
	if got := settings.GetRangeVariant(); got != DefaultRangeVariant {
		t.Errorf("Expected bogus variant to reset to default, got %s", got)
	}
}

func TestRangeFor(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetRangeVariant(RangeFullCard)
	if got := settings.RangeFor(120); got != 120 {
		t.Errorf("Expected full-card range 120, got %v", got)
	}

	settings.SetRangeVariant(RangeHalfCard)
	if got := settings.RangeFor(120); got != 60 {
		t.Errorf("Expected half-card range 60, got %v", got)
	}
}

func TestMappingStrategy(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetMappingStrategy(); got != compression.StrategyHeightShrink {
		t.Errorf("Expected default strategy height-shrink, got %s", got)
	}

	settings.SetMappingStrategy(compression.StrategyOffsetPin)
	if got := settings.GetMappingStrategy(); got != compression.StrategyOffsetPin {
		t.Errorf("Expected strategy offset-pin, got %s", got)
	}

	if len(settings.GetStrategyOptions()) != 3 {
		t.Error("Expected three selectable strategies")
	}
}

func TestHapticsEnabled(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetHapticsEnabled() {
		t.Error("Expected haptics enabled by default")
	}

	settings.SetHapticsEnabled(false)
	if settings.GetHapticsEnabled() {
		t.Error("Expected haptics disabled after SetHapticsEnabled(false)")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}

	options := settings.GetLanguageOptions()
	if len(options) == 0 {
		t.Error("Language options should not be empty")
	}
}

func TestEngineConfig(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetCompressionThreshold(0.8)
	settings.SetRangeVariant(RangeHalfCard)
	settings.SetMappingStrategy(compression.StrategyScale)

	cfg, err := settings.EngineConfig(120, 150)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Range != 60 {
		t.Errorf("Expected range 60, got %v", cfg.Range)
	}
	if cfg.Threshold != 0.8 {
		t.Errorf("Expected threshold 0.8, got %v", cfg.Threshold)
	}
	if cfg.Strategy != compression.StrategyScale {
		t.Errorf("Expected scale strategy, got %s", cfg.Strategy)
	}
}
