package compression

import "fmt"

// Strategy selects how a compression ratio maps onto card render values
type Strategy int

const (
	// StrategyHeightShrink reduces the card's effective height as it compresses
	StrategyHeightShrink Strategy = iota

	// StrategyScale keeps the height and shrinks the card with a scale transform
	StrategyScale

	// StrategyOffsetPin translates the card downward so it stays pinned near the line
	StrategyOffsetPin
)

// String returns the string representation of Strategy
func (s Strategy) String() string {
	switch s {
	case StrategyHeightShrink:
		return "height-shrink"
	case StrategyScale:
		return "scale"
	case StrategyOffsetPin:
		return "offset-pin"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a stored preference value back into a Strategy,
// falling back to height-shrink for anything unrecognized.
func ParseStrategy(value string) Strategy {
	switch value {
	case "scale":
		return StrategyScale
	case "offset-pin":
		return StrategyOffsetPin
	default:
		return StrategyHeightShrink
	}
}

// Geometry and scaling constants
const (
	// MinRange is the smallest accepted compression range; a zero range would
	// divide by zero in the ratio computation.
	MinRange float32 = 1.0

	// MinScale is the scale a card shrinks toward under StrategyScale
	MinScale float32 = 0.85

	// DefaultThreshold is the ratio at which an entry auto-completes
	DefaultThreshold float32 = 0.8
)

// Config holds the fixed layout geometry for one session. Values are
// validated once at construction; Compute never re-checks them.
type Config struct {
	CardHeight float32  // height of an uncompressed card
	LineOffset float32  // Y coordinate of the threshold line in viewport space
	Range      float32  // travel past the line over which the ratio ramps 0..1
	Threshold  float32  // ratio in (0,1] at which completion triggers
	Strategy   Strategy // visual mapping applied by Render
}

// NewConfig validates and normalizes a configuration. The range is clamped
// up to MinRange; an out-of-range threshold is a configuration error.
func NewConfig(cardHeight, lineOffset, compressionRange, threshold float32, strategy Strategy) (Config, error) {
	if cardHeight <= 0 {
		return Config{}, fmt.Errorf("card height must be positive, got %v", cardHeight)
	}
	if threshold <= 0 || threshold > 1 {
		return Config{}, fmt.Errorf("compression threshold must be in (0,1], got %v", threshold)
	}
	if compressionRange < MinRange {
		compressionRange = MinRange
	}

	return Config{
		CardHeight: cardHeight,
		LineOffset: lineOffset,
		Range:      compressionRange,
		Threshold:  threshold,
		Strategy:   strategy,
	}, nil
}
