package compression

// RenderValues are the presentation outputs derived from a compression ratio.
// They are recomputed every layout pass and never stored.
type RenderValues struct {
	Height           float32 // effective card height
	Scale            float32 // 1 at rest; shrinks toward MinScale under StrategyScale
	OffsetY          float32 // extra downward translation pinning the card to the line
	SecondaryOpacity float32 // opacity of the insight text, fades out as ratio rises
	Tint             float32 // 0..1 interpolation toward the completed background color
}

// Render maps a compression ratio onto the visual treatment selected by the
// configured strategy. The ratio is clamped defensively so a caller feeding
// raw values cannot produce a negative height.
func (e *Engine) Render(ratio float32) RenderValues {
	ratio = clamp(ratio, 0, 1)

	rv := RenderValues{
		Height:           e.cfg.CardHeight,
		Scale:            1,
		SecondaryOpacity: 1 - ratio,
		Tint:             ratio,
	}

	switch e.cfg.Strategy {
	case StrategyScale:
		rv.Scale = 1 - (1-MinScale)*ratio
	case StrategyOffsetPin:
		// Translate the card back toward the line by the distance it has
		// traveled past it, so it appears held in place while compressing.
		rv.OffsetY = ratio * e.cfg.Range
		rv.Scale = 1 - (1-MinScale)*ratio
	default: // StrategyHeightShrink
		rv.Height = e.cfg.CardHeight * (1 - ratio)
	}

	return rv
}
