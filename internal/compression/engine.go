package compression

import (
	"log"

	"github.com/crushlist/crushlist/internal/model"
)

// CompleteFunc receives the id of an entry the moment it first crosses the
// completion threshold. It is called at most once per entry per generation.
type CompleteFunc func(entryID string)

// Result is the outcome of one Evaluate call
type Result struct {
	Ratio   float32 // current compression ratio in [0,1]
	Crossed bool    // true only on the frame the threshold was first reached
}

// track is the per-entry transient state behind the edge detector
type track struct {
	state     model.EntryState
	lastRatio float32
}

// Engine turns per-frame card offsets into compression ratios and drives the
// Pending -> Complete transition. All calls arrive from the layout callback
// on the UI goroutine; the engine is not safe for concurrent use.
type Engine struct {
	cfg        Config
	tracks     map[string]*track
	onComplete CompleteFunc
}

// NewEngine creates an engine for one validated configuration
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:    cfg,
		tracks: make(map[string]*track),
	}
}

// Config returns the engine's immutable configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// SetCompleteCallback sets the callback fired on threshold crossings
func (e *Engine) SetCompleteCallback(callback CompleteFunc) {
	e.onComplete = callback
}

// Compute maps a card's current top offset to a compression ratio. Pure and
// side-effect free; callers may invoke it every frame of a scroll gesture.
//
// A card whose top edge sits at or below the line yields 0. As the edge
// travels above the line the ratio ramps linearly, saturating at 1 once the
// card is a full Range past the line.
func (e *Engine) Compute(offsetY float32) float32 {
	distance := offsetY - e.cfg.LineOffset
	amount := clamp(-distance, 0, e.cfg.Range)
	return amount / e.cfg.Range
}

// Evaluate recomputes one entry's ratio and applies the completion rule.
// The transition is edge-triggered: it fires only on the frame where the
// ratio reaches the threshold from strictly below, so the haptic and store
// mutation run exactly once per crossing even though the layout callback
// re-reports a saturated ratio every subsequent frame.
func (e *Engine) Evaluate(entryID string, offsetY float32) Result {
	ratio := e.Compute(offsetY)

	tr, ok := e.tracks[entryID]
	if !ok {
		tr = &track{state: model.EntryStatePending}
		e.tracks[entryID] = tr
	}

	crossed := tr.state == model.EntryStatePending &&
		ratio >= e.cfg.Threshold &&
		tr.lastRatio < e.cfg.Threshold
	tr.lastRatio = ratio

	if crossed {
		tr.state = model.EntryStateComplete
		log.Printf("Entry %s crossed compression threshold at ratio %.2f", entryID, ratio)
		if e.onComplete != nil {
			e.onComplete(entryID)
		}
	}

	return Result{Ratio: ratio, Crossed: crossed}
}

// State returns the tracked machine state for an entry. Entries the engine
// has never evaluated report Pending.
func (e *Engine) State(entryID string) model.EntryState {
	if tr, ok := e.tracks[entryID]; ok {
		return tr.state
	}
	return model.EntryStatePending
}

// MarkComplete seeds an entry as already complete so a later Evaluate can
// never re-fire its side effects. Used when state arrives from outside the
// engine, e.g. an entry checked before the engine first sees it.
func (e *Engine) MarkComplete(entryID string) {
	tr, ok := e.tracks[entryID]
	if !ok {
		tr = &track{}
		e.tracks[entryID] = tr
	}
	tr.state = model.EntryStateComplete
}

// Forget drops the tracked state for one entry
func (e *Engine) Forget(entryID string) {
	delete(e.tracks, entryID)
}

// Reset drops all tracked state. Called when the checklist swaps generations;
// the new entries carry fresh ids and start Pending.
func (e *Engine) Reset() {
	e.tracks = make(map[string]*track)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
