package model

import (
	"strings"
	"time"
)

// ChecklistEntry represents a single card in the checklist
type ChecklistEntry struct {
	ID        string
	Title     string    // display text, immutable after creation
	Insight   string    // advisory text, assigned once at creation
	Checked   bool      // monotonic: false -> true at most once per generation
	CheckedAt time.Time // when the entry was auto-completed, zero if pending
}

// State derives the entry's machine state from its checked flag
func (ce *ChecklistEntry) State() EntryState {
	if ce.Checked {
		return EntryStateComplete
	}
	return EntryStatePending
}

// GetDisplayTitle returns the title cleaned up for single-line display
func (ce *ChecklistEntry) GetDisplayTitle() string {
	title := strings.ReplaceAll(ce.Title, "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\t", " ")
	return strings.TrimSpace(title)
}

// GetDisplayInsight returns the insight text, or a placeholder when empty
func (ce *ChecklistEntry) GetDisplayInsight() string {
	insight := strings.TrimSpace(ce.Insight)
	if insight == "" {
		return "—"
	}
	return insight
}
