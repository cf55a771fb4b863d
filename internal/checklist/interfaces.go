package checklist

import (
	"github.com/crushlist/crushlist/internal/model"
)

// Checklister defines the interface for checklist access and mutation.
type Checklister interface {
	SetUpdateCallback(func(*model.ChecklistEntry))
	SetResetCallback(func())
	Entries() []*model.ChecklistEntry
	Get(id string) (*model.ChecklistEntry, bool)
	Len() int
	CheckedCount() int

	// SetChecked is the engine's sole mutation path; unknown ids are ignored
	SetChecked(id string, checked bool)

	// Reset atomically replaces the whole generation
	Reset()
}
