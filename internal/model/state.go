package model

// EntryState represents the completion state of a checklist entry
type EntryState string

const (
	// EntryStatePending means the entry has not yet crossed the compression threshold
	EntryStatePending EntryState = "Pending"

	// EntryStateComplete means the entry was marked done; terminal until a full reset
	EntryStateComplete EntryState = "Complete"
)

// String returns the string representation of EntryState
func (es EntryState) String() string {
	return string(es)
}

// IsTerminal returns true if the state admits no further transitions
func (es EntryState) IsTerminal() bool {
	return es == EntryStateComplete
}
