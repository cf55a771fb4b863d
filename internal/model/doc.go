package model

// Package model defines domain data structures used across the app: checklist
// entries, entry state enums, and the static title/insight catalog. Structures
// are designed for direct binding in the UI and explicit state transitions.
