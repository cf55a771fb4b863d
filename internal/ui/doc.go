package ui

// Package ui contains the Fyne-based user interface for the application.
// It renders the checklist cards, feeds live scroll offsets into the
// compression engine, and wires completion side effects back to the store.
// All UI strings are localized via Localization.
