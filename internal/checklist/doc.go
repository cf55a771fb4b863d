package checklist

// Package checklist owns the ordered list of checklist entries. It is the
// single mutation point for the checked flag: the compression engine requests
// completion here, and the reset control swaps the whole generation at once.
