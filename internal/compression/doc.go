package compression

// Package compression maps a card's live scroll offset to a compression
// ratio and decides, per entry, when sustained travel past the threshold
// line should auto-complete the entry. The mapping is pure and recomputed
// every layout pass; completion is edge-triggered so its side effects fire
// exactly once per crossing.
