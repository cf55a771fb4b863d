// Package haptics is the fire-and-forget impact feedback collaborator.
// Delivery failure is non-fatal and unreported; on desktop the pulses are
// simply dropped.
package haptics

import (
	"log"

	"fyne.io/fyne/v2"
)

// StrongImpact is the intensity used for completion pulses
const StrongImpact float64 = 1.0

// impactFunc is the platform delivery hook. Mobile builds install a real
// implementation; the default drops the pulse.
var impactFunc func(intensity float64)

// Service delivers impact feedback pulses
type Service struct {
	enabled bool
	mobile  bool
}

// NewService creates the haptics collaborator for the current device
func NewService(enabled bool) *Service {
	return &Service{
		enabled: enabled,
		mobile:  fyne.CurrentDevice().IsMobile(),
	}
}

// SetEnabled toggles pulse delivery at runtime
func (s *Service) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Impact emits one pulse at the given intensity. Never blocks, never errors.
func (s *Service) Impact(intensity float64) {
	if !s.enabled {
		return
	}
	if !s.mobile || impactFunc == nil {
		log.Printf("Haptic pulse dropped (no delivery path), intensity=%.1f", intensity)
		return
	}
	impactFunc(intensity)
}
