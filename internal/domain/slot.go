package domain

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// AvailableSlot is a derived view of one configured slot start.
// It is recomputed on every query and never stored.
type AvailableSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Duration  Duration
	Disabled  bool // slot is in the day's blocked set
}

// Label returns "HH:MM (<duration label>)"
func (s *AvailableSlot) Label() string {
	return fmt.Sprintf("%s (%s)", s.StartTime, s.Duration.Label())
}

// TimeRange returns "HH:MM - HH:MM"
func (s *AvailableSlot) TimeRange() string {
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

// IsBookable returns true if the slot can be selected
func (s *AvailableSlot) IsBookable() bool {
	return !s.Disabled
}
