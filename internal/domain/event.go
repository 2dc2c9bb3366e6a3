package domain

import "github.com/m04kA/SMC-AgendaService/pkg/types"

// ScheduledEvent is an appointment already on a professional's calendar.
// It is independent of slot availability: an event does not block a slot.
type ScheduledEvent struct {
	ID         string
	Title      string
	StartTime  types.TimeString
	Duration   Duration
	ClientName string
	Location   *string
}

// EndTime returns the start shifted by the event duration
func (e *ScheduledEvent) EndTime() (types.TimeString, error) {
	return e.StartTime.AddMinutes(e.Duration.Minutes())
}
