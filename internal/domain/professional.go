package domain

import (
	"sort"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// DayAvailability holds the offered slot starts of one day for one duration.
// Blocked is always a subset of Slots (enforced when seed data is loaded).
type DayAvailability struct {
	Slots   []types.TimeString
	Blocked []types.TimeString
}

// IsOffered returns true if the time is one of the configured slot starts
func (d DayAvailability) IsOffered(t types.TimeString) bool {
	for _, slot := range d.Slots {
		if slot == t {
			return true
		}
	}
	return false
}

// IsBlocked returns true if the time is marked as taken
func (d DayAvailability) IsBlocked(t types.TimeString) bool {
	for _, blocked := range d.Blocked {
		if blocked == t {
			return true
		}
	}
	return false
}

// DaySchedule maps a calendar date to the day's availability
type DaySchedule map[types.DateKey]DayAvailability

// AvailabilityCalendar is the two-level lookup duration -> date -> day
type AvailabilityCalendar map[Duration]DaySchedule

// HasEntries returns true if at least one date is configured for the duration
func (c AvailabilityCalendar) HasEntries(d Duration) bool {
	return len(c[d]) > 0
}

// Day returns the availability for an exact date under a duration
func (c AvailabilityCalendar) Day(d Duration, date types.DateKey) (DayAvailability, bool) {
	schedule, ok := c[d]
	if !ok {
		return DayAvailability{}, false
	}
	day, ok := schedule[date]
	return day, ok
}

// Dates returns the configured dates for a duration in ascending order
func (c AvailabilityCalendar) Dates(d Duration) []types.DateKey {
	schedule := c[d]
	dates := make([]types.DateKey, 0, len(schedule))
	for date := range schedule {
		dates = append(dates, date)
	}
	// канонические YYYY-MM-DD сортируются хронологически как строки
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates
}

// Professional is a bookable professional with their availability.
// Records are seeded once and must be treated as read-only.
type Professional struct {
	ID              string
	Name            string
	Email           string
	Bio             string
	Address         string
	AvatarURL       string
	DefaultDuration Duration
	Availability    AvailabilityCalendar
}

// PublicProfile is the redacted projection used in directory listings
type PublicProfile struct {
	ID              string
	Name            string
	Email           string
	AvatarURL       string
	DefaultDuration Duration
}

// Public returns the redacted projection of the professional
func (p *Professional) Public() PublicProfile {
	return PublicProfile{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		AvatarURL:       p.AvatarURL,
		DefaultDuration: p.DefaultDuration,
	}
}
