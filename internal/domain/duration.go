package domain

import "strings"

// Duration is one of the supported session length codes
type Duration string

const (
	Duration30 Duration = "30"
	Duration60 Duration = "60"
)

type durationInfo struct {
	minutes int
	label   string
}

var durationCatalog = map[Duration]durationInfo{
	Duration30: {minutes: 30, label: "30 минут"},
	Duration60: {minutes: 60, label: "1 час"},
}

// durationPriority is the order tried when neither the requested nor the
// default duration has availability. Longer sessions first.
var durationPriority = [...]Duration{Duration60, Duration30}

// DurationPriority returns the fallback order used by duration resolution
func DurationPriority() []Duration {
	return append([]Duration(nil), durationPriority[:]...)
}

// SupportedDurations returns every duration in ascending length
func SupportedDurations() []Duration {
	return []Duration{Duration30, Duration60}
}

// ParseDuration accepts only catalog codes; surrounding spaces are ignored
func ParseDuration(s string) (Duration, bool) {
	d := Duration(strings.TrimSpace(s))
	if !d.IsValid() {
		return "", false
	}
	return d, true
}

// IsValid reports whether d belongs to the catalog
func (d Duration) IsValid() bool {
	_, ok := durationCatalog[d]
	return ok
}

// Minutes returns the session length, 0 for unknown codes
func (d Duration) Minutes() int {
	return durationCatalog[d].minutes
}

// Label returns the human-readable name, empty for unknown codes
func (d Duration) Label() string {
	return durationCatalog[d].label
}

func (d Duration) String() string {
	return string(d)
}
