package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
	minutesPerDay     = 24 * 60
)

var (
	// ErrInvalidTimeFormat is returned when a value is not a 24-hour HH:MM time of day
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOverflow is returned when adding minutes would cross midnight
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString is a canonical 24-hour time of day ("09:00").
// Canonical values compare correctly as plain strings.
type TimeString string

// NewTimeString takes the hour and minute of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses "HH:MM" (or "HH:MM:SS" with zero seconds) into canonical form
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	layout := timeLayout
	if len(s) == len(timeLayoutSeconds) {
		layout = timeLayoutSeconds
	}

	parsed, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if parsed.Second() != 0 {
		return "", fmt.Errorf("%w: %q has seconds", ErrInvalidTimeFormat, s)
	}

	return NewTimeString(parsed), nil
}

// String returns the HH:MM representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is canonical HH:MM
func (t TimeString) Validate() error {
	canonical, err := NewTimeStringFromString(string(t))
	if err != nil {
		return err
	}
	if canonical != t {
		return fmt.Errorf("%w: %q is not zero-padded", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes returns minutes since midnight
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns t shifted by minutes within the same day.
// Results at or past midnight are rejected with ErrTimeOverflow.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	start, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := start + minutes
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOverflow, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// Scan implements sql.Scanner for TIME columns
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
