package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDateFormat is returned when a value is not a YYYY-MM-DD calendar date
var ErrInvalidDateFormat = errors.New("invalid date key format")

// DateKey is a calendar date in YYYY-MM-DD form, without time or zone.
// Canonical keys sort chronologically as plain strings.
type DateKey string

// NewDateKey takes the calendar date of t in its own location
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(dateLayout))
}

// ParseDateKey parses and canonicalizes a YYYY-MM-DD string
func ParseDateKey(s string) (DateKey, error) {
	s = strings.TrimSpace(s)

	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	key := NewDateKey(parsed)
	if string(key) != s {
		return "", fmt.Errorf("%w: %q is not canonical", ErrInvalidDateFormat, s)
	}
	return key, nil
}

// String returns the YYYY-MM-DD representation
func (d DateKey) String() string {
	return string(d)
}

// IsZero reports whether the key is empty
func (d DateKey) IsZero() bool {
	return d == ""
}

// Time returns midnight UTC of the date, or the zero time for an invalid key
func (d DateKey) Time() time.Time {
	parsed, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return parsed
}

// AddDays returns the key offset by n calendar days
func (d DateKey) AddDays(n int) DateKey {
	return NewDateKey(d.Time().AddDate(0, 0, n))
}

// Scan implements sql.Scanner for DATE columns
func (d *DateKey) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDateKey(v)
		return nil
	case string:
		key, err := ParseDateKey(v)
		if err != nil {
			return err
		}
		*d = key
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDateFormat, src)
	}
}

// Value implements driver.Valuer
func (d DateKey) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return string(d), nil
}
