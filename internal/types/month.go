// Package types implements special types for the Pockets backend.
package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.In(time.UTC).Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%q is not a month in YYYY-MM format", s)
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of m.String().
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for "YYYY-MM"
// strings. Empty strings and null leave the month unchanged.
func (m *Month) UnmarshalJSON(data []byte) error {
	var s string
	if string(data) == "null" {
		return nil
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		return nil
	}

	month, err := ParseMonth(s)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}
