package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// LocalDateTimeLayout is the wire format for receipt dates. No zone is carried.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// LedgerDateLayout is the date format the ledger expects.
const LedgerDateLayout = "2006-01-02"

var localDateTimeLayouts = []string{
	LocalDateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	LedgerDateLayout,
}

// LocalDateTime is a wall-clock receipt timestamp. It is never converted between zones;
// the zero value means "unknown" and serializes as null.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime builds a LocalDateTime from calendar fields.
func NewLocalDateTime(year int, month time.Month, day, hour, minute, second int) LocalDateTime {
	return LocalDateTime{Time: time.Date(year, month, day, hour, minute, second, 0, time.UTC)}
}

// ParseLocalDateTime accepts the wire layout and a few looser forms LLMs tend to produce.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	for _, layout := range localDateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			// keep the wall clock, drop any offset
			return NewLocalDateTime(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return LocalDateTime{}, fmt.Errorf("unrecognized date %q", s)
}

// LedgerDate formats the date as YYYY-MM-DD.
func (d LocalDateTime) LedgerDate() string {
	return d.Format(LedgerDateLayout)
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(LocalDateTimeLayout))
}

func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = LocalDateTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = LocalDateTime{}
		return nil
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
