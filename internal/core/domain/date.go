package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const timeOfDayLayout = "15:04"

// DateOf returns the calendar date of t, in t's location, as midnight UTC.
// Dates compare with Equal and Before regardless of the zone they came from.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing d.
func WeekStart(d time.Time) time.Time {
	d = DateOf(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// TimeOfDay is a wall clock time measured from midnight.
type TimeOfDay time.Duration

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, sec := t.Clock()
	return TimeOfDay(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second + time.Duration(t.Nanosecond()))
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, NewValidationError("due_time", fmt.Errorf("invalid time %q", s))
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int {
	return int(time.Duration(t) / time.Hour)
}

func (t TimeOfDay) Minute() int {
	return int(time.Duration(t) % time.Hour / time.Minute)
}

// On returns the wall clock time on the given date, expressed in UTC like DateOf.
func (t TimeOfDay) On(date time.Time) time.Time {
	return DateOf(date).Add(time.Duration(t))
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
