package time

import (
	"fmt"
	"strconv"
	"time"
)

const (
	Day = 24 * time.Hour
)

// Layouts are the accepted timestamp formats, tried in order.
var Layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Location loads the time zone for the given name, an empty name resolves to UTC.
func Location(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("could not load location '%s': %w", name, err)
	}
	return loc, nil
}

// Parse parses the timestamp in the given location.
// Timestamps carrying their own offset keep it, unix seconds are accepted as well.
func Parse(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range Layouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).In(loc), nil
	}
	return time.Time{}, fmt.Errorf("unknown timestamp format '%s'", s)
}

// Days returns the number of whole days from the given reference time.
func Days(from, t time.Time) int {
	return int(t.Sub(from) / Day)
}

// At creates a new time at the given date and hour.
func At(year, month, day, hour int) time.Time {
	return time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.UTC)
}
