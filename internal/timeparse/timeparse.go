// Package timeparse converts the protocol's 12-hour activity timestamps into
// absolute instants and human-readable ages.
package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// UnknownDisplay is the display string for timestamps that could not be parsed.
const UnknownDisplay = "Unknown time ago"

const instantLayout = "2006-01-02T15:04:05"

// Age holds the fields derived from a record's (date, time) pair.
type Age struct {
	HoursAgo    float64 // whole elapsed hours; +Inf when the timestamp is unparseable
	DisplayTime string
}

// To24Hour converts a 12-hour clock string like "09:15 PM" to "21:15:00".
// 12 AM maps to hour 0 and 12 PM stays 12; PM hours 1-11 get +12.
func To24Hour(clock string) (string, error) {
	parts := strings.Split(strings.TrimSpace(clock), " ")
	if len(parts) != 2 {
		return "", fmt.Errorf("clock %q: missing AM/PM marker", clock)
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return "", fmt.Errorf("clock %q: missing minute separator", clock)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return "", fmt.Errorf("clock %q: invalid hour: %w", clock, err)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return "", fmt.Errorf("clock %q: invalid minute: %w", clock, err)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("clock %q: out of range", clock)
	}

	switch parts[1] {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	default:
		return "", fmt.Errorf("clock %q: unknown marker %q", clock, parts[1])
	}

	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}

// ToInstant composes an ISO date and a 12-hour clock into an absolute instant
// in the given location. A malformed clock falls back to midnight so the
// record stays orderable; only an unparseable date is an error.
func ToInstant(date, clock string, loc *time.Location) (time.Time, error) {
	converted, err := To24Hour(clock)
	if err != nil {
		converted = "00:00:00"
	}

	t, err := time.ParseInLocation(instantLayout, date+"T"+converted, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q %q: %w", date, clock, err)
	}
	return t, nil
}

// AgeFrom derives the elapsed-hours count and display string for a record
// relative to now. Any parse failure yields the unbounded-age sentinel and
// UnknownDisplay rather than an error: consumers are display surfaces, and a
// maximally-stale row beats a missing one.
func AgeFrom(date, clock string, now time.Time) Age {
	if _, err := To24Hour(clock); err != nil {
		return Age{HoursAgo: math.Inf(1), DisplayTime: UnknownDisplay}
	}

	instant, err := ToInstant(date, clock, now.Location())
	if err != nil {
		return Age{HoursAgo: math.Inf(1), DisplayTime: UnknownDisplay}
	}

	minutes := int(now.Sub(instant).Minutes())
	hours := minutes / 60
	days := hours / 24

	var display string
	switch {
	case minutes < 60:
		display = fmt.Sprintf("%d mins ago", minutes)
	case hours < 24:
		if hours == 1 {
			display = "1 hour ago"
		} else {
			display = fmt.Sprintf("%d hours ago", hours)
		}
	case days < 7:
		if days == 1 {
			display = "1 day ago"
		} else {
			display = fmt.Sprintf("%d days ago", days)
		}
	default:
		display = fmt.Sprintf("%d days ago", days)
	}

	return Age{HoursAgo: float64(hours), DisplayTime: display}
}
