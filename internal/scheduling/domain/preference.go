package domain

import (
	"fmt"
	"strings"
	"time"
)

// Frequency represents how often a recurring habit block repeats.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekdays Frequency = "weekdays" // Mon-Fri
	FrequencyWeekends Frequency = "weekends" // Sat-Sun
)

// IsValid checks if the frequency is one of the known values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekdays, FrequencyWeekends:
		return true
	default:
		return false
	}
}

// ParseFrequency converts free text into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency %q", s)
	}
	return f, nil
}

// Matches reports whether a weekday falls under the frequency.
func (f Frequency) Matches(day time.Weekday) bool {
	switch f {
	case FrequencyDaily:
		return true
	case FrequencyWeekdays:
		return day >= time.Monday && day <= time.Friday
	case FrequencyWeekends:
		return day == time.Saturday || day == time.Sunday
	default:
		return false
	}
}

// PreferredTime represents a preferred part of the day.
type PreferredTime string

const (
	PreferredMorning   PreferredTime = "morning"
	PreferredAfternoon PreferredTime = "afternoon"
	PreferredEvening   PreferredTime = "evening"
)

// IsValid checks if the preferred time is one of the known values.
func (p PreferredTime) IsValid() bool {
	switch p {
	case PreferredMorning, PreferredAfternoon, PreferredEvening:
		return true
	default:
		return false
	}
}

// ParsePreferredTime converts free text into a PreferredTime.
func ParsePreferredTime(s string) (PreferredTime, error) {
	p := PreferredTime(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid preferred time %q", s)
	}
	return p, nil
}
