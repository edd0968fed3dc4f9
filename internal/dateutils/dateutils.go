// Package dateutils provides the calendar-day arithmetic and date parsing used by the planner.
package dateutils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// Relative-day labels
const (
	RemainingPrefix = "D-"
	OverdueLabel    = "D+0"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutFull,
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using multiple common formats
// Returns the parsed time and the detected format
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespace.ReplaceAllString(dateStr, " ")
}

// Midnight drops the time of day, keeping the calendar date t has in its own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of calendar days from reference to target.
// The result is negative when target lies in the past.
func DaysUntil(target, reference time.Time) int {
	diff := Midnight(target).Sub(Midnight(reference))
	return int(math.Ceil(diff.Hours() / 24))
}

// FormatRelativeDay renders a day count as a D-day label.
// Past days collapse to OverdueLabel.
func FormatRelativeDay(days int) string {
	if days < 0 {
		return OverdueLabel
	}
	return RemainingPrefix + strconv.Itoa(days)
}

// ParseRelativeDay extracts the remaining day count from a label produced by
// FormatRelativeDay. overdue is true for "D+" labels.
func ParseRelativeDay(label string) (days int, overdue bool, err error) {
	label = strings.TrimSpace(label)
	switch {
	case strings.HasPrefix(label, "D+"):
		return 0, true, nil
	case strings.HasPrefix(label, RemainingPrefix):
		n, err := strconv.Atoi(strings.TrimPrefix(label, RemainingPrefix))
		if err != nil {
			return 0, false, fmt.Errorf("invalid relative day label '%s': %w", label, err)
		}
		return n, false, nil
	default:
		return 0, false, fmt.Errorf("invalid relative day label '%s'", label)
	}
}
