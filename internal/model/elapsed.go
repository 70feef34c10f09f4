package model

import (
	"fmt"
	"strings"
	"time"
)

// InvalidDateMessage is returned by Elapsed for inputs that do not parse as
// a YYYY-MM-DD calendar date.
const InvalidDateMessage = "Invalid Date Format (Use YYYY-MM-DD)"

// TodayMessage is returned by Elapsed when the goal date equals today.
const TodayMessage = "Today is the day!"

// Days per year used by the formatter. The fixed 365-day approximation (no
// leap correction) is part of the displayed-output contract and must not be
// replaced with calendar arithmetic.
const daysPerYear = 365

// Elapsed formats the time elapsed between the calendar date dateStr and
// now as a human-readable phrase such as "3 years, 12 days ago".
//
// The returned int is the exact whole-day difference; the bool reports
// whether a day count is available. There is no count for malformed input
// or for dates in the future.
func Elapsed(dateStr string, now time.Time) (string, int, bool) {
	start, ok := ParseDate(dateStr)
	if !ok {
		return InvalidDateMessage, 0, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	deltaDays := int(today.Sub(start).Hours() / 24)

	if deltaDays < 0 {
		msg := fmt.Sprintf("Date %s is in the future (current time: %s).",
			dateStr, now.Format("2006-01-02 15:04"))
		return msg, 0, false
	}

	if deltaDays == 0 {
		return TodayMessage, 0, true
	}

	years := deltaDays / daysPerYear
	days := deltaDays % daysPerYear

	var parts []string
	if years > 0 {
		parts = append(parts, pluralize(years, "year", years > 1))
	}
	if days > 0 {
		parts = append(parts, pluralize(days, "day", days != 1))
	}
	if len(parts) == 0 {
		// Unreachable for positive deltas, kept as a safety net so a
		// positive day count never renders an empty phrase.
		return fmt.Sprintf("%s ago", pluralize(deltaDays, "day", deltaDays != 1)), deltaDays, true
	}

	return strings.Join(parts, ", ") + " ago", deltaDays, true
}

func pluralize(n int, unit string, plural bool) string {
	if plural {
		return fmt.Sprintf("%d %ss", n, unit)
	}
	return fmt.Sprintf("%d %s", n, unit)
}
