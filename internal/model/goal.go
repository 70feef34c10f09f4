package model

import (
	"strings"
	"time"
)

// MaxGoals is the maximum number of goal records the store may hold.
const MaxGoals = 10

// DateLayout is the ISO 8601 calendar date form used everywhere a goal date
// is parsed or rendered.
const DateLayout = "2006-01-02"

// Goal represents a single tracked goal or habit with its start (or quit)
// date. The ID is an opaque identifier assigned at creation; deletion always
// operates on it, never on a display position.
type Goal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
}

// NameEquals reports whether the goal's name matches other, ignoring case.
// Name uniqueness in the store is defined by this comparison.
func (g Goal) NameEquals(other string) bool {
	return strings.EqualFold(g.Name, other)
}

// StartDate parses the goal's date field. The zero time and false are
// returned when the field is not a well-formed calendar date.
func (g Goal) StartDate() (time.Time, bool) {
	return ParseDate(g.Date)
}

// ElapsedSince formats the time elapsed between the goal's date and now.
// See Elapsed for the exact output contract.
func (g Goal) ElapsedSince(now time.Time) (string, int, bool) {
	return Elapsed(g.Date, now)
}

// ParseDate parses s as a strict YYYY-MM-DD calendar date. Inputs that
// time.Parse would accept leniently (unpadded month or day) are rejected so
// stored dates stay in canonical form.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, false
	}
	return t, true
}
