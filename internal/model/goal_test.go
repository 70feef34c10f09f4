package model

import (
	"testing"
	"time"
)

func TestGoal_NameEquals(t *testing.T) {
	tests := []struct {
		name     string
		other    string
		expected bool
	}{
		{"Quit Sugar", "quit sugar", true},
		{"Quit Sugar", "QUIT SUGAR", true},
		{"Quit Sugar", "Quit Sugar", true},
		{"Quit Sugar", "Quit Caffeine", false},
		{"Quit Sugar", "", false},
	}

	for _, test := range tests {
		g := Goal{Name: test.name}
		if result := g.NameEquals(test.other); result != test.expected {
			t.Errorf("Goal(%q).NameEquals(%q) = %v, expected %v", test.name, test.other, result, test.expected)
		}
	}
}

func TestGoal_StartDate(t *testing.T) {
	g := Goal{Name: "Run daily", Date: "2024-06-15"}
	start, ok := g.StartDate()
	if !ok {
		t.Fatal("expected valid date to parse")
	}
	if start.Year() != 2024 || start.Month() != time.June || start.Day() != 15 {
		t.Errorf("StartDate() = %v, expected 2024-06-15", start)
	}

	g.Date = "15/06/2024"
	if _, ok := g.StartDate(); ok {
		t.Error("expected non-ISO date to fail parsing")
	}
}

func TestParseDate_Strict(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2024-01-02", true},
		{"2024-1-2", false},
		{"2024-13-01", false},
		{"2024-02-30", false},
		{"yesterday", false},
		{"", false},
	}

	for _, test := range tests {
		if _, ok := ParseDate(test.input); ok != test.valid {
			t.Errorf("ParseDate(%q) valid = %v, expected %v", test.input, ok, test.valid)
		}
	}
}
