package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window
const (
	WindowTitle          = "Goals! - Keep Track & Stay Motivated"
	WindowWidth  float32 = 750
	WindowHeight float32 = 650
)

// Icons (emojis/symbols)
const (
	IconPin    = "📌"
	TreeBranch = "└──"
)

// Static labels and placeholders
const (
	LabelGoal        = "Goal/Habit:"
	LabelDate        = "Start/Quit Date:"
	LabelFontSize    = "Font Size:"
	LabelAddButton   = "Add Goal"
	LabelDelete      = "Delete"
	ListHeader       = "Your Goals (Sorted by Date)"
	EmptyListMessage = "No goals added yet. Add one above!"

	GoalPlaceholder = "e.g., Quit Caffeine"
	DatePlaceholder = "YYYY-MM-DD"
)

// Status bar behavior
const (
	// StatusClearDelay is how long transient status messages stay visible.
	// Error messages are never auto-cleared.
	StatusClearDelay = 5 * time.Second
)
