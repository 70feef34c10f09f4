package ui

import "image/color"

// Severity classifies status bar messages and drives their color and
// auto-clear behavior.
type Severity int

const (
	// SeverityInfo is for neutral notices such as deletions.
	SeverityInfo Severity = iota

	// SeveritySuccess is for confirmations of completed actions.
	SeveritySuccess

	// SeverityWarning is for rejected input and recoverable persistence
	// problems.
	SeverityWarning

	// SeverityError is for failures the user should act on; these stay on
	// screen until replaced.
	SeverityError
)

// String returns the display name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "Info"
	case SeveritySuccess:
		return "Success"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return "Unknown"
	}
}

// IsTransient reports whether a message of this severity is auto-cleared
// after StatusClearDelay.
func (s Severity) IsTransient() bool {
	return s != SeverityError
}

// Color returns the status text color for the severity.
func (s Severity) Color() color.Color {
	switch s {
	case SeveritySuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // green
	case SeverityWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // amber
	case SeverityError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // red
	default:
		return color.RGBA{R: 169, G: 169, B: 169, A: 255} // gray
	}
}
