package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the goal store and settings,
// and renders the goal list, elapsed-time summaries, encouragements, and
// transient status messages.
