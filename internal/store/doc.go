package store

// Package store owns the authoritative in-memory list of goal records and
// its persisted JSON mirror. Every successful mutation triggers a full
// synchronous rewrite of the data file, kept sorted ascending by date.
