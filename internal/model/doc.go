package model

// Package model defines the domain data structures used across the app: the
// goal record and the pure elapsed-time formatter. Structures are designed
// for direct rendering in the UI and for JSON persistence by the store.
