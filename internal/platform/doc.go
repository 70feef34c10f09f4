package platform

// Package platform contains OS integration glue: resolution of the per-user
// application data directory and small filesystem helpers shared by the
// store and settings layers.
