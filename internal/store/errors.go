package store

import (
	"errors"
	"fmt"

	"github.com/goaltrack/goaltrack/internal/model"
)

// Validation errors returned by Add. All are matchable with errors.Is and
// never leave the store mutated.
var (
	ErrEmptyName        = errors.New("goal name cannot be empty")
	ErrEmptyDate        = errors.New("date cannot be empty")
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDuplicateName    = errors.New("goal with this name already exists")
	ErrCapacityExceeded = fmt.Errorf("cannot add more than %d goals", model.MaxGoals)
)

// Deletion errors.
var (
	ErrNotFound        = errors.New("goal not found")
	ErrIndexOutOfRange = errors.New("goal index out of range")
)

// CorruptDataError reports that the data file existed but could not be
// parsed. It is non-fatal: the store continues with an empty list and the
// unreadable file is preserved alongside as a .corrupt copy.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("could not read %s, starting fresh: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// PersistWarning reports that a mutation was applied in memory but the
// write-through to disk failed. The in-memory change is NOT rolled back,
// so memory and disk may diverge until the next successful write. Callers
// should surface it as a warning and continue.
type PersistWarning struct {
	Op  string
	Err error
}

func (e *PersistWarning) Error() string {
	return fmt.Sprintf("%s succeeded but saving goals failed: %v", e.Op, e.Err)
}

func (e *PersistWarning) Unwrap() error { return e.Err }
