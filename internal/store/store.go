package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goaltrack/goaltrack/internal/fsutil"
	"github.com/goaltrack/goaltrack/internal/model"
	"github.com/goaltrack/goaltrack/internal/platform"
)

// DataFileName is the goal data file kept inside the data directory.
const DataFileName = "goals_data.json"

// Store holds the goal list and mirrors every mutation to disk. The mutex
// guards against the file watcher goroutine reloading while the UI thread
// reads or mutates.
type Store struct {
	mu    sync.RWMutex
	path  string
	goals []model.Goal
	newID func() (string, error)
}

// New creates a store persisting to dir/goals_data.json. The file is not
// read until Load is called.
func New(dir string) *Store {
	return &Store{
		path:  filepath.Join(dir, DataFileName),
		newID: generateGoalID,
	}
}

// Load reads the data file. A missing file yields an empty list and nil
// error. An unreadable or unparseable file yields an empty list and a
// *CorruptDataError warning; the broken file is preserved as a .corrupt
// copy so no bytes are lost. Records saved before IDs existed are assigned
// one and written back.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.goals = nil
		if os.IsNotExist(err) {
			return nil
		}
		return &CorruptDataError{Path: s.path, Err: err}
	}

	var goals []model.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		s.goals = nil
		corruptPath := fmt.Sprintf("%s.corrupt.%s", s.path, time.Now().Format("20060102-150405"))
		_ = os.Rename(s.path, corruptPath)
		return &CorruptDataError{Path: s.path, Err: err}
	}

	assigned := false
	for i := range goals {
		if goals[i].ID == "" {
			id, err := s.newID()
			if err != nil {
				return fmt.Errorf("assign goal id: %w", err)
			}
			goals[i].ID = id
			assigned = true
		}
	}

	s.goals = goals
	if assigned {
		if err := s.saveLocked(); err != nil {
			return &PersistWarning{Op: "load", Err: err}
		}
	}
	return nil
}

// Add validates and appends a new goal, then persists. Validation failures
// (ErrEmptyName, ErrEmptyDate, ErrInvalidDate, ErrDuplicateName,
// ErrCapacityExceeded) leave the store unchanged.
//
// When the write-through fails, the appended goal stays in memory and the
// returned error is a *PersistWarning; memory and disk diverge until the
// next successful save. That asymmetry is a retained behavior, not a bug
// to fix here.
func (s *Store) Add(name, dateStr string) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	dateStr = strings.TrimSpace(dateStr)

	if name == "" {
		return model.Goal{}, ErrEmptyName
	}
	if dateStr == "" {
		return model.Goal{}, ErrEmptyDate
	}
	if _, ok := model.ParseDate(dateStr); !ok {
		return model.Goal{}, ErrInvalidDate
	}
	for _, g := range s.goals {
		if g.NameEquals(name) {
			return model.Goal{}, fmt.Errorf("%w: %q", ErrDuplicateName, g.Name)
		}
	}
	if len(s.goals) >= model.MaxGoals {
		return model.Goal{}, ErrCapacityExceeded
	}

	id, err := s.newID()
	if err != nil {
		return model.Goal{}, fmt.Errorf("generate goal id: %w", err)
	}

	goal := model.Goal{ID: id, Name: name, Date: dateStr}
	s.goals = append(s.goals, goal)

	if err := s.saveLocked(); err != nil {
		return goal, &PersistWarning{Op: "add", Err: err}
	}
	return goal, nil
}

// Remove deletes the goal with the given ID and persists. Returns
// ErrNotFound when no goal carries the ID.
func (s *Store) Remove(id string) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.goals {
		if g.ID == id {
			return s.removeIndexLocked(i, "remove")
		}
	}
	return model.Goal{}, fmt.Errorf("%w: id %s", ErrNotFound, id)
}

// RemoveAt deletes the goal at index within the current date-sorted view
// and persists. Returns ErrIndexOutOfRange for indexes outside [0, len).
// Prefer Remove: positions shift whenever the view is re-sorted.
func (s *Store) RemoveAt(index int) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, _ := s.sortedLocked()
	if index < 0 || index >= len(view) {
		return model.Goal{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(view))
	}

	target := view[index]
	for i, g := range s.goals {
		if g.ID == target.ID {
			return s.removeIndexLocked(i, "delete")
		}
	}
	// The sorted view is derived from s.goals under the same lock, so the
	// target is always found.
	return model.Goal{}, ErrNotFound
}

// SortedByDate returns a copy of the goals ordered ascending by parsed
// calendar date. If any record's date fails to parse, the whole list falls
// back to lexicographic ordering and the second return is false.
func (s *Store) SortedByDate() ([]model.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

// Len returns the number of goals currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.goals)
}

// Path returns the location of the data file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) removeIndexLocked(i int, op string) (model.Goal, error) {
	removed := s.goals[i]
	s.goals = append(s.goals[:i], s.goals[i+1:]...)

	if err := s.saveLocked(); err != nil {
		return removed, &PersistWarning{Op: op, Err: err}
	}
	return removed, nil
}

func (s *Store) sortedLocked() ([]model.Goal, bool) {
	view := make([]model.Goal, len(s.goals))
	copy(view, s.goals)

	calendarOK := true
	dates := make([]time.Time, len(view))
	for i, g := range view {
		t, ok := g.StartDate()
		if !ok {
			calendarOK = false
			break
		}
		dates[i] = t
	}

	if calendarOK {
		sort.SliceStable(view, func(i, j int) bool {
			ti, _ := view[i].StartDate()
			tj, _ := view[j].StartDate()
			return ti.Before(tj)
		})
		return view, true
	}

	sort.SliceStable(view, func(i, j int) bool {
		return view[i].Date < view[j].Date
	})
	return view, false
}

// saveLocked rewrites the whole data file, sorted ascending by date string.
// Lexicographic order coincides with calendar order for well-formed ISO
// dates.
func (s *Store) saveLocked() error {
	sort.SliceStable(s.goals, func(i, j int) bool {
		return s.goals[i].Date < s.goals[j].Date
	})

	out := s.goals
	if out == nil {
		out = []model.Goal{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize goals: %w", err)
	}

	fsutil.BestEffortBackup(s.path, platform.DefaultFilePermissions)

	if err := fsutil.WriteFileAtomic(s.path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write goals: %w", err)
	}
	return nil
}

func generateGoalID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
