package ui

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/goaltrack/goaltrack/internal/config"
	"github.com/goaltrack/goaltrack/internal/encourage"
	"github.com/goaltrack/goaltrack/internal/model"
	"github.com/goaltrack/goaltrack/internal/store"
)

// RootUI represents the main UI structure.
type RootUI struct {
	app    fyne.App
	window fyne.Window

	goals    *store.Store
	settings *config.Settings
	picker   *encourage.Picker
	now      func() time.Time

	// Input frame
	goalEntry *widget.Entry
	dateEntry *widget.Entry
	addBtn    *widget.Button

	// Settings frame
	fontSizeSelect *widget.Select

	// Goal display
	goalList   *widget.List
	emptyLabel *widget.Label
	visible    []model.Goal // current date-sorted view backing the list

	// Status bar
	statusText  *canvas.Text
	statusTimer *time.Timer
}

// NewRootUI creates and initializes the main UI. The store and settings are
// expected to be loaded already; load warnings are the caller's to surface
// via ShowLoadWarning.
func NewRootUI(window fyne.Window, app fyne.App, goals *store.Store, settings *config.Settings) *RootUI {
	ui := &RootUI{
		app:      app,
		window:   window,
		goals:    goals,
		settings: settings,
		picker:   encourage.NewPicker(),
		now:      time.Now,
	}

	window.SetTitle(WindowTitle)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components.
func (ui *RootUI) setupUI() {
	// Input frame: goal name and start date entries plus the add button.
	ui.goalEntry = widget.NewEntry()
	ui.goalEntry.SetPlaceHolder(GoalPlaceholder)
	ui.goalEntry.OnSubmitted = func(string) {
		ui.window.Canvas().Focus(ui.dateEntry)
	}

	ui.dateEntry = widget.NewEntry()
	ui.dateEntry.SetPlaceHolder(DatePlaceholder)
	ui.dateEntry.OnSubmitted = func(string) {
		ui.onAddGoal()
	}

	ui.addBtn = widget.NewButton(LabelAddButton, ui.onAddGoal)
	ui.addBtn.Importance = widget.HighImportance

	inputForm := container.New(layout.NewFormLayout(),
		widget.NewLabel(LabelGoal), ui.goalEntry,
		widget.NewLabel(LabelDate), ui.dateEntry,
	)
	inputFrame := container.NewBorder(nil, nil, nil, ui.addBtn, inputForm)

	// Settings frame: font size selection applies immediately and persists.
	var sizeOptions []string
	for _, size := range config.FontSizeOptions() {
		sizeOptions = append(sizeOptions, strconv.Itoa(size))
	}
	ui.fontSizeSelect = widget.NewSelect(sizeOptions, ui.onFontSizeChanged)
	ui.fontSizeSelect.SetSelected(strconv.Itoa(ui.settings.FontSize()))

	settingsFrame := container.NewHBox(widget.NewLabel(LabelFontSize), ui.fontSizeSelect)

	// Goal display: header plus a list of goal rows, or the empty notice.
	header := widget.NewLabel(ListHeader)
	header.TextStyle = fyne.TextStyle{Bold: true}

	ui.emptyLabel = widget.NewLabel(EmptyListMessage)
	ui.emptyLabel.Hide()

	ui.goalList = widget.NewList(
		func() int {
			return len(ui.visible)
		},
		func() fyne.CanvasObject { return ui.createGoalRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateGoalRow(id, obj) },
	)

	displayFrame := container.NewBorder(
		container.NewVBox(header, ui.emptyLabel), // top
		nil, nil, nil,
		ui.goalList, // center, expands
	)

	// Status bar: transient colored messages.
	ui.statusText = canvas.NewText("", SeverityInfo.Color())
	ui.statusText.Alignment = fyne.TextAlignLeading

	content := container.NewBorder(
		container.NewVBox(inputFrame, settingsFrame), // top
		ui.statusText, // bottom
		nil, nil,
		displayFrame, // center
	)

	ui.window.SetContent(content)
	ui.refreshGoals()
}

// createGoalRow creates a template goal row for the list. The template is
// populated with two lines so the list reserves the right row height.
func (ui *RootUI) createGoalRow() fyne.CanvasObject {
	row := NewGoalRow(ui.onDeleteGoal)
	row.Update(model.Goal{Name: "…", Date: DatePlaceholder}, "…", "…")
	return row
}

// updateGoalRow binds a list row to the goal at the given position in the
// sorted view. The elapsed phrase and encouragement are recomputed on every
// redraw, so each refresh shows a fresh encouragement.
func (ui *RootUI) updateGoalRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.visible) {
		return
	}
	row, ok := obj.(*GoalRow)
	if !ok {
		return
	}

	goal := ui.visible[id]
	elapsed, _, _ := goal.ElapsedSince(ui.now())
	row.Update(goal, elapsed, ui.picker.Pick())
}

// refreshGoals re-reads the sorted view from the store and redraws the list.
func (ui *RootUI) refreshGoals() {
	view, calendarOK := ui.goals.SortedByDate()
	ui.visible = view

	if len(ui.visible) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
	ui.goalList.Refresh()

	if !calendarOK {
		ui.setStatus("Warning: Invalid date found in saved data during sorting.", SeverityWarning)
	}
}

// onAddGoal handles the add button and the date entry's submit action.
func (ui *RootUI) onAddGoal() {
	name := ui.goalEntry.Text
	dateStr := ui.dateEntry.Text

	goal, err := ui.goals.Add(name, dateStr)

	var persistWarn *store.PersistWarning
	switch {
	case err == nil:
		// Fully persisted.
	case errors.As(err, &persistWarn):
		// Goal is in memory but the write-through failed; warn and proceed.
		log.Printf("add goal: %v", persistWarn)
		ui.setStatus(persistWarn.Error(), SeverityWarning)
	case errors.Is(err, store.ErrEmptyName):
		ui.setStatus("Goal name cannot be empty.", SeverityWarning)
		return
	case errors.Is(err, store.ErrEmptyDate):
		ui.setStatus("Date cannot be empty.", SeverityWarning)
		return
	case errors.Is(err, store.ErrInvalidDate):
		ui.setStatus("Invalid date format. Use YYYY-MM-DD.", SeverityError)
		return
	case errors.Is(err, store.ErrDuplicateName):
		ui.setStatus(fmt.Sprintf("Goal '%s' already exists.", trimmedOrOriginal(name)), SeverityWarning)
		return
	case errors.Is(err, store.ErrCapacityExceeded):
		ui.setStatus(fmt.Sprintf("Cannot add more than %d goals.", model.MaxGoals), SeverityWarning)
		return
	default:
		log.Printf("add goal: %v", err)
		ui.setStatus("Error adding goal: "+err.Error(), SeverityError)
		return
	}

	ui.goalEntry.SetText("")
	ui.dateEntry.SetText("")
	ui.window.Canvas().Focus(ui.goalEntry)

	ui.refreshGoals()
	if err == nil {
		ui.setStatus(fmt.Sprintf("Goal '%s' added successfully!", goal.Name), SeveritySuccess)
	}
}

// onDeleteGoal handles a row's delete button.
func (ui *RootUI) onDeleteGoal(goalID string) {
	removed, err := ui.goals.Remove(goalID)

	var persistWarn *store.PersistWarning
	switch {
	case err == nil:
		// Fully persisted.
	case errors.As(err, &persistWarn):
		log.Printf("delete goal: %v", persistWarn)
		ui.setStatus(persistWarn.Error(), SeverityWarning)
	case errors.Is(err, store.ErrNotFound):
		// The row went stale (external edit, concurrent reload). Redraw to
		// resynchronize the display with the store.
		ui.refreshGoals()
		ui.setStatus("Error: Could not delete goal (already removed). Refreshing.", SeverityError)
		return
	default:
		log.Printf("delete goal: %v", err)
		ui.refreshGoals()
		ui.setStatus("Error deleting goal: "+err.Error(), SeverityError)
		return
	}

	ui.refreshGoals()
	if err == nil {
		ui.setStatus(fmt.Sprintf("Goal '%s' deleted.", removed.Name), SeverityInfo)
	}
}

// onFontSizeChanged handles selection in the font size combobox.
func (ui *RootUI) onFontSizeChanged(selected string) {
	size, err := strconv.Atoi(selected)
	if err != nil || !config.ValidFontSize(size) {
		// Revert the combobox to the current valid size.
		ui.fontSizeSelect.SetSelected(strconv.Itoa(ui.settings.FontSize()))
		return
	}
	if size == ui.settings.FontSize() {
		return
	}

	if err := ui.settings.SetFontSize(size); err != nil {
		log.Printf("save settings: %v", err)
		ui.setStatus("Error saving settings: "+err.Error(), SeverityError)
		return
	}

	ui.applyFontSize(size)
}

// applyFontSize swaps the app theme so every widget picks up the new base
// text size, then redraws the goal list.
func (ui *RootUI) applyFontSize(size int) {
	ui.app.Settings().SetTheme(NewAppTheme(size))
	ui.refreshGoals()
}

// ReloadFromDisk re-reads the data file and redraws. Wired to the store
// watcher so external edits to the goals file appear without a restart.
func (ui *RootUI) ReloadFromDisk() {
	if err := ui.goals.Load(); err != nil {
		ui.ShowLoadWarning(err)
	}
	ui.refreshGoals()
}

// ShowLoadWarning surfaces a non-fatal load problem in the status bar.
func (ui *RootUI) ShowLoadWarning(err error) {
	var corrupt *store.CorruptDataError
	if errors.As(err, &corrupt) {
		log.Printf("load goals: %v", corrupt)
		ui.setStatus(fmt.Sprintf("Warning: Could not read %s. Starting fresh.", store.DataFileName), SeverityWarning)
		return
	}
	log.Printf("load goals: %v", err)
	ui.setStatus("Warning: "+err.Error(), SeverityWarning)
}

// setStatus shows a status message. Transient severities are cleared after
// StatusClearDelay; errors stay until replaced.
func (ui *RootUI) setStatus(message string, severity Severity) {
	ui.statusText.Text = message
	ui.statusText.Color = severity.Color()
	ui.statusText.Refresh()

	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
		ui.statusTimer = nil
	}
	if severity.IsTransient() {
		ui.statusTimer = time.AfterFunc(StatusClearDelay, func() {
			fyne.Do(ui.clearStatus)
		})
	}
}

func (ui *RootUI) clearStatus() {
	ui.statusText.Text = ""
	ui.statusText.Refresh()
}

// trimmedOrOriginal mirrors the store's name trimming for display purposes.
func trimmedOrOriginal(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return name
}
