package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/goaltrack/goaltrack/internal/model"
)

// GoalRow is a compact row widget showing one goal: a pinned summary line,
// the elapsed time with an encouragement underneath, and a delete button.
type GoalRow struct {
	widget.BaseWidget

	goalID string

	infoLabel *widget.Label
	deleteBtn *widget.Button

	onDelete func(goalID string)
}

// NewGoalRow creates a goal row. onDelete receives the goal's ID, never its
// position; rows stay valid even when the list is re-sorted underneath them.
func NewGoalRow(onDelete func(goalID string)) *GoalRow {
	gr := &GoalRow{onDelete: onDelete}

	gr.infoLabel = widget.NewLabel("")
	gr.infoLabel.Alignment = fyne.TextAlignLeading
	gr.infoLabel.Wrapping = fyne.TextWrapWord

	gr.deleteBtn = widget.NewButton(LabelDelete, func() {
		if gr.onDelete != nil && gr.goalID != "" {
			gr.onDelete(gr.goalID)
		}
	})
	gr.deleteBtn.Importance = widget.DangerImportance

	gr.ExtendBaseWidget(gr)
	return gr
}

// Update re-binds the row to a goal and its computed display strings.
func (gr *GoalRow) Update(goal model.Goal, elapsed, encouragement string) {
	gr.goalID = goal.ID
	gr.infoLabel.SetText(fmt.Sprintf("%s %s (Since: %s)\n   %s %s - %s",
		IconPin, goal.Name, goal.Date, TreeBranch, elapsed, encouragement))
	gr.Refresh()
}

// GoalID returns the ID of the goal currently bound to the row.
func (gr *GoalRow) GoalID() string {
	return gr.goalID
}

// CreateRenderer creates the widget renderer.
func (gr *GoalRow) CreateRenderer() fyne.WidgetRenderer {
	layout := container.NewBorder(nil, nil, nil, gr.deleteBtn, gr.infoLabel)
	return widget.NewSimpleRenderer(layout)
}
