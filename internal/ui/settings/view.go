package settings

import (
	"fmt"

	"gameclock/internal/core/form"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines settings screen action handlers.
type Callbacks struct {
	OnFieldChanged   func(clock int, field form.Field, text string)
	OnEnabledChanged func(clock int, enabled bool)
	OnDone           func()
}

// View handles the settings UI.
type View struct {
	content    fyne.CanvasObject
	rows       []*rowWidgets
	doneButton *widget.Button
	// syncing suppresses callbacks while widgets are set from state.
	syncing bool
}

type rowWidgets struct {
	enabled *widget.Check
	entries [3]*widget.Entry
}

var fieldOrder = [3]form.Field{form.FieldHours, form.FieldMinutes, form.FieldSeconds}

// New creates the settings screen for the given rows.
func New(rows []form.Row, canSubmit bool, callbacks Callbacks) *View {
	view := &View{}

	lines := []fyne.CanvasObject{
		widget.NewLabelWithStyle("GameClock", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
	for index := range rows {
		row := view.newRow(index, callbacks)
		view.rows = append(view.rows, row)
		lines = append(lines, container.NewHBox(
			row.enabled,
			widget.NewLabel("time limit:"),
			row.entries[0], widget.NewLabel(":"),
			row.entries[1], widget.NewLabel(":"),
			row.entries[2],
		))
	}

	view.doneButton = widget.NewButton("Done", func() {
		if callbacks.OnDone != nil {
			callbacks.OnDone()
		}
	})
	view.doneButton.Importance = widget.HighImportance

	buttons := container.NewHBox(layout.NewSpacer(), view.doneButton, layout.NewSpacer())
	view.content = container.NewCenter(container.NewVBox(append(lines, buttons)...))
	view.Update(rows, canSubmit)
	return view
}

func (view *View) newRow(index int, callbacks Callbacks) *rowWidgets {
	row := &rowWidgets{}
	row.enabled = widget.NewCheck(fmt.Sprintf("Clock %d", index+1), func(enabled bool) {
		if view.syncing || callbacks.OnEnabledChanged == nil {
			return
		}
		callbacks.OnEnabledChanged(index, enabled)
	})

	placeholders := [3]string{"hour", "minute", "second"}
	for position, field := range fieldOrder {
		field := field
		entry := widget.NewEntry()
		entry.SetPlaceHolder(placeholders[position])
		entry.OnChanged = func(text string) {
			if view.syncing || callbacks.OnFieldChanged == nil {
				return
			}
			callbacks.OnFieldChanged(index, field, text)
		}
		row.entries[position] = entry
	}
	return row
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Entry returns the input of field in clock row index.
func (view *View) Entry(index int, field form.Field) *widget.Entry {
	for position, candidate := range fieldOrder {
		if candidate == field {
			return view.rows[index].entries[position]
		}
	}
	return nil
}

// Check returns the enabled toggle of clock row index.
func (view *View) Check(index int) *widget.Check {
	return view.rows[index].enabled
}

// Update sets the widgets from form state. An entry whose text differs from
// the accepted value is reverted, which discards rejected keystrokes.
func (view *View) Update(rows []form.Row, canSubmit bool) {
	view.syncing = true
	defer func() { view.syncing = false }()

	for index, row := range rows {
		if index >= len(view.rows) {
			break
		}
		widgets := view.rows[index]
		if widgets.enabled.Checked != row.Enabled {
			widgets.enabled.SetChecked(row.Enabled)
		}
		for position, field := range fieldOrder {
			entry := widgets.entries[position]
			if value := row.Value(field); entry.Text != value {
				entry.SetText(value)
			}
		}
	}

	if canSubmit {
		view.doneButton.Enable()
	} else {
		view.doneButton.Disable()
	}
}
