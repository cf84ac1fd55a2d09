package settings

import (
	"testing"

	"gameclock/internal/core/form"
	"gameclock/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

type fieldEdit struct {
	clock int
	field form.Field
	text  string
}

func TestViewReportsEditsAndRevertsRejected(t *testing.T) {
	test.NewTempApp(t)

	state := form.FromSettings(model.DefaultSettings())
	var edits []fieldEdit
	var view *View
	view = New(state.Rows(), state.CanSubmit(), Callbacks{
		OnFieldChanged: func(clock int, field form.Field, text string) {
			edits = append(edits, fieldEdit{clock, field, text})
			state.SetField(clock, field, text)
			view.Update(state.Rows(), state.CanSubmit())
		},
		OnEnabledChanged: func(clock int, enabled bool) {
			state.SetEnabled(clock, enabled)
		},
	})

	require.Len(t, view.rows, model.MaxClocks)
	require.Equal(t, "3", view.rows[0].entries[1].Text)
	require.True(t, view.rows[0].enabled.Checked)
	require.False(t, view.rows[2].enabled.Checked)

	view.rows[1].entries[2].SetText("12")
	require.Equal(t, "12", state.Row(1).Seconds)
	require.Equal(t, "12", view.rows[1].entries[2].Text)

	view.rows[1].entries[2].SetText("ab")
	require.Equal(t, "12", state.Row(1).Seconds)
	require.Equal(t, "12", view.rows[1].entries[2].Text)
	require.Equal(t, fieldEdit{1, form.FieldSeconds, "ab"}, edits[len(edits)-1])

	test.Tap(view.rows[2].enabled)
	require.True(t, state.Row(2).Enabled)
}

func TestDoneFollowsSubmitState(t *testing.T) {
	test.NewTempApp(t)

	done := 0
	state := form.FromSettings(model.Settings{})
	view := New(state.Rows(), state.CanSubmit(), Callbacks{OnDone: func() { done++ }})
	require.True(t, view.doneButton.Disabled())

	test.Tap(view.doneButton)
	require.Equal(t, 0, done)

	state.SetEnabled(0, true)
	view.Update(state.Rows(), state.CanSubmit())
	require.False(t, view.doneButton.Disabled())
	test.Tap(view.doneButton)
	require.Equal(t, 1, done)
}

func TestAccessorsMatchRows(t *testing.T) {
	test.NewTempApp(t)

	state := form.FromSettings(model.DefaultSettings())
	view := New(state.Rows(), state.CanSubmit(), Callbacks{})

	require.Same(t, view.rows[1].entries[0], view.Entry(1, form.FieldHours))
	require.Same(t, view.rows[1].entries[1], view.Entry(1, form.FieldMinutes))
	require.Same(t, view.rows[1].entries[2], view.Entry(1, form.FieldSeconds))
	require.Same(t, view.rows[3].enabled, view.Check(3))
	require.Equal(t, "3", view.Entry(0, form.FieldMinutes).Text)
}
