package form

import (
	"testing"
	"time"

	"gameclock/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	cases := []struct {
		field Field
		text  string
		want  bool
	}{
		{FieldHours, "", true},
		{FieldHours, "12", true},
		{FieldHours, " 3 ", true},
		{FieldHours, "255", true},
		{FieldHours, "256", false},
		{FieldMinutes, "65535", true},
		{FieldMinutes, "65536", false},
		{FieldSeconds, "ab", false},
		{FieldSeconds, "-1", false},
		{FieldSeconds, "1.5", false},
		{FieldSeconds, " ", false},
	}
	for _, testCase := range cases {
		assert.Equal(t, testCase.want, Valid(testCase.field, testCase.text), "%s %q", testCase.field, testCase.text)
	}
}

func TestSetFieldAcceptsNumbers(t *testing.T) {
	form := FromSettings(model.Settings{})
	require.True(t, form.SetField(0, FieldMinutes, "12"))
	require.True(t, form.SetEnabled(0, true))
	require.Equal(t, "12", form.Row(0).Minutes)
	require.Equal(t, 12*time.Minute, form.Settings().Clocks[0].TimeLimit)
}

func TestSetFieldRejectsGarbage(t *testing.T) {
	form := FromSettings(model.Settings{})
	require.True(t, form.SetField(1, FieldSeconds, "7"))
	require.False(t, form.SetField(1, FieldSeconds, "ab"))
	require.Equal(t, "7", form.Row(1).Seconds)

	require.False(t, form.SetField(-1, FieldSeconds, "1"))
	require.False(t, form.SetField(model.MaxClocks, FieldSeconds, "1"))
	require.False(t, form.SetEnabled(model.MaxClocks, true))
}

func TestSetFieldEmptyClears(t *testing.T) {
	form := FromSettings(model.DefaultSettings())
	require.Equal(t, "3", form.Row(0).Minutes)
	require.True(t, form.SetField(0, FieldMinutes, ""))
	require.Equal(t, time.Duration(0), form.Row(0).TimeLimit())
}

func TestFromSettingsRoundTrip(t *testing.T) {
	settings := model.Settings{Clocks: []model.ClockSettings{
		{TimeLimit: time.Hour + 2*time.Minute + 3*time.Second, Enabled: true},
		{TimeLimit: 90 * time.Second, Enabled: false},
	}}
	form := FromSettings(settings)

	row := form.Row(0)
	require.Equal(t, Row{Enabled: true, Hours: "1", Minutes: "2", Seconds: "3"}, row)
	require.Equal(t, Row{Minutes: "1", Seconds: "30"}, form.Row(1))
	require.Equal(t, settings.Normalize(), form.Settings())
	require.Len(t, form.Rows(), model.MaxClocks)
}

func TestCanSubmit(t *testing.T) {
	form := FromSettings(model.Settings{})
	require.False(t, form.CanSubmit())
	form.SetEnabled(3, true)
	require.True(t, form.CanSubmit())
}

func TestFromSettingsSeedsValidFields(t *testing.T) {
	form := FromSettings(model.Settings{Clocks: []model.ClockSettings{
		{TimeLimit: 65535 * time.Minute, Enabled: true},
	}})

	row := form.Row(0)
	require.Equal(t, Row{Enabled: true, Hours: "255", Minutes: "59", Seconds: "59"}, row)
	for _, field := range []Field{FieldHours, FieldMinutes, FieldSeconds} {
		require.True(t, Valid(field, row.Value(field)), field.String())
		require.True(t, form.SetField(0, field, row.Value(field)))
	}
	require.Equal(t, model.MaxTimeLimit, form.Settings().Clocks[0].TimeLimit)
}
