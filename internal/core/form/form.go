// Package form validates the clock settings form.
//
// Every edit is checked as it arrives: an acceptable value replaces the
// field immediately, anything else is dropped and the field keeps its
// previous text.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gameclock/internal/core/model"
)

// Field identifies one of the time limit inputs of a clock row.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
	FieldSeconds
)

func (field Field) String() string {
	switch field {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	case FieldSeconds:
		return "seconds"
	default:
		return fmt.Sprintf("field(%d)", int(field))
	}
}

// bitSize bounds the value each field accepts.
func (field Field) bitSize() int {
	if field == FieldHours {
		return 8
	}
	return 16
}

// Row holds the raw text of one clock's inputs.
type Row struct {
	Enabled bool
	Hours   string
	Minutes string
	Seconds string
}

// Value returns the text of field.
func (row Row) Value(field Field) string {
	switch field {
	case FieldHours:
		return row.Hours
	case FieldMinutes:
		return row.Minutes
	default:
		return row.Seconds
	}
}

func (row *Row) set(field Field, text string) {
	switch field {
	case FieldHours:
		row.Hours = text
	case FieldMinutes:
		row.Minutes = text
	default:
		row.Seconds = text
	}
}

// TimeLimit converts the row's fields to a duration. Empty fields count as zero.
func (row Row) TimeLimit() time.Duration {
	hours := parseOrZero(row.Hours)
	minutes := parseOrZero(row.Minutes)
	seconds := parseOrZero(row.Seconds)
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
}

// Form is the editable state of the settings screen.
type Form struct {
	rows [model.MaxClocks]Row
}

// FromSettings seeds a form with the given settings.
func FromSettings(settings model.Settings) *Form {
	settings = settings.Normalize()
	form := &Form{}
	for index, clock := range settings.Clocks {
		total := int64(clock.TimeLimit / time.Second)
		hours := total / 3600
		minutes := (total % 3600) / 60
		seconds := total % 60
		form.rows[index] = Row{
			Enabled: clock.Enabled,
			Hours:   formatField(hours),
			Minutes: formatField(minutes),
			Seconds: formatField(seconds),
		}
	}
	return form
}

// Rows returns a copy of every row.
func (form *Form) Rows() []Row {
	rows := make([]Row, len(form.rows))
	copy(rows, form.rows[:])
	return rows
}

// Row returns the row of clock index.
func (form *Form) Row(index int) Row {
	return form.rows[index]
}

// SetField applies an edit to a field and reports whether it was accepted.
// Rejected edits leave the field unchanged.
func (form *Form) SetField(index int, field Field, text string) bool {
	if index < 0 || index >= len(form.rows) {
		return false
	}
	if !Valid(field, text) {
		return false
	}
	form.rows[index].set(field, text)
	return true
}

// SetEnabled switches the clock at index on or off.
func (form *Form) SetEnabled(index int, enabled bool) bool {
	if index < 0 || index >= len(form.rows) {
		return false
	}
	form.rows[index].Enabled = enabled
	return true
}

// CanSubmit reports whether at least one clock is enabled.
func (form *Form) CanSubmit() bool {
	for _, row := range form.rows {
		if row.Enabled {
			return true
		}
	}
	return false
}

// Settings builds the settings described by the form.
func (form *Form) Settings() model.Settings {
	settings := model.Settings{Clocks: make([]model.ClockSettings, len(form.rows))}
	for index, row := range form.rows {
		settings.Clocks[index] = model.ClockSettings{
			TimeLimit: row.TimeLimit(),
			Enabled:   row.Enabled,
		}
	}
	return settings
}

// Valid reports whether text is an acceptable value for field.
// Empty text clears the field.
func Valid(field Field, text string) bool {
	if text == "" {
		return true
	}
	_, err := strconv.ParseUint(strings.TrimSpace(text), 10, field.bitSize())
	return err == nil
}

func parseOrZero(text string) uint64 {
	value, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func formatField(value int64) string {
	if value == 0 {
		return ""
	}
	return strconv.FormatInt(value, 10)
}
