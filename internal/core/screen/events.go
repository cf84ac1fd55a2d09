package screen

import "gameclock/internal/core/form"

// Kind identifies a screen.
type Kind string

const (
	KindSettings Kind = "settings"
	KindClock    Kind = "clock"
	KindPause    Kind = "pause"
)

// Event is an inbound tick or user action. The set of variants is closed.
type Event interface {
	event()
}

// Tick advances the running clock to the dispatch timestamp.
type Tick struct{}

// ClockToggle passes the turn, or starts/stops a lone clock.
type ClockToggle struct{}

// ClockPause stops the active clock and opens the pause screen.
type ClockPause struct{}

// PauseBack returns to the clock screen as it was left.
type PauseBack struct{}

// PauseReset restarts every clock from the configured limits.
type PauseReset struct{}

// PauseSettings opens the settings screen.
type PauseSettings struct{}

// SettingsFieldChanged carries the new text of a time limit field.
type SettingsFieldChanged struct {
	Clock int
	Field form.Field
	Text  string
}

// SettingsEnabledChanged switches a clock on or off.
type SettingsEnabledChanged struct {
	Clock   int
	Enabled bool
}

// SettingsDone applies the form and starts the clocks.
type SettingsDone struct{}

func (Tick) event()                   {}
func (ClockToggle) event()            {}
func (ClockPause) event()             {}
func (PauseBack) event()              {}
func (PauseReset) event()             {}
func (PauseSettings) event()          {}
func (SettingsFieldChanged) event()   {}
func (SettingsEnabledChanged) event() {}
func (SettingsDone) event()           {}

// Transition is a request from a screen to change the stack.
type Transition string

const (
	TransitionNone         Transition = ""
	TransitionPushPause    Transition = "push_pause"
	TransitionPopToClock   Transition = "pop_to_clock"
	TransitionResetClock   Transition = "reset_clock"
	TransitionOpenSettings Transition = "open_settings"
	TransitionStartClock   Transition = "start_clock"
)
