package screen

import (
	"time"

	"gameclock/internal/core/clock"
	"gameclock/internal/core/form"
	"gameclock/internal/core/model"
)

type screenState interface {
	kind() Kind
	// update handles an event addressed to this screen. handled is false
	// when the event belongs to another screen.
	update(event Event, now time.Time) (transition Transition, handled bool)
}

type settingsScreen struct {
	form *form.Form
	// submitted holds the settings produced by the last accepted Done.
	submitted model.Settings
}

func newSettingsScreen(settings model.Settings) *settingsScreen {
	return &settingsScreen{form: form.FromSettings(settings)}
}

func (settingsScreen) kind() Kind { return KindSettings }

func (screen *settingsScreen) update(event Event, _ time.Time) (Transition, bool) {
	switch event := event.(type) {
	case SettingsFieldChanged:
		screen.form.SetField(event.Clock, event.Field, event.Text)
		return TransitionNone, true
	case SettingsEnabledChanged:
		screen.form.SetEnabled(event.Clock, event.Enabled)
		return TransitionNone, true
	case SettingsDone:
		if !screen.form.CanSubmit() {
			return TransitionNone, true
		}
		screen.submitted = screen.form.Settings()
		return TransitionStartClock, true
	default:
		return TransitionNone, false
	}
}

type clockScreen struct {
	pane *clock.Pane
}

func newClockScreen(settings model.Settings) *clockScreen {
	return &clockScreen{pane: clock.NewPane(settings.Limits())}
}

func (clockScreen) kind() Kind { return KindClock }

func (screen *clockScreen) update(event Event, now time.Time) (Transition, bool) {
	switch event.(type) {
	case Tick:
		screen.pane.Tick(now)
		return TransitionNone, true
	case ClockToggle:
		screen.pane.Toggle(now)
		return TransitionNone, true
	case ClockPause:
		// Charge the time elapsed since the last tick before stopping.
		screen.pane.Tick(now)
		screen.pane.Pause()
		return TransitionPushPause, true
	default:
		return TransitionNone, false
	}
}

type pauseScreen struct{}

func (pauseScreen) kind() Kind { return KindPause }

func (pauseScreen) update(event Event, _ time.Time) (Transition, bool) {
	switch event.(type) {
	case PauseBack:
		return TransitionPopToClock, true
	case PauseReset:
		return TransitionResetClock, true
	case PauseSettings:
		return TransitionOpenSettings, true
	default:
		return TransitionNone, false
	}
}
