package screen

import (
	"fmt"
	"time"

	"gameclock/internal/core/clock"
	"gameclock/internal/core/form"
	"gameclock/internal/core/model"

	"github.com/sirupsen/logrus"
)

// View is the display state of the top screen.
type View struct {
	Kind Kind

	// Clocks and Active describe the clock screen. They are also filled while
	// the pause screen covers it.
	Clocks []clock.Status
	Active int

	// Rows and CanSubmit describe the settings screen.
	Rows      []form.Row
	CanSubmit bool
}

// Root is a stack of mutually exclusive screens. Only the top screen
// receives events.
type Root struct {
	settings model.Settings
	stack    []screenState
	log      *logrus.Entry
}

// New creates a root showing the settings screen seeded with settings.
func New(settings model.Settings, logger *logrus.Logger) *Root {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	settings = settings.Normalize()
	return &Root{
		settings: settings,
		stack:    []screenState{newSettingsScreen(settings)},
		log:      logger.WithField("component", "screen"),
	}
}

// Settings returns the settings the clock screen is built from.
func (root *Root) Settings() model.Settings {
	return root.settings
}

// Kind returns the kind of the top screen.
func (root *Root) Kind() Kind {
	return root.top().kind()
}

// Depth returns the number of stacked screens.
func (root *Root) Depth() int {
	return len(root.stack)
}

// Ticking reports whether the tick source should be running.
func (root *Root) Ticking() bool {
	return root.Kind() == KindClock
}

// Dispatch hands event to the top screen and applies the transition it
// requests. Events addressed to other screens are dropped.
func (root *Root) Dispatch(event Event, now time.Time) Transition {
	top := root.top()
	transition, handled := top.update(event, now)
	if !handled {
		root.log.WithFields(logrus.Fields{
			"screen": top.kind(),
			"event":  fmt.Sprintf("%T", event),
		}).Debug("dropped event for inactive screen")
		return TransitionNone
	}
	if transition == TransitionNone {
		return TransitionNone
	}

	root.apply(transition)
	root.log.WithFields(logrus.Fields{
		"transition": transition,
		"screen":     root.Kind(),
		"depth":      len(root.stack),
	}).Trace("screen transition")
	return transition
}

// apply is the single place where screen-to-screen edges are defined.
func (root *Root) apply(transition Transition) {
	switch transition {
	case TransitionStartClock:
		if settings, ok := root.top().(*settingsScreen); ok {
			root.settings = settings.submitted.Normalize()
		}
		root.replaceAll(newClockScreen(root.settings))
	case TransitionPushPause:
		root.stack = append(root.stack, pauseScreen{})
	case TransitionPopToClock:
		root.stack = root.stack[:len(root.stack)-1]
	case TransitionResetClock:
		root.replaceAll(newClockScreen(root.settings))
	case TransitionOpenSettings:
		root.replaceAll(newSettingsScreen(root.settings))
	}
}

func (root *Root) replaceAll(next screenState) {
	root.stack = []screenState{next}
}

func (root *Root) top() screenState {
	return root.stack[len(root.stack)-1]
}

// View returns the display state of the top screen.
func (root *Root) View() View {
	view := View{Kind: root.Kind()}
	for index := len(root.stack) - 1; index >= 0; index-- {
		switch state := root.stack[index].(type) {
		case *clockScreen:
			view.Clocks = state.pane.Status()
			view.Active = state.pane.Active()
			return view
		case *settingsScreen:
			view.Rows = state.form.Rows()
			view.CanSubmit = state.form.CanSubmit()
			return view
		}
	}
	return view
}
