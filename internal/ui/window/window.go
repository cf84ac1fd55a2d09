package window

import (
	"gameclock/internal/core/form"
	"gameclock/internal/core/screen"
	"gameclock/internal/ui/clockview"
	"gameclock/internal/ui/pause"
	"gameclock/internal/ui/settings"

	"fyne.io/fyne/v2"
)

// Dispatcher accepts user actions.
type Dispatcher interface {
	Dispatch(event screen.Event)
}

// Window is the main application window. Its content follows the top screen.
type Window struct {
	window     fyne.Window
	dispatcher Dispatcher

	kind       screen.Kind
	clockCount int
	clocks     *clockview.View
	pause      *pause.View
	settings   *settings.View
}

// New creates the main window and draws the initial view.
func New(app fyne.App, title string, dispatcher Dispatcher, initial screen.View) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.Resize(fyne.NewSize(640, 360))
	window.SetMaster()

	win := &Window{
		window:     window,
		dispatcher: dispatcher,
	}
	window.Canvas().SetOnTypedKey(win.handleKey)
	win.Render(initial)
	return win
}

// Show displays the window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// Kind returns the screen currently shown.
func (win *Window) Kind() screen.Kind {
	return win.kind
}

// Render redraws the window for view, rebuilding content when the screen changes.
func (win *Window) Render(view screen.View) {
	if view.Kind != win.kind || (view.Kind == screen.KindClock && len(view.Clocks) != win.clockCount) {
		win.rebuild(view)
	}

	switch view.Kind {
	case screen.KindClock:
		win.clocks.Update(view.Clocks)
	case screen.KindSettings:
		win.settings.Update(view.Rows, view.CanSubmit)
	}
}

func (win *Window) rebuild(view screen.View) {
	win.kind = view.Kind
	win.clocks = nil
	win.pause = nil
	win.settings = nil

	switch view.Kind {
	case screen.KindClock:
		win.clockCount = len(view.Clocks)
		win.clocks = clockview.New(win.clockCount, clockview.Callbacks{
			OnToggle: win.dispatchFunc(screen.ClockToggle{}),
			OnPause:  win.dispatchFunc(screen.ClockPause{}),
		})
		win.window.SetContent(win.clocks.Content())
	case screen.KindPause:
		win.pause = pause.New(pause.Callbacks{
			OnBack:     win.dispatchFunc(screen.PauseBack{}),
			OnReset:    win.dispatchFunc(screen.PauseReset{}),
			OnSettings: win.dispatchFunc(screen.PauseSettings{}),
		})
		win.window.SetContent(win.pause.Content())
	case screen.KindSettings:
		win.settings = settings.New(view.Rows, view.CanSubmit, settings.Callbacks{
			OnFieldChanged: func(clock int, field form.Field, text string) {
				win.dispatcher.Dispatch(screen.SettingsFieldChanged{Clock: clock, Field: field, Text: text})
			},
			OnEnabledChanged: func(clock int, enabled bool) {
				win.dispatcher.Dispatch(screen.SettingsEnabledChanged{Clock: clock, Enabled: enabled})
			},
			OnDone: win.dispatchFunc(screen.SettingsDone{}),
		})
		win.window.SetContent(win.settings.Content())
	}
}

func (win *Window) dispatchFunc(event screen.Event) func() {
	return func() {
		win.dispatcher.Dispatch(event)
	}
}

func (win *Window) handleKey(key *fyne.KeyEvent) {
	switch win.kind {
	case screen.KindClock:
		switch key.Name {
		case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
			win.dispatcher.Dispatch(screen.ClockToggle{})
		case fyne.KeyEscape, fyne.KeyP:
			win.dispatcher.Dispatch(screen.ClockPause{})
		}
	case screen.KindPause:
		switch key.Name {
		case fyne.KeyEscape, fyne.KeySpace:
			win.dispatcher.Dispatch(screen.PauseBack{})
		case fyne.KeyR:
			win.dispatcher.Dispatch(screen.PauseReset{})
		}
	}
}
