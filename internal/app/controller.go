package app

import (
	"sync"
	"time"

	"gameclock/internal/core/model"
	"gameclock/internal/core/screen"
	"gameclock/internal/core/tick"

	"github.com/sirupsen/logrus"
)

// Config contains runtime options for Controller.
type Config struct {
	TickInterval time.Duration
	// Now returns the timestamp attached to user actions.
	Now func() time.Time
	// Execute runs fn on the goroutine that owns the UI.
	Execute func(fn func())
}

// Controller feeds ticks and user actions into the screen stack one at a
// time and reports every new view to its observers.
type Controller struct {
	mu        sync.Mutex
	root      *screen.Root
	ticks     *tick.Source
	now       func() time.Time
	execute   func(func())
	observers []func(screen.View)
	log       *logrus.Entry
}

// New creates a controller starting on the settings screen.
func New(settings model.Settings, config Config, logger *logrus.Logger) *Controller {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Execute == nil {
		config.Execute = func(fn func()) { fn() }
	}

	controller := &Controller{
		root:    screen.New(settings, logger),
		now:     config.Now,
		execute: config.Execute,
		log:     logger.WithField("component", "controller"),
	}
	controller.ticks = tick.New(tick.Config{Interval: config.TickInterval}, controller.deliverTick)
	return controller
}

// Subscribe registers an observer called after every dispatched event.
func (controller *Controller) Subscribe(observer func(screen.View)) {
	controller.mu.Lock()
	controller.observers = append(controller.observers, observer)
	controller.mu.Unlock()
}

// View returns the current display state.
func (controller *Controller) View() screen.View {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.root.View()
}

// Settings returns the settings currently in effect.
func (controller *Controller) Settings() model.Settings {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.root.Settings()
}

// Ticking reports whether the tick source is delivering.
func (controller *Controller) Ticking() bool {
	return controller.ticks.Running()
}

// Dispatch processes a user action stamped with the current time.
func (controller *Controller) Dispatch(event screen.Event) {
	controller.dispatch(event, controller.now())
}

// Stop halts the tick source.
func (controller *Controller) Stop() {
	controller.ticks.Stop()
}

// deliverTick stamps the tick when it runs on the UI goroutine, so ticks and
// user actions share one time source regardless of queueing delay.
func (controller *Controller) deliverTick(time.Time) {
	controller.execute(func() {
		controller.dispatch(screen.Tick{}, controller.now())
	})
}

func (controller *Controller) dispatch(event screen.Event, now time.Time) {
	controller.mu.Lock()
	transition := controller.root.Dispatch(event, now)
	view := controller.root.View()
	if controller.root.Ticking() {
		controller.ticks.Start()
	} else {
		controller.ticks.Stop()
	}
	observers := make([]func(screen.View), len(controller.observers))
	copy(observers, controller.observers)
	controller.mu.Unlock()

	if transition != screen.TransitionNone {
		controller.log.WithFields(logrus.Fields{
			"transition": transition,
			"screen":     view.Kind,
		}).Debug("screen changed")
	}

	for _, observer := range observers {
		observer(view)
	}
}
