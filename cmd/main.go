package main

import (
	"fmt"
	"os"
	"time"

	gameapp "gameclock/internal/app"
	"gameclock/internal/core/screen"
	"gameclock/internal/core/tick"
	"gameclock/internal/logging"
	"gameclock/internal/storage"
	"gameclock/internal/ui/clockview"
	"gameclock/internal/ui/tray"
	"gameclock/internal/ui/window"
	"gameclock/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"
)

const appName = "GameClock"

type options struct {
	configPath   string
	logDir       string
	debug        bool
	tickInterval time.Duration
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}
	command := &cobra.Command{
		Use:          "gameclock",
		Short:        "Board game clock for one to four players",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := command.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML file with the initial clock settings")
	flags.StringVar(&opts.logDir, "log-dir", "", "directory for log.txt (default ./log)")
	flags.BoolVar(&opts.debug, "debug", false, "print every log entry to stderr")
	flags.DurationVar(&opts.tickInterval, "tick", tick.DefaultInterval, "interval between clock updates")
	return command
}

func run(opts options) error {
	logger, closer, err := logging.Setup(logging.Options{Dir: opts.logDir, Debug: opts.debug})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer func() {
		_ = closer.Close()
	}()
	logger.Trace("loggers have been set")
	if opts.debug {
		logger.Debug("debug mode")
	}

	settings, err := storage.LoadSettings(opts.configPath)
	if err != nil {
		logger.WithError(err).Warn("falling back to default settings")
	}

	fyneApp := app.NewWithID("com.gameclock.app")
	fyneApp.SetIcon(resources.MustLogo(resources.AppIcon))

	controller := gameapp.New(settings, gameapp.Config{
		TickInterval: opts.tickInterval,
		Execute:      fyne.Do,
	}, logger)
	defer controller.Stop()

	mainWindow := window.New(fyneApp, appName, controller, controller.View())
	controller.Subscribe(mainWindow.Render)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow: mainWindow.Show,
			OnTogglePause: func() {
				switch controller.View().Kind {
				case screen.KindClock:
					controller.Dispatch(screen.ClockPause{})
				case screen.KindPause:
					controller.Dispatch(screen.PauseBack{})
				}
			},
			OnQuit: func() {
				controller.Stop()
				fyneApp.Quit()
			},
		})
		controller.Subscribe(func(view screen.View) {
			trayManager.SetStatus(trayStatus(view))
			trayManager.SetPauseState(view.Kind == screen.KindPause, view.Kind == screen.KindClock)
		})
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	mainWindow.Show()
	fyneApp.Run()
	logger.Trace("application exited")
	return nil
}

func trayStatus(view screen.View) string {
	if view.Kind == screen.KindSettings {
		return "configuring"
	}
	for _, status := range view.Clocks {
		if status.Running {
			return fmt.Sprintf("clock %d %s", status.Index+1, clockview.FormatRemaining(status.Remaining))
		}
	}
	return "clocks stopped"
}
