// Package logging configures the application logger: a size-limited file
// receiving every entry and a stderr console filtered by severity.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// ErrNotDirectory indicates the log path exists but is not a directory.
var ErrNotDirectory = errors.New("log path is not a directory")

const logFileName = "log.txt"

// Options controls logger setup.
type Options struct {
	// Dir holds the log file. It is created when missing.
	Dir string
	// Debug lowers the console threshold from warn to trace.
	Debug bool
	// Console receives filtered entries. Defaults to stderr.
	Console io.Writer
	// SizeLimit bounds the log file. Defaults to DefaultSizeLimit.
	SizeLimit int64
}

// DefaultDir returns the "log" directory under the working directory.
func DefaultDir() (string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Join(workDir, "log"), nil
}

// Setup builds the logger. The returned closer releases the log file.
func Setup(options Options) (*logrus.Logger, io.Closer, error) {
	if options.Dir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, nil, err
		}
		options.Dir = dir
	}
	if err := ensureDir(options.Dir); err != nil {
		return nil, nil, err
	}

	file, err := OpenSizeLimitedWriter(filepath.Join(options.Dir, logFileName), options.SizeLimit)
	if err != nil {
		return nil, nil, err
	}

	console := options.Console
	if console == nil {
		console = os.Stderr
	}
	threshold := logrus.WarnLevel
	if options.Debug {
		threshold = logrus.TraceLevel
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetLevel(logrus.TraceLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	logger.AddHook(newConsoleHook(console, threshold))
	return logger, file, nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	return nil
}

// consoleHook copies entries at or above a severity to a writer.
type consoleHook struct {
	writer    io.Writer
	formatter logrus.Formatter
	levels    []logrus.Level
}

func newConsoleHook(writer io.Writer, threshold logrus.Level) *consoleHook {
	var levels []logrus.Level
	for _, level := range logrus.AllLevels {
		if level <= threshold {
			levels = append(levels, level)
		}
	}
	return &consoleHook{
		writer:    writer,
		formatter: &logrus.TextFormatter{},
		levels:    levels,
	}
}

func (hook *consoleHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *consoleHook) Fire(entry *logrus.Entry) error {
	serialized, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = hook.writer.Write(serialized)
	return err
}
