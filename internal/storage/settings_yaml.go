package storage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gameclock/internal/core/model"
	"gopkg.in/yaml.v3"
)

type yamlClock struct {
	Enabled bool `yaml:"enabled"`
	Hours   int  `yaml:"hours"`
	Minutes int  `yaml:"minutes"`
	Seconds int  `yaml:"seconds"`
}

type yamlSettings struct {
	Clocks []yamlClock `yaml:"clocks"`
}

// LoadSettings reads initial clock settings from a YAML file.
// An empty path or a missing file yields the default settings.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()
	if path == "" {
		return settings, nil
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	return ParseSettings(rawData)
}

// ParseSettings decodes YAML settings. Slots beyond the file's clocks are
// disabled.
func ParseSettings(rawData []byte) (model.Settings, error) {
	settings := model.DefaultSettings()

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}
	if len(fileData.Clocks) == 0 {
		return settings, nil
	}
	if len(fileData.Clocks) > model.MaxClocks {
		return settings, fmt.Errorf("parse settings yaml: %d clocks configured, at most %d supported", len(fileData.Clocks), model.MaxClocks)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	for index := range settings.Clocks {
		if index >= len(fileData.Clocks) {
			settings.Clocks[index].Enabled = false
			continue
		}
		clock := fileData.Clocks[index]
		settings.Clocks[index] = model.ClockSettings{
			TimeLimit: clockLimit(clock),
			Enabled:   clock.Enabled,
		}
	}
}

func clockLimit(clock yamlClock) time.Duration {
	limit := time.Duration(clock.Hours)*time.Hour +
		time.Duration(clock.Minutes)*time.Minute +
		time.Duration(clock.Seconds)*time.Second
	if limit < 0 {
		return 0
	}
	return limit
}
