package model

import "time"

// MaxClocks is the number of clock slots a Settings value carries.
const MaxClocks = 4

// DefaultTimeLimit is the time limit of a freshly enabled clock.
const DefaultTimeLimit = 3 * time.Minute

// MaxTimeLimit is the longest limit the settings form can display.
const MaxTimeLimit = 255*time.Hour + 59*time.Minute + 59*time.Second

// ClockSettings configures a single countdown clock.
type ClockSettings struct {
	TimeLimit time.Duration
	Enabled   bool
}

// Settings holds the configuration of every clock slot.
type Settings struct {
	Clocks []ClockSettings
}

// DefaultSettings returns two enabled clocks and two disabled slots.
func DefaultSettings() Settings {
	settings := Settings{Clocks: make([]ClockSettings, MaxClocks)}
	for index := range settings.Clocks {
		settings.Clocks[index] = ClockSettings{
			TimeLimit: DefaultTimeLimit,
			Enabled:   index < 2,
		}
	}
	return settings
}

// Normalize returns a copy with exactly MaxClocks slots and every limit
// within [0, MaxTimeLimit].
func (settings Settings) Normalize() Settings {
	normalized := Settings{Clocks: make([]ClockSettings, MaxClocks)}
	copy(normalized.Clocks, settings.Clocks)
	for index := range normalized.Clocks {
		switch limit := normalized.Clocks[index].TimeLimit; {
		case limit < 0:
			normalized.Clocks[index].TimeLimit = 0
		case limit > MaxTimeLimit:
			normalized.Clocks[index].TimeLimit = MaxTimeLimit
		}
	}
	return normalized
}

// Limits returns the time limits of the enabled clocks in slot order.
func (settings Settings) Limits() []time.Duration {
	limits := make([]time.Duration, 0, len(settings.Clocks))
	for _, clock := range settings.Clocks {
		if clock.Enabled {
			limits = append(limits, clock.TimeLimit)
		}
	}
	return limits
}

// EnabledCount returns how many clocks are enabled.
func (settings Settings) EnabledCount() int {
	count := 0
	for _, clock := range settings.Clocks {
		if clock.Enabled {
			count++
		}
	}
	return count
}
