package config

// Preset is a named difficulty level applied to the configuration at load
// time. Presets adjust generation ranges and scroll speed only; per-frame
// scrolling always moves platforms by exactly speed*dt.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI string to a Preset.
// Returns false if the string names no known preset.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(s), true
	}
	return "", false
}

// ApplyPreset adjusts gameplay parameters for a difficulty preset.
// Normal leaves the loaded configuration untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Scroll.Speed = 18
		cfg.Platforms.MinGap = 22
		cfg.Platforms.MaxGap = 34
		cfg.Platforms.MinWidth = 14
		cfg.Platforms.MaxWidth = 22
	case PresetHard:
		cfg.Scroll.Speed = 26
		cfg.Platforms.MinGap = 30
		cfg.Platforms.MaxGap = 48
		cfg.Platforms.MinWidth = 10
		cfg.Platforms.MaxWidth = 16
	}
}
