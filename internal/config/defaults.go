package config

import (
	_ "embed"
)

//go:embed defaults/jumpball.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the default game configuration, used as a last-resort
// fallback if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			BaseHeight:   24,
			GroundMargin: 4,
		},
		Player: PlayerConfig{
			Radius:    1.0,
			XFraction: 0.25,
			SpinRate:  630,
		},
		Physics: PhysicsConfig{
			Gravity:       55,
			JumpVelocity:  -30,
			MaxJumpHold:   0.25,
			JumpHoldAccel: -65,
		},
		Scroll: ScrollConfig{
			Speed: 22,
		},
		Platforms: PlatformsConfig{
			Total:     200,
			MinGap:    26,
			MaxGap:    42,
			MinWidth:  12,
			MaxWidth:  20,
			Height:    1,
			MinY:      1,
			StepUpMin: 1,
			StepUpMax: 2,
		},
		Clouds: CloudsConfig{
			Count:       10,
			MinWidth:    7,
			MaxWidth:    13,
			HeightRatio: 0.3,
			MinSpeed:    1.5,
			MaxSpeed:    3.5,
		},
	}
}
