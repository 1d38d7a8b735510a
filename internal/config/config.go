// Package config provides YAML-based game configuration loading and
// difficulty presets for the jumping-ball scroller.
package config

// Config contains all tunable parameters for the game. Values are expressed
// in terminal cells and seconds, tuned for the 80x24 base screen; the game
// layer scales the vertical physics once at startup for taller screens.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Clouds    CloudsConfig    `yaml:"clouds"`
}

// ScreenConfig defines the base screen layout parameters.
type ScreenConfig struct {
	BaseHeight   int `yaml:"base_height"`   // Height the physics values are tuned for
	GroundMargin int `yaml:"ground_margin"` // Rows between ground level and screen bottom
}

// PlayerConfig defines ball parameters.
type PlayerConfig struct {
	Radius    float64 `yaml:"radius"`     // Ball radius in cells
	XFraction float64 `yaml:"x_fraction"` // Fixed horizontal position as a fraction of screen width
	SpinRate  float64 `yaml:"spin_rate"`  // Rolling animation rate in degrees per second
}

// PhysicsConfig defines vertical physics parameters.
// Gravity, JumpVelocity and JumpHoldAccel are scaled by the ratio of the
// actual screen height to Screen.BaseHeight when the game starts.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`         // Downward acceleration (cells/s²)
	JumpVelocity  float64 `yaml:"jump_velocity"`   // Initial upward velocity on jump (negative = up)
	MaxJumpHold   float64 `yaml:"max_jump_hold"`   // Maximum seconds the jump can be held for extra height
	JumpHoldAccel float64 `yaml:"jump_hold_accel"` // Extra upward acceleration while holding jump
}

// ScrollConfig defines world scrolling parameters.
type ScrollConfig struct {
	Speed float64 `yaml:"speed"` // Horizontal scroll speed (cells/s)
}

// PlatformsConfig defines platform generation parameters.
type PlatformsConfig struct {
	Total     int     `yaml:"total"`       // Number of platforms to pass to complete the level
	MinGap    float64 `yaml:"min_gap"`     // Minimum horizontal gap between platforms
	MaxGap    float64 `yaml:"max_gap"`     // Maximum horizontal gap between platforms
	MinWidth  float64 `yaml:"min_width"`   // Minimum platform width
	MaxWidth  float64 `yaml:"max_width"`   // Maximum platform width
	Height    float64 `yaml:"height"`      // Platform thickness
	MinY      float64 `yaml:"min_y"`       // Highest row platforms can reach
	StepUpMin float64 `yaml:"step_up_min"` // Minimum vertical step up between consecutive platforms
	StepUpMax float64 `yaml:"step_up_max"` // Maximum vertical step up between consecutive platforms
}

// CloudsConfig defines decorative parallax cloud parameters.
type CloudsConfig struct {
	Count       int     `yaml:"count"`
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	HeightRatio float64 `yaml:"height_ratio"` // Cloud height as a fraction of its width
	MinSpeed    float64 `yaml:"min_speed"`    // Slowest cloud scroll speed (cells/s)
	MaxSpeed    float64 `yaml:"max_speed"`    // Fastest cloud scroll speed (cells/s)
}
