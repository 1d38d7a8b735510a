// Package jumpball implements a side-scrolling platformer: a ball rolls
// across procedurally generated platforms, double-jumping between them, and
// must avoid touching the ground or platform sides after its first jump.
package jumpball

import (
	"github.com/mkarpenko/tui-jumpball/internal/config"
)

// Tuning is the immutable set of gameplay values for one run, derived once
// from the loaded configuration and the actual screen size. Vertical physics
// is scaled by the ratio of the actual screen height to the base height the
// values were tuned for, keeping the feel consistent across terminal sizes.
// Never mutated after construction.
type Tuning struct {
	ScreenW int
	ScreenH int

	Radius   float64
	PlayerX  float64 // Fixed horizontal ball position
	SpinRate float64 // Degrees per second

	GroundY       float64
	Gravity       float64
	JumpVelocity  float64
	MaxJumpHold   float64
	JumpHoldAccel float64

	ScrollSpeed float64

	TotalPlatforms int
	MinGap         float64
	MaxGap         float64
	MinWidth       float64
	MaxWidth       float64
	PlatformHeight float64
	MinPlatformY   float64
	StepUpMin      float64
	StepUpMax      float64

	CloudCount       int
	CloudMinWidth    float64
	CloudMaxWidth    float64
	CloudHeightRatio float64
	CloudMinSpeed    float64
	CloudMaxSpeed    float64
}

// NewTuning builds the tuning values for the given screen size.
func NewTuning(cfg config.Config, screenW, screenH int) Tuning {
	baseH := cfg.Screen.BaseHeight
	if baseH <= 0 {
		baseH = 24
	}
	heightScale := float64(screenH) / float64(baseH)

	return Tuning{
		ScreenW: screenW,
		ScreenH: screenH,

		Radius:   cfg.Player.Radius,
		PlayerX:  float64(screenW) * cfg.Player.XFraction,
		SpinRate: cfg.Player.SpinRate,

		GroundY:       float64(screenH - cfg.Screen.GroundMargin),
		Gravity:       cfg.Physics.Gravity * heightScale,
		JumpVelocity:  cfg.Physics.JumpVelocity * heightScale,
		MaxJumpHold:   cfg.Physics.MaxJumpHold,
		JumpHoldAccel: cfg.Physics.JumpHoldAccel * heightScale,

		ScrollSpeed: cfg.Scroll.Speed,

		TotalPlatforms: cfg.Platforms.Total,
		MinGap:         cfg.Platforms.MinGap,
		MaxGap:         cfg.Platforms.MaxGap,
		MinWidth:       cfg.Platforms.MinWidth,
		MaxWidth:       cfg.Platforms.MaxWidth,
		PlatformHeight: cfg.Platforms.Height,
		MinPlatformY:   cfg.Platforms.MinY,
		StepUpMin:      cfg.Platforms.StepUpMin,
		StepUpMax:      cfg.Platforms.StepUpMax,

		CloudCount:       cfg.Clouds.Count,
		CloudMinWidth:    cfg.Clouds.MinWidth,
		CloudMaxWidth:    cfg.Clouds.MaxWidth,
		CloudHeightRatio: cfg.Clouds.HeightRatio,
		CloudMinSpeed:    cfg.Clouds.MinSpeed,
		CloudMaxSpeed:    cfg.Clouds.MaxSpeed,
	}
}
