package jumpball

import (
	"github.com/mkarpenko/tui-jumpball/internal/config"
	"github.com/mkarpenko/tui-jumpball/internal/core"
)

// Game orchestrates one run: per-tick input, physics, scrolling, landing
// resolution, scoring, camera, and the terminal state flags.
type Game struct {
	runtime core.RuntimeConfig
	tn      Tuning

	player Player
	level  *Level

	score         int
	gameOver      bool
	levelComplete bool
	paused        bool
	cameraOffsetY float64

	jumpWasHeld bool // Jump input seen on the previous tick
	tickCount   int
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.Preset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied at load time.
// Unknown names fall back to the loaded configuration as-is.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	} else {
		difficultyPreset = ""
	}
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumpball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jumping Ball"
}

// Reset initializes or restarts the game: loads configuration, derives the
// immutable tuning for the current screen, regenerates the level, and puts
// the ball back on the ground.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.tn = NewTuning(cfg, runtime.ScreenW, runtime.ScreenH)

	g.player.Reset(&g.tn)
	if g.level == nil {
		g.level = NewLevel(&g.tn, runtime.Seed)
	} else {
		g.level.Reset(&g.tn, runtime.Seed)
	}

	g.score = 0
	g.gameOver = false
	g.levelComplete = false
	g.paused = false
	g.cameraOffsetY = 0
	g.jumpWasHeld = false
	g.tickCount = 0
}

// Step advances the game by one tick. In a terminal state all updates are
// ignored; restart is handled by the platform layer via Reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.levelComplete {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.Dt()

	// A jump press only on the tick it first appears; a press that is part
	// of an ongoing hold only extends the current jump.
	held := in.Has(core.ActionJumpHeld)
	if in.Has(core.ActionJump) && !g.jumpWasHeld && g.player.CanJump() {
		g.player.StartJump(&g.tn)
	}
	g.jumpWasHeld = held || in.Has(core.ActionJump)

	prevY := g.player.Y()
	g.player.Update(dt, held, &g.tn)
	g.level.Scroll(dt)

	// Landing must be resolved, and the ball repositioned, before the
	// collision check below, or a legitimate top landing would register as
	// a side hit.
	newY, newVY, landed, onGround := g.level.ResolveLanding(
		g.player.X(), prevY, g.player.Y(), g.player.VY(), g.tn.Radius,
	)
	if landed {
		g.player.Settle(newY, newVY)
	}
	g.player.SetGrounded(landed)

	// Camera follows the ball upward, keeping it around 40% screen height;
	// it never scrolls below the starting view.
	desired := float64(g.tn.ScreenH) * 0.4
	g.cameraOffsetY = minF(0, g.player.Y()-desired)

	// Touching the ground is lethal once the ball has jumped.
	if onGround && g.player.HasLeftGround() {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	g.score += g.level.AwardScore(g.player.X(), g.tn.Radius)
	if g.score >= g.tn.TotalPlatforms {
		g.levelComplete = true
		return core.StepResult{State: g.State()}
	}

	if g.level.CheckCollision(g.player.X(), g.player.Y(), g.tn.Radius) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		GameOver:  g.gameOver,
		Completed: g.levelComplete,
		Paused:    g.paused,
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
