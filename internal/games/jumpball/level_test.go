package jumpball

import (
	"math"
	"math/rand"
	"testing"
)

func testTuning() Tuning {
	return Tuning{
		ScreenW: 80,
		ScreenH: 24,

		Radius:   1,
		PlayerX:  20,
		SpinRate: 630,

		GroundY:       20,
		Gravity:       55,
		JumpVelocity:  -30,
		MaxJumpHold:   0.25,
		JumpHoldAccel: -65,

		ScrollSpeed: 22,

		TotalPlatforms: 50,
		MinGap:         26,
		MaxGap:         42,
		MinWidth:       12,
		MaxWidth:       20,
		PlatformHeight: 1,
		MinPlatformY:   1,
		StepUpMin:      1,
		StepUpMax:      2,

		CloudCount:       5,
		CloudMinWidth:    7,
		CloudMaxWidth:    13,
		CloudHeightRatio: 0.3,
		CloudMinSpeed:    1.5,
		CloudMaxSpeed:    3.5,
	}
}

// testLevel builds a level with an explicit platform layout, bypassing
// generation, for collision and landing tests.
func testLevel(tn *Tuning, platforms []Platform) *Level {
	return &Level{
		platforms: platforms,
		clouds:    []Cloud{},
		rng:       rand.New(rand.NewSource(1)),
		tn:        tn,
	}
}

func TestGenerateBounds(t *testing.T) {
	tn := testTuning()
	l := NewLevel(&tn, 12345)

	prevX := float64(tn.ScreenW)
	for i, p := range l.Platforms() {
		if p.YTop < tn.MinPlatformY || p.YTop > tn.GroundY-firstPlatformDrop {
			t.Errorf("platform %d: YTop %f outside [%f, %f]",
				i, p.YTop, tn.MinPlatformY, tn.GroundY-firstPlatformDrop)
		}
		if p.Width < tn.MinWidth || p.Width > tn.MaxWidth {
			t.Errorf("platform %d: width %f outside [%f, %f]",
				i, p.Width, tn.MinWidth, tn.MaxWidth)
		}
		if p.X <= prevX {
			t.Errorf("platform %d: x %f not strictly right of previous %f", i, p.X, prevX)
		}
		if p.Counted {
			t.Errorf("platform %d: generated already counted", i)
		}
		prevX = p.X
	}

	if got := len(l.Platforms()); got != tn.TotalPlatforms {
		t.Errorf("generated %d platforms, expected %d", got, tn.TotalPlatforms)
	}
	if got := len(l.Clouds()); got != tn.CloudCount {
		t.Errorf("generated %d clouds, expected %d", got, tn.CloudCount)
	}
}

func TestGenerateUpwardBias(t *testing.T) {
	tn := testTuning()
	l := NewLevel(&tn, 7)

	// Heights never increase until the top clamp is reached.
	prev := tn.GroundY - firstPlatformDrop
	for i, p := range l.Platforms() {
		if p.YTop > prev {
			t.Errorf("platform %d: YTop %f above previous %f", i, p.YTop, prev)
		}
		prev = p.YTop
	}
}

func TestScrollMovesExactly(t *testing.T) {
	tn := testTuning()
	l := NewLevel(&tn, 42)

	before := make([]float64, len(l.Platforms()))
	for i, p := range l.Platforms() {
		before[i] = p.X
	}

	dt := 0.5
	l.Scroll(dt)

	for i, p := range l.Platforms() {
		want := before[i] - tn.ScrollSpeed*dt
		if math.Abs(p.X-want) > 1e-9 {
			t.Errorf("platform %d: x = %f, expected %f", i, p.X, want)
		}
	}
}

func TestScrollRecyclesOffscreenPlatform(t *testing.T) {
	tn := testTuning()
	l := NewLevel(&tn, 42)

	// Force platform 0 off the left edge past the despawn threshold.
	l.platforms[0].X = -40
	l.platforms[0].Counted = true

	rightMost := 0.0
	for _, p := range l.platforms[1:] {
		if p.X > rightMost {
			rightMost = p.X
		}
	}

	l.Scroll(0.01)

	p := l.platforms[0]
	if p.X <= rightMost-tn.ScrollSpeed*0.01 {
		t.Errorf("recycled platform at x=%f, expected right of old rightmost %f", p.X, rightMost)
	}
	if p.Counted {
		t.Error("recycled platform should have counted reset")
	}
	if p.Width < tn.MinWidth || p.Width > tn.MaxWidth {
		t.Errorf("recycled platform width %f outside [%f, %f]", p.Width, tn.MinWidth, tn.MaxWidth)
	}
	if p.YTop < tn.MinPlatformY {
		t.Errorf("recycled platform YTop %f above minimum %f", p.YTop, tn.MinPlatformY)
	}
}

func TestAwardScoreSingleFire(t *testing.T) {
	tn := testTuning()
	l := testLevel(&tn, []Platform{
		{X: 2, YTop: 15, Width: 3},  // Right edge 5, behind the ball
		{X: 10, YTop: 14, Width: 4}, // Right edge 14, behind the ball
		{X: 30, YTop: 13, Width: 5}, // Ahead of the ball
	})

	ballX, radius := 20.0, 1.0

	if gained := l.AwardScore(ballX, radius); gained != 2 {
		t.Errorf("first call gained %d, expected 2", gained)
	}
	if gained := l.AwardScore(ballX, radius); gained != 0 {
		t.Errorf("second call gained %d, expected 0 (platforms already counted)", gained)
	}
}

func TestAwardScoreRequiresFullPass(t *testing.T) {
	tn := testTuning()
	// Right edge 19, ball left edge 19: not strictly past.
	l := testLevel(&tn, []Platform{{X: 14, YTop: 15, Width: 5}})

	if gained := l.AwardScore(20, 1); gained != 0 {
		t.Errorf("gained %d for platform not strictly behind the ball, expected 0", gained)
	}
	if gained := l.AwardScore(20.5, 1); gained != 1 {
		t.Errorf("gained %d once the ball fully passed, expected 1", gained)
	}
}

func TestResolveLandingHighestPlatformWins(t *testing.T) {
	tn := testTuning()
	l := testLevel(&tn, []Platform{
		{X: 10, YTop: 15, Width: 10},
		{X: 12, YTop: 12, Width: 10},
	})

	// Downward crossing of both tops in one frame: previous bottom above
	// both, current bottom below both.
	newY, newVY, landed, onGround := l.ResolveLanding(15, 10.5, 14.5, 10, 1)

	if !landed {
		t.Fatal("expected a landing")
	}
	if onGround {
		t.Error("landed on a platform, not the ground")
	}
	if newY != 12-1 {
		t.Errorf("newY = %f, expected to snap onto the higher platform at %f", newY, 12.0-1)
	}
	if newVY != 0 {
		t.Errorf("newVY = %f, expected 0", newVY)
	}
}

func TestResolveLandingRequiresDownwardCrossing(t *testing.T) {
	tn := testTuning()
	l := testLevel(&tn, []Platform{{X: 10, YTop: 15, Width: 10}})

	// Rising: vy < 0 never lands.
	if _, _, landed, _ := l.ResolveLanding(15, 16, 14.5, -5, 1); landed {
		t.Error("rising ball must not land")
	}

	// Falling but already below the top in the previous frame: no crossing.
	if _, _, landed, _ := l.ResolveLanding(15, 15.5, 16, 5, 1); landed {
		t.Error("ball already below the top plane must not land")
	}

	// No horizontal overlap.
	if _, _, landed, _ := l.ResolveLanding(30, 13, 14.5, 5, 1); landed {
		t.Error("ball outside the platform horizontally must not land")
	}
}

func TestResolveLandingGroundFallback(t *testing.T) {
	tn := testTuning()
	l := testLevel(&tn, []Platform{{X: 50, YTop: 10, Width: 10}})

	newY, newVY, landed, onGround := l.ResolveLanding(15, tn.GroundY-1, tn.GroundY+0.5, 8, 1)

	if !landed || !onGround {
		t.Fatalf("expected ground landing, got landed=%v onGround=%v", landed, onGround)
	}
	if newY != tn.GroundY {
		t.Errorf("newY = %f, expected ground level %f", newY, tn.GroundY)
	}
	if newVY != 0 {
		t.Errorf("newVY = %f, expected 0", newVY)
	}
}

func TestResolveLandingKeepsFallingMidair(t *testing.T) {
	tn := testTuning()
	l := testLevel(&tn, []Platform{{X: 50, YTop: 10, Width: 10}})

	y, vy := 12.0, 8.0
	newY, newVY, landed, _ := l.ResolveLanding(15, 11, y, vy, 1)

	if landed {
		t.Fatal("expected no landing in midair")
	}
	if newY != y || newVY != vy {
		t.Errorf("position changed without landing: (%f, %f) -> (%f, %f)", y, vy, newY, newVY)
	}
}

func TestLandingResolvedBeforeCollision(t *testing.T) {
	tn := testTuning()
	l := testLevel(&tn, []Platform{{X: 10, YTop: 15, Width: 10}})

	ballX, radius := 15.0, 1.0
	prevY, y, vy := 13.5, 15.5, 10.0

	// Unresolved, the post-fall position overlaps the platform and would
	// count as a death.
	if !l.CheckCollision(ballX, y, radius) {
		t.Fatal("unresolved crossing position should collide")
	}

	// Resolving first snaps the ball on top, clear of the collision test.
	newY, _, landed, _ := l.ResolveLanding(ballX, prevY, y, vy, radius)
	if !landed {
		t.Fatal("expected a landing")
	}
	if l.CheckCollision(ballX, newY, radius) {
		t.Error("resolved landing position must not collide")
	}
}

func TestCheckCollisionSideHit(t *testing.T) {
	tn := testTuning()
	l := testLevel(&tn, []Platform{{X: 10, YTop: 15, Width: 10}})

	// Ball center level with the platform body, touching its left side.
	if !l.CheckCollision(9.5, 15.5, 1) {
		t.Error("ball overlapping the platform side should collide")
	}

	// Well clear of the platform.
	if l.CheckCollision(5, 15.5, 1) {
		t.Error("ball away from all platforms should not collide")
	}

	// Resting exactly on top: distance equals radius, strict test excludes it.
	if l.CheckCollision(15, 14, 1) {
		t.Error("ball resting exactly on the top surface should not collide")
	}
}

func TestLevelDeterministicForSeed(t *testing.T) {
	tn := testTuning()
	l1 := NewLevel(&tn, 99)
	l2 := NewLevel(&tn, 99)

	for i := range l1.Platforms() {
		a, b := l1.Platforms()[i], l2.Platforms()[i]
		if a != b {
			t.Fatalf("platform %d differs between identically seeded levels: %+v vs %+v", i, a, b)
		}
	}
}
