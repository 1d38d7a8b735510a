package jumpball

import (
	"math/rand"

	"github.com/mkarpenko/tui-jumpball/internal/core"
)

// World-edge margins, in cells. Platforms and clouds are recycled once
// their right edge passes the despawn threshold left of the screen, and
// fresh content spawns off-screen to the right.
const (
	platformDespawnX  = -6.0
	cloudDespawnX     = -4.0
	genStartOffset    = 20.0 // First platform spawns this far right of the screen
	firstPlatformDrop = 2.0  // First platform sits this far above the ground
	cloudRespawnMin   = 8
	cloudRespawnMax   = 28
)

// Platform is one recyclable world platform. Platforms live in a fixed-size
// pool: they are generated in one batch and respawned in place forever,
// never individually destroyed.
type Platform struct {
	X       float64 // Left edge, world space
	YTop    float64 // Top surface row
	Width   float64
	Counted bool // Whether this platform was already scored
}

// Rect returns the platform's collision rectangle.
func (p Platform) Rect(height float64) core.RectF {
	return core.RectF{X: p.X, Y: p.YTop, W: p.Width, H: height}
}

// Cloud is a purely decorative parallax element with its own scroll speed.
type Cloud struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Level owns the platform and cloud pools: it generates, scrolls, recycles,
// scores, and collides them. All randomness flows through its own seeded
// source so runs are reproducible.
type Level struct {
	platforms []Platform
	clouds    []Cloud
	rng       *rand.Rand
	tn        *Tuning
}

// NewLevel creates a level for the given tuning and RNG seed.
func NewLevel(tn *Tuning, seed int64) *Level {
	l := &Level{
		platforms: make([]Platform, tn.TotalPlatforms),
		clouds:    make([]Cloud, tn.CloudCount),
		rng:       rand.New(rand.NewSource(seed)),
		tn:        tn,
	}
	l.Generate()
	return l
}

// Reset reseeds the RNG and regenerates the world in place.
func (l *Level) Reset(tn *Tuning, seed int64) {
	l.tn = tn
	if len(l.platforms) != tn.TotalPlatforms {
		l.platforms = make([]Platform, tn.TotalPlatforms)
	}
	if len(l.clouds) != tn.CloudCount {
		l.clouds = make([]Cloud, tn.CloudCount)
	}
	l.rng = rand.New(rand.NewSource(seed))
	l.Generate()
}

// randRange draws a uniform random value from the integer range [min, max].
// Generation works on whole cells; only scrolling moves platforms to
// fractional positions.
func (l *Level) randRange(min, max float64) float64 {
	lo, hi := int(min), int(max)
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + l.rng.Intn(hi-lo+1))
}

// Generate lays out the initial level: a horizontal cursor walks rightward
// from off-screen, placing each platform after a random gap with a random
// width, stepping generally upward and clamping at the top margin. Clouds
// spawn independently across the sky.
func (l *Level) Generate() {
	tn := l.tn

	cursor := float64(tn.ScreenW) + genStartOffset
	yTop := tn.GroundY - firstPlatformDrop

	for i := range l.platforms {
		cursor += l.randRange(tn.MinGap, tn.MaxGap)
		width := l.randRange(tn.MinWidth, tn.MaxWidth)
		step := l.randRange(tn.StepUpMin, tn.StepUpMax)
		yTop = maxF(tn.MinPlatformY, yTop-step)

		l.platforms[i] = Platform{X: cursor, YTop: yTop, Width: width}
	}

	for i := range l.clouds {
		w := l.randRange(tn.CloudMinWidth, tn.CloudMaxWidth)
		l.clouds[i] = Cloud{
			X:     l.randRange(0, float64(tn.ScreenW)+60),
			Y:     l.randRange(2, float64(tn.ScreenH)/2),
			W:     w,
			H:     w * tn.CloudHeightRatio,
			Speed: tn.CloudMinSpeed + l.rng.Float64()*(tn.CloudMaxSpeed-tn.CloudMinSpeed),
		}
	}
}

// Scroll moves every platform left by exactly ScrollSpeed*dt and recycles
// any platform whose right edge has passed the despawn threshold: it is
// respawned right of the rightmost platform with fresh random gap, width,
// and a step up from its own previous height. Recycling walks the pool in
// index order because the rightmost tracker updates incrementally.
// Clouds scroll independently at their own speeds.
func (l *Level) Scroll(dt float64) {
	tn := l.tn

	rightMost := 0.0
	for i := range l.platforms {
		l.platforms[i].X -= tn.ScrollSpeed * dt
		if l.platforms[i].X > rightMost {
			rightMost = l.platforms[i].X
		}
	}

	for i := range l.platforms {
		p := &l.platforms[i]
		if p.X+p.Width >= platformDespawnX {
			continue
		}

		gap := l.randRange(tn.MinGap, tn.MaxGap)
		width := l.randRange(tn.MinWidth, tn.MaxWidth)
		step := l.randRange(tn.StepUpMin, tn.StepUpMax)

		*p = Platform{
			X:     rightMost + gap,
			YTop:  maxF(tn.MinPlatformY, p.YTop-step),
			Width: width,
		}
		rightMost = p.X
	}

	for i := range l.clouds {
		c := &l.clouds[i]
		c.X -= c.Speed * dt

		if c.X+c.W < cloudDespawnX {
			w := l.randRange(tn.CloudMinWidth, tn.CloudMaxWidth)
			c.X = float64(tn.ScreenW) + l.randRange(cloudRespawnMin, cloudRespawnMax)
			c.Y = l.randRange(2, float64(tn.ScreenH)/2)
			c.W = w
			c.H = w * tn.CloudHeightRatio
			c.Speed = tn.CloudMinSpeed + l.rng.Float64()*(tn.CloudMaxSpeed-tn.CloudMinSpeed)
		}
	}
}

// AwardScore counts every platform not yet scored whose right edge has
// passed left of the ball's left edge, marks it counted, and returns the
// number gained this call. Each platform fires at most once, so the
// cumulative score is monotonic.
func (l *Level) AwardScore(ballX, radius float64) int {
	gained := 0
	for i := range l.platforms {
		p := &l.platforms[i]
		if !p.Counted && p.X+p.Width < ballX-radius {
			p.Counted = true
			gained++
		}
	}
	return gained
}

// CheckCollision reports whether the ball overlaps any platform rectangle.
// The test does not distinguish top contact from side or bottom contact:
// legitimate top landings must be resolved (and the ball repositioned) by
// ResolveLanding before this runs in the same frame.
func (l *Level) CheckCollision(ballX, ballY, radius float64) bool {
	for i := range l.platforms {
		if core.CircleIntersectsRect(ballX, ballY, radius, l.platforms[i].Rect(l.tn.PlatformHeight)) {
			return true
		}
	}
	return false
}

// ResolveLanding decides whether a falling ball came to rest this frame.
// A platform qualifies when the ball's bottom crossed its top plane between
// frames while horizontally over it; among qualifying platforms the highest
// top wins (strict comparison, so exact ties go to the lowest index). If no
// platform qualifies and the ball has passed ground level it settles on the
// ground instead.
//
// Returns the resolved position and velocity (unchanged unless landed),
// whether the ball landed, and whether the landing was on the ground.
func (l *Level) ResolveLanding(ballX, prevY, y, vy, radius float64) (newY, newVY float64, landed, onGround bool) {
	tn := l.tn
	targetY := tn.GroundY

	if vy >= 0 {
		for i := range l.platforms {
			p := &l.platforms[i]
			top := p.YTop
			if y+radius >= top && prevY+radius <= top &&
				p.X <= ballX && ballX <= p.X+p.Width {
				if top < targetY {
					targetY = top
					landed = true
				}
			}
		}
	}

	if landed {
		return targetY - radius, 0, true, false
	}
	if y > tn.GroundY {
		return tn.GroundY, 0, true, true
	}
	return y, vy, false, false
}

// Platforms exposes the platform pool for rendering.
func (l *Level) Platforms() []Platform {
	return l.platforms
}

// Clouds exposes the cloud pool for rendering.
func (l *Level) Clouds() []Cloud {
	return l.clouds
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
