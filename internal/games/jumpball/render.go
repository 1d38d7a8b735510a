package jumpball

import (
	"fmt"
	"math"

	"github.com/mkarpenko/tui-jumpball/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	GroundChar   = '█'
	GroundTop    = '▀'
	BallChar     = '█'
	BallSpot     = '•'
	CloudChar    = '░'
	SunChar      = '▓'
)

// Render draws the current state back to front: sky, ground, platforms,
// ball, HUD, overlays. World-space elements are shifted by the camera
// offset; HUD and overlays are fixed on screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cam := g.cameraOffsetY

	g.drawSky(dst, cam)
	g.drawGround(dst, cam)
	g.drawPlatforms(dst, cam)
	g.drawBall(dst, cam)

	// HUD text, fixed on screen
	dst.DrawText(2, 0, "Space to jump")
	scoreText := fmt.Sprintf("Score: %d / %d", g.score, g.tn.TotalPlatforms)
	dst.DrawText(dst.Width()-len(scoreText)-2, 0, scoreText)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		dst.Shade(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorGray)
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Space to restart", g.score))
	}
	if g.levelComplete {
		dst.Shade(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorGreen)
		g.drawCenteredMessage(dst, "LEVEL COMPLETE!", "Space to play again")
	}
}

// drawSky renders the sun and the parallax clouds. Each cloud is three
// overlapping ellipses for a puffy shape.
func (g *Game) drawSky(dst *core.Screen, cam float64) {
	dst.FillEllipse(6, 3-cam, 5, 2.5, SunChar, core.ColorBrightYellow)

	for _, c := range g.level.Clouds() {
		cy := c.Y - cam
		dst.FillEllipse(c.X, cy, c.W*0.6, c.H*0.6, CloudChar, core.ColorBrightWhite)
		dst.FillEllipse(c.X+c.W*0.2, cy-c.H*0.2, c.W*0.5, c.H*0.5, CloudChar, core.ColorBrightWhite)
		dst.FillEllipse(c.X-c.W*0.2, cy-c.H*0.1, c.W*0.55, c.H*0.55, CloudChar, core.ColorBrightWhite)
	}
}

// drawGround fills everything below ground level.
func (g *Game) drawGround(dst *core.Screen, cam float64) {
	top := int(math.Round(g.tn.GroundY + g.tn.Radius - cam))
	if top < 0 {
		top = 0
	}
	for y := top; y < dst.Height(); y++ {
		ch := GroundChar
		if y == top {
			ch = GroundTop
		}
		dst.DrawHLine(0, y, dst.Width(), ch, core.ColorGreen)
	}
}

func (g *Game) drawPlatforms(dst *core.Screen, cam float64) {
	h := core.Max(1, int(g.tn.PlatformHeight))
	for _, p := range g.level.Platforms() {
		x := int(math.Round(p.X))
		y := int(math.Round(p.YTop - cam))
		for row := 0; row < h; row++ {
			dst.DrawHLine(x, y+row, int(math.Round(p.Width)), PlatformChar, core.ColorYellow)
		}
	}
}

// drawBall renders the ball as a 2:1 ellipse (terminal cell aspect) with a
// white spot rotating around the center for the rolling illusion.
func (g *Game) drawBall(dst *core.Screen, cam float64) {
	x := g.player.X()
	y := g.player.Y() - cam
	r := g.tn.Radius

	dst.FillEllipse(x, y, r*2, r, BallChar, core.ColorBrightRed)

	angle := g.player.Rotation() * math.Pi / 180
	spotX := int(math.Round(x + r*2*0.75*math.Cos(angle)))
	spotY := int(math.Round(y + r*0.75*math.Sin(angle)))
	dst.SetCell(spotX, spotY, BallSpot, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
