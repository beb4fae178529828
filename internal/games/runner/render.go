package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar      = '═'
	GrassChar       = '░'
	CloudChar       = '▒'
	TrunkChar       = '█'
	LeavesChar      = '▲'
	PlaceholderChar = '█'
	BodyChar        = '█'
	RockChar        = '▓'
	LogChar         = '▬'
	FenceChar       = '#'
	HeadLevel       = '◆'
	HeadNoseUp      = '◤'
	HeadNoseDown    = '◣'
	LegA            = '╱'
	LegB            = '╲'
)

// archetypeStyle returns the glyph and color used to fill an obstacle.
func archetypeStyle(a Archetype) (rune, core.Color) {
	switch a {
	case Rock:
		return RockChar, core.ColorGray
	case Log:
		return LogChar, core.ColorBrown
	case Fence:
		return FenceChar, core.ColorBrown
	default:
		return '?', core.ColorRed
	}
}

// pollModel swaps the placeholder for the loaded model once the handle
// resolves. A failed load leaves the placeholder in place for good.
func (g *Game) pollModel() {
	if g.model == nil {
		return
	}
	select {
	case <-g.model.Done():
	default:
		return
	}
	if m, err := g.model.Result(); err == nil {
		g.visual = m
	}
	g.model = nil
}

// ModelLoaded reports whether the placeholder has been replaced.
func (g *Game) ModelLoaded() bool {
	return g.visual != nil
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.pollModel()
	dst.Clear()
	if g.camera == nil {
		return
	}
	g.camera.SetViewport(dst.Width(), dst.Height())

	groundY := g.cfg.Physics.GroundY
	horizon := g.camera.HorizonRow(groundY)
	lane := g.camera.GroundRow(groundY)

	for y := horizon; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GrassChar, core.ColorLightGreen)
	}

	for _, c := range g.scenery.Clouds {
		for _, puff := range c.Puffs {
			if r, ok := g.camera.ProjectBox(puff); ok {
				dst.DrawRectColored(r, CloudChar, core.ColorBrightWhite)
			}
		}
	}

	// Trees behind the lane first, the ones in front after the lane.
	var front int
	for front = 0; front < len(g.scenery.Trees); front++ {
		if g.scenery.Trees[front].Position.Z() > 0 {
			break
		}
	}
	g.drawTrees(dst, 0, front)

	dst.DrawHLine(0, lane, dst.Width(), GroundChar, core.ColorGreen)

	for _, o := range g.obstacles.Obstacles() {
		if r, ok := g.camera.ProjectBox(o.Box()); ok {
			ch, color := archetypeStyle(o.Archetype)
			dst.DrawRectColored(r, ch, color)
		}
	}

	g.drawPlayer(dst)
	g.drawTrees(dst, front, len(g.scenery.Trees))

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	speedText := fmt.Sprintf(" Spd: %.2f ", g.speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		if a, ok := g.HitBy(); ok {
			subtitle = fmt.Sprintf("Hit a %s  |  Score: %d  |  Press R to restart", a, g.score)
		}
		g.drawCenteredMessage(dst, "GAME OVER", subtitle)
	}
}

func (g *Game) drawTrees(dst *core.Screen, from, to int) {
	for _, t := range g.scenery.Trees[from:to] {
		if r, ok := g.camera.ProjectBox(t.Trunk()); ok {
			dst.DrawRectColored(r, TrunkChar, core.ColorBrown)
		}
		if r, ok := g.camera.ProjectBox(t.Leaves()); ok {
			dst.DrawRectColored(r, LeavesChar, core.ColorDarkGreen)
		}
	}
}

// tilt mirrors the model's pitch: it follows the velocity while airborne
// and wobbles slightly while running.
func (g *Game) tilt() float64 {
	if g.player.Jumping {
		return core.ClampF(-g.player.Velocity*0.5, -0.5, 0.5)
	}
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	ms := float64(g.tickCount) * 1000 / float64(rate)
	return math.Sin(ms*0.01) * 0.1
}

// drawPlayer renders the placeholder block, or the model's materials once loaded.
func (g *Game) drawPlayer(dst *core.Screen) {
	r, ok := g.camera.ProjectBox(g.player.Box(g.cfg.Player.Size))
	if !ok {
		return
	}

	if g.visual == nil {
		dst.DrawRectColored(r, PlaceholderChar, core.ColorBrightGreen)
		return
	}

	dst.DrawRectColored(r, BodyChar, assets.BodyMaterial.Color)

	tilt := g.tilt()
	head := HeadLevel
	switch {
	case tilt < -0.05:
		head = HeadNoseUp
	case tilt > 0.05:
		head = HeadNoseDown
	}
	dst.SetColored(r.Right()-1, r.Y, head, assets.BodyMaterial.Color)

	if !g.visual.HasAccent() || r.H < 2 {
		return
	}
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		leg := LegA
		if (x-r.X)%2 == 1 {
			leg = LegB
		}
		if !g.player.Jumping && tilt < 0 {
			leg = LegA + LegB - leg
		}
		dst.SetColored(x, legs, leg, assets.AccentMaterial.Color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
