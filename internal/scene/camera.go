// Package scene holds the presentation-side world: the perspective camera
// that maps world space onto the terminal grid and the decorative scenery.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Camera is a fixed perspective camera looking down the lane.
type Camera struct {
	cfg      config.Camera
	width    int
	height   int
	view     mgl64.Mat4
	proj     mgl64.Mat4
	viewProj mgl64.Mat4
}

// NewCamera creates a camera for a viewport of width x height cells.
func NewCamera(cfg config.Camera, width, height int) *Camera {
	c := &Camera{cfg: cfg}
	c.view = mgl64.LookAtV(
		mgl64.Vec3(cfg.Position),
		mgl64.Vec3(cfg.LookAt),
		mgl64.Vec3{0, 1, 0},
	)
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio for a new terminal size.
// Calling it again with the same size is a no-op.
func (c *Camera) SetViewport(width, height int) {
	if width == c.width && height == c.height && c.proj != (mgl64.Mat4{}) {
		return
	}
	c.width = width
	c.height = height
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.cfg.FOV), c.Aspect(), c.cfg.Near, c.cfg.Far)
	c.viewProj = c.proj.Mul4(c.view)
}

// Viewport returns the current viewport size in cells.
func (c *Camera) Viewport() (int, int) {
	return c.width, c.height
}

// Aspect returns the visual width/height ratio of the viewport, taking the
// non-square shape of terminal cells into account.
func (c *Camera) Aspect() float64 {
	if c.height <= 0 {
		return 1
	}
	cell := c.cfg.CellAspect
	if cell <= 0 {
		cell = 1
	}
	return float64(c.width) * cell / float64(c.height)
}

// Project maps a world point to fractional screen cell coordinates.
// ok is false for points behind the camera.
func (c *Camera) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()

	x = (ndcX + 1) / 2 * float64(c.width)
	y = (1 - ndcY) / 2 * float64(c.height)
	return x, y, true
}

// ProjectBox returns the screen rectangle covering all eight corners of b.
// ok is false if any corner is behind the camera or the rectangle misses
// the viewport entirely.
func (c *Camera) ProjectBox(b core.Box3) (core.Rect, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for i := 0; i < 8; i++ {
		corner := b.Min
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		x, y, ok := c.Project(corner)
		if !ok {
			return core.Rect{}, false
		}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	x1, y1 := int(math.Ceil(maxX)), int(math.Ceil(maxY))
	r := core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
	if !r.Intersects(core.NewRect(0, 0, c.width, c.height)) {
		return core.Rect{}, false
	}
	return r, true
}

// GroundRow returns the screen row of a ground-level point on the lane.
func (c *Camera) GroundRow(groundY float64) int {
	_, y, ok := c.Project(mgl64.Vec3{0, groundY, 0})
	if !ok {
		return c.height - 1
	}
	return core.Clamp(int(math.Round(y)), 0, c.height-1)
}

// HorizonRow returns the screen row where the ground plane meets the sky.
func (c *Camera) HorizonRow(groundY float64) int {
	_, y, ok := c.Project(mgl64.Vec3{0, groundY, -c.cfg.Far / 2})
	if !ok {
		return 0
	}
	return core.Clamp(int(math.Round(y)), 0, c.height-1)
}
