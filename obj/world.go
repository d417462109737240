package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/cattoy/common"
)

// World is the toy room's physics: a chipmunk space with gravity, a static
// floor and walls, and the cat's body. The click handler uses it for hit
// testing so the clickable area always matches where the cat actually is.
type World struct {
	space    *cp.Space
	catBody  *cp.Body
	catShape *cp.Shape
	catW     float64
	catH     float64
}

// NewWorld creates the room with a cat body of the given render size,
// standing on the floor at the center of the window.
func NewWorld(catW, catH float64) *World {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	w := &World{space: space, catW: catW, catH: catH}
	w.buildStaticShapes()

	// Infinite moment: the cat slides and hops but never tumbles.
	body := space.AddBody(cp.NewBody(1, cp.INFINITY))
	body.SetPosition(cp.Vector{X: common.BaseWidth / 2, Y: common.FloorY - catH/2})
	shape := space.AddShape(cp.NewBox(body, catW, catH, 0))
	shape.SetFriction(0.9)
	shape.SetElasticity(0)
	w.catBody = body
	w.catShape = shape
	return w
}

func (w *World) buildStaticShapes() {
	segments := [][2]cp.Vector{
		{{X: 0, Y: common.FloorY}, {X: common.BaseWidth, Y: common.FloorY}},
		{{X: 0, Y: 0}, {X: 0, Y: common.BaseHeight}},
		{{X: common.BaseWidth, Y: 0}, {X: common.BaseWidth, Y: common.BaseHeight}},
	}
	for _, s := range segments {
		shape := w.space.AddShape(cp.NewSegment(w.space.StaticBody, s[0], s[1], 0))
		shape.SetFriction(1)
		shape.SetElasticity(0)
	}
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// SetCatVelocity sets the cat's horizontal speed (px/s), preserving vertical
// velocity so gravity and jumps are unaffected.
func (w *World) SetCatVelocity(vx float64) {
	v := w.catBody.Velocity()
	w.catBody.SetVelocity(vx, v.Y)
}

// Jump applies an upward impulse if the cat is on the floor.
func (w *World) Jump() {
	if !w.Grounded() {
		return
	}
	w.catBody.ApplyImpulseAtLocalPoint(cp.Vector{X: 0, Y: -common.JumpImpulse}, cp.Vector{})
}

// Grounded reports whether the cat is resting on the floor.
func (w *World) Grounded() bool {
	return w.catBody.Position().Y >= common.FloorY-w.catH/2-1
}

// CatPosition returns the top-left corner of the cat's render box.
func (w *World) CatPosition() (x, y float64) {
	p := w.catBody.Position()
	return p.X - w.catW/2, p.Y - w.catH/2
}

// CatHit reports whether the point (window coordinates) is inside the cat.
func (w *World) CatHit(x, y float64) bool {
	info := w.catShape.PointQuery(cp.Vector{X: x, Y: y})
	return info.Distance <= 0
}
