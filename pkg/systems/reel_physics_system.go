package systems

import (
	"math"

	"github.com/decker502/movieque/pkg/components"
	"github.com/decker502/movieque/pkg/config"
)

// ReelPhysicsSystem advances the film-reel particle field by one frame.
//
// Each frame, for every reel in index order:
//  1. push the reel away from the pointer with a linear falloff inside the repulsion radius
//  2. integrate velocity into position and rotation speed into rotation
//  3. apply uniform damping
//  4. clamp to the canvas and bounce inelastically off the edges
//
// The step is pure arithmetic on the field; it never fails.
type ReelPhysicsSystem struct {
	cfg config.PhysicsConfig
}

// NewReelPhysicsSystem creates a physics system with the given tuning.
func NewReelPhysicsSystem(cfg config.PhysicsConfig) *ReelPhysicsSystem {
	return &ReelPhysicsSystem{cfg: cfg}
}

// Step advances every reel in the field by one frame.
func (s *ReelPhysicsSystem) Step(field *components.ReelFieldComponent, pointer components.PointerComponent) {
	if field == nil {
		return
	}

	width := math.Max(0, field.Width)
	height := math.Max(0, field.Height)

	for i := range field.Reels {
		s.stepReel(&field.Reels[i], pointer, width, height)
	}
}

func (s *ReelPhysicsSystem) stepReel(r *components.FilmReel, pointer components.PointerComponent, width, height float64) {
	if pointer.Seen {
		s.applyRepulsion(r, pointer.X, pointer.Y)
	}

	r.X += r.VX
	r.Y += r.VY
	r.Rotation += r.RotationSpeed

	r.VX *= s.cfg.Damping
	r.VY *= s.cfg.Damping

	r.X, r.VX = bounceAxis(r.X, r.VX, width, s.cfg.Bounce)
	r.Y, r.VY = bounceAxis(r.Y, r.VY, height, s.cfg.Bounce)
}

// applyRepulsion adds an impulse along the pointer→reel direction scaled by
// (radius-d)/radius*strength. A pointer exactly on the reel centre has no
// direction, so that frame gets no impulse.
func (s *ReelPhysicsSystem) applyRepulsion(r *components.FilmReel, px, py float64) {
	radius := s.cfg.RepulsionRadius
	if radius <= 0 {
		return
	}

	dx := r.X - px
	dy := r.Y - py
	d := math.Hypot(dx, dy)
	if d == 0 || d >= radius {
		return
	}

	force := (radius - d) / radius * s.cfg.RepulsionStrength
	r.VX += dx / d * force
	r.VY += dy / d * force
}

// bounceAxis clamps pos into [0, limit]; when it was outside, the velocity is
// reversed and attenuated by restitution.
func bounceAxis(pos, vel, limit, restitution float64) (float64, float64) {
	if pos < 0 || pos > limit {
		vel *= -restitution
		pos = math.Max(0, math.Min(limit, pos))
	}
	return pos, vel
}
