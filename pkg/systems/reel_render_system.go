package systems

import (
	"image/color"
	"math"

	"github.com/decker502/movieque/pkg/components"
	"github.com/decker502/movieque/pkg/config"
	"github.com/decker502/movieque/pkg/surface"
)

// ReelRenderSystem draws the particle field as stylized film reels.
//
// A reel is an outer ring, a ring of sprocket holes rotated by the reel's
// current rotation, and a hub disk. Drawing is a pure function of the field
// state; the only side effects are the canvas calls.
type ReelRenderSystem struct {
	style config.ReelStyleConfig
	color color.RGBA
}

// NewReelRenderSystem creates a render system with the given style.
func NewReelRenderSystem(style config.ReelStyleConfig) *ReelRenderSystem {
	return &ReelRenderSystem{
		style: style,
		color: style.RGBA(),
	}
}

// Draw clears the canvas and draws every reel in index order.
func (s *ReelRenderSystem) Draw(canvas surface.Canvas, field *components.ReelFieldComponent) {
	canvas.Clear()
	if field == nil {
		return
	}

	for i := range field.Reels {
		s.drawReel(canvas, &field.Reels[i])
	}
}

func (s *ReelRenderSystem) drawReel(canvas surface.Canvas, r *components.FilmReel) {
	size := s.style.Radius

	// Outer ring
	canvas.StrokeCircle(r.X, r.Y, size, s.style.LineWidth, s.color)

	// Sprocket holes, evenly spaced and rotated about the reel centre
	ring := size * s.style.HoleRing
	for i := 0; i < s.style.Holes; i++ {
		angle := r.Rotation + float64(i)/float64(s.style.Holes)*2*math.Pi
		hx := r.X + math.Cos(angle)*ring
		hy := r.Y + math.Sin(angle)*ring
		canvas.FillCircle(hx, hy, s.style.HoleRadius, s.color)
	}

	// Hub
	canvas.FillCircle(r.X, r.Y, size*s.style.HubRatio, s.color)
}
