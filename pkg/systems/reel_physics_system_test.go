package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/decker502/movieque/pkg/components"
	"github.com/decker502/movieque/pkg/config"
)

func speed(r components.FilmReel) float64 {
	return math.Hypot(r.VX, r.VY)
}

func newField(w, h float64, reels ...components.FilmReel) *components.ReelFieldComponent {
	return &components.ReelFieldComponent{Reels: reels, Width: w, Height: h}
}

// TestReelPhysicsStaysInBounds 任意步数后所有胶片盘都在画布内
func TestReelPhysicsStaysInBounds(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	rng := rand.New(rand.NewPCG(1, 2))

	const w, h = 800.0, 600.0
	field := newField(w, h, SpawnReels(rng, cfg.Reels, w, h)...)
	physics := NewReelPhysicsSystem(cfg.Physics)

	for frame := 0; frame < 2000; frame++ {
		// 指针在画布内外随机移动，包括贴近边缘
		pointer := components.PointerComponent{
			X:    rng.Float64()*(w+200) - 100,
			Y:    rng.Float64()*(h+200) - 100,
			Seen: true,
		}
		physics.Step(field, pointer)

		for i, r := range field.Reels {
			if r.X < 0 || r.X > w || r.Y < 0 || r.Y > h {
				t.Fatalf("frame %d: reel %d out of bounds at (%.3f, %.3f)", frame, i, r.X, r.Y)
			}
		}
	}
}

// TestReelPhysicsRepulsion 半径内的指针推开静止胶片盘，半径外不影响
func TestReelPhysicsRepulsion(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	physics := NewReelPhysicsSystem(cfg.Physics)

	tests := []struct {
		name      string
		pointerX  float64
		wantMoved bool
	}{
		{"inside radius", 250, true},
		{"just inside radius", 200.5, true},
		{"on radius", 200, false},
		{"outside radius", 150, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := newField(800, 600, components.FilmReel{X: 300, Y: 300})
			physics.Step(field, components.PointerComponent{X: tt.pointerX, Y: 300, Seen: true})

			got := field.Reels[0]
			if moved := speed(got) > 0; moved != tt.wantMoved {
				t.Fatalf("speed = %v, wantMoved %v", speed(got), tt.wantMoved)
			}
			if tt.wantMoved && got.VX <= 0 {
				t.Errorf("VX = %v, want push away from pointer (positive)", got.VX)
			}
		})
	}
}

// TestReelPhysicsRepulsionMagnitude 验证线性衰减排斥的数值
func TestReelPhysicsRepulsionMagnitude(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	physics := NewReelPhysicsSystem(cfg.Physics)

	field := newField(800, 600, components.FilmReel{X: 300, Y: 300})
	physics.Step(field, components.PointerComponent{X: 300, Y: 250, Seen: true})

	// d=50: force=(100-50)/100*2=1，方向 +Y，然后阻尼 0.98
	r := field.Reels[0]
	if math.Abs(r.VY-0.98) > 1e-9 || r.VX != 0 {
		t.Errorf("velocity = (%v, %v), want (0, 0.98)", r.VX, r.VY)
	}
	if math.Abs(r.Y-301) > 1e-9 {
		t.Errorf("Y = %v, want 301", r.Y)
	}
}

// TestReelPhysicsPointerOnCentre 指针正好在中心时跳过排斥而不是除零
func TestReelPhysicsPointerOnCentre(t *testing.T) {
	physics := NewReelPhysicsSystem(config.DefaultFieldConfig().Physics)

	field := newField(800, 600, components.FilmReel{X: 300, Y: 300})
	physics.Step(field, components.PointerComponent{X: 300, Y: 300, Seen: true})

	r := field.Reels[0]
	if math.IsNaN(r.VX) || math.IsNaN(r.VY) || math.IsNaN(r.X) || math.IsNaN(r.Y) {
		t.Fatalf("NaN after step: %+v", r)
	}
	if speed(r) != 0 {
		t.Errorf("speed = %v, want 0", speed(r))
	}
}

// TestReelPhysicsUnseenPointer 未收到指针事件前不产生排斥
func TestReelPhysicsUnseenPointer(t *testing.T) {
	physics := NewReelPhysicsSystem(config.DefaultFieldConfig().Physics)

	field := newField(800, 600, components.FilmReel{X: 10, Y: 10})
	physics.Step(field, components.PointerComponent{})

	if speed(field.Reels[0]) != 0 {
		t.Errorf("reel near origin was pushed by an unseen pointer: %+v", field.Reels[0])
	}
}

// TestReelPhysicsDamping 没有指针交互时速度单调衰减
func TestReelPhysicsDamping(t *testing.T) {
	physics := NewReelPhysicsSystem(config.DefaultFieldConfig().Physics)

	field := newField(800, 600, components.FilmReel{X: 400, Y: 300, VX: 1, VY: 0.5})
	initial := speed(field.Reels[0])

	prev := initial
	for frame := 0; frame < 200; frame++ {
		physics.Step(field, components.PointerComponent{})
		cur := speed(field.Reels[0])
		if cur >= prev {
			t.Fatalf("frame %d: speed %v did not decrease from %v", frame, cur, prev)
		}
		prev = cur
	}

	if prev >= 0.02*initial {
		t.Errorf("speed after 200 frames = %v, want < %v", prev, 0.02*initial)
	}
}

// TestReelPhysicsRotation 每帧旋转角增加旋转速度
func TestReelPhysicsRotation(t *testing.T) {
	physics := NewReelPhysicsSystem(config.DefaultFieldConfig().Physics)

	field := newField(800, 600, components.FilmReel{X: 400, Y: 300, Rotation: 1, RotationSpeed: -0.02})
	for i := 0; i < 10; i++ {
		physics.Step(field, components.PointerComponent{})
	}

	if got := field.Reels[0].Rotation; math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Rotation = %v, want 0.8", got)
	}
}

// TestReelPhysicsBounce 撞到右边缘时反向并衰减，位置夹在宽度上
func TestReelPhysicsBounce(t *testing.T) {
	cfg := config.DefaultFieldConfig().Physics
	cfg.Damping = 1

	physics := NewReelPhysicsSystem(cfg)
	field := newField(800, 600, components.FilmReel{X: 800, Y: 300, VX: 3})
	physics.Step(field, components.PointerComponent{})

	r := field.Reels[0]
	if r.X != 800 {
		t.Errorf("X = %v, want clamped to 800", r.X)
	}
	if math.Abs(r.VX-(-2.4)) > 1e-9 {
		t.Errorf("VX = %v, want -2.4", r.VX)
	}
}

func TestBounceAxis(t *testing.T) {
	tests := []struct {
		name             string
		pos, vel, limit  float64
		wantPos, wantVel float64
	}{
		{"inside", 50, 3, 100, 50, 3},
		{"on edge", 100, 3, 100, 100, 3},
		{"past right", 103, 3, 100, 100, -2.4},
		{"past left", -2, -5, 100, 0, 4},
		{"zero size", 7, 1, 0, 0, -0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := bounceAxis(tt.pos, tt.vel, tt.limit, 0.8)
			if math.Abs(pos-tt.wantPos) > 1e-9 || math.Abs(vel-tt.wantVel) > 1e-9 {
				t.Errorf("bounceAxis(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.pos, tt.vel, tt.limit, pos, vel, tt.wantPos, tt.wantVel)
			}
		})
	}
}

// TestReelPhysicsZeroCanvas 零尺寸画布上所有胶片盘停在 0
func TestReelPhysicsZeroCanvas(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	rng := rand.New(rand.NewPCG(3, 4))

	field := newField(0, 0, SpawnReels(rng, cfg.Reels, 0, 0)...)
	physics := NewReelPhysicsSystem(cfg.Physics)

	for i := 0; i < 50; i++ {
		physics.Step(field, components.PointerComponent{X: 5, Y: 5, Seen: true})
	}

	for i, r := range field.Reels {
		if r.X != 0 || r.Y != 0 {
			t.Errorf("reel %d at (%v, %v), want (0, 0)", i, r.X, r.Y)
		}
	}
}

func TestReelPhysicsNilField(t *testing.T) {
	physics := NewReelPhysicsSystem(config.DefaultFieldConfig().Physics)
	physics.Step(nil, components.PointerComponent{Seen: true}) // should not panic
}
