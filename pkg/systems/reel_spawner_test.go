package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/decker502/movieque/pkg/config"
)

func TestSpawnReels(t *testing.T) {
	cfg := config.DefaultFieldConfig().Reels
	rng := rand.New(rand.NewPCG(42, 7))

	reels := SpawnReels(rng, cfg, 800, 600)
	if len(reels) != cfg.Count {
		t.Fatalf("len(reels) = %d, want %d", len(reels), cfg.Count)
	}

	for i, r := range reels {
		if r.X < 0 || r.X > 800 || r.Y < 0 || r.Y > 600 {
			t.Errorf("reel %d position (%v, %v) outside canvas", i, r.X, r.Y)
		}
		if math.Abs(r.VX) > cfg.InitialSpeed || math.Abs(r.VY) > cfg.InitialSpeed {
			t.Errorf("reel %d velocity (%v, %v) outside ±%v", i, r.VX, r.VY, cfg.InitialSpeed)
		}
		if r.Rotation < 0 || r.Rotation >= 2*math.Pi {
			t.Errorf("reel %d rotation %v outside [0, 2π)", i, r.Rotation)
		}
		if math.Abs(r.RotationSpeed) > cfg.MaxRotationSpeed {
			t.Errorf("reel %d rotation speed %v outside ±%v", i, r.RotationSpeed, cfg.MaxRotationSpeed)
		}
	}
}

// TestSpawnReelsDeterministic 相同种子生成相同初始状态，不同种子不同
func TestSpawnReelsDeterministic(t *testing.T) {
	cfg := config.DefaultFieldConfig().Reels

	a := SpawnReels(rand.New(rand.NewPCG(1, 1)), cfg, 800, 600)
	b := SpawnReels(rand.New(rand.NewPCG(1, 1)), cfg, 800, 600)
	c := SpawnReels(rand.New(rand.NewPCG(2, 2)), cfg, 800, 600)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different reels (-a +b):\n%s", diff)
	}
	if cmp.Equal(a, c) {
		t.Error("different seeds produced identical reels")
	}
}

func TestSpawnReelsEdgeCases(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))

	if got := SpawnReels(rng, config.ReelSpawnConfig{Count: 0}, 800, 600); len(got) != 0 {
		t.Errorf("Count=0 produced %d reels", len(got))
	}

	reels := SpawnReels(rng, config.ReelSpawnConfig{Count: 4, InitialSpeed: 1}, -10, 0)
	for i, r := range reels {
		if r.X != 0 || r.Y != 0 {
			t.Errorf("reel %d at (%v, %v) on degenerate canvas, want (0, 0)", i, r.X, r.Y)
		}
	}
}
