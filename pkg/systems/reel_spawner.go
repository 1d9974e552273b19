package systems

import (
	"math"
	"math/rand/v2"

	"github.com/decker502/movieque/pkg/components"
	"github.com/decker502/movieque/pkg/config"
)

// SpawnReels creates the fixed particle population for one loading session.
//
// Every reel is an independent value: position is uniform over the canvas,
// velocity and rotation speed are uniform in symmetric ranges, and rotation
// is uniform over a full turn. Non-positive canvas dimensions collapse the
// positions onto 0.
func SpawnReels(rng *rand.Rand, cfg config.ReelSpawnConfig, width, height float64) []components.FilmReel {
	if cfg.Count <= 0 {
		return nil
	}

	width = math.Max(0, width)
	height = math.Max(0, height)

	reels := make([]components.FilmReel, cfg.Count)
	for i := range reels {
		reels[i] = components.FilmReel{
			X:             rng.Float64() * width,
			Y:             rng.Float64() * height,
			VX:            symmetric(rng, cfg.InitialSpeed),
			VY:            symmetric(rng, cfg.InitialSpeed),
			Rotation:      rng.Float64() * 2 * math.Pi,
			RotationSpeed: symmetric(rng, cfg.MaxRotationSpeed),
		}
	}
	return reels
}

// symmetric returns a uniform sample in [-limit, limit).
func symmetric(rng *rand.Rand, limit float64) float64 {
	return (rng.Float64()*2 - 1) * limit
}
