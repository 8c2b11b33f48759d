package runner

import (
	"iter"
	"math/rand"

	"github.com/vovakirdan/voicerun/internal/config"
	"github.com/vovakirdan/voicerun/internal/core"
)

// Obstacle is a fixed-size box standing on the ground.
type Obstacle struct {
	X      int // Left edge in world coordinates
	Y      int // Top edge
	Width  int
	Height int
}

// Rect returns the collision box for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Right returns the x-coordinate just past the obstacle's right edge.
func (o Obstacle) Right() int {
	return o.X + o.Width
}

// World generates the obstacle stream ahead of the player and retires obstacles
// that fall behind the camera. Obstacles are kept sorted by X.
type World struct {
	obstacles []Obstacle
	cameraX   int // Camera position at the last cull
	rng       *rand.Rand
	cfg       config.ObstacleConfig
	world     config.WorldConfig
}

// NewWorld creates an obstacle generator with the given RNG seed and fills it
// up to the low-water mark.
func NewWorld(seed int64, cfg config.RunnerConfig) *World {
	w := &World{
		obstacles: make([]Obstacle, 0, cfg.Obstacles.LowWater+1),
		cfg:       cfg.Obstacles,
		world:     cfg.World,
	}
	w.Reset(seed)
	return w
}

// Reset clears all obstacles, reseeds the RNG and regenerates the look-ahead.
func (w *World) Reset(seed int64) {
	w.obstacles = w.obstacles[:0]
	w.cameraX = 0
	w.rng = rand.New(rand.NewSource(seed))
	w.Replenish()
}

// Cull removes every obstacle whose right edge lies behind cameraX - CullMargin.
func (w *World) Cull(cameraX int) {
	w.cameraX = cameraX
	limit := cameraX - w.world.CullMargin
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Right() >= limit {
			kept = append(kept, o)
		}
	}
	w.obstacles = kept
}

// Replenish appends obstacles until the low-water mark is reached. Each new
// obstacle follows the last one by a uniform gap in [MinSpacing, MaxSpacing].
// With no obstacles left, the next one is placed just past the right edge of the
// viewport, FirstMinOffset to FirstMaxOffset beyond it.
func (w *World) Replenish() {
	for len(w.obstacles) < w.cfg.LowWater {
		var x int
		if n := len(w.obstacles); n == 0 {
			x = w.cameraX + w.world.ViewportWidth + w.between(w.cfg.FirstMinOffset, w.cfg.FirstMaxOffset)
		} else {
			x = w.obstacles[n-1].X + w.between(w.cfg.MinSpacing, w.cfg.MaxSpacing)
		}
		w.obstacles = append(w.obstacles, w.newObstacle(x))
	}
}

// between returns a uniform integer in [lo, hi].
func (w *World) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}

func (w *World) newObstacle(x int) Obstacle {
	return Obstacle{
		X:      x,
		Y:      w.world.GroundY - w.cfg.Height,
		Width:  w.cfg.Width,
		Height: w.cfg.Height,
	}
}

// Visible yields the obstacles whose camera-relative x lies within
// [-ObstacleWidth, viewportWidth]. The sequence can be ranged over repeatedly.
// It is meant for rendering; collision uses every live obstacle.
func (w *World) Visible(cameraX, viewportWidth int) iter.Seq[Obstacle] {
	return func(yield func(Obstacle) bool) {
		for _, o := range w.obstacles {
			sx := o.X - cameraX
			if sx < -w.cfg.Width || sx > viewportWidth {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

// Collides reports whether r overlaps any live obstacle.
func (w *World) Collides(r core.Rect) bool {
	for _, o := range w.obstacles {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// Obstacles returns the live obstacles, sorted by X. Callers must not modify it.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Len returns the number of live obstacles.
func (w *World) Len() int {
	return len(w.obstacles)
}
