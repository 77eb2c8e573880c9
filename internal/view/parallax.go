package view

import (
	"math"
	"sync"
)

const (
	minLayerDepth     = 0.05
	maxLayerDepth     = 0.3
	defaultLayerDepth = 0.1

	// Scroll deltas at or below this are noise and skipped.
	scrollEpsilon = 0.1
)

// ParallaxLayer is one registered layer. Offset is the vertical translation
// the renderer applies.
type ParallaxLayer struct {
	depth  float64
	offset float64
}

func (l *ParallaxLayer) Offset() float64 { return l.offset }
func (l *ParallaxLayer) Depth() float64  { return l.depth }

// ParallaxCoordinator owns the single shared animation loop for every
// parallax layer. Layers register and unregister explicitly; the loop runs
// exactly while at least one layer is registered. Under reduced motion the
// coordinator accepts registrations but never runs.
type ParallaxCoordinator struct {
	mu            sync.Mutex
	layers        map[*ParallaxLayer]struct{}
	running       bool
	lastY         float64
	reducedMotion bool
}

func NewParallaxCoordinator(reducedMotion bool) *ParallaxCoordinator {
	return &ParallaxCoordinator{
		layers:        make(map[*ParallaxLayer]struct{}),
		reducedMotion: reducedMotion,
	}
}

// Register adds a layer with the given depth, clamped to
// [minLayerDepth, maxLayerDepth]; a non-positive depth takes the default.
// The shared loop starts on the first registration.
func (c *ParallaxCoordinator) Register(depth float64) *ParallaxLayer {
	if depth <= 0 {
		depth = defaultLayerDepth
	}
	depth = math.Min(maxLayerDepth, math.Max(minLayerDepth, depth))

	layer := &ParallaxLayer{depth: depth}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.layers[layer] = struct{}{}
	if !c.reducedMotion {
		c.running = true
	}

	return layer
}

// Unregister removes a layer; the loop stops when the last one leaves.
func (c *ParallaxCoordinator) Unregister(layer *ParallaxLayer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.layers, layer)
	if len(c.layers) == 0 {
		c.running = false
		c.lastY = 0
	}
}

// Step advances the loop one frame at scroll position y, updating every
// layer's offset. Sub-epsilon scroll deltas are skipped.
func (c *ParallaxCoordinator) Step(y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	if math.Abs(y-c.lastY) <= scrollEpsilon {
		return
	}
	c.lastY = y

	for layer := range c.layers {
		layer.offset = -y * layer.depth
	}
}

// Running reports whether the shared loop is live.
func (c *ParallaxCoordinator) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
