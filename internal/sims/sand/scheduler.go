package sand

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"grainfall/internal/core"
)

// FrameSystem is an external per-frame consumer invoked after the grid sweep,
// the boundary where construction- or lighting-style systems attach.
type FrameSystem func(g *Grid, frame uint64)

// World drives the falling-sand engine one frame at a time. It implements
// core.Sim. The sweep order is a correctness property, not an implementation
// detail: rows run bottom to top so a particle does not re-trigger in the
// frame it fell, and each row picks a random horizontal direction to avoid a
// systematic slide bias.
type World struct {
	cfg  Config
	reg  *Registry
	grid *Grid
	im   *InteractionManager
	rng  core.Rand
	log  *zap.Logger

	frame   uint64
	rows    [][]int
	systems []FrameSystem
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a world from the provided configuration. Catalog
// override errors are logged and ignored; a broken override file must not
// take the simulation down.
func NewWithConfig(cfg Config) *World {
	return NewWithLogger(cfg, nil)
}

// NewWithLogger is NewWithConfig with an explicit logger (nil for no-op).
func NewWithLogger(cfg Config, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	elems := buildCatalog(cfg.Params)
	if cfg.CatalogPath != "" {
		if err := applyCatalogFile(cfg.CatalogPath, elems); err != nil {
			log.Warn("catalog overrides not applied", zap.Error(err))
		}
	}
	reg := NewRegistry(elems)
	rng := core.NewRNG(cfg.Seed)
	grid := NewGrid(cfg.Width, cfg.Height, reg, rng, log)

	im := NewInteractionManager()
	for _, r := range DefaultRules(cfg.Params) {
		im.Add(r)
	}

	rows := make([][]int, grid.Height())
	return &World{
		cfg:  cfg,
		reg:  reg,
		grid: grid,
		im:   im,
		rng:  rng,
		log:  log,
		rows: rows,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Cells exposes the display buffer of element ids.
func (w *World) Cells() []uint8 { return w.grid.Display().Cells() }

// Grid exposes the mutation surface for painters and external systems.
func (w *World) Grid() *Grid { return w.grid }

// Registry exposes the element registry.
func (w *World) Registry() *Registry { return w.reg }

// Interactions exposes the interaction manager, e.g. to register extra rules
// before the first step.
func (w *World) Interactions() *InteractionManager { return w.im }

// Frame reports the number of completed steps since the last reset.
func (w *World) Frame() uint64 { return w.frame }

// SetRand substitutes the randomness source for world and grid. Tests use
// this to force stochastic branches.
func (w *World) SetRand(r core.Rand) {
	w.rng = r
	w.grid.rng = r
}

// AddSystem registers a per-frame external system, run after the sweep.
func (w *World) AddSystem(fn FrameSystem) {
	if fn != nil {
		w.systems = append(w.systems, fn)
	}
}

// Reset clears the grid and reseeds the randomness. A zero seed falls back to
// the configured one, matching the registry-driven reset convention.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.SetRand(core.NewRNG(effective))
	w.grid.Clear()
	w.frame = 0

	wall, ok := w.reg.Get("wall")
	if !ok {
		return
	}
	for row := 0; row < w.cfg.Params.FloorRows; row++ {
		y := w.grid.Height() - 1 - row
		for x := 0; x < w.grid.Width(); x++ {
			w.grid.SetElement(x, y, wall)
		}
	}
}

// Step advances the simulation by one frame.
func (w *World) Step() {
	w.frame++
	g := w.grid

	// Bucket the active cells by row, clearing the processed guard as we go.
	// Only active cells are touched; a full-grid scan here would dominate the
	// frame on large worlds.
	for y := range w.rows {
		w.rows[y] = w.rows[y][:0]
	}
	for i := range g.active {
		g.cells[i].Updated = false
		w.rows[i/g.w] = append(w.rows[i/g.w], i%g.w)
	}

	cadence := w.cfg.Params.InteractionCadence
	interact := cadence > 0 && w.frame%uint64(cadence) == 0

	for y := g.Height() - 1; y >= 0; y-- {
		xs := w.rows[y]
		if len(xs) == 0 {
			continue
		}
		slices.Sort(xs)
		forward := w.rng.Bool()
		for n := 0; n < len(xs); n++ {
			x := xs[n]
			if !forward {
				x = xs[len(xs)-1-n]
			}
			w.stepCell(x, y, interact)
		}
	}

	for _, sys := range w.systems {
		sys(g, w.frame)
	}
}

func (w *World) stepCell(x, y int, interact bool) {
	g := w.grid
	c := g.CellAt(x, y)
	if c == nil || c.Updated || c.IsEmpty() {
		return
	}
	if c.Lifetime > 0 {
		c.Lifetime--
		if c.Lifetime == 0 {
			g.SetElement(x, y, w.reg.Empty())
			return
		}
	}
	e := c.Element()
	e.Update(x, y, g)
	// Interactions only fire when the element is still at this coordinate; a
	// behavior may have moved it away.
	if interact && g.ElementAt(x, y) == e {
		w.im.CheckNeighbors(g, x, y)
	}
}

// PaintCircle stamps the named element into a filled circle, the primitive
// both the UI brush and scene seeding use. Unknown names are an error.
func (w *World) PaintCircle(cx, cy, radius int, name string) error {
	e, ok := w.reg.Get(name)
	if !ok {
		return fmt.Errorf("unknown element %q", name)
	}
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			if w.grid.InBounds(cx+dx, cy+dy) {
				w.grid.SetElement(cx+dx, cy+dy, e)
			}
		}
	}
	return nil
}

// LoadIDs rebuilds every cell from a row-major element-id buffer, the bulk
// path used when importing a persisted world. Transient lifetime and scratch
// data are not part of the format and reset to element defaults.
func (w *World) LoadIDs(ids []uint8) error {
	g := w.grid
	if len(ids) != g.Width()*g.Height() {
		return fmt.Errorf("id buffer is %d cells, world needs %d", len(ids), g.Width()*g.Height())
	}
	g.Clear()
	for i, id := range ids {
		if id == EmptyID {
			continue
		}
		g.SetElement(i%g.w, i/g.w, w.reg.ByID(id))
	}
	return nil
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
