package sand

// stubRand returns fixed values so tests can force or forbid stochastic
// branches.
type stubRand struct {
	f float64
	n int
	b bool
}

func (s stubRand) Float64() float64 { return s.f }

func (s stubRand) IntN(n int) int {
	if s.n >= n {
		return n - 1
	}
	return s.n
}

func (s stubRand) Bool() bool { return s.b }

// newTestWorld builds a small world with no floor and interactions on every
// frame, the shape most tests want.
func newTestWorld(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 1
	cfg.Params.FloorRows = 0
	cfg.Params.InteractionCadence = 1
	world := NewWithConfig(cfg)
	world.Reset(1)
	return world
}

func mustElement(w *World, name string) *Element {
	e, ok := w.Registry().Get(name)
	if !ok {
		panic("missing element " + name)
	}
	return e
}

// countByName tallies how many cells currently hold the named element.
func countByName(w *World, name string) int {
	e := mustElement(w, name)
	count := 0
	for _, id := range w.Cells() {
		if id == e.ID {
			count++
		}
	}
	return count
}

// wallBox lines the world border with walls so liquids cannot escape.
func wallBox(w *World) {
	wall := mustElement(w, "wall")
	g := w.Grid()
	for x := 0; x < g.Width(); x++ {
		g.SetElement(x, 0, wall)
		g.SetElement(x, g.Height()-1, wall)
	}
	for y := 0; y < g.Height(); y++ {
		g.SetElement(0, y, wall)
		g.SetElement(g.Width()-1, y, wall)
	}
}
