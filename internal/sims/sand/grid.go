package sand

import (
	"go.uber.org/zap"

	"grainfall/internal/core"
)

// Grid owns the cells, the active-cell index and the boulder cache. It exposes
// the only mutation primitives; everything else in the engine goes through
// SetElement/PlaceElement/Swap so the indexes stay consistent.
type Grid struct {
	w, h    int
	cells   []Cell
	display *core.ByteGrid

	// active holds the packed index of every non-empty cell. The invariant is
	// strict: a key is present iff the cell holds a non-empty element. It is
	// maintained incrementally inside the mutation primitives, never rebuilt
	// by scanning in the steady state.
	active map[int]struct{}

	boulders map[int]map[int]struct{}

	reg *Registry
	rng core.Rand
	log *zap.Logger
}

// NewGrid allocates a w*h grid of empty cells. A nil logger defaults to a
// no-op logger.
func NewGrid(w, h int, reg *Registry, rng core.Rand, log *zap.Logger) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	g := &Grid{
		w:        w,
		h:        h,
		cells:    make([]Cell, w*h),
		display:  core.NewByteGrid(w, h),
		active:   make(map[int]struct{}),
		boulders: make(map[int]map[int]struct{}),
		reg:      reg,
		rng:      rng,
		log:      log,
	}
	empty := reg.Empty()
	for i := range g.cells {
		g.cells[i].elem = empty
		g.cells[i].Lifetime = empty.DefaultLifetime
	}
	return g
}

// Width reports the grid width in cells.
func (g *Grid) Width() int { return g.w }

// Height reports the grid height in cells.
func (g *Grid) Height() int { return g.h }

// Registry returns the element registry the grid resolves against.
func (g *Grid) Registry() *Registry { return g.reg }

// Rand returns the grid's randomness source.
func (g *Grid) Rand() core.Rand { return g.rng }

// Display exposes the element-id buffer renderers consume.
func (g *Grid) Display() *core.ByteGrid { return g.display }

func (g *Grid) idx(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// CellAt returns the cell at (x, y), or nil outside the grid.
func (g *Grid) CellAt(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.idx(x, y)]
}

// ElementAt returns the element at (x, y), or nil outside the grid.
func (g *Grid) ElementAt(x, y int) *Element {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[g.idx(x, y)].elem
}

// IsEmpty reports whether (x, y) is in bounds and holds the empty element.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.idx(x, y)].IsEmpty()
}

// SetElement replaces the element at (x, y), resetting lifetime and scratch
// data to the new element's defaults.
func (g *Grid) SetElement(x, y int, e *Element) {
	g.PlaceElement(x, y, e, false, 0)
}

// PlaceElement replaces the element at (x, y). Scratch data survives the type
// change when preserveData is set; boulderID tags the cell into a rigid group
// (0 for none). Out-of-bounds calls are silent no-ops; a nil element is a
// caller error and is logged and dropped.
func (g *Grid) PlaceElement(x, y int, e *Element, preserveData bool, boulderID int) {
	if !g.InBounds(x, y) {
		return
	}
	if e == nil {
		g.log.Warn("place of undefined element ignored", zap.Int("x", x), zap.Int("y", y))
		return
	}
	i := g.idx(x, y)
	c := &g.cells[i]
	wasEmpty := c.IsEmpty()

	if c.Boulder != 0 && c.Boulder != boulderID {
		g.detachBoulder(c.Boulder, i)
	}

	c.elem = e
	c.Lifetime = e.DefaultLifetime
	if !preserveData {
		c.Data = CellData{}
		if g.rng != nil {
			c.Data.Variant = uint8(g.rng.IntN(256))
		}
	}
	c.Boulder = boulderID
	if boulderID != 0 {
		g.attachBoulder(boulderID, i)
	}

	nowEmpty := e.IsEmpty()
	switch {
	case wasEmpty && !nowEmpty:
		g.active[i] = struct{}{}
	case !wasEmpty && nowEmpty:
		delete(g.active, i)
	}
	g.display.Set(x, y, e.ID)
}

// Swap exchanges the full contents of two cells (element, lifetime, scratch
// data and boulder tag) and updates the active index transactionally. The
// destination is marked updated so the scheduler does not process the same
// particle twice in one frame.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return
	}
	i1, i2 := g.idx(x1, y1), g.idx(x2, y2)
	if i1 == i2 {
		return
	}
	a, b := &g.cells[i1], &g.cells[i2]

	if a.Boulder != 0 {
		g.detachBoulder(a.Boulder, i1)
		g.attachBoulder(a.Boulder, i2)
	}
	if b.Boulder != 0 {
		g.detachBoulder(b.Boulder, i2)
		g.attachBoulder(b.Boulder, i1)
	}

	*a, *b = *b, *a
	b.Updated = true

	if a.IsEmpty() {
		delete(g.active, i1)
	} else {
		g.active[i1] = struct{}{}
	}
	if b.IsEmpty() {
		delete(g.active, i2)
	} else {
		g.active[i2] = struct{}{}
	}

	g.display.Set(x1, y1, a.elem.ID)
	g.display.Set(x2, y2, b.elem.ID)
}

// CanMoveTo decides whether the particle at (fx, fy) may move into (tx, ty).
// Empty destinations are always allowed. Two powders never trade places; that
// is what makes powders pile instead of churning. Otherwise a move is a
// displacement and requires the source to be denser and the target movable.
func (g *Grid) CanMoveTo(fx, fy, tx, ty int) bool {
	if !g.InBounds(tx, ty) {
		return false
	}
	to := g.cells[g.idx(tx, ty)].elem
	if to.IsEmpty() {
		return true
	}
	from := g.ElementAt(fx, fy)
	if from == nil {
		return false
	}
	if from.State == StatePowder && to.State == StatePowder {
		return false
	}
	return from.Density > to.Density && to.Movable
}

// ActiveCount reports the number of non-empty cells.
func (g *Grid) ActiveCount() int { return len(g.active) }

// ForEachActive visits every non-empty cell. Iteration order is unspecified.
func (g *Grid) ForEachActive(fn func(x, y int)) {
	for i := range g.active {
		fn(i%g.w, i/g.w)
	}
}

// Clear resets every cell to empty and drops all index state. This is the
// bulk-rebuild path; steady-state mutation never does this.
func (g *Grid) Clear() {
	empty := g.reg.Empty()
	for i := range g.cells {
		g.cells[i] = Cell{elem: empty, Lifetime: empty.DefaultLifetime}
	}
	g.active = make(map[int]struct{})
	g.boulders = make(map[int]map[int]struct{})
	g.display.Clear()
}
