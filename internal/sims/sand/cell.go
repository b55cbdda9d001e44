package sand

// CellData is the per-cell scratch state behaviors use for local timers and
// counters. Each field belongs to one behavior family so writers cannot
// collide.
type CellData struct {
	// BurnProgress/BurnTotal track the Burning behavior.
	BurnProgress int
	BurnTotal    int

	// Contact counts cumulative reactive touches, e.g. water hits on lava
	// before it commits to solidifying.
	Contact int

	// Timer counts down for TimedTransformation.
	Timer int

	// Variant is per-placement visual variation. It stays on the cell so the
	// shared element descriptor is never mutated.
	Variant uint8
}

// Cell is the mutable state of one grid position. The element pointer is a
// shared reference into the registry, never owned.
type Cell struct {
	elem     *Element
	Lifetime int
	Updated  bool
	Data     CellData

	// Boulder is the rigid-group id this cell belongs to, 0 for none.
	Boulder int
}

// Element returns the shared descriptor currently held by the cell.
func (c *Cell) Element() *Element { return c.elem }

// IsEmpty reports whether the cell holds the empty element.
func (c *Cell) IsEmpty() bool { return c.elem.IsEmpty() }
