package sand

// Gravity makes powders and movable solids fall. Straight drop first; failing
// that, a diagonal slide with a random left/right tie-break. SlideStability is
// the probability a supported grain refuses to slide, which is what produces
// an angle-of-repose pile instead of a perfect pyramid.
type Gravity struct {
	SlideStability float64
}

// Apply moves the cell at (x, y) one step if gravity allows.
func (b Gravity) Apply(x, y int, g *Grid, c *Cell) bool {
	if c.Boulder != 0 {
		return g.MoveBoulderDown(c.Boulder)
	}

	if g.CanMoveTo(x, y, x, y+1) {
		g.Swap(x, y, x, y+1)
		return true
	}

	dir := randDir(g)
	for _, d := range [2]int{dir, -dir} {
		tx, ty := x+d, y+1
		if !g.CanMoveTo(x, y, tx, ty) {
			continue
		}
		// A grain with support two rows below the diagonal target is part of
		// a stable slope and only slides when stability fails its roll. The
		// world edge counts as support.
		supported := !g.InBounds(tx, ty+1) || !g.IsEmpty(tx, ty+1)
		if supported && g.rng.Float64() < b.SlideStability {
			continue
		}
		g.Swap(x, y, tx, ty)
		return true
	}
	return false
}
