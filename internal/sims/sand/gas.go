package sand

// Gas drifts upward and sideways stochastically. DissipateChance removes the
// cell outright, independent of any lifetime the element carries.
type Gas struct {
	RiseChance      float64
	SpreadChance    float64
	DissipateChance float64
}

// Apply moves or dissipates the gas at (x, y).
func (b Gas) Apply(x, y int, g *Grid, c *Cell) bool {
	if b.DissipateChance > 0 && g.rng.Float64() < b.DissipateChance {
		g.SetElement(x, y, g.reg.Empty())
		return true
	}

	if g.rng.Float64() < b.RiseChance {
		if g.CanMoveTo(x, y, x, y-1) {
			g.Swap(x, y, x, y-1)
			return true
		}
		dir := randDir(g)
		for _, d := range [2]int{dir, -dir} {
			if g.CanMoveTo(x, y, x+d, y-1) {
				g.Swap(x, y, x+d, y-1)
				return true
			}
		}
	}

	if g.rng.Float64() < b.SpreadChance {
		dir := randDir(g)
		for _, d := range [2]int{dir, -dir} {
			if g.IsEmpty(x+d, y) {
				g.Swap(x, y, x+d, y)
				return true
			}
		}
	}
	return false
}
