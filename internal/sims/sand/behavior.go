package sand

import "go.uber.org/zap"

// Behavior is one composable physical rule attached to an element. Apply
// reports whether it changed the grid; the element stops at the first behavior
// that does.
type Behavior interface {
	Apply(x, y int, g *Grid, c *Cell) bool
}

var cardinal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// transformTo replaces (x, y) with the named element. Unknown names indicate a
// catalog error and skip the action per the error model.
func transformTo(g *Grid, x, y int, name string, preserveData bool) bool {
	if name == "" {
		return false
	}
	e, ok := g.reg.Get(name)
	if !ok {
		g.log.Warn("transformation target missing from registry", zap.String("element", name))
		return false
	}
	g.PlaceElement(x, y, e, preserveData, 0)
	return true
}

// randDir returns -1 or +1 with equal probability.
func randDir(g *Grid) int {
	if g.rng.Bool() {
		return 1
	}
	return -1
}
