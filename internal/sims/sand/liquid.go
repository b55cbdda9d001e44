package sand

// LiquidFlow drives liquids: a multi-row fall, a diagonal fall, depth
// leveling toward the shallower neighboring column, and lateral dispersion.
// Avoid lists elements the liquid refuses to fall into even when displacement
// would be legal (water does not dive into lava; the interaction rules decide
// what happens at that boundary instead).
type LiquidFlow struct {
	FallSpeed      int
	DispersionRate int
	LevelScan      int
	Avoid          []string
}

// Apply moves the liquid at (x, y) by at most one of the four flow modes.
func (b LiquidFlow) Apply(x, y int, g *Grid, c *Cell) bool {
	if b.fall(x, y, g) {
		return true
	}
	if b.diagonal(x, y, g) {
		return true
	}
	if b.level(x, y, g, c) {
		return true
	}
	return b.disperse(x, y, g)
}

func (b LiquidFlow) avoids(e *Element) bool {
	if e == nil {
		return true
	}
	for _, name := range b.Avoid {
		if e.Name == name {
			return true
		}
	}
	return false
}

func (b LiquidFlow) fall(x, y int, g *Grid) bool {
	speed := b.FallSpeed
	if speed < 1 {
		speed = 1
	}
	cur := y
	for step := 0; step < speed; step++ {
		target := g.ElementAt(x, cur+1)
		if target == nil || (!target.IsEmpty() && b.avoids(target)) {
			break
		}
		if !g.CanMoveTo(x, cur, x, cur+1) {
			break
		}
		g.Swap(x, cur, x, cur+1)
		cur++
	}
	return cur != y
}

func (b LiquidFlow) diagonal(x, y int, g *Grid) bool {
	dir := randDir(g)
	for _, d := range [2]int{dir, -dir} {
		tx, ty := x+d, y+1
		target := g.ElementAt(tx, ty)
		if target == nil || (!target.IsEmpty() && b.avoids(target)) {
			continue
		}
		if g.CanMoveTo(x, y, tx, ty) {
			g.Swap(x, y, tx, ty)
			return true
		}
	}
	return false
}

// level moves one cell toward the shallower adjacent column when the depth
// difference exceeds one, which is what makes pools settle flat.
func (b LiquidFlow) level(x, y int, g *Grid, c *Cell) bool {
	scan := b.LevelScan
	if scan < 1 {
		scan = 5
	}
	own := b.columnDepth(g, x, y, c.elem, scan)
	dir := randDir(g)
	for _, d := range [2]int{dir, -dir} {
		if !g.IsEmpty(x+d, y) {
			continue
		}
		side := b.columnDepth(g, x+d, y+1, c.elem, scan)
		if own-side > 1 {
			g.Swap(x, y, x+d, y)
			return true
		}
	}
	return false
}

func (b LiquidFlow) columnDepth(g *Grid, x, y int, e *Element, cap int) int {
	depth := 0
	for depth < cap {
		cur := g.ElementAt(x, y+depth)
		if cur != e {
			break
		}
		depth++
	}
	return depth
}

func (b LiquidFlow) disperse(x, y int, g *Grid) bool {
	rate := b.DispersionRate
	if rate < 1 {
		return false
	}
	dir := randDir(g)
	far := 0
	for step := 1; step <= rate; step++ {
		if !g.IsEmpty(x+dir*step, y) {
			break
		}
		far = step
	}
	if far == 0 {
		return false
	}
	g.Swap(x, y, x+dir*far, y)
	return true
}
