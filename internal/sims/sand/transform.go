package sand

// HeatTransformation turns the cell into another element when a heat-tagged
// neighbor is adjacent, e.g. ice thawing next to lava.
type HeatTransformation struct {
	Into   string
	Chance float64
}

// Apply checks the 8-neighborhood for heat and rolls for the transition. An
// empty Into falls back to the element's MeltsInto target.
func (b HeatTransformation) Apply(x, y int, g *Grid, c *Cell) bool {
	into := b.Into
	if into == "" {
		into = c.elem.MeltsInto
	}
	return tagTriggered(x, y, g, TagHeatSource, b.Chance, into)
}

// ColdTransformation is the cold-tagged counterpart, e.g. water freezing next
// to ice.
type ColdTransformation struct {
	Into   string
	Chance float64
}

// Apply checks the 8-neighborhood for cold and rolls for the transition.
func (b ColdTransformation) Apply(x, y int, g *Grid, c *Cell) bool {
	return tagTriggered(x, y, g, TagColdSource, b.Chance, b.Into)
}

func tagTriggered(x, y int, g *Grid, tag Tag, chance float64, into string) bool {
	found := false
	for _, d := range neighbors8 {
		ne := g.ElementAt(x+d[0], y+d[1])
		if ne != nil && ne.Tags.Has(tag) {
			found = true
			break
		}
	}
	if !found || chance <= 0 || g.rng.Float64() >= chance {
		return false
	}
	return transformTo(g, x, y, into, false)
}

// MeltRule matches one specific neighbor element by name. Into lists the
// possible results; one is chosen at random when several are given.
type MeltRule struct {
	Neighbor string
	Chance   float64
	Into     []string
}

// Melting transforms the cell when it touches specific elements, with an
// independent probability per rule. Name matching is deliberate here: sand
// only vitrifies against lava, not against every heat source.
type Melting struct {
	Rules []MeltRule
}

// Apply scans the 8-neighborhood against the rule table.
func (b Melting) Apply(x, y int, g *Grid, c *Cell) bool {
	for _, d := range neighbors8 {
		ne := g.ElementAt(x+d[0], y+d[1])
		if ne == nil || ne.IsEmpty() {
			continue
		}
		for _, rule := range b.Rules {
			if rule.Neighbor != ne.Name || len(rule.Into) == 0 {
				continue
			}
			if g.rng.Float64() >= rule.Chance {
				continue
			}
			into := rule.Into[0]
			if len(rule.Into) > 1 {
				into = rule.Into[g.rng.IntN(len(rule.Into))]
			}
			if transformTo(g, x, y, into, false) {
				return true
			}
		}
	}
	return false
}

// FreezingPropagation spreads the owning element's state into a named
// neighbor, e.g. ice creeping across adjacent water.
type FreezingPropagation struct {
	Target string
	Into   string
	Chance float64
}

// Apply converts at most one matching neighbor per frame.
func (b FreezingPropagation) Apply(x, y int, g *Grid, c *Cell) bool {
	if b.Chance <= 0 || g.rng.Float64() >= b.Chance {
		return false
	}
	start := g.rng.IntN(len(neighbors8))
	for i := 0; i < len(neighbors8); i++ {
		d := neighbors8[(start+i)%len(neighbors8)]
		nx, ny := x+d[0], y+d[1]
		ne := g.ElementAt(nx, ny)
		if ne == nil || ne.Name != b.Target {
			continue
		}
		return transformTo(g, nx, ny, b.Into, false)
	}
	return false
}

// Corrosion eats a neighboring cell matched by tag or name and may leave a
// gaseous byproduct above the dissolved cell.
type Corrosion struct {
	Chance     float64
	TargetTags Tag
	Targets    []string
	Byproduct  string
}

func (b Corrosion) matches(e *Element) bool {
	if e == nil || e.IsEmpty() {
		return false
	}
	if b.TargetTags != 0 && e.Tags.Has(b.TargetTags) {
		return true
	}
	for _, name := range b.Targets {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Apply dissolves at most one matching neighbor per frame.
func (b Corrosion) Apply(x, y int, g *Grid, c *Cell) bool {
	if b.Chance <= 0 || g.rng.Float64() >= b.Chance {
		return false
	}
	start := g.rng.IntN(len(neighbors8))
	for i := 0; i < len(neighbors8); i++ {
		d := neighbors8[(start+i)%len(neighbors8)]
		nx, ny := x+d[0], y+d[1]
		if !b.matches(g.ElementAt(nx, ny)) {
			continue
		}
		g.SetElement(nx, ny, g.reg.Empty())
		if b.Byproduct != "" && g.IsEmpty(nx, ny-1) {
			transformTo(g, nx, ny-1, b.Byproduct, false)
		}
		return true
	}
	return false
}

// TimedTransformation fires once a per-cell countdown elapses. The countdown
// seeds itself on the cell's first update, with optional random variance so a
// painted region does not flip in lockstep.
type TimedTransformation struct {
	Delay    int
	Variance int
	Into     string
}

// Apply ticks the countdown at (x, y).
func (b TimedTransformation) Apply(x, y int, g *Grid, c *Cell) bool {
	if c.Data.Timer == 0 {
		delay := b.Delay
		if delay < 1 {
			delay = 1
		}
		if b.Variance > 0 {
			delay += g.rng.IntN(b.Variance + 1)
		}
		c.Data.Timer = delay
		return false
	}
	c.Data.Timer--
	if c.Data.Timer > 0 {
		return false
	}
	return transformTo(g, x, y, b.Into, false)
}
