package sand

// Burning advances a per-cell burn counter against Duration and transforms the
// cell into its element's BurnsInto target on expiry (or empty when the
// element declares no residue). While burning there is a chance to ignite one
// random combustible cardinal neighbor; the chance halves in the final third
// of the burn as the fuel runs out.
type Burning struct {
	Duration     int
	SpreadChance float64
}

// Apply advances the burn at (x, y).
func (b Burning) Apply(x, y int, g *Grid, c *Cell) bool {
	if c.Data.BurnTotal == 0 {
		c.Data.BurnTotal = b.Duration
	}
	c.Data.BurnProgress++
	if c.Data.BurnProgress >= c.Data.BurnTotal {
		if !transformTo(g, x, y, c.elem.BurnsInto, false) {
			g.SetElement(x, y, g.reg.Empty())
		}
		return true
	}

	spread := b.SpreadChance
	if c.Data.BurnProgress*3 >= c.Data.BurnTotal*2 {
		spread *= 0.5
	}
	if spread <= 0 || g.rng.Float64() >= spread {
		return false
	}
	d := cardinal[g.rng.IntN(len(cardinal))]
	nx, ny := x+d[0], y+d[1]
	ne := g.ElementAt(nx, ny)
	if ne == nil || !ne.Tags.Has(TagCombustible) {
		return false
	}
	return transformTo(g, nx, ny, ne.IgnitesInto, false)
}

// EmissionStage maps a burn-progress fraction to an emission chance. Stages
// are checked in order; the first stage whose Until covers the current
// fraction wins.
type EmissionStage struct {
	Until  float64
	Chance float64
}

// Emission probabilistically spawns a named element into an adjacent empty
// cell, e.g. smoke above an ember. Stages, when present, key the rate off the
// cell's burn progress.
type Emission struct {
	Element string
	Chance  float64
	Stages  []EmissionStage
}

// Apply spawns at most one emission around (x, y).
func (b Emission) Apply(x, y int, g *Grid, c *Cell) bool {
	ch := b.Chance
	if len(b.Stages) > 0 && c.Data.BurnTotal > 0 {
		frac := float64(c.Data.BurnProgress) / float64(c.Data.BurnTotal)
		for _, s := range b.Stages {
			if frac <= s.Until {
				ch = s.Chance
				break
			}
		}
	}
	if ch <= 0 || g.rng.Float64() >= ch {
		return false
	}
	start := g.rng.IntN(len(neighbors8))
	for i := 0; i < len(neighbors8); i++ {
		d := neighbors8[(start+i)%len(neighbors8)]
		nx, ny := x+d[0], y+d[1]
		if g.IsEmpty(nx, ny) {
			return transformTo(g, nx, ny, b.Element, false)
		}
	}
	return false
}

// ProximityIgnition lets a combustible element catch fire on its own when a
// heat source sits in its 8-neighborhood, modulated by the element's ignition
// resistance. This complements the pairwise ignition rule, which only runs on
// the interaction cadence.
type ProximityIgnition struct {
	Chance float64
}

// Apply ignites (x, y) when heat is adjacent and the roll passes.
func (b ProximityIgnition) Apply(x, y int, g *Grid, c *Cell) bool {
	hot := false
	for _, d := range neighbors8 {
		ne := g.ElementAt(x+d[0], y+d[1])
		if ne != nil && ne.Tags.Has(TagHeatSource) {
			hot = true
			break
		}
	}
	if !hot {
		return false
	}
	p := b.Chance * (1 - c.elem.IgnitionResistance)
	if p <= 0 || g.rng.Float64() >= p {
		return false
	}
	return transformTo(g, x, y, c.elem.IgnitesInto, false)
}
