package sand

import "slices"

// DefaultPriority is the priority band for low-urgency pairwise rules.
const DefaultPriority = 10

// Rule is a pairwise interaction between two adjacent elements. Check is a
// cheap predicate over the two descriptors; Apply performs the effect and
// reports whether anything happened (a failed probability roll reports false
// so lower-priority rules still get their turn).
type Rule struct {
	Name     string
	Priority int
	Check    func(a, b *Element) bool
	Apply    func(g *Grid, x1, y1, x2, y2 int) bool
}

// InteractionManager resolves pairwise effects that single-element behaviors
// cannot express. Rules are kept sorted ascending by priority; among equal
// priorities registration order decides.
type InteractionManager struct {
	rules []Rule
}

// NewInteractionManager returns an empty manager.
func NewInteractionManager() *InteractionManager {
	return &InteractionManager{}
}

// Add registers a rule and re-sorts the rule list.
func (m *InteractionManager) Add(r Rule) {
	m.rules = append(m.rules, r)
	slices.SortStableFunc(m.rules, func(a, b Rule) int { return a.Priority - b.Priority })
}

// Rules exposes the sorted rule list.
func (m *InteractionManager) Rules() []Rule { return m.rules }

// CheckNeighbors runs the interaction resolution for the cell at (x, y)
// against its 8 neighbors, stopping at the first neighbor that produces an
// effect.
func (m *InteractionManager) CheckNeighbors(g *Grid, x, y int) bool {
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		ne := g.ElementAt(nx, ny)
		if ne == nil || ne.IsEmpty() {
			continue
		}
		if m.CheckInteraction(g, x, y, nx, ny) {
			return true
		}
	}
	return false
}

// CheckInteraction resolves the pair at (x1, y1)/(x2, y2). Each element's
// custom hook gets a chance to short-circuit the generic rules first; then the
// sorted rule list runs and stops at the first rule whose Check passes and
// whose Apply reports an effect.
func (m *InteractionManager) CheckInteraction(g *Grid, x1, y1, x2, y2 int) bool {
	e1 := g.ElementAt(x1, y1)
	e2 := g.ElementAt(x2, y2)
	if e1 == nil || e2 == nil {
		return false
	}
	if e1.OnInteract != nil && e1.OnInteract(g, x1, y1, x2, y2, e2) {
		return true
	}
	if e2.OnInteract != nil && e2.OnInteract(g, x2, y2, x1, y1, e1) {
		return true
	}
	for _, r := range m.rules {
		if r.Check(e1, e2) && r.Apply(g, x1, y1, x2, y2) {
			return true
		}
	}
	return false
}

// orient returns the coordinates of the pair ordered so the element matching
// pick comes first. It assumes Check already established that one side
// matches.
func orient(g *Grid, x1, y1, x2, y2 int, pick func(*Element) bool) (ax, ay, bx, by int, ok bool) {
	if e := g.ElementAt(x1, y1); e != nil && pick(e) {
		return x1, y1, x2, y2, true
	}
	if e := g.ElementAt(x2, y2); e != nil && pick(e) {
		return x2, y2, x1, y1, true
	}
	return 0, 0, 0, 0, false
}

func isNamed(name string) func(*Element) bool {
	return func(e *Element) bool { return e.Name == name }
}

func hasTag(t Tag) func(*Element) bool {
	return func(e *Element) bool { return e.Tags.Has(t) }
}

// DefaultRules builds the canonical rule set. Priority bands: 0 for lava
// solidification, 5 for generic ignition, 10 for the low-urgency pairs.
func DefaultRules(p Params) []Rule {
	return []Rule{
		{
			Name:     "lava-water-crust",
			Priority: 0,
			Check: func(a, b *Element) bool {
				return (a.Name == "lava" && b.Name == "water") || (a.Name == "water" && b.Name == "lava")
			},
			Apply: func(g *Grid, x1, y1, x2, y2 int) bool {
				lx, ly, wx, wy, ok := orient(g, x1, y1, x2, y2, isNamed("lava"))
				if !ok {
					return false
				}
				lava := g.CellAt(lx, ly)
				transformTo(g, wx, wy, "steam", false)
				// The contact counter accumulates across touches so a single
				// splash does not over-react.
				lava.Data.Contact++
				if lava.Data.Contact >= p.LavaCrustContacts {
					transformTo(g, lx, ly, "obsidian", false)
				}
				return true
			},
		},
		{
			Name:     "ignition",
			Priority: 5,
			Check: func(a, b *Element) bool {
				return (a.Tags.Has(TagHeatSource) && b.Tags.Has(TagCombustible)) ||
					(a.Tags.Has(TagCombustible) && b.Tags.Has(TagHeatSource))
			},
			Apply: func(g *Grid, x1, y1, x2, y2 int) bool {
				cx, cy, _, _, ok := orient(g, x1, y1, x2, y2, hasTag(TagCombustible))
				if !ok {
					return false
				}
				comb := g.ElementAt(cx, cy)
				chance := p.IgnitionChance * (1 - comb.IgnitionResistance)
				if chance <= 0 || g.rng.Float64() >= chance {
					return false
				}
				return transformTo(g, cx, cy, comb.IgnitesInto, false)
			},
		},
		{
			Name:     "evaporation",
			Priority: DefaultPriority,
			Check: func(a, b *Element) bool {
				return (a.Tags.Has(TagHeatSource) && b.EvaporatesInto != "") ||
					(a.EvaporatesInto != "" && b.Tags.Has(TagHeatSource))
			},
			Apply: func(g *Grid, x1, y1, x2, y2 int) bool {
				vx, vy, _, _, ok := orient(g, x1, y1, x2, y2, func(e *Element) bool { return e.EvaporatesInto != "" })
				if !ok {
					return false
				}
				if g.rng.Float64() >= p.EvaporationChance {
					return false
				}
				return transformTo(g, vx, vy, g.ElementAt(vx, vy).EvaporatesInto, false)
			},
		},
		{
			Name:     "oxidation",
			Priority: DefaultPriority,
			Check: func(a, b *Element) bool {
				return (a.Name == "water" && b.Tags.Has(TagOxidizable)) ||
					(a.Tags.Has(TagOxidizable) && b.Name == "water")
			},
			Apply: func(g *Grid, x1, y1, x2, y2 int) bool {
				mx, my, _, _, ok := orient(g, x1, y1, x2, y2, hasTag(TagOxidizable))
				if !ok {
					return false
				}
				if g.rng.Float64() >= p.OxidationChance {
					return false
				}
				return transformTo(g, mx, my, "rust", false)
			},
		},
		{
			Name:     "wet-sand",
			Priority: DefaultPriority,
			Check: func(a, b *Element) bool {
				return (a.Name == "sand" && b.Name == "water") || (a.Name == "water" && b.Name == "sand")
			},
			Apply: func(g *Grid, x1, y1, x2, y2 int) bool {
				sx, sy, wx, wy, ok := orient(g, x1, y1, x2, y2, isNamed("sand"))
				if !ok {
					return false
				}
				if g.rng.Float64() >= p.WetSandChance {
					return false
				}
				if !transformTo(g, sx, sy, "wet-sand", false) {
					return false
				}
				g.SetElement(wx, wy, g.reg.Empty())
				return true
			},
		},
		{
			Name:     "condensation",
			Priority: DefaultPriority,
			Check: func(a, b *Element) bool {
				return (a.Name == "steam" && b.Tags.Has(TagColdSource)) ||
					(a.Tags.Has(TagColdSource) && b.Name == "steam")
			},
			Apply: func(g *Grid, x1, y1, x2, y2 int) bool {
				sx, sy, _, _, ok := orient(g, x1, y1, x2, y2, isNamed("steam"))
				if !ok {
					return false
				}
				if g.rng.Float64() >= p.CondensationChance {
					return false
				}
				return transformTo(g, sx, sy, "water", false)
			},
		},
	}
}
