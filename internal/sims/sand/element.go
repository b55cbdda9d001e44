package sand

import "image/color"

// StateClass groups elements by their broad physical phase.
type StateClass uint8

const (
	StateEmpty StateClass = iota
	StateSolid
	StatePowder
	StateLiquid
	StateGas
)

// Tag marks a capability an element carries. Behaviors and interaction rules
// test tags instead of element names wherever the rule is generic.
type Tag uint16

const (
	TagCombustible Tag = 1 << iota
	TagHeatSource
	TagColdSource
	TagCorrodible
	TagOxidizable
)

// Has reports whether all bits of q are set.
func (t Tag) Has(q Tag) bool { return t&q == q }

// ID identifies an element in the registry. IDs are stable for the lifetime of
// a run and double as the display/palette index.
type ID = uint8

// EmptyID is the reserved id of the empty element.
const EmptyID ID = 0

// InteractFunc lets an element short-circuit the generic interaction rules.
// It runs with the owning element at (x, y) and the neighbor at (ox, oy), and
// reports whether it consumed the interaction.
type InteractFunc func(g *Grid, x, y, ox, oy int, other *Element) bool

// Element is an immutable type descriptor shared by every cell that holds it.
// Instances are built once at registry construction and never mutated after;
// all per-placement state lives on the Cell.
type Element struct {
	ID      ID
	Name    string
	Color   color.RGBA
	Density float64
	State   StateClass
	Movable bool
	Tags    Tag

	// IgnitionResistance in [0, 1] scales down ignition probability.
	IgnitionResistance float64

	// Transformation targets, resolved by name through the registry. An empty
	// string means the element has no such transition.
	IgnitesInto    string
	BurnsInto      string
	EvaporatesInto string
	MeltsInto      string

	// DefaultLifetime is the frame budget a freshly placed cell starts with.
	// -1 means the cell never expires on its own.
	DefaultLifetime int

	Behaviors  []Behavior
	OnInteract InteractFunc
}

// IsEmpty reports whether this is the empty element.
func (e *Element) IsEmpty() bool { return e == nil || e.ID == EmptyID }

// Update runs the attached behaviors in declared order and stops at the first
// one that changes the grid. One structural change per cell per frame.
func (e *Element) Update(x, y int, g *Grid) bool {
	c := g.CellAt(x, y)
	if c == nil {
		return false
	}
	for _, b := range e.Behaviors {
		if b.Apply(x, y, g, c) {
			return true
		}
	}
	return false
}
