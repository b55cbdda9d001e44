package sand

import "strconv"

// Params holds the tunable probabilities and thresholds of the sand engine.
type Params struct {
	// InteractionCadence runs the pairwise rules every Nth frame. 0 disables
	// them entirely.
	InteractionCadence int

	// SlideStability is the default probability a supported grain stays put
	// instead of sliding diagonally.
	SlideStability float64

	IgnitionChance     float64
	EvaporationChance  float64
	OxidationChance    float64
	WetSandChance      float64
	CondensationChance float64

	// LavaCrustContacts is how many water touches lava absorbs before it
	// solidifies.
	LavaCrustContacts int

	// FloorRows walls off this many bottom rows on reset.
	FloorRows int
}

// Config controls the sand simulation dimensions and content.
type Config struct {
	Width  int
	Height int

	Seed int64

	// CatalogPath optionally points at a TOML file with per-element
	// overrides, applied before the registry freezes.
	CatalogPath string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 192,
		Seed:   1337,
		Params: Params{
			InteractionCadence: 2,
			SlideStability:     0.9,
			IgnitionChance:     0.15,
			EvaporationChance:  0.25,
			OxidationChance:    0.02,
			WetSandChance:      0.3,
			CondensationChance: 0.1,
			LavaCrustContacts:  3,
			FloorRows:          1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["catalog"]; ok {
		c.CatalogPath = v
	}
	if v, ok := cfg["interaction_cadence"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.InteractionCadence = parsed
		}
	}
	if v, ok := cfg["slide_stability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SlideStability = parsed
		}
	}
	if v, ok := cfg["ignition_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.IgnitionChance = parsed
		}
	}
	if v, ok := cfg["lava_crust_contacts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.LavaCrustContacts = parsed
		}
	}
	if v, ok := cfg["floor_rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FloorRows = parsed
		}
	}
	return c
}
