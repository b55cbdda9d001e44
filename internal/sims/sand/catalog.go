package sand

import "image/color"

// buildCatalog assembles the built-in element set. Ids are assigned by
// NewRegistry in slice order, so the empty element must stay first.
func buildCatalog(p Params) []*Element {
	return []*Element{
		{
			Name:            "empty",
			State:           StateEmpty,
			Color:           color.RGBA{A: 255},
			DefaultLifetime: -1,
		},
		{
			Name:            "wall",
			State:           StateSolid,
			Color:           color.RGBA{R: 90, G: 90, B: 100, A: 255},
			Density:         100,
			DefaultLifetime: -1,
		},
		{
			Name:            "stone",
			State:           StateSolid,
			Color:           color.RGBA{R: 136, G: 136, B: 136, A: 255},
			Density:         5,
			Movable:         true,
			DefaultLifetime: -1,
			MeltsInto:       "lava",
			Behaviors: []Behavior{
				Gravity{SlideStability: 1},
				Melting{Rules: []MeltRule{{Neighbor: "lava", Chance: 0.01, Into: []string{"lava"}}}},
			},
		},
		{
			Name:            "sand",
			State:           StatePowder,
			Color:           color.RGBA{R: 222, G: 189, B: 112, A: 255},
			Density:         4,
			Movable:         true,
			DefaultLifetime: -1,
			MeltsInto:       "glass",
			Behaviors: []Behavior{
				Gravity{SlideStability: p.SlideStability},
				Melting{Rules: []MeltRule{{Neighbor: "lava", Chance: 0.05, Into: []string{"glass"}}}},
			},
		},
		{
			Name:            "wet-sand",
			State:           StatePowder,
			Color:           color.RGBA{R: 175, G: 142, B: 78, A: 255},
			Density:         4.5,
			Movable:         true,
			DefaultLifetime: -1,
			Behaviors: []Behavior{
				Gravity{SlideStability: 0.97},
				TimedTransformation{Delay: 600, Variance: 240, Into: "sand"},
			},
		},
		{
			Name:            "water",
			State:           StateLiquid,
			Color:           color.RGBA{R: 52, G: 108, B: 202, A: 255},
			Density:         2,
			Movable:         true,
			DefaultLifetime: -1,
			EvaporatesInto:  "steam",
			Behaviors: []Behavior{
				LiquidFlow{FallSpeed: 3, DispersionRate: 4, LevelScan: 5, Avoid: []string{"lava"}},
				ColdTransformation{Into: "ice", Chance: 0.02},
			},
		},
		{
			Name:               "oil",
			State:              StateLiquid,
			Color:              color.RGBA{R: 112, G: 89, B: 50, A: 255},
			Density:            1.5,
			Movable:            true,
			DefaultLifetime:    -1,
			Tags:               TagCombustible,
			IgnitionResistance: 0.1,
			IgnitesInto:        "fire",
			Behaviors: []Behavior{
				LiquidFlow{FallSpeed: 2, DispersionRate: 3, LevelScan: 5},
				ProximityIgnition{Chance: 0.3},
			},
		},
		{
			Name:            "lava",
			State:           StateLiquid,
			Color:           color.RGBA{R: 226, G: 88, B: 34, A: 255},
			Density:         3,
			Movable:         true,
			DefaultLifetime: -1,
			Tags:            TagHeatSource,
			Behaviors: []Behavior{
				LiquidFlow{FallSpeed: 1, DispersionRate: 1, LevelScan: 3, Avoid: []string{"water"}},
				Emission{Element: "smoke", Chance: 0.005},
			},
		},
		{
			Name:            "steam",
			State:           StateGas,
			Color:           color.RGBA{R: 190, G: 204, B: 212, A: 255},
			Density:         0.3,
			Movable:         true,
			DefaultLifetime: 400,
			Behaviors: []Behavior{
				Gas{RiseChance: 0.8, SpreadChance: 0.3, DissipateChance: 0.002},
			},
		},
		{
			Name:            "smoke",
			State:           StateGas,
			Color:           color.RGBA{R: 70, G: 70, B: 70, A: 255},
			Density:         0.2,
			Movable:         true,
			DefaultLifetime: 250,
			Behaviors: []Behavior{
				Gas{RiseChance: 0.6, SpreadChance: 0.4, DissipateChance: 0.01},
			},
		},
		{
			Name:            "fire",
			State:           StateGas,
			Color:           color.RGBA{R: 255, G: 120, B: 30, A: 255},
			Density:         0.1,
			Movable:         true,
			DefaultLifetime: -1,
			Tags:            TagHeatSource,
			Behaviors: []Behavior{
				Burning{Duration: 60, SpreadChance: 0.4},
				Emission{Element: "smoke", Chance: 0.15},
				Gas{RiseChance: 0.3, SpreadChance: 0.1},
			},
		},
		{
			Name:            "ember",
			State:           StateSolid,
			Color:           color.RGBA{R: 205, G: 92, B: 35, A: 255},
			Density:         2.5,
			Movable:         true,
			DefaultLifetime: -1,
			Tags:            TagHeatSource,
			BurnsInto:       "ash",
			Behaviors: []Behavior{
				Burning{Duration: 240, SpreadChance: 0.25},
				Emission{Element: "smoke", Stages: []EmissionStage{
					{Until: 0.33, Chance: 0.3},
					{Until: 0.66, Chance: 0.15},
					{Until: 1, Chance: 0.05},
				}},
				Gravity{SlideStability: 0.95},
			},
		},
		{
			Name:               "wood",
			State:              StateSolid,
			Color:              color.RGBA{R: 96, G: 67, B: 43, A: 255},
			Density:            3,
			DefaultLifetime:    -1,
			Tags:               TagCombustible | TagCorrodible,
			IgnitionResistance: 0.5,
			IgnitesInto:        "ember",
			Behaviors: []Behavior{
				ProximityIgnition{Chance: 0.2},
			},
		},
		{
			Name:               "plant",
			State:              StateSolid,
			Color:              color.RGBA{R: 60, G: 150, B: 70, A: 255},
			Density:            1,
			DefaultLifetime:    -1,
			Tags:               TagCombustible | TagCorrodible,
			IgnitionResistance: 0.1,
			IgnitesInto:        "fire",
			Behaviors: []Behavior{
				ProximityIgnition{Chance: 0.5},
			},
		},
		{
			Name:            "ash",
			State:           StatePowder,
			Color:           color.RGBA{R: 150, G: 144, B: 136, A: 255},
			Density:         1.8,
			Movable:         true,
			DefaultLifetime: -1,
			Behaviors: []Behavior{
				Gravity{SlideStability: 0.8},
			},
		},
		{
			Name:            "acid",
			State:           StateLiquid,
			Color:           color.RGBA{R: 150, G: 220, B: 40, A: 255},
			Density:         2.2,
			Movable:         true,
			DefaultLifetime: -1,
			Behaviors: []Behavior{
				LiquidFlow{FallSpeed: 2, DispersionRate: 2, LevelScan: 5},
				Corrosion{Chance: 0.2, TargetTags: TagCorrodible, Targets: []string{"stone"}, Byproduct: "smoke"},
			},
		},
		{
			Name:            "ice",
			State:           StateSolid,
			Color:           color.RGBA{R: 170, G: 215, B: 235, A: 255},
			DefaultLifetime: -1,
			Tags:            TagColdSource,
			MeltsInto:       "water",
			Behaviors: []Behavior{
				FreezingPropagation{Target: "water", Into: "ice", Chance: 0.02},
				HeatTransformation{Chance: 0.1},
			},
		},
		{
			Name:            "snow",
			State:           StatePowder,
			Color:           color.RGBA{R: 235, G: 240, B: 245, A: 255},
			Density:         0.5,
			Movable:         true,
			DefaultLifetime: -1,
			Tags:            TagColdSource,
			MeltsInto:       "water",
			Behaviors: []Behavior{
				Gravity{SlideStability: 0.85},
				HeatTransformation{Chance: 0.2},
			},
		},
		{
			Name:            "glass",
			State:           StateSolid,
			Color:           color.RGBA{R: 200, G: 225, B: 220, A: 255},
			DefaultLifetime: -1,
		},
		{
			Name:            "obsidian",
			State:           StateSolid,
			Color:           color.RGBA{R: 45, G: 35, B: 60, A: 255},
			Density:         5.5,
			Movable:         true,
			DefaultLifetime: -1,
			Behaviors: []Behavior{
				Gravity{SlideStability: 1},
			},
		},
		{
			Name:            "iron",
			State:           StateSolid,
			Color:           color.RGBA{R: 120, G: 125, B: 130, A: 255},
			DefaultLifetime: -1,
			Tags:            TagOxidizable,
		},
		{
			Name:            "rust",
			State:           StatePowder,
			Color:           color.RGBA{R: 160, G: 85, B: 50, A: 255},
			Density:         3.5,
			Movable:         true,
			DefaultLifetime: -1,
			Behaviors: []Behavior{
				Gravity{SlideStability: 0.9},
			},
		},
		{
			Name:            "gunpowder",
			State:           StatePowder,
			Color:           color.RGBA{R: 60, G: 60, B: 60, A: 255},
			Density:         4,
			Movable:         true,
			DefaultLifetime: -1,
			Tags:            TagCombustible,
			IgnitesInto:     "fire",
			Behaviors: []Behavior{
				Gravity{SlideStability: 0.8},
			},
			OnInteract: gunpowderIgnite,
		},
	}
}

// gunpowderIgnite is the custom interaction hook: gunpowder next to any heat
// source detonates with a far higher probability than the generic ignition
// rule would give it, and flashes fire into the empty cells around it.
func gunpowderIgnite(g *Grid, x, y, ox, oy int, other *Element) bool {
	if !other.Tags.Has(TagHeatSource) {
		return false
	}
	if g.rng.Float64() >= 0.9 {
		return false
	}
	if !transformTo(g, x, y, "fire", false) {
		return false
	}
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if g.IsEmpty(nx, ny) {
			transformTo(g, nx, ny, "fire", false)
		}
	}
	return true
}
