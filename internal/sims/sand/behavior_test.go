package sand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func applyFirst(g *Grid, x, y int, b Behavior) bool {
	return b.Apply(x, y, g, g.CellAt(x, y))
}

func TestGravityStraightFall(t *testing.T) {
	w := newTestWorld(6, 6)
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "sand"))

	require.True(t, applyFirst(g, 2, 2, Gravity{SlideStability: 1}))
	require.True(t, g.IsEmpty(2, 2))
	require.Equal(t, "sand", g.ElementAt(2, 3).Name)
}

func TestGravitySlidesWhenDiagonalUnsupported(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0, b: false})
	g := w.Grid()
	sand := mustElement(w, "sand")
	g.SetElement(2, 2, sand)
	g.SetElement(2, 3, sand)

	// Nothing under the diagonal target: the stability gate does not apply.
	require.True(t, applyFirst(g, 2, 2, Gravity{SlideStability: 1}))
	require.Equal(t, "sand", g.ElementAt(1, 3).Name)
}

func TestGravityStabilityPinsSupportedGrain(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0})
	g := w.Grid()
	sand := mustElement(w, "sand")
	wall := mustElement(w, "wall")
	g.SetElement(2, 2, sand)
	g.SetElement(2, 3, sand)
	g.SetElement(1, 4, wall)
	g.SetElement(3, 4, wall)

	require.False(t, applyFirst(g, 2, 2, Gravity{SlideStability: 1}),
		"a fully stable grain stays on a supported slope")
	require.Equal(t, "sand", g.ElementAt(2, 2).Name)

	require.True(t, applyFirst(g, 2, 2, Gravity{SlideStability: 0}),
		"zero stability always slides")
	require.Equal(t, "sand", g.ElementAt(1, 3).Name)
}

func TestLiquidFallCoversFallSpeed(t *testing.T) {
	w := newTestWorld(6, 8)
	g := w.Grid()
	g.SetElement(2, 0, mustElement(w, "water"))

	require.True(t, applyFirst(g, 2, 0, LiquidFlow{FallSpeed: 3}))
	require.Equal(t, "water", g.ElementAt(2, 3).Name, "a fast liquid clears several rows per frame")
	require.True(t, g.IsEmpty(2, 0))
}

func TestLiquidAvoidListBlocksDisplacement(t *testing.T) {
	w := newTestWorld(5, 6)
	w.SetRand(stubRand{f: 0, b: false})
	g := w.Grid()
	wall := mustElement(w, "wall")
	for _, p := range [][2]int{{1, 2}, {3, 2}, {1, 3}, {3, 3}} {
		g.SetElement(p[0], p[1], wall)
	}
	g.SetElement(2, 2, mustElement(w, "lava"))
	g.SetElement(2, 3, mustElement(w, "water"))

	flow := LiquidFlow{FallSpeed: 1, DispersionRate: 1, LevelScan: 3, Avoid: []string{"water"}}
	require.False(t, applyFirst(g, 2, 2, flow),
		"lava must not dive into water even though it is denser")
	require.Equal(t, "lava", g.ElementAt(2, 2).Name)
	require.Equal(t, "water", g.ElementAt(2, 3).Name)
}

func TestLiquidLevelsTowardShallowerColumn(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0, b: false})
	g := w.Grid()
	water := mustElement(w, "water")
	wall := mustElement(w, "wall")
	g.SetElement(2, 2, water)
	g.SetElement(2, 3, water)
	g.SetElement(1, 2, wall)
	g.SetElement(1, 3, wall)
	g.SetElement(3, 3, wall)

	require.True(t, applyFirst(g, 2, 2, LiquidFlow{FallSpeed: 3, DispersionRate: 4, LevelScan: 5}))
	require.Equal(t, "water", g.ElementAt(3, 2).Name, "the two-deep column sheds into the empty one")
	require.True(t, g.IsEmpty(2, 2))
}

func TestLiquidDispersesToFarthestEmpty(t *testing.T) {
	w := newTestWorld(8, 4)
	w.SetRand(stubRand{f: 0, b: false})
	g := w.Grid()
	wall := mustElement(w, "wall")
	for x := 0; x < 8; x++ {
		g.SetElement(x, 3, wall)
	}
	g.SetElement(4, 2, mustElement(w, "water"))

	require.True(t, applyFirst(g, 4, 2, LiquidFlow{FallSpeed: 3, DispersionRate: 4, LevelScan: 5}))
	require.Equal(t, "water", g.ElementAt(0, 2).Name, "dispersion jumps to the farthest empty cell in range")
}

func TestGasDissipates(t *testing.T) {
	w := newTestWorld(5, 5)
	w.SetRand(stubRand{f: 0})
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "smoke"))

	require.True(t, applyFirst(g, 2, 2, Gas{DissipateChance: 0.01}))
	require.True(t, g.IsEmpty(2, 2))
	require.Zero(t, g.ActiveCount())
}

func TestGasRisesStraightThenDiagonally(t *testing.T) {
	w := newTestWorld(5, 5)
	w.SetRand(stubRand{f: 0, b: false})
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "smoke"))

	require.True(t, applyFirst(g, 2, 2, Gas{RiseChance: 0.5}))
	require.Equal(t, "smoke", g.ElementAt(2, 1).Name)

	g.SetElement(2, 0, mustElement(w, "wall"))
	require.True(t, applyFirst(g, 2, 1, Gas{RiseChance: 0.5}))
	require.Equal(t, "smoke", g.ElementAt(1, 0).Name, "blocked gas drifts up a diagonal")
}

func TestEmissionStagesKeyOffBurnProgress(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0.1})
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "ember"))
	c := g.CellAt(2, 2)
	c.Data.BurnTotal = 100

	em := Emission{Element: "smoke", Stages: []EmissionStage{
		{Until: 0.33, Chance: 0.3},
		{Until: 0.66, Chance: 0.15},
		{Until: 1, Chance: 0.05},
	}}

	c.Data.BurnProgress = 90
	require.False(t, applyFirst(g, 2, 2, em), "a nearly spent ember barely smokes")

	c.Data.BurnProgress = 10
	require.True(t, applyFirst(g, 2, 2, em), "a fresh ember smokes heavily")
	require.Equal(t, 1, countByName(w, "smoke"))
}

func TestProximityIgnitionNeedsAdjacentHeat(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0})
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "wood"))

	require.False(t, applyFirst(g, 2, 2, ProximityIgnition{Chance: 0.2}), "no heat, no fire")

	g.SetElement(3, 3, mustElement(w, "lava"))
	require.True(t, applyFirst(g, 2, 2, ProximityIgnition{Chance: 0.2}))
	require.Equal(t, "ember", g.ElementAt(2, 2).Name, "wood smolders into ember")
}

func TestMeltingMatchesNeighborByName(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0})
	g := w.Grid()
	melt := Melting{Rules: []MeltRule{{Neighbor: "lava", Chance: 0.05, Into: []string{"glass"}}}}

	g.SetElement(2, 2, mustElement(w, "sand"))
	g.SetElement(2, 3, mustElement(w, "fire"))
	require.False(t, applyFirst(g, 2, 2, melt), "sand vitrifies against lava only, not any heat source")

	g.SetElement(2, 3, mustElement(w, "lava"))
	require.True(t, applyFirst(g, 2, 2, melt))
	require.Equal(t, "glass", g.ElementAt(2, 2).Name)
}

func TestMeltingPicksAmongMultipleResults(t *testing.T) {
	w := newTestWorld(6, 6)
	g := w.Grid()
	melt := Melting{Rules: []MeltRule{{Neighbor: "lava", Chance: 0.05, Into: []string{"glass", "obsidian"}}}}

	g.SetElement(2, 2, mustElement(w, "stone"))
	g.SetElement(2, 3, mustElement(w, "lava"))

	w.SetRand(stubRand{f: 0, n: 1})
	require.True(t, applyFirst(g, 2, 2, melt))
	require.Equal(t, "obsidian", g.ElementAt(2, 2).Name, "the picked index selects the result")

	g.SetElement(2, 2, mustElement(w, "stone"))
	w.SetRand(stubRand{f: 0, n: 0})
	require.True(t, applyFirst(g, 2, 2, melt))
	require.Equal(t, "glass", g.ElementAt(2, 2).Name)
}

func TestFreezingPropagationConvertsNeighbor(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0})
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "ice"))
	g.SetElement(2, 3, mustElement(w, "water"))

	require.True(t, applyFirst(g, 2, 2, FreezingPropagation{Target: "water", Into: "ice", Chance: 0.02}))
	require.Equal(t, "ice", g.ElementAt(2, 3).Name)
	require.Equal(t, "ice", g.ElementAt(2, 2).Name, "the source stays put")
}

func TestCorrosionDissolvesAndLeavesByproduct(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0})
	g := w.Grid()
	acid := Corrosion{Chance: 0.2, TargetTags: TagCorrodible, Targets: []string{"stone"}, Byproduct: "smoke"}

	g.SetElement(2, 2, mustElement(w, "acid"))
	g.SetElement(3, 3, mustElement(w, "wood"))
	require.True(t, applyFirst(g, 2, 2, acid))
	require.True(t, g.IsEmpty(3, 3), "tag-matched material dissolves")
	require.Equal(t, "smoke", g.ElementAt(3, 2).Name, "the byproduct rises from the dissolved cell")

	// Stone carries no corrodible tag but is matched by name.
	g.SetElement(2, 1, mustElement(w, "stone"))
	require.True(t, applyFirst(g, 2, 2, acid))
	require.True(t, g.IsEmpty(2, 1))
}

func TestTimedTransformationSeedsThenFires(t *testing.T) {
	w := newTestWorld(6, 6)
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "wet-sand"))
	dry := TimedTransformation{Delay: 3, Into: "sand"}

	require.False(t, applyFirst(g, 2, 2, dry), "first tick only seeds the countdown")
	require.Equal(t, 3, g.CellAt(2, 2).Data.Timer)
	require.False(t, applyFirst(g, 2, 2, dry))
	require.False(t, applyFirst(g, 2, 2, dry))
	require.True(t, applyFirst(g, 2, 2, dry))
	require.Equal(t, "sand", g.ElementAt(2, 2).Name)
}

func TestHeatTransformationFallsBackToMeltTarget(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0})
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "ice"))
	g.SetElement(3, 2, mustElement(w, "lava"))

	require.True(t, applyFirst(g, 2, 2, HeatTransformation{Chance: 0.1}))
	require.Equal(t, "water", g.ElementAt(2, 2).Name, "ice thaws into its declared melt target")
}

func TestBurningSpreadsToCombustibleNeighbor(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0, n: 0})
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "fire"))
	g.SetElement(2, 1, mustElement(w, "wood"))

	require.True(t, applyFirst(g, 2, 2, Burning{Duration: 60, SpreadChance: 0.4}))
	require.Equal(t, "ember", g.ElementAt(2, 1).Name, "wood ignites into its declared target")
	require.Equal(t, "fire", g.ElementAt(2, 2).Name)
}

func TestBurningWithoutResidueExpiresToEmpty(t *testing.T) {
	w := newTestWorld(6, 6)
	w.SetRand(stubRand{f: 0.999})
	g := w.Grid()
	g.SetElement(2, 2, mustElement(w, "fire"))
	c := g.CellAt(2, 2)
	c.Data.BurnTotal = 60
	c.Data.BurnProgress = 59

	require.True(t, applyFirst(g, 2, 2, Burning{Duration: 60, SpreadChance: 0.4}))
	require.True(t, g.IsEmpty(2, 2), "fire with no residue burns out to nothing")
}
