package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/hexboard"
	"github.com/zerchniv/matchserver/internal/match/state"
	"github.com/zerchniv/matchserver/pkg/dice"
)

func newRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg := catalog.NewRegistry()
	require.NoError(t, reg.MergeSeed())
	return reg
}

func TestEssence_CanAffordAndSpend(t *testing.T) {
	pool := state.EssencePool{Neutral: 1, Fire: 2, Water: 0}

	require.True(t, CanAfford(pool, 3, catalog.ElementNeutral))
	require.False(t, CanAfford(pool, 4, catalog.ElementNeutral))
	require.True(t, CanAfford(pool, 2, catalog.ElementFire))
	require.False(t, CanAfford(pool, 1, catalog.ElementWater))

	require.NoError(t, Spend(&pool, 2, catalog.ElementNeutral))
	require.Equal(t, state.EssencePool{Neutral: 0, Fire: 1, Water: 0}, pool)

	require.Error(t, Spend(&pool, 5, catalog.ElementNeutral))
}

// S1 — Essence income: two neutral tiles and one fire tile adjacent;
// empire on the fire tile; no structures. After recalculate,
// essence = {neutral=0, fire=2, water=0}.
func TestRecalculate_S1_EssenceIncome(t *testing.T) {
	m := state.New("m1", 1, "A", "B")
	require.NoError(t, m.AddTile("r0c0", catalog.ElementFire))
	require.NoError(t, m.AddTile("r0c1", catalog.ElementNeutral))
	require.NoError(t, m.AddTile("r1c0", catalog.ElementNeutral))
	require.NoError(t, m.PlaceEmpire(state.SeatP1, "r0c0", state.EmpireMaxHP))

	Recalculate(m, state.SeatP1)

	require.Equal(t, state.EssencePool{Neutral: 0, Fire: 2, Water: 0}, *m.Essence[state.SeatP1])
}

func TestRecalculate_IsIdempotent(t *testing.T) {
	m := state.New("m1", 1, "A", "B")
	require.NoError(t, m.AddTile("r0c0", catalog.ElementFire))
	require.NoError(t, m.PlaceEmpire(state.SeatP1, "r0c0", state.EmpireMaxHP))

	Recalculate(m, state.SeatP1)
	first := *m.Essence[state.SeatP1]
	Recalculate(m, state.SeatP1)
	require.Equal(t, first, *m.Essence[state.SeatP1])
}

func TestRecalculate_StructureAndBuilderIncome(t *testing.T) {
	m := state.New("m1", 1, "A", "B")
	require.NoError(t, m.AddTile("r0c0", catalog.ElementNeutral))
	require.NoError(t, m.AddTile("r0c1", catalog.ElementFire))
	require.NoError(t, m.AddTile("r0c2", catalog.ElementWater))
	require.NoError(t, m.PlaceEmpire(state.SeatP1, "r0c0", state.EmpireMaxHP))
	require.NoError(t, m.PlaceStructure(&state.StructureInstance{ID: m.Minter.Mint(), Owner: state.SeatP1, TileID: "r0c1", HP: 10, CaptureThreshold: 2}))
	require.NoError(t, m.PlaceBuilder(&state.BuilderInstance{ID: m.Minter.Mint(), Owner: state.SeatP1, TileID: "r0c2"}))

	Recalculate(m, state.SeatP1)

	require.Equal(t, 2, m.Essence[state.SeatP1].Neutral)
	require.Equal(t, 1, m.Essence[state.SeatP1].Fire)
	require.Equal(t, 1, m.Essence[state.SeatP1].Water)
}

func buildTriangleBoard(t *testing.T, m *state.MatchState, center string, rng int) {
	t.Helper()
	require.NoError(t, m.AddTile(center, catalog.ElementNeutral))
	for _, id := range hexboard.Neighbors(center, rng) {
		require.NoError(t, m.AddTile(id, catalog.ElementNeutral))
	}
}

func TestValidMoves_RespectsSpeedAndOccupancy(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r2c2", 2)

	mover := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP1, TileID: "r2c2", HP: 4}
	require.NoError(t, m.PlaceUnit(mover, false))

	blockerTile := hexboard.Adjacent("r2c2")[0]
	blocker := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP2, TileID: blockerTile, HP: 4}
	require.NoError(t, m.PlaceUnit(blocker, false))

	moves := ValidMoves(m, reg, mover)
	require.NotContains(t, moves, blockerTile)
	for _, id := range moves {
		require.LessOrEqual(t, hexboard.Distance("r2c2", id), 2)
	}
}

func TestValidMoves_NoneAfterAttacking(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r2c2", 2)
	mover := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP1, TileID: "r2c2", HP: 4, HasAttacked: true}
	require.NoError(t, m.PlaceUnit(mover, false))

	require.Empty(t, ValidMoves(m, reg, mover))
}

func TestValidMoves_TinyUnitCanShareOccupiedTile(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r2c2", 1)

	occupantTile := hexboard.Adjacent("r2c2")[0]
	occupant := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP2, TileID: occupantTile, HP: 4}
	require.NoError(t, m.PlaceUnit(occupant, false))

	scout := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "scout", Owner: state.SeatP1, TileID: "r2c2", HP: 2}
	require.NoError(t, m.PlaceUnit(scout, true))

	moves := ValidMoves(m, reg, scout)
	require.Contains(t, moves, occupantTile)
}

func TestValidMeleeTargets_AdjacentEnemyOnly(t *testing.T) {
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r2c2", 1)

	attacker := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP1, TileID: "r2c2", HP: 4}
	require.NoError(t, m.PlaceUnit(attacker, false))

	enemyTile := hexboard.Adjacent("r2c2")[0]
	enemy := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP2, TileID: enemyTile, HP: 4}
	require.NoError(t, m.PlaceUnit(enemy, false))

	targets := ValidMeleeTargets(m, attacker)
	require.Equal(t, []string{string(enemy.ID)}, targets)
}

func TestValidMeleeTargets_EmptyUnderDevelopmentRest(t *testing.T) {
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r2c2", 1)
	attacker := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP1, TileID: "r2c2", HP: 4, DevelopmentRest: true}
	require.NoError(t, m.PlaceUnit(attacker, false))

	require.Empty(t, ValidMeleeTargets(m, attacker))
}

func TestValidRangedTargets_ExcludesFlaggedUnit(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r2c2", 2)

	archer := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "archer", Owner: state.SeatP1, TileID: "r2c2", HP: 3}
	require.NoError(t, m.PlaceUnit(archer, false))

	targetTile := hexboard.Neighbors("r2c2", 2)[0]
	shielded := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP2, TileID: targetTile, HP: 4, CannotBeRangedTargeted: true}
	require.NoError(t, m.PlaceUnit(shielded, false))

	require.Empty(t, ValidRangedTargets(m, reg, archer))
}

func TestValidRangedTargets_ZeroRangeHasNone(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r2c2", 2)
	footman := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP1, TileID: "r2c2", HP: 4}
	require.NoError(t, m.PlaceUnit(footman, false))

	require.Empty(t, ValidRangedTargets(m, reg, footman))
}

// S2/S3 — melee hit, miss, then kill + essence.
func TestResolveAttack_S2S3_MeleeHitMissKill(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 99, "A", "B")
	buildTriangleBoard(t, m, "r0c0", 1)

	attackerID := m.Minter.Mint()
	attacker := &state.UnitInstance{ID: attackerID, CardID: "footman", Owner: state.SeatP1, TileID: "r0c0", HP: 4}
	require.NoError(t, m.PlaceUnit(attacker, false))

	targetTile := hexboard.Adjacent("r0c0")[0]
	target := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP2, TileID: targetTile, HP: 4}
	require.NoError(t, m.PlaceUnit(target, false))

	roller := scriptedRoller{rolls: []int{6, 3, 7}}

	r1, err := ResolveAttack(m, reg, roller.asRoller(), nil, attacker, string(target.ID), AttackMelee)
	require.NoError(t, err)
	require.True(t, r1.Hit)
	require.Equal(t, 3, r1.Damage)
	require.Equal(t, 1, m.Units[target.ID].HP)
	require.False(t, r1.Killed)

	r2, err := ResolveAttack(m, reg, roller.asRoller(), nil, attacker, string(target.ID), AttackMelee)
	require.NoError(t, err)
	require.False(t, r2.Hit)
	require.Equal(t, 1, m.Units[target.ID].HP)

	neutralBefore := m.Essence[state.SeatP1].Neutral
	r3, err := ResolveAttack(m, reg, roller.asRoller(), nil, attacker, string(target.ID), AttackMelee)
	require.NoError(t, err)
	require.True(t, r3.Killed)
	_, stillExists := m.Units[target.ID]
	require.False(t, stillExists)
	require.Equal(t, neutralBefore+1, m.Essence[state.SeatP1].Neutral)
}

// Boundary: roll equal to defense misses, one above hits.
func TestResolveAttack_BoundaryRollVsDefense(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r0c0", 1)
	attacker := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP1, TileID: "r0c0", HP: 4}
	require.NoError(t, m.PlaceUnit(attacker, false))
	targetTile := hexboard.Adjacent("r0c0")[0]
	target := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP2, TileID: targetTile, HP: 10}
	require.NoError(t, m.PlaceUnit(target, false))

	roller := scriptedRoller{rolls: []int{5, 6}} // defense is 5
	r1, _ := ResolveAttack(m, reg, roller.asRoller(), nil, attacker, string(target.ID), AttackMelee)
	require.False(t, r1.Hit)
	r2, _ := ResolveAttack(m, reg, roller.asRoller(), nil, attacker, string(target.ID), AttackMelee)
	require.True(t, r2.Hit)
}

func TestResolveAttack_BurnOnHitAbilityAddsDamage(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r0c0", 1)
	hooks := NewEngine()
	RegisterBuiltinHooks(hooks)

	attacker := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "fire_elemental", Owner: state.SeatP1, TileID: "r0c0", HP: 6}
	require.NoError(t, m.PlaceUnit(attacker, false))
	targetTile := hexboard.Adjacent("r0c0")[0]
	target := &state.UnitInstance{ID: m.Minter.Mint(), CardID: "footman", Owner: state.SeatP2, TileID: targetTile, HP: 20}
	require.NoError(t, m.PlaceUnit(target, false))

	card, _ := reg.UnitCard("fire_elemental")
	rollerFixed := scriptedRoller{rolls: []int{9}}
	r, err := ResolveAttack(m, reg, rollerFixed.asRoller(), hooks, attacker, string(target.ID), AttackMelee)
	require.NoError(t, err)
	require.True(t, r.Hit)
	require.Equal(t, card.MeleeAttack+burnOnHitBonus, r.Damage)
}

// S4 — Capture: two attacker units adjacent to an enemy structure with no
// defenders present transfers ownership after the mover's move.
func TestUpdateCapture_S4_CapturesAfterTwoAdjacentAttackers(t *testing.T) {
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r3c3", 1)

	structureID := m.Minter.Mint()
	require.NoError(t, m.PlaceStructure(&state.StructureInstance{ID: structureID, Owner: state.SeatP2, TileID: "r3c3", HP: 10, CaptureThreshold: 2}))

	neighbors := hexboard.Adjacent("r3c3")
	u1 := &state.UnitInstance{ID: m.Minter.Mint(), Owner: state.SeatP1, TileID: neighbors[0], HP: 1}
	require.NoError(t, m.PlaceUnit(u1, false))
	u2 := &state.UnitInstance{ID: m.Minter.Mint(), Owner: state.SeatP1, TileID: neighbors[1], HP: 1}
	require.NoError(t, m.PlaceUnit(u2, false))

	UpdateCapture(m, state.SeatP1)

	require.Equal(t, state.SeatP1, m.Structures[structureID].Owner)
	require.Equal(t, 0, m.Structures[structureID].CaptureProgress)
}

func TestUpdateCapture_DefenderResetsProgress(t *testing.T) {
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r3c3", 1)
	structureID := m.Minter.Mint()
	s := &state.StructureInstance{ID: structureID, Owner: state.SeatP2, TileID: "r3c3", HP: 10, CaptureThreshold: 2, CaptureProgress: 1}
	require.NoError(t, m.PlaceStructure(s))

	neighbors := hexboard.Adjacent("r3c3")
	attacker := &state.UnitInstance{ID: m.Minter.Mint(), Owner: state.SeatP1, TileID: neighbors[0], HP: 1}
	require.NoError(t, m.PlaceUnit(attacker, false))
	defender := &state.UnitInstance{ID: m.Minter.Mint(), Owner: state.SeatP2, TileID: neighbors[1], HP: 1}
	require.NoError(t, m.PlaceUnit(defender, false))

	UpdateCapture(m, state.SeatP1)

	require.Equal(t, 0, m.Structures[structureID].CaptureProgress)
	require.Equal(t, state.SeatP2, m.Structures[structureID].Owner)
}

// S5 — Siege win: 5 enemy units on (empire ∪ adjacent) wins by siege; 4
// does not.
func TestCheckWin_S5_SiegeAtFiveNotFour(t *testing.T) {
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r4c4", 1)
	require.NoError(t, m.PlaceEmpire(state.SeatP1, "r4c4", state.EmpireMaxHP))

	neighbors := hexboard.Adjacent("r4c4")
	for i := 0; i < 4; i++ {
		u := &state.UnitInstance{ID: m.Minter.Mint(), Owner: state.SeatP2, TileID: neighbors[i], HP: 1}
		require.NoError(t, m.PlaceUnit(u, true))
	}
	require.Nil(t, CheckWin(m))

	fifth := &state.UnitInstance{ID: m.Minter.Mint(), Owner: state.SeatP2, TileID: neighbors[4], HP: 1}
	require.NoError(t, m.PlaceUnit(fifth, true))

	result := CheckWin(m)
	require.NotNil(t, result)
	require.Equal(t, state.SeatP2, result.Winner)
	require.Equal(t, state.ReasonSiege, result.Reason)
}

func TestCheckWin_EmpireDestroyedTakesPriority(t *testing.T) {
	m := state.New("m1", 1, "A", "B")
	require.NoError(t, m.AddTile("r0c0", catalog.ElementNeutral))
	require.NoError(t, m.PlaceEmpire(state.SeatP1, "r0c0", 1))
	m.Empires[state.SeatP1].HP = 0

	result := CheckWin(m)
	require.NotNil(t, result)
	require.Equal(t, state.SeatP2, result.Winner)
	require.Equal(t, state.ReasonEmpireDestroyed, result.Reason)
}

func TestApplyBlitzBehavior_DealDamage(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 1, "A", "B")
	require.NoError(t, m.AddTile("r0c0", catalog.ElementNeutral))
	target := &state.UnitInstance{ID: m.Minter.Mint(), Owner: state.SeatP2, TileID: "r0c0", HP: 5}
	require.NoError(t, m.PlaceUnit(target, false))

	require.NoError(t, ApplyBlitzBehavior(m, reg, "deal_damage", string(target.ID)))
	require.Equal(t, 2, m.Units[target.ID].HP)
}

func TestApplyBlitzBehavior_ConvertRegion(t *testing.T) {
	reg := newRegistry(t)
	m := state.New("m1", 1, "A", "B")
	buildTriangleBoard(t, m, "r5c5", 1)

	require.NoError(t, ApplyBlitzBehavior(m, reg, "convert_region_to_water", "r5c5"))

	center, _ := m.Tile("r5c5")
	require.Equal(t, catalog.ElementWater, center.Type)
	for _, id := range hexboard.Adjacent("r5c5") {
		tile, _ := m.Tile(id)
		require.Equal(t, catalog.ElementWater, tile.Type)
	}
}

func TestIsNegationBehavior(t *testing.T) {
	require.True(t, IsNegationBehavior("negate_blitz"))
	require.False(t, IsNegationBehavior("deal_damage"))
}

// scriptedRoller feeds a fixed sequence of attack rolls for deterministic
// tests instead of relying on a particular seed producing a given value.
type scriptedRoller struct {
	rolls []int
	pos   int
}

func (s *scriptedRoller) asRoller() *dice.Roller {
	return dice.NewScriptedRoller(func() int {
		v := s.rolls[s.pos]
		s.pos++
		return v
	})
}
