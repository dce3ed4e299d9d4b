package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zerchniv/matchserver/internal/catalog"
)

func newTestMatch(t *testing.T) *MatchState {
	t.Helper()
	m := New("match-1", 42, "Alice", "Bob")
	require.NoError(t, m.AddTile("r0c0", catalog.ElementNeutral))
	require.NoError(t, m.AddTile("r0c1", catalog.ElementFire))
	return m
}

func TestPlaceUnit_SetsTileBackPointer(t *testing.T) {
	m := newTestMatch(t)
	id := m.Minter.Mint()
	u := &UnitInstance{ID: id, CardID: "footman", Owner: SeatP1, TileID: "r0c0", HP: 4}
	require.NoError(t, m.PlaceUnit(u, false))

	tile, ok := m.Tile("r0c0")
	require.True(t, ok)
	require.Equal(t, OccupantUnit, tile.Occupant.Kind)
	require.Equal(t, id, tile.Occupant.ID)
}

func TestPlaceUnit_RejectsOccupiedTile(t *testing.T) {
	m := newTestMatch(t)
	u1 := &UnitInstance{ID: m.Minter.Mint(), Owner: SeatP1, TileID: "r0c0", HP: 1}
	require.NoError(t, m.PlaceUnit(u1, false))

	u2 := &UnitInstance{ID: m.Minter.Mint(), Owner: SeatP2, TileID: "r0c0", HP: 1}
	require.Error(t, m.PlaceUnit(u2, false))
}

func TestPlaceUnit_TinyUnitsShareTile(t *testing.T) {
	m := newTestMatch(t)
	u1 := &UnitInstance{ID: m.Minter.Mint(), Owner: SeatP1, TileID: "r0c0", HP: 1}
	require.NoError(t, m.PlaceUnit(u1, true))
	u2 := &UnitInstance{ID: m.Minter.Mint(), Owner: SeatP2, TileID: "r0c0", HP: 1}
	require.NoError(t, m.PlaceUnit(u2, true))

	tile, _ := m.Tile("r0c0")
	require.Len(t, tile.SharedUnits, 2)
	require.Len(t, tile.AllOccupantUnitIDs(), 2)
}

func TestRemoveUnit_ClearsBackPointer(t *testing.T) {
	m := newTestMatch(t)
	id := m.Minter.Mint()
	u := &UnitInstance{ID: id, Owner: SeatP1, TileID: "r0c0", HP: 1}
	require.NoError(t, m.PlaceUnit(u, false))

	m.RemoveUnit(id)

	tile, _ := m.Tile("r0c0")
	require.Equal(t, OccupantNone, tile.Occupant.Kind)
	_, exists := m.Units[id]
	require.False(t, exists)
}

func TestMoveUnit_UpdatesBothTiles(t *testing.T) {
	m := newTestMatch(t)
	id := m.Minter.Mint()
	u := &UnitInstance{ID: id, Owner: SeatP1, TileID: "r0c0", HP: 1}
	require.NoError(t, m.PlaceUnit(u, false))

	require.NoError(t, m.MoveUnit(id, "r0c1", false))

	origin, _ := m.Tile("r0c0")
	dest, _ := m.Tile("r0c1")
	require.Equal(t, OccupantNone, origin.Occupant.Kind)
	require.Equal(t, id, dest.Occupant.ID)
	require.Equal(t, TileID("r0c1"), m.Units[id].TileID)
}

func TestPlaceStructure_CaptureAndTransfer(t *testing.T) {
	m := newTestMatch(t)
	id := m.Minter.Mint()
	s := &StructureInstance{ID: id, Owner: SeatP2, TileID: "r0c1", HP: 10, CaptureThreshold: 2}
	require.NoError(t, m.PlaceStructure(s))

	s.CaptureProgress = 2
	m.TransferStructure(id, SeatP1)

	require.Equal(t, SeatP1, m.Structures[id].Owner)
	require.Equal(t, 0, m.Structures[id].CaptureProgress)
}

func TestPlaceBuilder_RejectsNeutralTile(t *testing.T) {
	m := newTestMatch(t)
	b := &BuilderInstance{ID: m.Minter.Mint(), Owner: SeatP1, TileID: "r0c0"}
	require.Error(t, m.PlaceBuilder(b))

	b2 := &BuilderInstance{ID: m.Minter.Mint(), Owner: SeatP1, TileID: "r0c1"}
	require.NoError(t, m.PlaceBuilder(b2))
}

func TestPlaceEmpire_SetsPlacedAndHP(t *testing.T) {
	m := newTestMatch(t)
	require.NoError(t, m.PlaceEmpire(SeatP1, "r0c0", EmpireMaxHP))

	e := m.Empires[SeatP1]
	require.True(t, e.Placed)
	require.Equal(t, EmpireMaxHP, e.HP)

	tile, _ := m.Tile("r0c0")
	require.Equal(t, OccupantEmpire, tile.Occupant.Kind)
}

func TestIDMinter_DeterministicAcrossInstances(t *testing.T) {
	m1 := NewIDMinter("match-1", 7)
	m2 := NewIDMinter("match-1", 7)
	require.Equal(t, m1.Mint(), m2.Mint())
	require.Equal(t, m1.Mint(), m2.Mint())
}

func TestIDMinter_DiffersAcrossMatches(t *testing.T) {
	m1 := NewIDMinter("match-1", 7)
	m2 := NewIDMinter("match-2", 7)
	require.NotEqual(t, m1.Mint(), m2.Mint())
}

func TestUnitsOnTiles_CollectsSharedAndSolo(t *testing.T) {
	m := newTestMatch(t)
	solo := &UnitInstance{ID: m.Minter.Mint(), Owner: SeatP1, TileID: "r0c0", HP: 1}
	require.NoError(t, m.PlaceUnit(solo, false))

	tiny := &UnitInstance{ID: m.Minter.Mint(), Owner: SeatP2, TileID: "r0c1", HP: 1}
	require.NoError(t, m.PlaceUnit(tiny, true))

	units := m.UnitsOnTiles([]TileID{"r0c0", "r0c1"})
	require.Len(t, units, 2)
}

func TestEssencePool_BucketAndTotal(t *testing.T) {
	p := EssencePool{Neutral: 1, Fire: 2, Water: 3}
	require.Equal(t, 2, p.Bucket(catalog.ElementFire))
	require.Equal(t, 1, p.Bucket(catalog.ElementNeutral))
	require.Equal(t, 6, p.Total())
}

func TestPlayer_DrawAndHand(t *testing.T) {
	p := &Player{UnitDeck: []string{"a", "b"}}
	card, ok := p.DrawTop(DeckUnit)
	require.True(t, ok)
	require.Equal(t, "a", card)
	require.Len(t, p.UnitDeck, 1)

	p.Hand = append(p.Hand, card)
	require.True(t, p.HasInHand("a"))
	require.True(t, p.RemoveFromHand("a"))
	require.False(t, p.HasInHand("a"))
}
