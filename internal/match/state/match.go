// Package state defines the Match State: the single authoritative,
// in-memory record of a match in progress. Every entity cross-references
// its peers by id only, never by direct pointer to a sibling map's entry;
// the MatchState (and, above it, the command dispatcher) is the one place
// that keeps both sides of a tile/instance relationship consistent.
package state

import (
	"fmt"

	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/matchlog"
)

// MatchState is the full authoritative snapshot of one match. Every field
// the rules engine and command dispatcher read or write lives here.
// Consumers outside the dispatcher must treat it as a read-only snapshot.
type MatchState struct {
	ID string

	Players    map[Seat]*Player
	Tiles      map[TileID]*Tile
	Units      map[InstanceID]*UnitInstance
	Structures map[InstanceID]*StructureInstance
	Builders   map[InstanceID]*BuilderInstance
	Empires    map[Seat]*Empire
	Essence    map[Seat]*EssencePool

	CurrentPhase Phase
	ActiveSeat   Seat
	FirstSeat    Seat // seat that acts first each round; set once, at the first Standby
	RoundNumber  int
	Result       *GameResult
	Reaction     ReactionWindow

	Log    *matchlog.Log
	Minter *IDMinter
}

// New creates an empty match state for the given match id and rng seed,
// with both seats registered and nothing else populated (tiles are added
// during SETUP_TILES). The round number starts at 1; the active seat is
// set by the caller once seat order is decided (e.g. by a priority roll).
func New(matchID string, seed int64, p1Name, p2Name string) *MatchState {
	return &MatchState{
		ID: matchID,
		Players: map[Seat]*Player{
			SeatP1: {Seat: SeatP1, DisplayName: p1Name},
			SeatP2: {Seat: SeatP2, DisplayName: p2Name},
		},
		Tiles:      make(map[TileID]*Tile),
		Units:      make(map[InstanceID]*UnitInstance),
		Structures: make(map[InstanceID]*StructureInstance),
		Builders:   make(map[InstanceID]*BuilderInstance),
		Empires: map[Seat]*Empire{
			SeatP1: {Owner: SeatP1},
			SeatP2: {Owner: SeatP2},
		},
		Essence: map[Seat]*EssencePool{
			SeatP1: {},
			SeatP2: {},
		},
		CurrentPhase: PhaseSetupTiles,
		RoundNumber:  1,
		Log:          &matchlog.Log{},
		Minter:       NewIDMinter(matchID, seed),
	}
}

// Tile returns the tile with the given id, or false if it does not exist.
func (m *MatchState) Tile(id TileID) (*Tile, bool) {
	t, ok := m.Tiles[id]
	return t, ok
}

// AddTile registers a new tile during SETUP_TILES. Returns an error if the
// tile already exists.
func (m *MatchState) AddTile(id TileID, elem catalog.Element) error {
	if _, exists := m.Tiles[id]; exists {
		return fmt.Errorf("state: tile %s already placed", id)
	}
	m.Tiles[id] = &Tile{ID: id, Type: elem}
	return nil
}

// RevealTile marks a tile as revealed. Revealed tiles stay revealed for
// the rest of the match; calling this on an already-revealed tile is a
// no-op.
func (m *MatchState) RevealTile(id TileID) {
	if t, ok := m.Tiles[id]; ok {
		t.Revealed = true
	}
}

// PlaceUnit registers a new unit instance and sets the tile back-pointer.
// tiny selects whether the unit is added as a shared occupant (permitted
// to coexist with another occupant) or as the tile's sole Occupant.
func (m *MatchState) PlaceUnit(u *UnitInstance, tiny bool) error {
	tile, ok := m.Tiles[u.TileID]
	if !ok {
		return fmt.Errorf("state: unknown tile %s", u.TileID)
	}
	if tiny {
		tile.SharedUnits = append(tile.SharedUnits, u.ID)
	} else {
		if tile.IsOccupied() {
			return fmt.Errorf("state: tile %s already occupied", u.TileID)
		}
		tile.Occupant = Occupant{Kind: OccupantUnit, ID: u.ID}
	}
	m.Units[u.ID] = u
	return nil
}

// RemoveUnit deletes a unit instance (destroyed in combat, or otherwise
// leaving play) and clears its tile back-pointer.
func (m *MatchState) RemoveUnit(id InstanceID) {
	u, ok := m.Units[id]
	if !ok {
		return
	}
	if tile, ok := m.Tiles[u.TileID]; ok {
		if tile.Occupant.Kind == OccupantUnit && tile.Occupant.ID == id {
			tile.Occupant = Occupant{}
		}
		tile.SharedUnits = removeID(tile.SharedUnits, id)
	}
	delete(m.Units, id)
}

// MoveUnit relocates a unit instance to a new tile, updating both tiles'
// back-pointers. tiny has the same meaning as in PlaceUnit and must match
// how the unit was originally placed.
func (m *MatchState) MoveUnit(id InstanceID, dest TileID, tiny bool) error {
	u, ok := m.Units[id]
	if !ok {
		return fmt.Errorf("state: unknown unit %s", id)
	}
	destTile, ok := m.Tiles[dest]
	if !ok {
		return fmt.Errorf("state: unknown tile %s", dest)
	}
	if !tiny && destTile.IsOccupied() {
		return fmt.Errorf("state: tile %s already occupied", dest)
	}

	if origin, ok := m.Tiles[u.TileID]; ok {
		if origin.Occupant.Kind == OccupantUnit && origin.Occupant.ID == id {
			origin.Occupant = Occupant{}
		}
		origin.SharedUnits = removeID(origin.SharedUnits, id)
	}

	if tiny {
		destTile.SharedUnits = append(destTile.SharedUnits, id)
	} else {
		destTile.Occupant = Occupant{Kind: OccupantUnit, ID: id}
	}
	u.TileID = dest
	return nil
}

// PlaceStructure registers a new structure instance on its tile.
func (m *MatchState) PlaceStructure(s *StructureInstance) error {
	tile, ok := m.Tiles[s.TileID]
	if !ok {
		return fmt.Errorf("state: unknown tile %s", s.TileID)
	}
	if tile.IsOccupied() {
		return fmt.Errorf("state: tile %s already occupied", s.TileID)
	}
	tile.Occupant = Occupant{Kind: OccupantStructure, ID: s.ID}
	m.Structures[s.ID] = s
	return nil
}

// RemoveStructure deletes a structure instance (destroyed at 0 hp) and
// clears its tile back-pointer.
func (m *MatchState) RemoveStructure(id InstanceID) {
	s, ok := m.Structures[id]
	if !ok {
		return
	}
	if tile, ok := m.Tiles[s.TileID]; ok && tile.Occupant.Kind == OccupantStructure && tile.Occupant.ID == id {
		tile.Occupant = Occupant{}
	}
	delete(m.Structures, id)
}

// TransferStructure changes a structure's owner on capture, resetting its
// progress. The tile back-pointer is unaffected: the structure stays put.
func (m *MatchState) TransferStructure(id InstanceID, newOwner Seat) {
	if s, ok := m.Structures[id]; ok {
		s.Owner = newOwner
		s.CaptureProgress = 0
	}
}

// PlaceBuilder registers a new builder instance on an elemental tile.
func (m *MatchState) PlaceBuilder(b *BuilderInstance) error {
	tile, ok := m.Tiles[b.TileID]
	if !ok {
		return fmt.Errorf("state: unknown tile %s", b.TileID)
	}
	if tile.Type == catalog.ElementNeutral {
		return fmt.Errorf("state: tile %s is not elemental", b.TileID)
	}
	if tile.IsOccupied() {
		return fmt.Errorf("state: tile %s already occupied", b.TileID)
	}
	tile.Occupant = Occupant{Kind: OccupantBuilder, ID: b.ID}
	m.Builders[b.ID] = b
	return nil
}

// PlaceEmpire sets a seat's empire on its starting tile. Each seat places
// exactly once during SETUP_EMPIRE.
func (m *MatchState) PlaceEmpire(seat Seat, tileID TileID, hp int) error {
	tile, ok := m.Tiles[tileID]
	if !ok {
		return fmt.Errorf("state: unknown tile %s", tileID)
	}
	if tile.IsOccupied() {
		return fmt.Errorf("state: tile %s already occupied", tileID)
	}
	tile.Occupant = Occupant{Kind: OccupantEmpire, ID: InstanceID(EmpireTarget(seat))}
	e := m.Empires[seat]
	e.TileID = tileID
	e.HP = hp
	e.Placed = true
	return nil
}

// UnitsOwnedBy returns every live unit instance belonging to seat.
func (m *MatchState) UnitsOwnedBy(seat Seat) []*UnitInstance {
	var out []*UnitInstance
	for _, u := range m.Units {
		if u.Owner == seat {
			out = append(out, u)
		}
	}
	return out
}

// StructuresOwnedBy returns every structure instance belonging to seat.
func (m *MatchState) StructuresOwnedBy(seat Seat) []*StructureInstance {
	var out []*StructureInstance
	for _, s := range m.Structures {
		if s.Owner == seat {
			out = append(out, s)
		}
	}
	return out
}

// BuildersOwnedBy returns every builder instance belonging to seat.
func (m *MatchState) BuildersOwnedBy(seat Seat) []*BuilderInstance {
	var out []*BuilderInstance
	for _, b := range m.Builders {
		if b.Owner == seat {
			out = append(out, b)
		}
	}
	return out
}

// UnitsOnTiles returns every unit instance occupying any of the given
// tiles, tiny-shared units included.
func (m *MatchState) UnitsOnTiles(tileIDs []TileID) []*UnitInstance {
	var out []*UnitInstance
	for _, tid := range tileIDs {
		tile, ok := m.Tiles[tid]
		if !ok {
			continue
		}
		for _, uid := range tile.AllOccupantUnitIDs() {
			if u, ok := m.Units[uid]; ok {
				out = append(out, u)
			}
		}
	}
	return out
}

func removeID(ids []InstanceID, target InstanceID) []InstanceID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
