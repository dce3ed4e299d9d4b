package state

import "github.com/zerchniv/matchserver/internal/catalog"

// OccupantKind discriminates what, if anything, sits on a tile.
type OccupantKind string

const (
	OccupantNone      OccupantKind = ""
	OccupantUnit      OccupantKind = "unit"
	OccupantStructure OccupantKind = "structure"
	OccupantBuilder   OccupantKind = "builder"
	OccupantEmpire    OccupantKind = "empire"
)

// Occupant names the single instance occupying a tile. Tiny units are the
// one exception to "at most one occupant": they are tracked in
// SharedUnits instead of Occupant so a tile can hold a normal-or-larger
// occupant plus any number of tiny units.
type Occupant struct {
	Kind OccupantKind
	ID   InstanceID
}

// Tile is one hex cell. Tiles are created during tile placement and never
// destroyed, only re-typed (Terraform, Hurricane).
type Tile struct {
	ID       TileID
	Type     catalog.Element
	Revealed bool
	Occupant Occupant

	// SharedUnits holds tiny-unit instance ids sharing this tile in
	// addition to (or instead of) Occupant. A tile may hold at most one
	// non-tiny occupant plus any number of tiny units.
	SharedUnits []InstanceID
}

// IsOccupied reports whether the tile has any non-tiny occupant.
func (t *Tile) IsOccupied() bool {
	return t.Occupant.Kind != OccupantNone
}

// AllOccupantUnitIDs returns every unit instance id on this tile,
// including tiny units sharing the tile with another occupant.
func (t *Tile) AllOccupantUnitIDs() []InstanceID {
	var ids []InstanceID
	if t.Occupant.Kind == OccupantUnit {
		ids = append(ids, t.Occupant.ID)
	}
	ids = append(ids, t.SharedUnits...)
	return ids
}
