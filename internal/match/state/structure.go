package state

// StructureInstance is a live, owned, capturable structure on the board.
type StructureInstance struct {
	ID               InstanceID
	CardID           string
	Owner            Seat
	TileID           TileID
	HP               int
	CaptureProgress  int
	CaptureThreshold int
}

// IsDestroyed reports whether the structure's hp has dropped to or below
// zero.
func (s *StructureInstance) IsDestroyed() bool {
	return s.HP <= 0
}

// BuilderInstance is a seat-owned marker on an elemental tile, granting
// +1 essence of that tile's element per the owner's Standby.
type BuilderInstance struct {
	ID     InstanceID
	Owner  Seat
	TileID TileID
}

// Empire is a seat's primary board piece: hp-bearing and the principal
// win target. Exactly one exists per seat once setup completes.
type Empire struct {
	Owner  Seat
	TileID TileID
	HP     int
	Placed bool
}

// IsDestroyed reports whether the empire's hp has dropped to or below
// zero, which ends the match.
func (e *Empire) IsDestroyed() bool {
	return e.HP <= 0
}

const (
	// EmpireMaxHP is the empire's starting and maximum hp.
	EmpireMaxHP = 20
	// StructureMaxHP is the maximum hp for any structure instance.
	StructureMaxHP = 10
	// SiegeThreshold is the number of enemy units on (empire ∪ adjacent)
	// that triggers a siege win for the attacker.
	SiegeThreshold = 5
)
