package state

import (
	"fmt"

	"github.com/google/uuid"
)

// TileID is "r{row}c{col}", minted by internal/hexboard.ID. Kept as a plain
// string type here so the state package does not import hexboard just for
// a type alias.
type TileID = string

// InstanceID is an opaque instance identifier (unit, structure, or
// builder). Ids only need to be opaque strings, monotonic within the
// match; IDMinter produces uuid v5 ids derived from the match seed, so a
// match replayed with the same seed mints the same ids in the same order
// without sharing a mutable counter across match actors.
type InstanceID string

// EmpireTarget is the special "empire:{seat}" id used as an attack target
// token rather than a minted instance id.
func EmpireTarget(seat Seat) string {
	return fmt.Sprintf("empire:%s", seat)
}

var instanceNamespace = uuid.MustParse("8f14e45f-ceea-467e-bd3c-ee04a9e8a77b")

// IDMinter mints deterministic, match-scoped instance ids. Construct one
// per match, seeded with the match's own random seed.
type IDMinter struct {
	matchNS uuid.UUID
	next    int
}

// NewIDMinter derives a per-match id namespace from matchID and seed so
// that two matches never mint colliding ids and a single match's ids are
// reproducible given its seed.
func NewIDMinter(matchID string, seed int64) *IDMinter {
	name := fmt.Sprintf("%s:%d", matchID, seed)
	return &IDMinter{matchNS: uuid.NewSHA1(instanceNamespace, []byte(name))}
}

// Mint returns the next instance id in this match's deterministic sequence.
func (m *IDMinter) Mint() InstanceID {
	name := fmt.Sprintf("%d", m.next)
	m.next++
	return InstanceID(uuid.NewSHA1(m.matchNS, []byte(name)).String())
}
