package rules

import (
	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/hexboard"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// ValidMoves enumerates every tile a unit may move to this turn: within
// its effective speed in hex steps, excluding tiles outside the board,
// tiles with a blocking occupant, and any owned or enemy structure tile.
// A tiny unit may share a tile already holding another unit. A unit that
// has already attacked this turn has no valid moves.
func ValidMoves(m *state.MatchState, reg *catalog.Registry, unit *state.UnitInstance) []string {
	if unit.HasAttacked {
		return nil
	}
	card, ok := reg.UnitCard(unit.CardID)
	if !ok {
		return nil
	}
	tiny := card.Size == catalog.SizeTiny
	speed := unit.EffectiveSpeed(card.Speed)

	var out []string
	for _, id := range hexboard.Neighbors(unit.TileID, speed) {
		tile, ok := m.Tile(id)
		if !ok {
			continue
		}
		if moveBlocked(tile, tiny) {
			continue
		}
		out = append(out, id)
	}
	return out
}

func moveBlocked(tile *state.Tile, moverTiny bool) bool {
	switch tile.Occupant.Kind {
	case state.OccupantNone:
		return false
	case state.OccupantUnit:
		return !moverTiny
	default:
		// Structures, builders, and empire markers always block, whether
		// owned or enemy: "an owned structure's tile is not a valid
		// destination; an enemy structure's tile is not either."
		return true
	}
}
