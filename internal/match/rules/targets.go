package rules

import (
	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/hexboard"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// ValidMeleeTargets returns the instance/empire-token ids of every enemy
// unit, enemy structure, or enemy empire marker adjacent to unit. A unit
// under development rest, or one that has already attacked this turn, has
// no valid targets.
func ValidMeleeTargets(m *state.MatchState, unit *state.UnitInstance) []string {
	if unit.DevelopmentRest || unit.HasAttacked {
		return nil
	}
	var out []string
	for _, id := range hexboard.Adjacent(unit.TileID) {
		tile, ok := m.Tile(id)
		if !ok {
			continue
		}
		if isEnemyTarget(m, tile, unit.Owner) {
			out = append(out, string(tile.Occupant.ID))
		}
	}
	return out
}

// ValidRangedTargets returns the same candidate set as ValidMeleeTargets
// but over the card's rangedRange, excluding units flagged
// CannotBeRangedTargeted. A unit with rangedRange=0 has no ranged targets.
func ValidRangedTargets(m *state.MatchState, reg *catalog.Registry, unit *state.UnitInstance) []string {
	if unit.DevelopmentRest || unit.HasAttacked {
		return nil
	}
	card, ok := reg.UnitCard(unit.CardID)
	if !ok || card.RangedRange <= 0 {
		return nil
	}
	var out []string
	for _, id := range hexboard.Neighbors(unit.TileID, card.RangedRange) {
		tile, ok := m.Tile(id)
		if !ok {
			continue
		}
		if !isEnemyTarget(m, tile, unit.Owner) {
			continue
		}
		if tile.Occupant.Kind == state.OccupantUnit {
			if target, ok := m.Units[tile.Occupant.ID]; ok && target.CannotBeRangedTargeted {
				continue
			}
		}
		out = append(out, string(tile.Occupant.ID))
	}
	return out
}

// isEnemyTarget reports whether tile's occupant is an enemy unit,
// structure, or empire marker relative to owner.
func isEnemyTarget(m *state.MatchState, tile *state.Tile, owner state.Seat) bool {
	switch tile.Occupant.Kind {
	case state.OccupantUnit:
		u, ok := m.Units[tile.Occupant.ID]
		return ok && u.Owner != owner
	case state.OccupantStructure:
		s, ok := m.Structures[tile.Occupant.ID]
		return ok && s.Owner != owner
	case state.OccupantEmpire:
		return tile.Occupant.ID != state.InstanceID(state.EmpireTarget(owner))
	default:
		return false
	}
}
