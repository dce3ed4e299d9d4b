package rules

import (
	"fmt"

	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/hexboard"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// Fixed bonus damage granted by the burn_on_hit unit ability.
const burnOnHitBonus = 1

// RegisterBuiltinHooks wires the fixed set of unit-ability ids the engine
// understands into hook-engine triggers. Call once per match, against a
// fresh Engine from NewEngine.
//
// Not every card ability needs a hook: a standing, always-on flag like
// cannot_be_ranged_targeted is set directly on the UnitInstance at deploy
// time (see NewUnitInstance) rather than evaluated per-attack. Hooks are
// for abilities that must react to a trigger point with state it doesn't
// otherwise have, like adding bonus damage after a hit lands.
func RegisterBuiltinHooks(e *Engine) {
	e.Register(Hook{
		AbilityID: "burn_on_hit",
		Trigger:   AfterAttack,
		Condition: func(ctx *Context) bool { return ctx.ActorAbility == "burn_on_hit" },
		Apply: func(ctx *Context) {
			ctx.Modifiers.DamageMod += burnOnHitBonus
		},
	})
}

// NewUnitInstance builds a UnitInstance from a catalog card, applying any
// standing ability flags the card carries (currently just
// cannot_be_ranged_targeted).
func NewUnitInstance(id state.InstanceID, card catalog.UnitCard, owner state.Seat, tileID state.TileID) *state.UnitInstance {
	return &state.UnitInstance{
		ID:                     id,
		CardID:                 card.ID(),
		Owner:                  owner,
		TileID:                 tileID,
		HP:                     card.HP,
		CannotBeRangedTargeted: card.Ability == "cannot_be_ranged_targeted",
	}
}

// Fixed damage dealt by the fireball-style deal_damage blitz behavior.
const blitzDealDamage = 3

// IsNegationBehavior reports whether a blitz's behavior id negates the
// blitz it is played in reaction to, rather than applying its own effect
// to the board.
func IsNegationBehavior(behaviorID string) bool {
	return behaviorID == "negate_blitz"
}

// ApplyBlitzBehavior applies a resolved (non-negated) blitz's effect to
// the match. Called once the reaction window has closed (see DESIGN.md
// for the deferred-application decision behind this timing). negate_blitz
// never reaches here: the dispatcher checks
// IsNegationBehavior before a pending blitz resolves and skips this call
// entirely when the reaction negated it.
func ApplyBlitzBehavior(m *state.MatchState, reg *catalog.Registry, behaviorID, targetID string) error {
	switch behaviorID {
	case "deal_damage":
		return applyDealDamage(m, targetID)
	case "convert_region_to_water":
		return applyConvertRegion(m, targetID, catalog.ElementWater)
	case "negate_blitz":
		return nil // handled by the dispatcher before resolution
	default:
		return fmt.Errorf("rules: unknown blitz behavior %q", behaviorID)
	}
}

func applyDealDamage(m *state.MatchState, targetID string) error {
	if u, ok := m.Units[state.InstanceID(targetID)]; ok {
		u.HP -= blitzDealDamage
		if u.IsDestroyed() {
			m.RemoveUnit(u.ID)
			m.Essence[u.Owner.Opponent()].Neutral++
		}
		return nil
	}
	if s, ok := m.Structures[state.InstanceID(targetID)]; ok {
		s.HP -= blitzDealDamage
		if s.IsDestroyed() {
			m.RemoveStructure(s.ID)
		}
		return nil
	}
	if isEmpireToken(targetID) {
		_, err := ApplyEmpireDamage(m, targetID, blitzDealDamage)
		return err
	}
	return fmt.Errorf("rules: unknown blitz target %q", targetID)
}

// applyConvertRegion re-types every tile within one step of targetID (a
// tile id) to elem. Tiles are never destroyed, only re-typed.
func applyConvertRegion(m *state.MatchState, targetTileID string, elem catalog.Element) error {
	tile, ok := m.Tile(targetTileID)
	if !ok {
		return fmt.Errorf("rules: unknown tile %q", targetTileID)
	}
	tile.Type = elem
	for _, id := range hexboard.Adjacent(targetTileID) {
		if t, ok := m.Tile(id); ok {
			t.Type = elem
		}
	}
	return nil
}
