package rules

import (
	"fmt"

	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/match/state"
	"github.com/zerchniv/matchserver/pkg/dice"
)

// AttackKind discriminates melee from ranged attack resolution.
type AttackKind string

const (
	AttackMelee  AttackKind = "melee"
	AttackRanged AttackKind = "ranged"
)

// AttackResult reports the outcome of one resolved attack.
type AttackResult struct {
	AttackerID string
	TargetID   string
	Roll       int
	Defense    int
	Hit        bool
	Damage     int
	Killed     bool
}

// ResolveAttack rolls a uniform [1,10] attack die, compares it against the
// target's defense, and applies damage on a hit. Empires and structures
// have no defense and are always hit. On a unit kill, the attacker's
// owner is credited with +1 neutral essence. hooks may be nil; if given,
// BeforeAttack and AfterAttack are evaluated against the attacker's
// ability id so card abilities like burn_on_hit take effect; the target's
// ability is not passed to the hooks.
func ResolveAttack(m *state.MatchState, reg *catalog.Registry, roller *dice.Roller, hooks *Engine, attacker *state.UnitInstance, targetID string, kind AttackKind) (AttackResult, error) {
	attackerCard, ok := reg.UnitCard(attacker.CardID)
	if !ok {
		return AttackResult{}, fmt.Errorf("rules: unknown attacker card %q", attacker.CardID)
	}

	result := AttackResult{AttackerID: string(attacker.ID), TargetID: targetID}

	targetUnit, isUnit := m.Units[state.InstanceID(targetID)]
	targetStructure, isStructure := m.Structures[state.InstanceID(targetID)]

	var mods Modifiers
	if hooks != nil {
		ctx := &Context{ActorID: string(attacker.ID), ActorAbility: attackerCard.Ability, TargetID: targetID}
		hooks.Evaluate(BeforeAttack, ctx)
		mods = ctx.Modifiers
	}

	switch {
	case isUnit:
		targetCard, ok := reg.UnitCard(targetUnit.CardID)
		if !ok {
			return AttackResult{}, fmt.Errorf("rules: unknown target card %q", targetUnit.CardID)
		}
		result.Defense = targetUnit.EffectiveDefense(targetCard.Defense) + mods.DefenseMod
		result.Roll = roller.RollAttack()
		result.Hit = result.Roll > result.Defense
	case isStructure || isEmpireToken(targetID):
		result.Defense = 0
		result.Roll = 10
		result.Hit = true
	default:
		return AttackResult{}, fmt.Errorf("rules: unknown target %q", targetID)
	}

	if !result.Hit {
		return result, nil
	}

	if kind == AttackMelee {
		result.Damage = attacker.EffectiveMelee(attackerCard.MeleeAttack) + mods.MeleeMod
	} else {
		result.Damage = attackerCard.RangedAttack + mods.RangedMod
	}

	if hooks != nil {
		ctx := &Context{ActorID: string(attacker.ID), ActorAbility: attackerCard.Ability, TargetID: targetID}
		hooks.Evaluate(AfterAttack, ctx)
		result.Damage += ctx.Modifiers.DamageMod
	}

	switch {
	case isUnit:
		targetUnit.HP -= result.Damage
		if targetUnit.IsDestroyed() {
			result.Killed = true
			m.RemoveUnit(targetUnit.ID)
			m.Essence[attacker.Owner].Neutral++
		}
	case isStructure:
		targetStructure.HP -= result.Damage
		if targetStructure.IsDestroyed() {
			result.Killed = true
			m.RemoveStructure(targetStructure.ID)
		}
	default:
		// Empire: damage is tracked on the Empire record directly by the
		// caller via ApplyEmpireDamage, since ResolveAttack has no seat
		// context to look the empire up by token alone.
	}

	return result, nil
}

// ApplyEmpireDamage deducts damage from the empire owning targetID (an
// "empire:{seat}" token) and reports whether it dropped to or below zero.
func ApplyEmpireDamage(m *state.MatchState, targetID string, damage int) (destroyed bool, err error) {
	seat, ok := seatFromEmpireToken(targetID)
	if !ok {
		return false, fmt.Errorf("rules: %q is not an empire token", targetID)
	}
	empire := m.Empires[seat]
	empire.HP -= damage
	return empire.IsDestroyed(), nil
}

func isEmpireToken(id string) bool {
	_, ok := seatFromEmpireToken(id)
	return ok
}

func seatFromEmpireToken(id string) (state.Seat, bool) {
	if id == state.EmpireTarget(state.SeatP1) {
		return state.SeatP1, true
	}
	if id == state.EmpireTarget(state.SeatP2) {
		return state.SeatP2, true
	}
	return "", false
}
