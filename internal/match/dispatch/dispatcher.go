package dispatch

import (
	"fmt"

	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/hexboard"
	"github.com/zerchniv/matchserver/internal/match/events"
	"github.com/zerchniv/matchserver/internal/match/rules"
	"github.com/zerchniv/matchserver/internal/match/state"
	"github.com/zerchniv/matchserver/pkg/dice"
)

// Dispatcher is the sole writer of one match's state: every command for
// that match passes through Dispatch, in order, from one goroutine (the
// match actor owns that serialization; Dispatcher itself holds no lock).
// It runs each command through this game's phase machine plus an
// interrupting reaction window.
type Dispatcher struct {
	State   *state.MatchState
	Catalog *catalog.Registry
	Roller  *dice.Roller
	Hooks   *rules.Engine
}

// NewDispatcher builds a dispatcher over an existing match state. hooks
// should already have RegisterBuiltinHooks applied.
func NewDispatcher(m *state.MatchState, reg *catalog.Registry, roller *dice.Roller, hooks *rules.Engine) *Dispatcher {
	return &Dispatcher{State: m, Catalog: reg, Roller: roller, Hooks: hooks}
}

// GameStart emits the opening event sequence, before any command has been
// dispatched. The match actor calls it as soon as its Run loop starts.
func (d *Dispatcher) GameStart() []events.Event {
	names := make(map[state.Seat]string, len(d.State.Players))
	for seat, p := range d.State.Players {
		names[seat] = p.DisplayName
	}
	evts := []events.Event{events.ToBoth(events.KindGameStart, events.GameStartPayload{MatchID: d.State.ID, Seats: names})}
	return append(evts, d.stateUpdates()...)
}

// Dispatch runs cmd through a six-step gate: seat legitimacy, reaction
// window, info commands, phase gate, rule validation, and
// apply+log+emit. A nil return means the command was silently dropped
// (a protocol or seat/phase failure); a rule-violation failure instead
// returns a single private error event.
func (d *Dispatcher) Dispatch(cmd Command) []events.Event {
	if d.State.Result != nil {
		return nil
	}

	seat := cmd.Seat()
	if _, ok := d.State.Players[seat]; !ok {
		return nil
	}

	if d.State.Reaction.Open {
		switch c := cmd.(type) {
		case ReactBlitzCommand:
			if seat != d.State.Reaction.ReactingSeat {
				return nil
			}
			return d.handleReactBlitz(c)
		case PassReactionCommand:
			if seat != d.State.Reaction.ReactingSeat {
				return nil
			}
			return d.resolvePending("", false)
		default:
			return nil
		}
	}

	switch c := cmd.(type) {
	case RequestValidMovesCommand:
		return d.handleRequestValidMoves(c)
	case RequestValidTargetsCommand:
		return d.handleRequestValidTargets(c)
	}

	if !isPhaseCommandAllowed(d.State.CurrentPhase, cmd.Type()) {
		return nil
	}
	if cmd.Type() != CmdConcede && d.State.CurrentPhase != state.PhaseSetupEmpire && seat != d.State.ActiveSeat {
		return nil
	}

	var result []events.Event
	var err error
	switch c := cmd.(type) {
	case PlaceTileCommand:
		result, err = d.handlePlaceTile(c)
	case EndTilePlacementCommand:
		result, err = d.handleEndTilePlacement(c)
	case PlaceEmpireCommand:
		result, err = d.handlePlaceEmpire(c)
	case DrawCardCommand:
		result, err = d.handleDrawCard(c)
	case MoveUnitCommand:
		result, err = d.handleMoveUnit(c)
	case MeleeAttackCommand:
		result, err = d.handleAttack(c.FromSeat, c.AttackerUnitID, c.TargetID, rules.AttackMelee)
	case RangedAttackCommand:
		result, err = d.handleAttack(c.FromSeat, c.AttackerUnitID, c.TargetID, rules.AttackRanged)
	case PlayUnitCommand:
		result, err = d.handlePlayUnit(c)
	case PlayBlitzCommand:
		result, err = d.handlePlayBlitz(c)
	case PlayStructureCommand:
		result, err = d.handlePlayStructure(c)
	case PlaceBuilderCommand:
		result, err = d.handlePlaceBuilder(c)
	case UseTerraformCommand:
		result, err = d.handleUseTerraform(c)
	case EndTurnCommand:
		result, err = d.handleEndTurn(c)
	case ConcedeCommand:
		result, err = d.handleConcede(c)
	default:
		return nil
	}

	if err != nil {
		return []events.Event{events.ToSeat(seat, events.KindError, events.ErrorPayload{Code: "rule_violation", Message: err.Error()})}
	}
	d.State.Log.Append(d.State.RoundNumber, fmt.Sprintf("%s: %s", seat, cmd.Type()))
	return result
}

func (d *Dispatcher) handlePlaceTile(c PlaceTileCommand) ([]events.Event, error) {
	p := d.State.Players[c.FromSeat]
	if p.TilesRemaining <= 0 {
		return nil, fmt.Errorf("no tiles remaining to place")
	}
	if err := d.State.AddTile(c.TileID, c.TileType); err != nil {
		return nil, err
	}
	p.TilesRemaining--
	return d.stateUpdates(), nil
}

func (d *Dispatcher) handleEndTilePlacement(c EndTilePlacementCommand) ([]events.Event, error) {
	p := d.State.Players[c.FromSeat]
	p.EndedTilePlacement = true
	other := d.State.Players[c.FromSeat.Opponent()]

	if other.EndedTilePlacement {
		d.State.CurrentPhase = state.PhaseSetupEmpire
	} else {
		d.State.ActiveSeat = c.FromSeat.Opponent()
	}
	evts := []events.Event{d.phaseChangeEvent()}
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handlePlaceEmpire(c PlaceEmpireCommand) ([]events.Event, error) {
	p := d.State.Players[c.FromSeat]
	if p.EmpirePlaced {
		return nil, fmt.Errorf("empire already placed")
	}
	if err := d.State.PlaceEmpire(c.FromSeat, c.TileID, state.EmpireMaxHP); err != nil {
		return nil, err
	}
	p.EmpirePlaced = true
	evts := d.reveal(c.TileID)

	other := d.State.Players[c.FromSeat.Opponent()]
	if !other.EmpirePlaced {
		return append(evts, d.stateUpdates()...), nil
	}

	first := c.FromSeat
	if d.Roller.Intn(2) == 1 {
		first = c.FromSeat.Opponent()
	}
	evts = append(evts, d.enterStandby(first)...)
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handleDrawCard(c DrawCardCommand) ([]events.Event, error) {
	p := d.State.Players[c.FromSeat]
	cardID, ok := p.DrawTop(c.Deck)
	if !ok {
		return nil, fmt.Errorf("%s deck is empty", c.Deck)
	}
	p.Hand = append(p.Hand, cardID)
	evts := []events.Event{events.ToSeat(c.FromSeat, events.KindDrawResult, events.DrawResultPayload{Seat: c.FromSeat, Deck: c.Deck, CardID: cardID})}
	evts = append(evts, d.enterMain()...)
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handleMoveUnit(c MoveUnitCommand) ([]events.Event, error) {
	unit, ok := d.State.Units[state.InstanceID(c.UnitID)]
	if !ok || unit.Owner != c.FromSeat {
		return nil, fmt.Errorf("unknown unit %q", c.UnitID)
	}
	if unit.DevelopmentRest {
		return nil, fmt.Errorf("unit %q is resting after deployment", c.UnitID)
	}
	if !contains(rules.ValidMoves(d.State, d.Catalog, unit), c.TargetTileID) {
		return nil, fmt.Errorf("tile %q is not a valid destination for unit %q", c.TargetTileID, c.UnitID)
	}

	card, _ := d.Catalog.UnitCard(unit.CardID)
	tiny := card.Size == catalog.SizeTiny
	if err := d.State.MoveUnit(unit.ID, c.TargetTileID, tiny); err != nil {
		return nil, err
	}
	unit.HasMoved = true

	evts := d.reveal(c.TargetTileID)
	rules.UpdateCapture(d.State, c.FromSeat)
	evts = append(evts, d.captureEvents()...)

	if result := rules.CheckWin(d.State); result != nil {
		return append(evts, d.gameOver(*result)...), nil
	}
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handleRequestValidMoves(c RequestValidMovesCommand) []events.Event {
	var tiles []string
	if unit, ok := d.State.Units[state.InstanceID(c.UnitID)]; ok {
		tiles = rules.ValidMoves(d.State, d.Catalog, unit)
	}
	return []events.Event{events.ToSeat(c.FromSeat, events.KindValidMoves, events.ValidMovesPayload{UnitID: c.UnitID, TileIDs: tiles})}
}

func (d *Dispatcher) handleRequestValidTargets(c RequestValidTargetsCommand) []events.Event {
	var targets []string
	if unit, ok := d.State.Units[state.InstanceID(c.UnitID)]; ok {
		if c.AttackType == "ranged" {
			targets = rules.ValidRangedTargets(d.State, d.Catalog, unit)
		} else {
			targets = rules.ValidMeleeTargets(d.State, unit)
		}
	}
	return []events.Event{events.ToSeat(c.FromSeat, events.KindValidTargets, events.ValidTargetsPayload{UnitID: c.UnitID, AttackType: c.AttackType, TargetIDs: targets})}
}

func (d *Dispatcher) handleAttack(seat state.Seat, attackerID, targetID string, kind rules.AttackKind) ([]events.Event, error) {
	unit, ok := d.State.Units[state.InstanceID(attackerID)]
	if !ok || unit.Owner != seat {
		return nil, fmt.Errorf("unknown unit %q", attackerID)
	}
	if unit.DevelopmentRest || unit.HasAttacked {
		return nil, fmt.Errorf("unit %q cannot attack this turn", attackerID)
	}

	var valid []string
	if kind == rules.AttackRanged {
		valid = rules.ValidRangedTargets(d.State, d.Catalog, unit)
	} else {
		valid = rules.ValidMeleeTargets(d.State, unit)
	}
	if !contains(valid, targetID) {
		return nil, fmt.Errorf("target %q is not valid", targetID)
	}

	result, err := rules.ResolveAttack(d.State, d.Catalog, d.Roller, d.Hooks, unit, targetID, kind)
	if err != nil {
		return nil, err
	}
	unit.HasAttacked = true

	if isEmpireTarget(targetID) && result.Hit {
		if _, err := rules.ApplyEmpireDamage(d.State, targetID, result.Damage); err != nil {
			return nil, err
		}
	}

	evts := []events.Event{events.ToBoth(events.KindCombatResult, events.CombatResultPayload{
		AttackerID: result.AttackerID, TargetID: result.TargetID, Roll: result.Roll,
		Defense: result.Defense, Hit: result.Hit, Damage: result.Damage, Killed: result.Killed,
	})}

	if result.Killed {
		evts = append(evts, d.essenceEvent(seat))
	}
	if result := rules.CheckWin(d.State); result != nil {
		return append(evts, d.gameOver(*result)...), nil
	}
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handlePlayUnit(c PlayUnitCommand) ([]events.Event, error) {
	p := d.State.Players[c.FromSeat]
	if !p.HasInHand(c.CardID) {
		return nil, fmt.Errorf("card %q not in hand", c.CardID)
	}
	card, ok := d.Catalog.UnitCard(c.CardID)
	if !ok {
		return nil, fmt.Errorf("card %q is not a unit", c.CardID)
	}
	pool := d.State.Essence[c.FromSeat]
	if !rules.CanAfford(*pool, card.Cost(), card.CostElement()) {
		return nil, fmt.Errorf("insufficient essence for %q", c.CardID)
	}
	if !d.isValidSpawnTile(c.FromSeat, c.SpawnTileID) {
		return nil, fmt.Errorf("tile %q is not a valid spawn point", c.SpawnTileID)
	}
	if err := rules.Spend(pool, card.Cost(), card.CostElement()); err != nil {
		return nil, err
	}
	p.RemoveFromHand(c.CardID)

	id := d.State.Minter.Mint()
	unit := rules.NewUnitInstance(id, card, c.FromSeat, c.SpawnTileID)
	unit.DevelopmentRest = d.State.RoundNumber > state.FirstPlayerNoDevRestRounds
	if err := d.State.PlaceUnit(unit, card.Size == catalog.SizeTiny); err != nil {
		return nil, err
	}

	evts := d.reveal(c.SpawnTileID)
	evts = append(evts, d.essenceEvent(c.FromSeat))
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handlePlayBlitz(c PlayBlitzCommand) ([]events.Event, error) {
	p := d.State.Players[c.FromSeat]
	if !p.HasInHand(c.CardID) {
		return nil, fmt.Errorf("card %q not in hand", c.CardID)
	}
	card, ok := d.Catalog.BlitzCard(c.CardID)
	if !ok {
		return nil, fmt.Errorf("card %q is not a blitz", c.CardID)
	}
	if card.Timing == catalog.TimingReaction {
		return nil, fmt.Errorf("card %q can only be played in reaction", c.CardID)
	}
	pool := d.State.Essence[c.FromSeat]
	if !rules.CanAfford(*pool, card.Cost(), card.CostElement()) {
		return nil, fmt.Errorf("insufficient essence for %q", c.CardID)
	}
	if err := rules.Spend(pool, card.Cost(), card.CostElement()); err != nil {
		return nil, err
	}
	p.RemoveFromHand(c.CardID)

	d.State.Reaction = state.ReactionWindow{
		Open:         true,
		ReactingSeat: c.FromSeat.Opponent(),
		Pending:      &state.PendingBlitz{CardID: c.CardID, PlayedBy: c.FromSeat, TargetID: c.TargetID},
	}

	evts := []events.Event{events.ToBoth(events.KindBlitzPlayed, events.BlitzPlayedPayload{CardID: c.CardID, PlayedBy: c.FromSeat, TargetID: c.TargetID})}
	evts = append(evts, d.essenceEvent(c.FromSeat))
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handleReactBlitz(c ReactBlitzCommand) []events.Event {
	p := d.State.Players[c.FromSeat]
	if !p.HasInHand(c.CardID) {
		return []events.Event{events.ToSeat(c.FromSeat, events.KindError, events.ErrorPayload{Code: "rule_violation", Message: fmt.Sprintf("card %q not in hand", c.CardID)})}
	}
	card, ok := d.Catalog.BlitzCard(c.CardID)
	if !ok || card.Timing != catalog.TimingReaction {
		return []events.Event{events.ToSeat(c.FromSeat, events.KindError, events.ErrorPayload{Code: "rule_violation", Message: fmt.Sprintf("card %q cannot be played in reaction", c.CardID)})}
	}
	pool := d.State.Essence[c.FromSeat]
	if err := rules.Spend(pool, card.Cost(), card.CostElement()); err != nil {
		return []events.Event{events.ToSeat(c.FromSeat, events.KindError, events.ErrorPayload{Code: "rule_violation", Message: err.Error()})}
	}
	p.RemoveFromHand(c.CardID)
	return d.resolvePending(c.CardID, true)
}

// resolvePending closes the open reaction window. reacted is false for a
// pass_reaction; true for a react_blitz, in which case reactionCardID
// names the reaction-timed blitz just played against the pending one.
func (d *Dispatcher) resolvePending(reactionCardID string, reacted bool) []events.Event {
	pending := d.State.Reaction.Pending
	d.State.Reaction = state.ReactionWindow{}
	if pending == nil {
		return d.stateUpdates()
	}

	negated := false
	reactingTo := ""
	if reacted {
		reactingTo = pending.CardID
		pending.ReactionCardID = reactionCardID
		reactCard, _ := d.Catalog.BlitzCard(reactionCardID)
		if rules.IsNegationBehavior(reactCard.BehaviorID) {
			negated = true
			pending.Negated = true
		}
	}

	evts := []events.Event{events.ToBoth(events.KindBlitzPlayed, events.BlitzPlayedPayload{
		CardID: pending.CardID, PlayedBy: pending.PlayedBy, TargetID: pending.TargetID,
		Negated: negated, ReactingTo: reactingTo,
	})}

	if !negated {
		originalCard, _ := d.Catalog.BlitzCard(pending.CardID)
		if err := rules.ApplyBlitzBehavior(d.State, d.Catalog, originalCard.BehaviorID, pending.TargetID); err != nil {
			evts = append(evts, events.ToSeat(pending.PlayedBy, events.KindError, events.ErrorPayload{Code: "invariant_breach", Message: err.Error()}))
		} else if originalCard.BehaviorID == "convert_region_to_water" {
			var retyped []string
			for _, id := range append([]string{pending.TargetID}, hexboard.Adjacent(pending.TargetID)...) {
				if _, ok := d.State.Tile(id); ok {
					retyped = append(retyped, id)
				}
			}
			evts = append(evts, events.ToBoth(events.KindStormUpdate, events.StormUpdatePayload{
				TileIDs: retyped,
				Type:    string(catalog.ElementWater),
			}))
		}
	}

	if result := rules.CheckWin(d.State); result != nil {
		return append(evts, d.gameOver(*result)...)
	}
	return append(evts, d.stateUpdates()...)
}

func (d *Dispatcher) handlePlayStructure(c PlayStructureCommand) ([]events.Event, error) {
	p := d.State.Players[c.FromSeat]
	if !p.HasInHand(c.CardID) {
		return nil, fmt.Errorf("card %q not in hand", c.CardID)
	}
	card, ok := d.Catalog.StructureCard(c.CardID)
	if !ok {
		return nil, fmt.Errorf("card %q is not a structure", c.CardID)
	}
	tile, ok := d.State.Tile(c.TileID)
	if !ok || tile.IsOccupied() {
		return nil, fmt.Errorf("tile %q is not a valid structure site", c.TileID)
	}
	if card.PlacementElement != catalog.ElementNeutral && tile.Type != card.PlacementElement {
		return nil, fmt.Errorf("tile %q does not have the required element", c.TileID)
	}
	pool := d.State.Essence[c.FromSeat]
	if !rules.CanAfford(*pool, card.Cost(), card.CostElement()) {
		return nil, fmt.Errorf("insufficient essence for %q", c.CardID)
	}
	if err := rules.Spend(pool, card.Cost(), card.CostElement()); err != nil {
		return nil, err
	}
	p.RemoveFromHand(c.CardID)

	s := &state.StructureInstance{
		ID: d.State.Minter.Mint(), CardID: c.CardID, Owner: c.FromSeat, TileID: c.TileID,
		HP: card.HP, CaptureThreshold: card.CaptureThreshold,
	}
	if err := d.State.PlaceStructure(s); err != nil {
		return nil, err
	}

	evts := d.reveal(c.TileID)
	evts = append(evts, d.essenceEvent(c.FromSeat))
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handlePlaceBuilder(c PlaceBuilderCommand) ([]events.Event, error) {
	b := &state.BuilderInstance{ID: d.State.Minter.Mint(), Owner: c.FromSeat, TileID: c.TileID}
	if err := d.State.PlaceBuilder(b); err != nil {
		return nil, err
	}
	evts := d.reveal(c.TileID)
	evts = append(evts, d.essenceEvent(c.FromSeat))
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handleUseTerraform(c UseTerraformCommand) ([]events.Event, error) {
	unit, ok := d.State.Units[state.InstanceID(c.UnitID)]
	if !ok || unit.Owner != c.FromSeat {
		return nil, fmt.Errorf("unknown unit %q", c.UnitID)
	}
	if unit.TerraformUsed {
		return nil, fmt.Errorf("unit %q has already used terraform", c.UnitID)
	}
	card, ok := d.Catalog.UnitCard(unit.CardID)
	if !ok || card.Ability != "terraform" {
		return nil, fmt.Errorf("unit %q cannot terraform", c.UnitID)
	}
	tile, ok := d.State.Tile(unit.TileID)
	if !ok || tile.Type == catalog.ElementNeutral {
		return nil, fmt.Errorf("tile %q is not elemental", unit.TileID)
	}

	tile.Type = catalog.ElementNeutral
	unit.TerraformUsed = true
	return d.stateUpdates(), nil
}

func (d *Dispatcher) handleEndTurn(c EndTurnCommand) ([]events.Event, error) {
	d.State.CurrentPhase = state.PhaseEnd
	evts := []events.Event{d.phaseChangeEvent()}
	evts = append(evts, d.enterStandby(c.FromSeat.Opponent())...)
	return append(evts, d.stateUpdates()...), nil
}

func (d *Dispatcher) handleConcede(c ConcedeCommand) ([]events.Event, error) {
	return d.gameOver(state.GameResult{Winner: c.FromSeat.Opponent(), Reason: state.ReasonConcede}), nil
}

// Timeout ends the match because the match actor's idle timer fired with
// no command received from either seat. The seat on the clock forfeits by
// inaction; its opponent is recorded as the winner. Called by the match
// actor, never reachable from a client command.
func (d *Dispatcher) Timeout() []events.Event {
	if d.State.Result != nil {
		return nil
	}
	return d.gameOver(state.GameResult{Winner: d.State.ActiveSeat.Opponent(), Reason: state.ReasonTimeout})
}

// enterStandby performs the engine-immediate STANDBY work (recalculate
// essence, clear per-turn flags, clear development rest) for seat, then
// immediately advances to DRAW: STANDBY never waits for a client
// command. The round counter increments only
// when the seat now entering Standby is not the match's first-to-act
// seat, matching the transition table's "other seat is second-to-act
// this round" condition literally.
func (d *Dispatcher) enterStandby(seat state.Seat) []events.Event {
	if d.State.FirstSeat == "" {
		d.State.FirstSeat = seat
	} else if seat != d.State.FirstSeat {
		d.State.RoundNumber++
	}

	d.State.ActiveSeat = seat
	d.State.CurrentPhase = state.PhaseStandby
	rules.Recalculate(d.State, seat)
	for _, u := range d.State.UnitsOwnedBy(seat) {
		u.ResetTurnFlags()
		u.DevelopmentRest = false
	}

	evts := []events.Event{d.phaseChangeEvent(), d.essenceEvent(seat)}
	return append(evts, d.phaseChangeEventForDraw())
}

func (d *Dispatcher) phaseChangeEventForDraw() events.Event {
	d.State.CurrentPhase = state.PhaseDraw
	return d.phaseChangeEvent()
}

// enterMain advances DRAW -> MAIN, the one remaining engine-immediate step
// a player triggers themselves by drawing.
func (d *Dispatcher) enterMain() []events.Event {
	d.State.CurrentPhase = state.PhaseMain
	return []events.Event{d.phaseChangeEvent()}
}

func (d *Dispatcher) isValidSpawnTile(seat state.Seat, tileID string) bool {
	tile, ok := d.State.Tile(tileID)
	if !ok || tile.IsOccupied() {
		return false
	}
	empire := d.State.Empires[seat]
	if empire.Placed && (tileID == empire.TileID || contains(hexboard.Adjacent(empire.TileID), tileID)) {
		return true
	}
	for _, s := range d.State.StructuresOwnedBy(seat) {
		if tileID == s.TileID || contains(hexboard.Adjacent(s.TileID), tileID) {
			return true
		}
	}
	return false
}

func (d *Dispatcher) reveal(tileID string) []events.Event {
	tile, ok := d.State.Tile(tileID)
	if !ok || tile.Revealed {
		return nil
	}
	d.State.RevealTile(tileID)
	return []events.Event{events.ToBoth(events.KindFogReveal, events.FogRevealPayload{TileID: tileID, Type: string(tile.Type)})}
}

func (d *Dispatcher) captureEvents() []events.Event {
	var evts []events.Event
	for _, s := range d.State.Structures {
		evts = append(evts, events.ToBoth(events.KindCaptureUpdate, events.CaptureUpdatePayload{
			StructureID: string(s.ID), Owner: s.Owner, Progress: s.CaptureProgress, Threshold: s.CaptureThreshold,
		}))
	}
	return evts
}

func (d *Dispatcher) phaseChangeEvent() events.Event {
	return events.ToBoth(events.KindPhaseChange, events.PhaseChangePayload{
		Phase: d.State.CurrentPhase, ActiveSeat: d.State.ActiveSeat, RoundNumber: d.State.RoundNumber,
	})
}

func (d *Dispatcher) essenceEvent(seat state.Seat) events.Event {
	return events.ToBoth(events.KindEssenceUpdate, events.EssenceUpdatePayload{Seat: seat, Pool: *d.State.Essence[seat]})
}

func (d *Dispatcher) gameOver(result state.GameResult) []events.Event {
	d.State.Result = &result
	evts := d.stateUpdates()
	return append(evts, events.ToBoth(events.KindGameOver, events.GameOverPayload{Winner: result.Winner, Reason: result.Reason}))
}

func (d *Dispatcher) stateUpdates() []events.Event {
	return []events.Event{
		events.ToSeat(state.SeatP1, events.KindStateUpdate, events.BuildStateView(d.State, state.SeatP1)),
		events.ToSeat(state.SeatP2, events.KindStateUpdate, events.BuildStateView(d.State, state.SeatP2)),
	}
}

func isEmpireTarget(id string) bool {
	return id == state.EmpireTarget(state.SeatP1) || id == state.EmpireTarget(state.SeatP2)
}

func contains(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
