// Package dispatch is the sole writer of a match's state: the command
// gate. It owns the phase machine, reaction window, development rest
// aging, spawn validity, and fog-of-war reveal logic, and is the only
// package that calls the mutating methods on internal/match/state and
// the resolvers in internal/match/rules.
//
// Commands are discriminated structs dispatched through a phase-gated
// switch, generalized here to a two-seat phase machine with an
// interrupting reaction window.
package dispatch

import (
	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// CommandType identifies the kind of client command.
type CommandType string

const (
	CmdPlaceTile           CommandType = "place_tile"
	CmdEndTilePlacement    CommandType = "end_tile_placement"
	CmdPlaceEmpire         CommandType = "place_empire"
	CmdDrawCard            CommandType = "draw_card"
	CmdMoveUnit            CommandType = "move_unit"
	CmdRequestValidMoves   CommandType = "request_valid_moves"
	CmdMeleeAttack         CommandType = "melee_attack"
	CmdRangedAttack        CommandType = "ranged_attack"
	CmdRequestValidTargets CommandType = "request_valid_targets"
	CmdPlayUnit            CommandType = "play_unit"
	CmdPlayBlitz           CommandType = "play_blitz"
	CmdPlayStructure       CommandType = "play_structure"
	CmdPlaceBuilder        CommandType = "place_builder"
	CmdUseTerraform        CommandType = "use_terraform"
	CmdReactBlitz          CommandType = "react_blitz"
	CmdPassReaction        CommandType = "pass_reaction"
	CmdEndTurn             CommandType = "end_turn"
	CmdConcede             CommandType = "concede"
)

// Command is the discriminated union over every client-originated
// command. Every command names the seat it was issued from; the
// dispatcher never infers seat identity from anything but this field (the
// transport layer is responsible for binding a connection to exactly one
// seat before a command ever reaches here).
type Command interface {
	Type() CommandType
	Seat() state.Seat
}

type PlaceTileCommand struct {
	FromSeat state.Seat
	TileID   string
	TileType catalog.Element
}

func (c PlaceTileCommand) Type() CommandType { return CmdPlaceTile }
func (c PlaceTileCommand) Seat() state.Seat  { return c.FromSeat }

type EndTilePlacementCommand struct {
	FromSeat state.Seat
}

func (c EndTilePlacementCommand) Type() CommandType { return CmdEndTilePlacement }
func (c EndTilePlacementCommand) Seat() state.Seat  { return c.FromSeat }

type PlaceEmpireCommand struct {
	FromSeat state.Seat
	TileID   string
}

func (c PlaceEmpireCommand) Type() CommandType { return CmdPlaceEmpire }
func (c PlaceEmpireCommand) Seat() state.Seat  { return c.FromSeat }

type DrawCardCommand struct {
	FromSeat state.Seat
	Deck     state.DeckKind
}

func (c DrawCardCommand) Type() CommandType { return CmdDrawCard }
func (c DrawCardCommand) Seat() state.Seat  { return c.FromSeat }

type MoveUnitCommand struct {
	FromSeat     state.Seat
	UnitID       string
	TargetTileID string
}

func (c MoveUnitCommand) Type() CommandType { return CmdMoveUnit }
func (c MoveUnitCommand) Seat() state.Seat  { return c.FromSeat }

type RequestValidMovesCommand struct {
	FromSeat state.Seat
	UnitID   string
}

func (c RequestValidMovesCommand) Type() CommandType { return CmdRequestValidMoves }
func (c RequestValidMovesCommand) Seat() state.Seat  { return c.FromSeat }

type MeleeAttackCommand struct {
	FromSeat       state.Seat
	AttackerUnitID string
	TargetID       string
}

func (c MeleeAttackCommand) Type() CommandType { return CmdMeleeAttack }
func (c MeleeAttackCommand) Seat() state.Seat  { return c.FromSeat }

type RangedAttackCommand struct {
	FromSeat       state.Seat
	AttackerUnitID string
	TargetID       string
}

func (c RangedAttackCommand) Type() CommandType { return CmdRangedAttack }
func (c RangedAttackCommand) Seat() state.Seat  { return c.FromSeat }

type RequestValidTargetsCommand struct {
	FromSeat   state.Seat
	UnitID     string
	AttackType string // "melee" | "ranged"
}

func (c RequestValidTargetsCommand) Type() CommandType { return CmdRequestValidTargets }
func (c RequestValidTargetsCommand) Seat() state.Seat  { return c.FromSeat }

type PlayUnitCommand struct {
	FromSeat    state.Seat
	CardID      string
	SpawnTileID string
}

func (c PlayUnitCommand) Type() CommandType { return CmdPlayUnit }
func (c PlayUnitCommand) Seat() state.Seat  { return c.FromSeat }

type PlayBlitzCommand struct {
	FromSeat state.Seat
	CardID   string
	TargetID string // optional; "" if the card has no single target
}

func (c PlayBlitzCommand) Type() CommandType { return CmdPlayBlitz }
func (c PlayBlitzCommand) Seat() state.Seat  { return c.FromSeat }

type PlayStructureCommand struct {
	FromSeat state.Seat
	CardID   string
	TileID   string
}

func (c PlayStructureCommand) Type() CommandType { return CmdPlayStructure }
func (c PlayStructureCommand) Seat() state.Seat  { return c.FromSeat }

type PlaceBuilderCommand struct {
	FromSeat state.Seat
	TileID   string
}

func (c PlaceBuilderCommand) Type() CommandType { return CmdPlaceBuilder }
func (c PlaceBuilderCommand) Seat() state.Seat  { return c.FromSeat }

type UseTerraformCommand struct {
	FromSeat state.Seat
	UnitID   string
}

func (c UseTerraformCommand) Type() CommandType { return CmdUseTerraform }
func (c UseTerraformCommand) Seat() state.Seat  { return c.FromSeat }

type ReactBlitzCommand struct {
	FromSeat state.Seat
	CardID   string
}

func (c ReactBlitzCommand) Type() CommandType { return CmdReactBlitz }
func (c ReactBlitzCommand) Seat() state.Seat  { return c.FromSeat }

type PassReactionCommand struct {
	FromSeat state.Seat
}

func (c PassReactionCommand) Type() CommandType { return CmdPassReaction }
func (c PassReactionCommand) Seat() state.Seat  { return c.FromSeat }

type EndTurnCommand struct {
	FromSeat state.Seat
}

func (c EndTurnCommand) Type() CommandType { return CmdEndTurn }
func (c EndTurnCommand) Seat() state.Seat  { return c.FromSeat }

type ConcedeCommand struct {
	FromSeat state.Seat
}

func (c ConcedeCommand) Type() CommandType { return CmdConcede }
func (c ConcedeCommand) Seat() state.Seat  { return c.FromSeat }
