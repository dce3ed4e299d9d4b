// Package transport is the wire boundary between a match actor and the
// outside world: a JSON envelope codec (this file) plus a gorilla/websocket
// connection pump (conn.go) that decodes inbound frames into
// dispatch.Command values and encodes outbound events back into the same
// envelope shape.
package transport

import (
	"encoding/json"
	"fmt"

	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/match/dispatch"
	"github.com/zerchniv/matchserver/internal/match/events"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// Envelope is the wire shape of every command and event frame:
// {"type": "<string>", "payload": {...}}.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EncodeEvent wraps a dispatcher event in the wire envelope.
func EncodeEvent(e events.Event) (Envelope, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("transport: marshal %s payload: %w", e.Kind, err)
	}
	return Envelope{Type: string(e.Kind), Payload: payload}, nil
}

// DecodeCommand parses an inbound envelope into the matching
// dispatch.Command, binding it to seat. seat comes from the connection's
// own binding (established at handshake time), never from the envelope
// itself, per dispatch.Command's seat-legitimacy contract.
func DecodeCommand(seat state.Seat, env Envelope) (dispatch.Command, error) {
	switch dispatch.CommandType(env.Type) {
	case dispatch.CmdPlaceTile:
		var p struct {
			TileID   string          `json:"tileId"`
			TileType catalog.Element `json:"tileType"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.PlaceTileCommand{FromSeat: seat, TileID: p.TileID, TileType: p.TileType}, nil

	case dispatch.CmdEndTilePlacement:
		return dispatch.EndTilePlacementCommand{FromSeat: seat}, nil

	case dispatch.CmdPlaceEmpire:
		var p struct {
			TileID string `json:"tileId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.PlaceEmpireCommand{FromSeat: seat, TileID: p.TileID}, nil

	case dispatch.CmdDrawCard:
		var p struct {
			Deck state.DeckKind `json:"deck"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.DrawCardCommand{FromSeat: seat, Deck: p.Deck}, nil

	case dispatch.CmdMoveUnit:
		var p struct {
			UnitID       string `json:"unitId"`
			TargetTileID string `json:"targetTileId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.MoveUnitCommand{FromSeat: seat, UnitID: p.UnitID, TargetTileID: p.TargetTileID}, nil

	case dispatch.CmdRequestValidMoves:
		var p struct {
			UnitID string `json:"unitId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.RequestValidMovesCommand{FromSeat: seat, UnitID: p.UnitID}, nil

	case dispatch.CmdMeleeAttack:
		var p struct {
			AttackerUnitID string `json:"attackerUnitId"`
			TargetID       string `json:"targetId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.MeleeAttackCommand{FromSeat: seat, AttackerUnitID: p.AttackerUnitID, TargetID: p.TargetID}, nil

	case dispatch.CmdRangedAttack:
		var p struct {
			AttackerUnitID string `json:"attackerUnitId"`
			TargetID       string `json:"targetId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.RangedAttackCommand{FromSeat: seat, AttackerUnitID: p.AttackerUnitID, TargetID: p.TargetID}, nil

	case dispatch.CmdRequestValidTargets:
		var p struct {
			UnitID     string `json:"unitId"`
			AttackType string `json:"attackType"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.RequestValidTargetsCommand{FromSeat: seat, UnitID: p.UnitID, AttackType: p.AttackType}, nil

	case dispatch.CmdPlayUnit:
		var p struct {
			CardID      string `json:"cardId"`
			SpawnTileID string `json:"spawnTileId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.PlayUnitCommand{FromSeat: seat, CardID: p.CardID, SpawnTileID: p.SpawnTileID}, nil

	case dispatch.CmdPlayBlitz:
		var p struct {
			CardID   string `json:"cardId"`
			TargetID string `json:"targetId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.PlayBlitzCommand{FromSeat: seat, CardID: p.CardID, TargetID: p.TargetID}, nil

	case dispatch.CmdPlayStructure:
		var p struct {
			CardID string `json:"cardId"`
			TileID string `json:"tileId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.PlayStructureCommand{FromSeat: seat, CardID: p.CardID, TileID: p.TileID}, nil

	case dispatch.CmdPlaceBuilder:
		var p struct {
			TileID string `json:"tileId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.PlaceBuilderCommand{FromSeat: seat, TileID: p.TileID}, nil

	case dispatch.CmdUseTerraform:
		var p struct {
			UnitID string `json:"unitId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.UseTerraformCommand{FromSeat: seat, UnitID: p.UnitID}, nil

	case dispatch.CmdReactBlitz:
		var p struct {
			CardID string `json:"cardId"`
		}
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return dispatch.ReactBlitzCommand{FromSeat: seat, CardID: p.CardID}, nil

	case dispatch.CmdPassReaction:
		return dispatch.PassReactionCommand{FromSeat: seat}, nil

	case dispatch.CmdEndTurn:
		return dispatch.EndTurnCommand{FromSeat: seat}, nil

	case dispatch.CmdConcede:
		return dispatch.ConcedeCommand{FromSeat: seat}, nil

	default:
		return nil, fmt.Errorf("transport: unknown command type %q", env.Type)
	}
}

func unmarshal(env Envelope, v any) error {
	if len(env.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("transport: decode %s payload: %w", env.Type, err)
	}
	return nil
}
