// Package events defines the per-match event stream emitted by the
// command dispatcher: the fixed set of event kinds, their payload
// shapes, and the seat-filtered fan-out that strips hidden information
// before a payload reaches a recipient.
package events

import "github.com/zerchniv/matchserver/internal/match/state"

// Kind names one of the fixed event kinds the dispatcher may emit. All
// events are server -> client.
type Kind string

const (
	KindGameStart     Kind = "game_start"
	KindStateUpdate   Kind = "state_update"
	KindValidMoves    Kind = "valid_moves"
	KindValidTargets  Kind = "valid_targets"
	KindCombatResult  Kind = "combat_result"
	KindBlitzPlayed   Kind = "blitz_played"
	KindStormUpdate   Kind = "storm_update"
	KindFogReveal     Kind = "fog_reveal"
	KindDrawResult    Kind = "draw_result"
	KindPhaseChange   Kind = "phase_change"
	KindEssenceUpdate Kind = "essence_update"
	KindCaptureUpdate Kind = "capture_update"
	KindSiegeUpdate   Kind = "siege_update"
	KindChatMessage   Kind = "chat_message"
	KindPlayerLeft    Kind = "player_left"
	KindError         Kind = "error"
	KindGameOver      Kind = "game_over"
)

// Event is one emitted event. A zero Seat with Broadcast set means
// deliver the same payload to both seated players, with no further
// filtering; a private event carries Seat and Broadcast=false.
// Seat-filtered state views from BuildStateView travel as private events.
type Event struct {
	Kind      Kind
	Broadcast bool
	Seat      state.Seat // recipient when Broadcast is false
	Payload   any
}

// ToSeat builds a private event addressed to one seat.
func ToSeat(seat state.Seat, kind Kind, payload any) Event {
	return Event{Kind: kind, Seat: seat, Payload: payload}
}

// ToBoth builds an event broadcast to both seated players.
func ToBoth(kind Kind, payload any) Event {
	return Event{Kind: kind, Broadcast: true, Payload: payload}
}

// ErrorPayload is the private payload of a KindError event: a
// rule-violation failure reported to the originating seat only.
type ErrorPayload struct {
	Code    string
	Message string
}

// CombatResultPayload mirrors rules.AttackResult for the wire.
type CombatResultPayload struct {
	AttackerID string
	TargetID   string
	Roll       int
	Defense    int
	Hit        bool
	Damage     int
	Killed     bool
}

// DrawResultPayload reports a successful draw_card to the drawing seat
// only; the opponent only ever learns the drawer's hand/deck size moved,
// via a state_update.
type DrawResultPayload struct {
	Seat   state.Seat
	Deck   state.DeckKind
	CardID string
}

// PhaseChangePayload reports a phase machine transition.
type PhaseChangePayload struct {
	Phase       state.Phase
	ActiveSeat  state.Seat
	RoundNumber int
}

// EssenceUpdatePayload reports one seat's recalculated essence pool.
type EssenceUpdatePayload struct {
	Seat state.Seat
	Pool state.EssencePool
}

// CaptureUpdatePayload reports a structure's capture progress after
// rules.UpdateCapture runs.
type CaptureUpdatePayload struct {
	StructureID string
	Owner       state.Seat
	Progress    int
	Threshold   int
}

// SiegeUpdatePayload reports the live enemy-unit count threatening a
// seat's empire, so clients can render a siege warning before the
// threshold is actually reached.
type SiegeUpdatePayload struct {
	Seat       state.Seat
	EnemyCount int
	Threshold  int
}

// FogRevealPayload names a tile that just became revealed and its type.
type FogRevealPayload struct {
	TileID string
	Type   string
}

// BlitzPlayedPayload announces a blitz entering a reaction window, or
// (once resolved) its final outcome.
type BlitzPlayedPayload struct {
	CardID     string
	PlayedBy   state.Seat
	TargetID   string
	Negated    bool
	ReactingTo string // set when this event reports a react_blitz reply
}

// StormUpdatePayload reports tiles re-typed by a region-wide blitz effect
// (e.g. the hurricane card's convert_region_to_water behavior) — the
// "storm" in storm_update is any blitz effect that reshapes terrain
// rather than damaging a target directly.
type StormUpdatePayload struct {
	TileIDs []string
	Type    string
}

// GameStartPayload is the first event any seat receives.
type GameStartPayload struct {
	MatchID string
	Seats   map[state.Seat]string // seat -> display name
}

// GameOverPayload is the terminal event; the match closes after it.
type GameOverPayload struct {
	Winner state.Seat
	Reason state.WinReason
}

// ValidMovesPayload answers a request_valid_moves command.
type ValidMovesPayload struct {
	UnitID  string
	TileIDs []string
}

// ValidTargetsPayload answers a request_valid_targets command.
type ValidTargetsPayload struct {
	UnitID     string
	AttackType string
	TargetIDs  []string
}

// ChatMessagePayload is relayed between seats only, never stored.
type ChatMessagePayload struct {
	Seat    state.Seat
	Message string
}

// PlayerLeftPayload announces a disconnect entering its reconnection
// window.
type PlayerLeftPayload struct {
	Seat state.Seat
}
