package events

import "github.com/zerchniv/matchserver/internal/match/state"

// TileView is one hex cell as seen by viewer. An unrevealed tile's type
// and occupant are withheld: neither seat sees the exact contents of an
// unrevealed tile; a revealed tile is shown in full to both seats, since
// fog of war hides tiles, not combatants once spotted.
type TileView struct {
	ID         string
	Revealed   bool
	Type       string // "" if unrevealed
	OccupantID string // "" if unrevealed or empty
}

// UnitView is one live unit as seen by viewer.
type UnitView struct {
	ID              string
	CardID          string
	Owner           state.Seat
	TileID          string
	HP              int
	DevelopmentRest bool
}

// StructureView is one live structure as seen by viewer.
type StructureView struct {
	ID              string
	CardID          string
	Owner           state.Seat
	TileID          string
	HP              int
	CaptureProgress int
}

// BuilderView is one live builder marker.
type BuilderView struct {
	ID     string
	Owner  state.Seat
	TileID string
}

// EmpireView is one seat's empire token.
type EmpireView struct {
	Owner  state.Seat
	TileID string
	HP     int
	Placed bool
}

// PlayerView is one seat's player-facing state. A viewer sees their own
// hand in full; the opponent's hand is reduced to a count, since neither
// seat sees the exact cards in the other's hand, though deck and discard
// sizes are visible to both.
type PlayerView struct {
	Seat           state.Seat
	DisplayName    string
	Hand           []string // full contents for self, nil for opponent
	HandSize       int
	UnitDeckSize   int
	BlitzDeckSize  int
	StructDeckSize int
	DiscardSize    int
}

// StateView is the full redacted snapshot delivered as a state_update
// payload: a MatchState as viewer is entitled to see it.
type StateView struct {
	MatchID      string
	CurrentPhase state.Phase
	ActiveSeat   state.Seat
	RoundNumber  int

	Tiles      []TileView
	Units      []UnitView
	Structures []StructureView
	Builders   []BuilderView
	Empires    map[state.Seat]EmpireView
	Essence    map[state.Seat]state.EssencePool
	Players    map[state.Seat]PlayerView
}

// BuildStateView renders m from viewer's perspective: viewer's own hand
// in full, the opponent's hand collapsed to a size, and unrevealed tiles
// (and whatever sits on them) withheld.
func BuildStateView(m *state.MatchState, viewer state.Seat) StateView {
	view := StateView{
		MatchID:      m.ID,
		CurrentPhase: m.CurrentPhase,
		ActiveSeat:   m.ActiveSeat,
		RoundNumber:  m.RoundNumber,
		Empires:      make(map[state.Seat]EmpireView, len(m.Empires)),
		Essence:      make(map[state.Seat]state.EssencePool, len(m.Essence)),
		Players:      make(map[state.Seat]PlayerView, len(m.Players)),
	}

	for id, t := range m.Tiles {
		tv := TileView{ID: id, Revealed: t.Revealed}
		if t.Revealed {
			tv.Type = string(t.Type)
			tv.OccupantID = string(t.Occupant.ID)
		}
		view.Tiles = append(view.Tiles, tv)
	}

	for _, u := range m.Units {
		if !tileVisible(m, u.TileID) {
			continue
		}
		view.Units = append(view.Units, UnitView{
			ID: string(u.ID), CardID: u.CardID, Owner: u.Owner, TileID: u.TileID,
			HP: u.HP, DevelopmentRest: u.DevelopmentRest,
		})
	}

	for _, s := range m.Structures {
		if !tileVisible(m, s.TileID) {
			continue
		}
		view.Structures = append(view.Structures, StructureView{
			ID: string(s.ID), CardID: s.CardID, Owner: s.Owner, TileID: s.TileID,
			HP: s.HP, CaptureProgress: s.CaptureProgress,
		})
	}

	for _, b := range m.Builders {
		if !tileVisible(m, b.TileID) {
			continue
		}
		view.Builders = append(view.Builders, BuilderView{ID: string(b.ID), Owner: b.Owner, TileID: b.TileID})
	}

	for seat, e := range m.Empires {
		view.Empires[seat] = EmpireView{Owner: e.Owner, TileID: e.TileID, HP: e.HP, Placed: e.Placed}
	}

	for seat, pool := range m.Essence {
		view.Essence[seat] = *pool
	}

	for seat, p := range m.Players {
		pv := PlayerView{
			Seat: seat, DisplayName: p.DisplayName,
			HandSize: len(p.Hand), UnitDeckSize: len(p.UnitDeck), BlitzDeckSize: len(p.BlitzDeck),
			StructDeckSize: len(p.StructureDeck), DiscardSize: len(p.Discard),
		}
		if seat == viewer {
			pv.Hand = append([]string(nil), p.Hand...)
		}
		view.Players[seat] = pv
	}

	return view
}

func tileVisible(m *state.MatchState, tileID state.TileID) bool {
	t, ok := m.Tiles[tileID]
	return ok && t.Revealed
}
