package rules

import (
	"github.com/zerchniv/matchserver/internal/hexboard"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// CheckWin evaluates the two win conditions after any state-mutating
// command: empire destruction and siege (five or more enemy units on the
// empire tile plus its six neighbors). Returns nil if the match continues.
// Empire destruction is checked before siege so a simultaneous destruction
// and siege count as empire_destroyed.
func CheckWin(m *state.MatchState) *state.GameResult {
	seats := []state.Seat{state.SeatP1, state.SeatP2}

	for _, seat := range seats {
		empire := m.Empires[seat]
		if empire.Placed && empire.IsDestroyed() {
			return &state.GameResult{Winner: seat.Opponent(), Reason: state.ReasonEmpireDestroyed}
		}
	}

	for _, seat := range seats {
		empire := m.Empires[seat]
		if !empire.Placed {
			continue
		}
		tiles := append([]string{empire.TileID}, hexboard.Adjacent(empire.TileID)...)
		enemyCount := 0
		for _, u := range m.UnitsOnTiles(tiles) {
			if u.Owner != seat {
				enemyCount++
			}
		}
		if enemyCount >= state.SiegeThreshold {
			return &state.GameResult{Winner: seat.Opponent(), Reason: state.ReasonSiege}
		}
	}

	return nil
}
