package rules

import (
	"github.com/zerchniv/matchserver/internal/hexboard"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// UpdateCapture recomputes capture progress on every structure the mover
// does not own, after a move by mover. For each such structure, it counts
// mover-owned units and structure-owner-owned units among the structure's
// six neighbor tiles; a defender present resets progress to zero,
// otherwise two or more attackers add 2 progress and exactly one adds 1.
// Reaching the structure's capture threshold transfers ownership to mover
// and resets progress.
func UpdateCapture(m *state.MatchState, mover state.Seat) {
	for _, s := range m.Structures {
		if s.Owner == mover {
			continue
		}
		neighbors := hexboard.Adjacent(s.TileID)
		units := m.UnitsOnTiles(neighbors)

		nearbyEnemies, nearbyDefenders := 0, 0
		for _, u := range units {
			switch u.Owner {
			case mover:
				nearbyEnemies++
			case s.Owner:
				nearbyDefenders++
			}
		}

		if nearbyDefenders > 0 {
			s.CaptureProgress = 0
			continue
		}
		switch {
		case nearbyEnemies >= 2:
			s.CaptureProgress += 2
		case nearbyEnemies == 1:
			s.CaptureProgress++
		}

		if s.CaptureProgress >= s.CaptureThreshold {
			m.TransferStructure(s.ID, mover)
		}
	}
}
