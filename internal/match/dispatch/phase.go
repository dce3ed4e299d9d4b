package dispatch

import "github.com/zerchniv/matchserver/internal/match/state"

// allowedCommands maps each phase to the command types it accepts from
// the active seat. Info commands
// (request_valid_moves, request_valid_targets) and reaction commands
// (react_blitz, pass_reaction) are gated separately in dispatcher.go, not
// through this table: they cut across phases.
var allowedCommands = map[state.Phase][]CommandType{
	state.PhaseSetupTiles:  {CmdPlaceTile, CmdEndTilePlacement},
	state.PhaseSetupEmpire: {CmdPlaceEmpire},
	state.PhaseStandby:     nil, // engine-immediate; no client command ever accepted
	state.PhaseDraw:        {CmdDrawCard},
	state.PhaseMain: {
		CmdMoveUnit, CmdMeleeAttack, CmdRangedAttack,
		CmdPlayUnit, CmdPlayBlitz, CmdPlayStructure, CmdPlaceBuilder,
		CmdUseTerraform, CmdEndTurn, CmdConcede,
	},
	state.PhaseEnd: nil, // accepts no client commands
}

// isPhaseCommandAllowed reports whether ct may be issued while m is in its
// current phase. Concede is accepted in every active phase: a player may
// always quit, and concession is immediate.
func isPhaseCommandAllowed(phase state.Phase, ct CommandType) bool {
	if ct == CmdConcede {
		return phase != state.PhaseEnd
	}
	for _, allowed := range allowedCommands[phase] {
		if allowed == ct {
			return true
		}
	}
	return false
}
