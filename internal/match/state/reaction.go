package state

// PendingBlitz describes a blitz card awaiting reaction-window resolution.
// Per the resolved open question (see DESIGN.md), its effect is computed
// and applied only when the window resolves (react-with-negate,
// react-with-modify, or pass) — never when it is first played.
type PendingBlitz struct {
	CardID   string
	PlayedBy Seat
	TargetID string // optional; "" if the blitz has no single target

	// Negated is set by a reaction that cancels the pending blitz outright.
	Negated bool
	// ReactionCardID is the reaction-timed blitz played against this one,
	// if any.
	ReactionCardID string
}

// ReactionWindow is open while a slow or instant blitz awaits the
// opposing seat's react-or-pass. At most one window is ever open.
type ReactionWindow struct {
	Open         bool
	ReactingSeat Seat
	Pending      *PendingBlitz
}
