package state

import "github.com/zerchniv/matchserver/internal/catalog"

// EssencePool holds a seat's three spendable resource buckets. All buckets
// are always >= 0; recalculation (internal/match/rules) resets and refills
// this from scratch every Standby, it never carries a running balance
// across rounds by itself.
type EssencePool struct {
	Neutral int
	Fire    int
	Water   int
}

// Bucket returns the pool's amount for the given element. Neutral cost
// checks do not go through this; see CanAfford/Spend in
// internal/match/rules, which handle the neutral "any bucket" rule.
func (p EssencePool) Bucket(e catalog.Element) int {
	switch e {
	case catalog.ElementFire:
		return p.Fire
	case catalog.ElementWater:
		return p.Water
	default:
		return p.Neutral
	}
}

// Total returns the sum of all three buckets.
func (p EssencePool) Total() int {
	return p.Neutral + p.Fire + p.Water
}
