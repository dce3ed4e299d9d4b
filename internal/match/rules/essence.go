// Package rules implements the pure validators and resolvers of the match
// runtime: essence accounting, move/target enumeration, attack
// resolution, capture progress, siege/win checks, and the ability-hook
// registry. Every exported function here is (state, args) -> (result,
// mutation); none of them know about commands, seats' turn order, or
// phase gating — that belongs to the command dispatcher.
package rules

import (
	"fmt"

	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// CanAfford reports whether pool covers cost in the given element. A
// neutral cost may be paid from any combination of buckets; an elemental
// cost must come from that element's own bucket.
func CanAfford(pool state.EssencePool, cost int, elem catalog.Element) bool {
	if elem == catalog.ElementNeutral {
		return pool.Total() >= cost
	}
	return pool.Bucket(elem) >= cost
}

// Spend deducts cost from pool, paying a neutral cost from neutral first,
// then fire, then water. Returns an error (leaving pool unchanged) if the
// pool cannot afford the cost.
func Spend(pool *state.EssencePool, cost int, elem catalog.Element) error {
	if !CanAfford(*pool, cost, elem) {
		return fmt.Errorf("rules: insufficient %s essence: need %d, have %d", elem, cost, pool.Bucket(elem))
	}
	switch elem {
	case catalog.ElementFire:
		pool.Fire -= cost
	case catalog.ElementWater:
		pool.Water -= cost
	default:
		remaining := cost
		take := func(bucket *int) {
			if remaining == 0 {
				return
			}
			d := remaining
			if d > *bucket {
				d = *bucket
			}
			*bucket -= d
			remaining -= d
		}
		take(&pool.Neutral)
		take(&pool.Fire)
		take(&pool.Water)
	}
	return nil
}

// Recalculate resets seat's essence pool to zero and refills it from every
// source that seat currently owns: +2 of the empire tile's element, +1 of
// each owned structure's tile element, +1 of each owned builder's tile
// element. Idempotent: calling it twice in a row on an unchanged board
// yields the same pool both times.
func Recalculate(m *state.MatchState, seat state.Seat) {
	pool := m.Essence[seat]
	*pool = state.EssencePool{}

	add := func(elem catalog.Element, amount int) {
		switch elem {
		case catalog.ElementFire:
			pool.Fire += amount
		case catalog.ElementWater:
			pool.Water += amount
		default:
			pool.Neutral += amount
		}
	}

	empire := m.Empires[seat]
	if empire.Placed {
		if tile, ok := m.Tile(empire.TileID); ok {
			add(tile.Type, 2)
		}
	}
	for _, s := range m.StructuresOwnedBy(seat) {
		if tile, ok := m.Tile(s.TileID); ok {
			add(tile.Type, 1)
		}
	}
	for _, b := range m.BuildersOwnedBy(seat) {
		if tile, ok := m.Tile(b.TileID); ok {
			add(tile.Type, 1)
		}
	}
}
