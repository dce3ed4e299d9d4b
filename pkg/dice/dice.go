// Package dice provides deterministic randomness for match resolution.
//
// Every source of chance in a match — the attack die, the deck shuffle —
// goes through a Roller seeded at match creation, so a recorded seed plus a
// recorded command log reproduces a match exactly.
package dice

import "math/rand"

// Roller provides deterministic dice rolling and shuffling using a seeded RNG.
type Roller struct {
	rng        *rand.Rand
	rollAttack func() int // overrides RollAttack when set; see NewScriptedRoller
}

// NewRoller creates a new Roller with the given seed.
func NewRoller(seed int64) *Roller {
	return &Roller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewScriptedRoller returns a Roller whose RollAttack calls fn for every
// roll instead of consuming a seeded RNG, so a test can pin an exact
// sequence of results (hit, then miss, then kill) without reverse
// engineering a seed that happens to produce it.
func NewScriptedRoller(fn func() int) *Roller {
	return &Roller{rollAttack: fn}
}

// RollAttack returns a uniform integer on [1,10], the attack resolution die.
func (r *Roller) RollAttack() int {
	if r.rollAttack != nil {
		return r.rollAttack()
	}
	return r.rng.Intn(10) + 1
}

// Shuffle permutes ids in place using Fisher-Yates.
func (r *Roller) Shuffle(ids []string) {
	r.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// Intn returns a uniform integer on [0,n).
func (r *Roller) Intn(n int) int {
	return r.rng.Intn(n)
}
