package dice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRollAttack_Deterministic(t *testing.T) {
	r1 := NewRoller(42)
	r2 := NewRoller(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, r1.RollAttack(), r2.RollAttack(), "roll %d should match with same seed", i)
	}
}

func TestRollAttack_Range(t *testing.T) {
	r := NewRoller(12345)
	for i := 0; i < 1000; i++ {
		roll := r.RollAttack()
		require.GreaterOrEqual(t, roll, 1)
		require.LessOrEqual(t, roll, 10)
	}
}

func TestDifferentSeeds_DifferentResults(t *testing.T) {
	r1 := NewRoller(1)
	r2 := NewRoller(2)

	same := true
	for i := 0; i < 20; i++ {
		if r1.RollAttack() != r2.RollAttack() {
			same = false
			break
		}
	}
	require.False(t, same, "different seeds should produce different sequences")
}

func TestShuffle_Deterministic(t *testing.T) {
	ids1 := []string{"a", "b", "c", "d", "e", "f"}
	ids2 := []string{"a", "b", "c", "d", "e", "f"}

	NewRoller(7).Shuffle(ids1)
	NewRoller(7).Shuffle(ids2)

	require.Equal(t, ids1, ids2)
}

func TestShuffle_Permutation(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	original := append([]string(nil), ids...)

	NewRoller(99).Shuffle(ids)

	require.ElementsMatch(t, original, ids)
}
