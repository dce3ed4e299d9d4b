package hexboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDParseRoundTrip(t *testing.T) {
	row, col, ok := Parse(ID(3, -2))
	require.True(t, ok)
	require.Equal(t, 3, row)
	require.Equal(t, -2, col)
}

func TestDistanceSelf(t *testing.T) {
	require.Equal(t, 0, Distance(ID(2, 2), ID(2, 2)))
}

func TestAdjacentAreDistanceOne(t *testing.T) {
	origin := ID(0, 0)
	for _, n := range Adjacent(origin) {
		require.Equal(t, 1, Distance(origin, n), "neighbor %s should be distance 1 from %s", n, origin)
	}
}

func TestAdjacentOddRow(t *testing.T) {
	origin := ID(1, 0)
	for _, n := range Adjacent(origin) {
		require.Equal(t, 1, Distance(origin, n), "neighbor %s should be distance 1 from %s", n, origin)
	}
}

func TestAdjacentSixDistinctTiles(t *testing.T) {
	adj := Adjacent(ID(4, 4))
	require.Len(t, adj, 6)
	seen := map[string]bool{}
	for _, id := range adj {
		require.False(t, seen[id], "duplicate neighbor %s", id)
		seen[id] = true
	}
}

func TestNeighborsRangeZeroEmpty(t *testing.T) {
	require.Empty(t, Neighbors(ID(0, 0), 0))
}

func TestNeighborsRangeOneMatchesAdjacent(t *testing.T) {
	origin := ID(2, 3)
	require.ElementsMatch(t, Adjacent(origin), Neighbors(origin, 1))
}

func TestNeighborsExcludesOrigin(t *testing.T) {
	origin := ID(0, 0)
	for _, id := range Neighbors(origin, 3) {
		require.NotEqual(t, origin, id)
	}
}

func TestNeighborsRangeTwoAllWithinDistance(t *testing.T) {
	origin := ID(5, 5)
	for _, id := range Neighbors(origin, 2) {
		d := Distance(origin, id)
		require.GreaterOrEqual(t, d, 1)
		require.LessOrEqual(t, d, 2)
	}
}

func TestNeighborsGrowsWithRange(t *testing.T) {
	origin := ID(0, 0)
	r1 := Neighbors(origin, 1)
	r2 := Neighbors(origin, 2)
	require.Greater(t, len(r2), len(r1))
}
