package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legalUCIs(t *testing.T, pos *Position) map[string]bool {
	t.Helper()
	set := map[string]bool{}
	for _, m := range pos.GenerateLegalMoves() {
		set[m.UCI()] = true
	}
	return set
}

func TestSearch_ReturnsALegalMove(t *testing.T) {
	pos, err := PositionFromFEN(StartFEN)
	require.NoError(t, err)
	legal := legalUCIs(t, pos)

	result, err := NewSearch(pos).Run(Options{MaxDepth: 3, TimeLimit: 2 * time.Second})
	require.NoError(t, err)
	assert.True(t, legal[result.BestMove.UCI()], "bestmove %s not in legal set", result.BestMove.UCI())
	assert.Equal(t, StartFEN, pos.FEN(), "search must restore the position")
}

func TestSearch_FindsFoolsMate(t *testing.T) {
	// After 1.f3 e5 2.g4, black mates with Qh4#.
	pos, err := PositionFromFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2")
	require.NoError(t, err)
	result, err := NewSearch(pos).Run(Options{MaxDepth: 2, TimeLimit: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, "d8h4", result.BestMove.UCI())
	assert.GreaterOrEqual(t, result.EvalCP, mateScore-10)
}

func TestSearch_DetectsCheckmateAsTerminal(t *testing.T) {
	// The position right after 2...Qh4#: White to move, no legal moves,
	// in check.
	pos, err := PositionFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.Empty(t, pos.GenerateLegalMoves())
	assert.True(t, pos.InCheck(White))
}

func TestSearch_CompletesAtIncreasingDepths(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 4 3"
	for depth := 1; depth <= 3; depth++ {
		pos, err := PositionFromFEN(fen)
		require.NoError(t, err)
		legal := legalUCIs(t, pos)

		result, err := NewSearch(pos).Run(Options{MaxDepth: depth, TimeLimit: 3 * time.Second})
		require.NoError(t, err)
		assert.Equal(t, depth, result.Depth)
		assert.True(t, legal[result.BestMove.UCI()])
	}
}

func TestSearch_SnapshotOrderingIsNonDecreasingInDepth(t *testing.T) {
	pos, err := PositionFromFEN(StartFEN)
	require.NoError(t, err)

	var depths []int
	_, err = NewSearch(pos).Run(Options{
		MaxDepth: 3, TimeLimit: 3 * time.Second, SnapshotInterval: 0,
		OnSnapshot: func(s Snapshot) { depths = append(depths, s.Depth) },
	})
	require.NoError(t, err)
	for i := 1; i < len(depths); i++ {
		assert.GreaterOrEqual(t, depths[i], depths[i-1])
	}
}

func TestSearch_RejectsMaxDepthBelowOne(t *testing.T) {
	pos, err := PositionFromFEN(StartFEN)
	require.NoError(t, err)

	_, err = NewSearch(pos).Run(Options{MaxDepth: 0, TimeLimit: time.Second})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMaxDepth)

	_, err = NewSearch(pos).Run(Options{MaxDepth: -1, TimeLimit: time.Second})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMaxDepth)
}

func TestSnapshotThrottle_BoundsEmissionRate(t *testing.T) {
	var calls int
	throttle := NewSnapshotThrottle(50*time.Millisecond, func(Snapshot) { calls++ })
	for i := 0; i < 5; i++ {
		throttle.Emit(Snapshot{}, false)
	}
	assert.Equal(t, 1, calls, "non-forced emits within the interval must collapse to one")

	throttle.Emit(Snapshot{}, true)
	assert.Equal(t, 2, calls, "forced emit always fires")
}
