package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_StartPosIsZero(t *testing.T) {
	pos, err := PositionFromFEN(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, 0, pos.Evaluate())
}

func TestEvaluate_SideToMoveSymmetry(t *testing.T) {
	// Mirroring every piece to the opposite rank, swapping colors and
	// flipping side to move leaves the side-to-move score unchanged: the
	// evaluator has no side-specific bias beyond whose turn it is.
	white, err := PositionFromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	black, err := PositionFromFEN("4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, white.Evaluate(), black.Evaluate())
}

func TestEvaluateDetailed_ComponentsSumToScore(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	ev := pos.EvaluateDetailed()

	net := ev.Components["material"] + ev.Components["pst"] + ev.Components["mobility"] +
		ev.Components["pawn_structure"] + ev.Components["king_safety"]
	assert.Equal(t, ev.WhiteTotal-ev.BlackTotal, net)

	var recomputed int
	for _, b := range ev.Breakdown {
		recomputed += b.SignedTotal()
	}
	assert.Equal(t, net, recomputed)
}

func TestEvaluateDetailed_HeatmapHasNoZeroEntries(t *testing.T) {
	pos, err := PositionFromFEN(StartFEN)
	require.NoError(t, err)
	ev := pos.EvaluateDetailed()
	for sq, v := range ev.Heatmap {
		assert.NotZero(t, v, "square %s should have been pruned", sq)
	}
}

func TestTerminalScore_ChecksMateOutranksDeeperMate(t *testing.T) {
	// TerminalScore is from the mated side's view; negated, it is the
	// mating side's score, where the shorter mate must rank higher.
	assert.Greater(t, -TerminalScore(true, 1), -TerminalScore(true, 3))
	assert.Equal(t, 0, TerminalScore(false, 5))
}

func TestPawnStructure_DoubledIsolatedPassed(t *testing.T) {
	// White pawns: a2 (isolated, passed — no black pawns at all),
	// c2+c3 (doubled and, since there is no b- or d-file pawn, also
	// isolated; both are also unblocked and thus passed). The three
	// deltas accumulate independently rather than picking just one.
	pos, err := PositionFromFEN("4k3/8/8/8/8/2P5/P1P5/4K3 w - - 0 1")
	require.NoError(t, err)
	ev := pos.EvaluateDetailed()

	bySquare := map[Square]Breakdown{}
	for _, b := range ev.Breakdown {
		if b.Piece.Figure() == Pawn {
			bySquare[b.Square] = b
		}
	}

	a2 := bySquare[RankFile(1, 0)]
	assert.Equal(t, isolatedPawnPenalty+passedPawnBase+passedPawnPerRank*1, a2.PawnStructure)

	c2 := bySquare[RankFile(1, 2)]
	assert.Equal(t, doublePawnPenalty+isolatedPawnPenalty+passedPawnBase+passedPawnPerRank*1, c2.PawnStructure)

	c3 := bySquare[RankFile(2, 2)]
	assert.Equal(t, doublePawnPenalty+isolatedPawnPenalty+passedPawnBase+passedPawnPerRank*2, c3.PawnStructure)
}
