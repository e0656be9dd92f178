package perft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedang-P/Janus-chess-engine/engine"
	"github.com/Vedang-P/Janus-chess-engine/perft"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestCount_StartPos(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281}
	for depth, w := range want {
		pos, err := engine.PositionFromFEN(engine.StartFEN)
		require.NoError(t, err)
		got := perft.Count(pos, depth)
		assert.Equal(t, w, got.Nodes, "depth=%d", depth)
		assert.Equal(t, engine.StartFEN, pos.FEN(), "position must be restored after perft, depth=%d", depth)
	}
}

func TestCount_Kiwipete(t *testing.T) {
	want := []uint64{1, 48, 2039, 97862}
	for depth, w := range want {
		pos, err := engine.PositionFromFEN(kiwipete)
		require.NoError(t, err)
		got := perft.Count(pos, depth)
		assert.Equal(t, w, got.Nodes, "depth=%d", depth)
	}
}

func TestCount_StartPosDepth3_CaptureBreakdown(t *testing.T) {
	pos, err := engine.PositionFromFEN(engine.StartFEN)
	require.NoError(t, err)
	got := perft.Count(pos, 3)
	assert.EqualValues(t, 34, got.Captures)
	assert.EqualValues(t, 0, got.Enpassant)
	assert.EqualValues(t, 0, got.Castles)
}

func TestDivide_SumsToCount(t *testing.T) {
	pos, err := engine.PositionFromFEN(engine.StartFEN)
	require.NoError(t, err)
	total, entries := perft.Divide(pos, 3)

	var sum uint64
	for _, e := range entries {
		sum += e.Count
	}
	assert.Equal(t, total.Nodes, sum)
	assert.Equal(t, uint64(8902), total.Nodes)
	assert.Len(t, entries, 20) // 20 legal moves at the root
}
