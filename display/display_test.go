package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedang-P/Janus-chess-engine/engine"
)

func TestASCII_ShowsBackRankPieces(t *testing.T) {
	pos, err := engine.PositionFromFEN(engine.StartFEN)
	require.NoError(t, err)
	out := ASCII(pos)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 9) // 8 ranks + file legend
	assert.Contains(t, lines[0], "r n b q k b n r") // rank 8, black's back rank
}

func TestWriteSVG_ProducesWellFormedMarkup(t *testing.T) {
	pos, err := engine.PositionFromFEN(engine.StartFEN)
	require.NoError(t, err)
	var buf bytes.Buffer
	WriteSVG(&buf, pos)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
}
