// Package display renders a Position for a terminal or as an SVG
// diagram. It is a thin presentation layer over engine.Position: the
// engine package itself never formats board output.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajstarks/svgo"
	"github.com/fatih/color"

	"github.com/Vedang-P/Janus-chess-engine/engine"
)

// ASCII renders pos as an 8x8 grid with rank/file labels, one piece
// letter per square, uppercase for White and lowercase for Black.
func ASCII(pos *engine.Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := pos.PieceAt(engine.RankFile(rank, file))
			sb.WriteString(p.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

var (
	whiteColor = color.New(color.FgHiWhite, color.Bold)
	blackColor = color.New(color.FgHiBlack, color.Bold)
)

// Colorized renders pos the same way ASCII does, but with White and
// Black pieces printed in distinct terminal colors.
func Colorized(pos *engine.Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", rank+1))
		for file := 0; file < 8; file++ {
			p := pos.PieceAt(engine.RankFile(rank, file))
			switch {
			case p == engine.NoPiece:
				sb.WriteString(". ")
			case p.Color() == engine.White:
				sb.WriteString(whiteColor.Sprint(p.String()) + " ")
			default:
				sb.WriteString(blackColor.Sprint(p.String()) + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

const (
	squareSize = 48
	boardPixels = squareSize * 8
)

var figureGlyph = map[engine.Figure]string{
	engine.Pawn: "P", engine.Knight: "N", engine.Bishop: "B",
	engine.Rook: "R", engine.Queen: "Q", engine.King: "K",
}

// WriteSVG renders pos as a minimal SVG board diagram to w: an
// 8x8 checkerboard with a letter glyph per occupied square. It does
// not attempt full piece artwork, only enough to visually diff
// positions.
func WriteSVG(w io.Writer, pos *engine.Position) {
	canvas := svg.New(w)
	canvas.Start(boardPixels, boardPixels)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			fill := "#eeeed2"
			if (rank+file)%2 == 0 {
				fill = "#769656"
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			p := pos.PieceAt(engine.RankFile(rank, file))
			if p == engine.NoPiece {
				continue
			}
			textColor := "#000000"
			if p.Color() == engine.White {
				textColor = "#ffffff"
			}
			glyph := figureGlyph[p.Figure()]
			canvas.Text(x+squareSize/2, y+squareSize/2+squareSize/6, glyph,
				"text-anchor:middle;font-size:24px;fill:"+textColor)
		}
	}
	canvas.End()
}
