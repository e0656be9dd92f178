// Package perft counts leaf nodes reachable from a position to a
// fixed depth, the standard move-generator correctness and speed
// check (https://www.chessprogramming.org/Perft).
package perft

import (
	"fmt"
	"strings"

	"github.com/Vedang-P/Janus-chess-engine/engine"
)

// Counters tallies leaf-level move categories alongside the raw node
// count, the way the reference perft tooling this package is modeled
// on does.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	Enpassant  uint64
	Castles    uint64
	Promotions uint64
}

// Add accumulates ot into co.
func (co *Counters) Add(ot Counters) {
	co.Nodes += ot.Nodes
	co.Captures += ot.Captures
	co.Enpassant += ot.Enpassant
	co.Castles += ot.Castles
	co.Promotions += ot.Promotions
}

// Count runs perft to depth from pos, mutating and restoring pos via
// DoMove/UndoMove. depth 0 returns a single counted leaf.
func Count(pos *engine.Position, depth int) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var total Counters
	for _, m := range pos.GenerateLegalMoves() {
		pos.DoMove(m)
		if depth == 1 {
			switch {
			case m.MoveType == engine.Enpassant:
				total.Enpassant++
				total.Captures++
			case m.Capture != engine.NoPiece:
				total.Captures++
			}
			if m.MoveType == engine.Castling {
				total.Castles++
			}
			if m.MoveType == engine.Promotion {
				total.Promotions++
			}
		}
		total.Add(Count(pos, depth-1))
		pos.UndoMove(m)
	}
	return total
}

// DivideEntry is one root move's subtree count, as produced by Divide.
type DivideEntry struct {
	UCI   string
	Count uint64
}

// Divide runs perft one ply at a time, reporting the leaf count under
// each legal root move — the standard debugging aid for isolating a
// move-generator bug to a specific move.
func Divide(pos *engine.Position, depth int) (total Counters, entries []DivideEntry) {
	for _, m := range pos.GenerateLegalMoves() {
		pos.DoMove(m)
		c := Count(pos, depth-1)
		pos.UndoMove(m)
		total.Add(c)
		entries = append(entries, DivideEntry{UCI: m.UCI(), Count: c.Nodes})
	}
	return total, entries
}

// FormatDivide renders Divide's entries as "uci: count" lines, in the
// order moves were generated.
func FormatDivide(entries []DivideEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s: %d\n", e.UCI, e.Count)
	}
	return sb.String()
}
