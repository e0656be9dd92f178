// Package wsserver exposes the search engine over a WebSocket: one
// inbound request per connection, a stream of throttled snapshot
// events, and a single terminal complete or error event, after which
// the connection is closed. The
// engine package itself has no knowledge of this protocol or of JSON.
package wsserver

import (
	"math"

	"github.com/Vedang-P/Janus-chess-engine/engine"
)

// searchRequest is the inbound message starting a search.
type searchRequest struct {
	FEN                string `json:"fen"`
	MaxDepth           int    `json:"max_depth"`
	TimeLimitMS        int    `json:"time_limit_ms"`
	SnapshotIntervalMS int    `json:"snapshot_interval_ms"`
}

type snapshotEvent struct {
	Type           string             `json:"type"`
	Depth          int                `json:"depth"`
	Nodes          int                `json:"nodes"`
	NPS            int                `json:"nps"`
	CurrentMove    string             `json:"current_move"`
	PV             []string           `json:"pv"`
	Eval           float64            `json:"eval"`
	EvalCP         int                `json:"eval_cp"`
	CandidateMoves map[string]float64 `json:"candidate_moves"`
	PieceValues    map[string]int     `json:"piece_values"`
	PieceBreakdown map[string]pieceRow `json:"piece_breakdown"`
	Heatmap        map[string]int     `json:"heatmap"`
	Cutoffs        int                `json:"cutoffs"`
	ElapsedMs      float64            `json:"elapsed_ms"`
}

type pieceRow struct {
	Piece         string `json:"piece"`
	Side          string `json:"side"`
	Material      int    `json:"material"`
	PST           int    `json:"pst"`
	Mobility      int    `json:"mobility"`
	PawnStructure int    `json:"pawn_structure"`
	KingSafety    int    `json:"king_safety"`
	Total         int    `json:"total"`
	SignedTotal   int    `json:"signed_total"`
}

type completeEvent struct {
	snapshotEvent
	BestMove string `json:"best_move"`
}

type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func toSnapshotEvent(snap engine.Snapshot) snapshotEvent {
	pv := make([]string, len(snap.PV))
	for i, m := range snap.PV {
		pv[i] = m.UCI()
	}
	candidates := make(map[string]float64, len(snap.Candidates))
	for _, c := range snap.Candidates {
		candidates[c.Move.UCI()] = math.Round(float64(c.Score)/100.0*100) / 100
	}
	pieceValues := make(map[string]int, len(snap.PieceValues))
	for sq, v := range snap.PieceValues {
		pieceValues[sq.String()] = v
	}
	breakdown := make(map[string]pieceRow, len(snap.Breakdown))
	for _, b := range snap.Breakdown {
		breakdown[b.Square.String()] = pieceRow{
			Piece: b.Piece.Figure().String(), Side: b.Piece.Color().String(),
			Material: b.Material, PST: b.PST, Mobility: b.Mobility,
			PawnStructure: b.PawnStructure, KingSafety: b.KingSafety,
			Total: b.Total(), SignedTotal: b.SignedTotal(),
		}
	}
	heatmap := make(map[string]int, len(snap.Heatmap))
	for sq, v := range snap.Heatmap {
		heatmap[sq.String()] = v
	}

	return snapshotEvent{
		Type: "snapshot", Depth: snap.Depth, Nodes: snap.Nodes, NPS: snap.NPS,
		CurrentMove: snap.CurrentMove.UCI(), PV: pv, Eval: snap.Eval, EvalCP: snap.EvalCP,
		CandidateMoves: candidates, PieceValues: pieceValues, PieceBreakdown: breakdown,
		Heatmap: heatmap, Cutoffs: snap.Cutoffs, ElapsedMs: snap.ElapsedMs,
	}
}

func toCompleteEvent(result engine.SearchResult) completeEvent {
	ev := completeEvent{snapshotEvent: toSnapshotEvent(result.Snapshot), BestMove: result.BestMove.UCI()}
	ev.Type = "complete"
	return ev
}
