package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidMaxDepth is returned by Run when Options.MaxDepth < 1.
var ErrInvalidMaxDepth = errors.New("max_depth must be >= 1")

// Options configures a Search.
type Options struct {
	MaxDepth         int           // iterative deepening ceiling, inclusive
	TimeLimit        time.Duration // wall-clock deadline for the whole search
	SnapshotInterval time.Duration // minimum gap between non-forced snapshots
	OnSnapshot       SnapshotFunc  // may be nil
	Logger           Logger        // may be nil, defaults to NulLogger
}

// deadlineExceeded is used internally to unwind the recursive negamax
// stack once the wall-clock deadline has passed (checked every 1024
// nodes and after each root move), the way a sentinel error is used to
// unwind iterator loops elsewhere in Go.
type deadlineExceeded struct{}

func (deadlineExceeded) Error() string { return "search deadline exceeded" }

// Search runs iterative-deepening negamax alpha-beta search over a
// Position. It holds no state across calls to Run.
type Search struct {
	pos      *Position
	logger   Logger
	nodes    int
	cutoffs  int
	deadline time.Time
	start    time.Time
}

// NewSearch builds a Search bound to pos. pos is mutated (and
// restored) during the search via DoMove/UndoMove.
func NewSearch(pos *Position) *Search {
	return &Search{pos: pos}
}

// Run performs iterative-deepening search from depth 1 up to
// opts.MaxDepth (inclusive), stopping early if opts.TimeLimit elapses.
// It always returns a usable result, seeded from the static evaluation
// if not even depth 1 completes. opts.MaxDepth < 1 is a fatal argument
// error, not silently clamped.
func (s *Search) Run(opts Options) (SearchResult, error) {
	if opts.MaxDepth < 1 {
		return SearchResult{}, fmt.Errorf("%w: got %d", ErrInvalidMaxDepth, opts.MaxDepth)
	}
	if opts.Logger == nil {
		opts.Logger = NulLogger{}
	}
	s.logger = opts.Logger
	s.nodes = 0
	s.cutoffs = 0
	s.start = time.Now()
	if opts.TimeLimit > 0 {
		s.deadline = s.start.Add(opts.TimeLimit)
	}

	throttle := NewSnapshotThrottle(opts.SnapshotInterval, opts.OnSnapshot)

	rootEval := s.pos.EvaluateDetailed()
	best := SearchResult{
		Snapshot: Snapshot{
			EvalCP:      rootEval.ScoreCP,
			Eval:        float64(rootEval.ScoreCP) / 100,
			PieceValues: signedPieceValues(rootEval),
			Breakdown:   rootEval.Breakdown,
			Heatmap:     rootEval.Heatmap,
		},
	}

	s.logger.BeginSearch()
	for depth := 1; depth <= opts.MaxDepth; depth++ {
		result, err := s.searchRoot(depth, rootEval, throttle)
		if err != nil {
			break
		}
		best = result
		s.logger.PrintPV(depth, s.nodes, best.PV)
		throttle.Emit(best.Snapshot, true)
	}
	s.logger.EndSearch(best)
	return best, nil
}

func signedPieceValues(ev Evaluation) map[Square]int {
	out := make(map[Square]int, len(ev.Breakdown))
	for _, b := range ev.Breakdown {
		out[b.Square] = b.SignedTotal()
	}
	return out
}

func (s *Search) timeUp() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// moveOrderKey ranks captures above promotions above castling above
// quiet moves, descending; ties keep generation order (a stable sort
// is used so this remains deterministic).
func moveOrderKey(m Move) int {
	switch {
	case m.Capture != NoPiece:
		return 10_000
	case m.MoveType == Promotion:
		return 8_000
	case m.MoveType == Castling:
		return 100
	default:
		return 0
	}
}

func orderedMoves(moves []Move) []Move {
	ordered := make([]Move, len(moves))
	copy(ordered, moves)
	// stable insertion sort by descending key: move counts are small
	// (legal moves rarely exceed ~50) so this is plenty fast and keeps
	// the sort obviously stable without importing sort for one site.
	for i := 1; i < len(ordered); i++ {
		key := moveOrderKey(ordered[i])
		j := i
		for j > 0 && moveOrderKey(ordered[j-1]) < key {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
			j--
		}
	}
	return ordered
}

func (s *Search) searchRoot(depth int, rootEval Evaluation, throttle *SnapshotThrottle) (SearchResult, error) {
	legal := s.pos.GenerateLegalMoves()
	us := s.pos.SideToMove

	if len(legal) == 0 {
		score := TerminalScore(s.pos.InCheck(us), 0)
		return SearchResult{Snapshot: Snapshot{
			Depth: depth, EvalCP: score, Eval: float64(score) / 100,
			Heatmap: rootEval.Heatmap, PieceValues: signedPieceValues(rootEval), Breakdown: rootEval.Breakdown,
		}}, nil
	}

	ordered := orderedMoves(legal)
	alpha, beta := -infinityScore, infinityScore

	var bestMove Move
	bestScore := -infinityScore
	var bestPV []Move
	candidates := make([]CandidateRank, 0, len(ordered))

	for i, m := range ordered {
		s.pos.DoMove(m)
		childScore, childPV, err := s.negamax(depth-1, -beta, -alpha, 1)
		s.pos.UndoMove(m)
		if err != nil {
			return SearchResult{}, err
		}
		score := -childScore
		candidates = append(candidates, CandidateRank{Move: m, Score: score})

		if score > bestScore {
			bestScore = score
			bestMove = m
			bestPV = append([]Move{m}, childPV...)
		}
		if score > alpha {
			alpha = score
		}

		elapsed := time.Since(s.start)
		snap := Snapshot{
			Depth: depth, Nodes: s.nodes, NPS: nps(s.nodes, elapsed),
			CurrentMove: m, PV: bestPV, Eval: float64(bestScore) / 100, EvalCP: bestScore,
			Candidates:  topCandidates(candidates, i+1),
			PieceValues: signedPieceValues(rootEval),
			Breakdown:   rootEval.Breakdown,
			Heatmap:     composeHeatmap(rootEval.Heatmap, bestPV, candidates),
			Cutoffs:     s.cutoffs, ElapsedMs: float64(elapsed.Microseconds()) / 1000,
		}
		throttle.Emit(snap, false)

		if s.timeUp() {
			return SearchResult{}, deadlineExceeded{}
		}
	}

	elapsed := time.Since(s.start)
	final := Snapshot{
		Depth: depth, Nodes: s.nodes, NPS: nps(s.nodes, elapsed),
		CurrentMove: bestMove, PV: bestPV, Eval: float64(bestScore) / 100, EvalCP: bestScore,
		Candidates:  topCandidates(candidates, len(candidates)),
		PieceValues: signedPieceValues(rootEval),
		Breakdown:   rootEval.Breakdown,
		Heatmap:     composeHeatmap(rootEval.Heatmap, bestPV, candidates),
		Cutoffs:     s.cutoffs, ElapsedMs: float64(elapsed.Microseconds()) / 1000,
	}
	return SearchResult{Snapshot: final, BestMove: bestMove}, nil
}

// negamax is fail-soft alpha-beta negamax. ply counts half-moves below
// the root (root itself is ply 0, handled by searchRoot).
func (s *Search) negamax(depth, alpha, beta, ply int) (int, []Move, error) {
	s.nodes++
	if s.nodes&1023 == 0 && s.timeUp() {
		return 0, nil, deadlineExceeded{}
	}

	if depth == 0 {
		return s.pos.Evaluate(), nil, nil
	}

	us := s.pos.SideToMove
	legal := s.pos.GenerateLegalMoves()
	if len(legal) == 0 {
		return TerminalScore(s.pos.InCheck(us), ply), nil, nil
	}

	best := -infinityScore
	var bestPV []Move
	for _, m := range orderedMoves(legal) {
		s.pos.DoMove(m)
		childScore, childPV, err := s.negamax(depth-1, -beta, -alpha, ply+1)
		s.pos.UndoMove(m)
		if err != nil {
			return 0, nil, err
		}
		score := -childScore
		if score > best {
			best = score
			bestPV = append([]Move{m}, childPV...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.cutoffs++
			break
		}
	}
	return best, bestPV, nil
}

func nps(nodes int, elapsed time.Duration) int {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return int(float64(nodes) / secs)
}

// topCandidates returns the limit highest-scoring candidates seen so
// far, descending by score; limit is capped at 10 here.
func topCandidates(candidates []CandidateRank, limit int) []CandidateRank {
	ranked := make([]CandidateRank, len(candidates))
	copy(ranked, candidates)
	for i := 1; i < len(ranked); i++ {
		j := i
		for j > 0 && ranked[j-1].Score < ranked[j].Score {
			ranked[j-1], ranked[j] = ranked[j], ranked[j-1]
			j--
		}
	}
	if limit > 10 {
		limit = 10
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit]
}

// composeHeatmap overlays the in-progress search's attention onto the
// static pressure heatmap: the first 8 PV destinations weighted
// max(1,5-i), and the top-10 candidates' origins/destinations weighted
// max(1,3-i) / max(1,4-i) respectively.
func composeHeatmap(static map[Square]int, pv []Move, candidates []CandidateRank) map[Square]int {
	composed := make(map[Square]int, len(static))
	for sq, v := range static {
		composed[sq] = v
	}

	for i, m := range pv {
		if i >= 8 {
			break
		}
		composed[m.To] += max(1, 5-i)
	}

	top := topCandidates(candidates, 10)
	for i, c := range top {
		composed[c.Move.From] += max(1, 3-i)
		composed[c.Move.To] += max(1, 4-i)
	}
	return composed
}
