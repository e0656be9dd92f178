package engine

// promotionFigures lists every figure a pawn can promote to, in the
// order moves are generated (queen first, since queen promotions are
// usually the strongest candidate).
var promotionFigures = [4]Figure{Queen, Rook, Bishop, Knight}

// GenerateLegalMoves returns every legal move available to the side
// to move. It generates pseudo-legal moves and filters out any that
// leave the mover's own king in check, via make/is-attacked/unmake —
// no separate pin-detection pass.
func (pos *Position) GenerateLegalMoves() []Move {
	pseudo := pos.generatePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	us := pos.SideToMove
	for _, m := range pseudo {
		pos.DoMove(m)
		if !pos.InCheck(us) {
			legal = append(legal, m)
		}
		pos.UndoMove(m)
	}
	return legal
}

func (pos *Position) generatePseudoLegalMoves() []Move {
	var moves []Move
	us := pos.SideToMove
	moves = pos.generatePawnMoves(us, moves)
	moves = pos.generateLeaperMoves(us, Knight, knightAttacks[:], moves)
	moves = pos.generateSliderMoves(us, Bishop, bishopDirs, moves)
	moves = pos.generateSliderMoves(us, Rook, rookDirs, moves)
	moves = pos.generateSliderMoves(us, Queen, bishopDirs, moves)
	moves = pos.generateSliderMoves(us, Queen, rookDirs, moves)
	moves = pos.generateLeaperMoves(us, King, kingAttacks[:], moves)
	moves = pos.generateCastlingMoves(us, moves)
	return moves
}

func (pos *Position) generatePawnMoves(us Color, moves []Move) []Move {
	pawns := pos.byPiece(us, Pawn)
	occ := pos.Occupied()
	piece := ColorFigure(us, Pawn)

	forward := 1
	startRank := 1
	promoRank := 7
	if us == Black {
		forward = -1
		startRank = 6
		promoRank = 0
	}

	bb := pawns
	for !bb.Empty() {
		from := bb.Pop()
		// single push
		to := RankFile(from.Rank()+forward, from.File())
		if onBoard(to.File(), to.Rank()) && !occ.Has(to) {
			moves = appendPawnMove(moves, piece, from, to, NoPiece, promoRank)
			// double push
			if from.Rank() == startRank {
				to2 := RankFile(from.Rank()+2*forward, from.File())
				if !occ.Has(to2) {
					moves = append(moves, Move{From: from, To: to2, Piece: piece})
				}
			}
		}
		// captures
		for _, df := range [2]int{-1, 1} {
			tf, tr := from.File()+df, from.Rank()+forward
			if !onBoard(tf, tr) {
				continue
			}
			to := RankFile(tr, tf)
			if cap := pos.board[to]; cap != NoPiece && cap.Color() != us {
				moves = appendPawnMove(moves, piece, from, to, cap, promoRank)
			} else if to == pos.EnpassantSquare {
				capSq := RankFile(from.Rank(), tf)
				capPiece := pos.board[capSq]
				moves = append(moves, Move{From: from, To: to, Piece: piece, Capture: capPiece, MoveType: Enpassant})
			}
		}
	}
	return moves
}

// appendPawnMove appends a normal pawn move, expanding to four
// promotion moves when to lands on the promotion rank.
func appendPawnMove(moves []Move, piece Piece, from, to Square, capture Piece, promoRank int) []Move {
	if to.Rank() == promoRank {
		for _, f := range promotionFigures {
			moves = append(moves, Move{
				From: from, To: to, Piece: piece, Capture: capture,
				Promoted: ColorFigure(piece.Color(), f), MoveType: Promotion,
			})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Piece: piece, Capture: capture})
}

func (pos *Position) generateLeaperMoves(us Color, fig Figure, attacks []Bitboard, moves []Move) []Move {
	piece := ColorFigure(us, fig)
	bb := pos.byPiece(us, fig)
	for !bb.Empty() {
		from := bb.Pop()
		targets := attacks[from] &^ pos.ByColor[us]
		for !targets.Empty() {
			to := targets.Pop()
			moves = append(moves, Move{From: from, To: to, Piece: piece, Capture: pos.board[to]})
		}
	}
	return moves
}

func (pos *Position) generateSliderMoves(us Color, fig Figure, dirs [4]direction, moves []Move) []Move {
	piece := ColorFigure(us, fig)
	occ := pos.Occupied()
	bb := pos.byPiece(us, fig)
	for !bb.Empty() {
		from := bb.Pop()
		for _, dir := range dirs {
			for _, to := range rays[dir][from] {
				if pos.ByColor[us].Has(to) {
					break
				}
				moves = append(moves, Move{From: from, To: to, Piece: piece, Capture: pos.board[to]})
				if occ.Has(to) {
					break
				}
			}
		}
	}
	return moves
}

func (pos *Position) generateCastlingMoves(us Color, moves []Move) []Move {
	opp := us.Opposite()
	occ := pos.Occupied()
	if us == White {
		if pos.Castle&WhiteKingSide != 0 &&
			!occ.Has(RankFile(0, 5)) && !occ.Has(RankFile(0, 6)) &&
			!pos.isSquareAttacked(RankFile(0, 4), opp) &&
			!pos.isSquareAttacked(RankFile(0, 5), opp) &&
			!pos.isSquareAttacked(RankFile(0, 6), opp) {
			moves = append(moves, Move{From: RankFile(0, 4), To: RankFile(0, 6), Piece: ColorFigure(White, King), MoveType: Castling})
		}
		if pos.Castle&WhiteQueenSide != 0 &&
			!occ.Has(RankFile(0, 1)) && !occ.Has(RankFile(0, 2)) && !occ.Has(RankFile(0, 3)) &&
			!pos.isSquareAttacked(RankFile(0, 4), opp) &&
			!pos.isSquareAttacked(RankFile(0, 3), opp) &&
			!pos.isSquareAttacked(RankFile(0, 2), opp) {
			moves = append(moves, Move{From: RankFile(0, 4), To: RankFile(0, 2), Piece: ColorFigure(White, King), MoveType: Castling})
		}
	} else {
		if pos.Castle&BlackKingSide != 0 &&
			!occ.Has(RankFile(7, 5)) && !occ.Has(RankFile(7, 6)) &&
			!pos.isSquareAttacked(RankFile(7, 4), opp) &&
			!pos.isSquareAttacked(RankFile(7, 5), opp) &&
			!pos.isSquareAttacked(RankFile(7, 6), opp) {
			moves = append(moves, Move{From: RankFile(7, 4), To: RankFile(7, 6), Piece: ColorFigure(Black, King), MoveType: Castling})
		}
		if pos.Castle&BlackQueenSide != 0 &&
			!occ.Has(RankFile(7, 1)) && !occ.Has(RankFile(7, 2)) && !occ.Has(RankFile(7, 3)) &&
			!pos.isSquareAttacked(RankFile(7, 4), opp) &&
			!pos.isSquareAttacked(RankFile(7, 3), opp) &&
			!pos.isSquareAttacked(RankFile(7, 2), opp) {
			moves = append(moves, Move{From: RankFile(7, 4), To: RankFile(7, 2), Piece: ColorFigure(Black, King), MoveType: Castling})
		}
	}
	return moves
}
