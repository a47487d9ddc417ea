package board

// NumMoves is the length of the canonical move table. The enumeration below
// produces 337 distinct moves; the table pads to 338 with a second pass at
// the tail.
const NumMoves = 338

var moves = makeMoves()

// Moves returns the canonical table of every syntactic move in its stable
// enumeration order: attacks, constructs, transforms (colors in list order,
// own color skipped), sacrifices, move inits, move finishes, selections
// (sizes outer, colors inner), catastrophes, pass. Callers must not modify
// the returned slice.
func Moves() []Move {
	return moves
}

func makeMoves() []Move {
	ret := make([]Move, 0, NumMoves)
	for k := ZeroKey; k < NumKeys; k++ {
		ret = append(ret, Move{Kind: KindAttack, Piece: k})
	}
	for k := ZeroKey; k < NumKeys; k++ {
		ret = append(ret, Move{Kind: KindConstruct, Piece: k})
	}
	for k := ZeroKey; k < NumKeys; k++ {
		for c := ZeroColor; c < NumColors; c++ {
			if c == k.Color() {
				continue
			}
			ret = append(ret, Move{Kind: KindTransform, Piece: k, Color: c})
		}
	}
	for k := ZeroKey; k < NumKeys; k++ {
		ret = append(ret, Move{Kind: KindSacrifice, Piece: k})
	}
	for k := ZeroKey; k < NumKeys; k++ {
		ret = append(ret, Move{Kind: KindMoveInit, Piece: k})
	}
	for k := ZeroKey; k < NumKeys; k++ {
		ret = append(ret, Move{Kind: KindMoveFinish, System: k})
	}
	for s := ZeroSize; s < NumSizes; s++ {
		for c := ZeroColor; c < NumColors; c++ {
			ret = append(ret, Move{Kind: KindSelect, Size: s, Color: c})
		}
	}
	for k := ZeroKey; k < NumKeys; k++ {
		ret = append(ret, Move{Kind: KindCatastrophe, Piece: k})
	}
	ret = append(ret, Move{Kind: KindPass})
	ret = append(ret, Move{Kind: KindPass}) // pad
	if len(ret) != NumMoves {
		panic("move table size mismatch")
	}
	return ret
}

// LegalMoves returns the moves accepted in the current state, in table
// order, determined by dry-running each candidate on a clone. The padding
// entry is skipped so pass appears at most once.
func (g *Game) LegalMoves() []Move {
	var ret []Move
	for _, m := range moves[:NumMoves-1] {
		if g.Clone().Apply(m) {
			ret = append(ret, m)
		}
	}
	return ret
}
