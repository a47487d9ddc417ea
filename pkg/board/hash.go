package board

import "math/bits"

// Position hashing for repetition bookkeeping, built on the wyhash mixer.
// Unlike a Zobrist table it needs no precomputed randomness: the packed slot
// codes and ring links are folded directly.

func wymum(a, b uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi
}

func wymix(a, b uint64) uint64 {
	lo, hi := wymum(a, b)
	return lo ^ hi
}

func wyhash64(a, b uint64) uint64 {
	a ^= 0x2d358dccaa6c78a5
	b ^= 0x8bb84b93962eacc9
	lo, hi := wymum(a, b)
	return wymix(lo^0x2d358dccaa6c78a5, hi^0x8bb84b93962eacc9)
}

// Hash returns a 64-bit digest of the observable position: slot codes and
// links, turn state and the move-in-progress marker. Equal games hash equal;
// collisions are possible and must be confirmed by comparison.
func (g *Game) Hash() uint64 {
	h := wyhash64(uint64(g.turn.Player)|uint64(g.turn.Phase)<<8|uint64(g.turn.Count)<<16|uint64(g.turn.Ability)<<24, uint64(g.bank))
	for k := ZeroKey; k < NumKeys; k++ {
		s := g.slots[k]
		word := uint64(s.Code(k))
		switch s.Kind {
		case Ship:
			word |= uint64(s.Parent)<<8 | uint64(s.Next)<<16
		case Star, BinaryFirst, BinarySecond:
			if c, ok := s.Child.V(); ok {
				word |= 0x100 | uint64(c)<<16
			}
			if p, ok := s.Pair.V(); ok {
				word |= 0x200 | uint64(p)<<24
			}
		}
		h = wyhash64(h, word|uint64(k)<<32)
	}
	if k, ok := g.moving.V(); ok {
		h = wyhash64(h, 0x400|uint64(k))
	}
	return h
}
