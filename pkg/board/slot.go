package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// SlotKind tags the five slot states. The zero value is Empty, so a zeroed
// board is a bank-complete board.
type SlotKind uint8

const (
	Empty SlotKind = iota
	Star
	BinaryFirst
	BinarySecond
	Ship
)

func (k SlotKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Star:
		return "star"
	case BinaryFirst:
		return "binary1"
	case BinarySecond:
		return "binary2"
	case Ship:
		return "ship"
	default:
		return "?"
	}
}

// Slot is the state of one piece slot. Which fields are meaningful depends
// on Kind:
//
//   - Star: Child is the first ship of the sibling ring (always present
//     while the star is in play).
//   - BinaryFirst: Child is the first ship of the ring, if any; Pair links
//     to the BinarySecond half, absent between the two setup star picks or
//     after the partner star is destroyed.
//   - BinarySecond: Pair links back to the BinaryFirst half.
//   - Ship: Parent is the slot of the star it inhabits, Next the following
//     ship in the circular sibling ring (itself if alone), Owner its player.
type Slot struct {
	Kind   SlotKind
	Child  lang.Optional[Key]
	Pair   lang.Optional[Key]
	Parent Key
	Next   Key
	Owner  Player
}

// Code returns the packed per-slot code for the slot at key k.
func (s Slot) Code(k Key) PieceCode {
	switch s.Kind {
	case Empty:
		return EmptyCode
	case Star, BinaryFirst, BinarySecond:
		return NewPieceCode(k.Size(), RoleStar, k.Color())
	case Ship:
		role := RoleWhiteShip
		if s.Owner == Black {
			role = RoleBlackShip
		}
		return NewPieceCode(k.Size(), role, k.Color())
	default:
		panic(fmt.Sprintf("invalid slot kind: %v", s.Kind))
	}
}

func colorLetter(c Color) byte {
	return "rygb"[c]
}

func sizeLetter(s Size) byte {
	return "sml"[s]
}

// label is the compact piece notation: size letter, color letter, key.
func label(k Key) string {
	return fmt.Sprintf("%c%c%v", sizeLetter(k.Size()), colorLetter(k.Color()), k)
}
