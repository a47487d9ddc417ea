package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind indicates the kind of move.
type Kind uint8

const (
	KindAttack Kind = iota
	KindConstruct
	KindTransform
	KindSacrifice
	KindMoveInit
	KindMoveFinish
	// KindMove is the combined star-to-star move: init and finish applied as
	// one atomic action. It is the form the wire code carries.
	KindMove
	KindSelect
	KindCatastrophe
	KindPass
)

// Move represents a not-necessarily legal move. Which fields are meaningful
// depends on Kind: Piece for the key-addressed kinds, System for the move
// destination, Size and Color for setup selection, Color for transform.
type Move struct {
	Kind   Kind
	Piece  Key
	System Key
	Size   Size
	Color  Color
}

// ParseMove parses a move in the textual grammar, such as "attack 5",
// "transform 5 red", "select small blue" or "pass". Keys out of 0..35 and
// unknown words are rejected without consulting game state.
func ParseMove(str string) (Move, error) {
	parts := strings.Fields(strings.TrimSpace(str))
	if len(parts) == 0 {
		return Move{}, fmt.Errorf("empty move")
	}

	key := func(arg string) (Key, error) {
		v, err := strconv.Atoi(arg)
		if err != nil || v < 0 || v >= int(NumKeys) {
			return 0, fmt.Errorf("invalid key: '%v'", arg)
		}
		return Key(v), nil
	}

	switch parts[0] {
	case "attack", "construct", "sacrifice", "moveinit", "movefinish", "catastrophe":
		if len(parts) != 2 {
			return Move{}, fmt.Errorf("invalid move: '%v'", str)
		}
		k, err := key(parts[1])
		if err != nil {
			return Move{}, err
		}
		kind := map[string]Kind{
			"attack":      KindAttack,
			"construct":   KindConstruct,
			"sacrifice":   KindSacrifice,
			"moveinit":    KindMoveInit,
			"movefinish":  KindMoveFinish,
			"catastrophe": KindCatastrophe,
		}[parts[0]]
		if kind == KindMoveFinish {
			return Move{Kind: kind, System: k}, nil
		}
		return Move{Kind: kind, Piece: k}, nil

	case "move":
		if len(parts) != 3 {
			return Move{}, fmt.Errorf("invalid move: '%v'", str)
		}
		piece, err := key(parts[1])
		if err != nil {
			return Move{}, err
		}
		system, err := key(parts[2])
		if err != nil {
			return Move{}, err
		}
		return Move{Kind: KindMove, Piece: piece, System: system}, nil

	case "transform":
		if len(parts) != 3 {
			return Move{}, fmt.Errorf("invalid move: '%v'", str)
		}
		piece, err := key(parts[1])
		if err != nil {
			return Move{}, err
		}
		color, ok := ParseColor(strings.ToLower(parts[2]))
		if !ok {
			return Move{}, fmt.Errorf("invalid color: '%v'", parts[2])
		}
		return Move{Kind: KindTransform, Piece: piece, Color: color}, nil

	case "select":
		if len(parts) != 3 {
			return Move{}, fmt.Errorf("invalid move: '%v'", str)
		}
		size, ok := ParseSize(strings.ToLower(parts[1]))
		if !ok {
			return Move{}, fmt.Errorf("invalid size: '%v'", parts[1])
		}
		color, ok := ParseColor(strings.ToLower(parts[2]))
		if !ok {
			return Move{}, fmt.Errorf("invalid color: '%v'", parts[2])
		}
		return Move{Kind: KindSelect, Size: size, Color: color}, nil

	case "pass":
		if len(parts) != 1 {
			return Move{}, fmt.Errorf("invalid move: '%v'", str)
		}
		return Move{Kind: KindPass}, nil

	default:
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}
}

func (m Move) Equals(o Move) bool {
	return m == o
}

func (m Move) String() string {
	switch m.Kind {
	case KindAttack:
		return fmt.Sprintf("attack %v", m.Piece)
	case KindConstruct:
		return fmt.Sprintf("construct %v", m.Piece)
	case KindTransform:
		return fmt.Sprintf("transform %v %v", m.Piece, m.Color)
	case KindSacrifice:
		return fmt.Sprintf("sacrifice %v", m.Piece)
	case KindMoveInit:
		return fmt.Sprintf("moveinit %v", m.Piece)
	case KindMoveFinish:
		return fmt.Sprintf("movefinish %v", m.System)
	case KindMove:
		return fmt.Sprintf("move %v %v", m.Piece, m.System)
	case KindSelect:
		return fmt.Sprintf("select %v %v", m.Size, m.Color)
	case KindCatastrophe:
		return fmt.Sprintf("catastrophe %v", m.Piece)
	case KindPass:
		return "pass"
	default:
		return "?"
	}
}

// MoveCode is the 16-bit wire form of a move: a 3-bit tag in the top bits
// over a 13-bit payload split as a 6-bit and a 7-bit field. Colors travel in
// the raw encoding {0,16,32,48}; sizes as {0,1,2}. The split moveinit and
// movefinish actions are not wire-representable; the wire carries the
// combined form.
type MoveCode uint16

const (
	codeB3Mask MoveCode = 0b1110_0000_0000_0000
	codeB6Mask MoveCode = 0b0001_1111_1000_0000
	codeB7Mask MoveCode = 0b0000_0000_0111_1111

	codeB3Shift = 13
	codeB6Shift = 7
)

const (
	tagAttack uint16 = iota
	tagMove
	tagConstruct
	tagTransform
	tagSacrifice
	tagSelect
	tagCatastrophe
	tagPass
)

func rawColor(c Color) uint16 {
	return uint16(c) << 4
}

func parseRawColor(v uint16) (Color, bool) {
	if v&0xF != 0 || v>>4 > uint16(Blue) {
		return 0, false
	}
	return Color(v >> 4), true
}

// Encode returns the wire form of the move. Returns false for the split
// moveinit/movefinish kinds and for out-of-range payloads.
func (m Move) Encode() (MoveCode, bool) {
	switch m.Kind {
	case KindAttack:
		return MoveCode(tagAttack<<codeB3Shift | uint16(m.Piece)), m.Piece.IsValid()
	case KindMove:
		return MoveCode(tagMove<<codeB3Shift | uint16(m.Piece)<<codeB6Shift | uint16(m.System)),
			m.Piece.IsValid() && m.System.IsValid()
	case KindConstruct:
		return MoveCode(tagConstruct<<codeB3Shift | uint16(m.Piece)), m.Piece.IsValid()
	case KindTransform:
		return MoveCode(tagTransform<<codeB3Shift | uint16(m.Piece)<<codeB6Shift | rawColor(m.Color)),
			m.Piece.IsValid() && m.Color.IsValid()
	case KindSacrifice:
		return MoveCode(tagSacrifice<<codeB3Shift | uint16(m.Piece)), m.Piece.IsValid()
	case KindSelect:
		return MoveCode(tagSelect<<codeB3Shift | uint16(m.Size)<<codeB6Shift | rawColor(m.Color)),
			m.Size.IsValid() && m.Color.IsValid()
	case KindCatastrophe:
		return MoveCode(tagCatastrophe<<codeB3Shift | uint16(m.Piece)), m.Piece.IsValid()
	case KindPass:
		return MoveCode(tagPass << codeB3Shift), true
	default:
		return 0, false
	}
}

// Decode returns the move carried by the wire code. Returns false for
// malformed payloads: keys >= 36, raw colors outside {0,16,32,48}, sizes
// above 2.
func (mc MoveCode) Decode() (Move, bool) {
	b3 := uint16(mc&codeB3Mask) >> codeB3Shift
	b6 := uint16(mc&codeB6Mask) >> codeB6Shift
	b7 := uint16(mc & codeB7Mask)

	switch b3 {
	case tagAttack:
		return Move{Kind: KindAttack, Piece: Key(b7)}, Key(b7).IsValid()
	case tagMove:
		return Move{Kind: KindMove, Piece: Key(b6), System: Key(b7)},
			Key(b6).IsValid() && Key(b7).IsValid()
	case tagConstruct:
		return Move{Kind: KindConstruct, Piece: Key(b7)}, Key(b7).IsValid()
	case tagTransform:
		color, ok := parseRawColor(b7)
		return Move{Kind: KindTransform, Piece: Key(b6), Color: color}, ok && Key(b6).IsValid()
	case tagSacrifice:
		return Move{Kind: KindSacrifice, Piece: Key(b7)}, Key(b7).IsValid()
	case tagSelect:
		color, ok := parseRawColor(b7)
		return Move{Kind: KindSelect, Size: Size(b6), Color: color}, ok && Size(b6).IsValid()
	case tagCatastrophe:
		return Move{Kind: KindCatastrophe, Piece: Key(b7)}, Key(b7).IsValid()
	case tagPass:
		return Move{Kind: KindPass}, true
	default:
		return Move{}, false
	}
}
