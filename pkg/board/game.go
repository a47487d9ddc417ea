// Package board contains the piece, bank and board representation for a
// two-player star/ship strategy game over a shared stock of 36 colored,
// sized pieces, along with the full legal-move semantics.
package board

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Game is the complete position state: the 36-slot board, the derived bank
// counters, the turn state machine, the move-in-progress marker and the two
// home-system references. A Game is a synchronous state transformer owned
// exclusively by its caller; an accepted move mutates it in place, a
// rejected move leaves it untouched.
type Game struct {
	slots  [NumKeys]Slot
	bank   Bank
	turn   Turn
	moving lang.Optional[Key]
	homes  [NumPlayers]lang.Optional[Key]
}

// NewGame returns a fresh game: every slot banked, white to place its first
// home star.
func NewGame() *Game {
	return &Game{
		bank: NewBank(),
		turn: InitialTurn(),
	}
}

// Clone returns an independent deep copy with equal observable state.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// Turn returns the current turn state.
func (g *Game) Turn() Turn {
	return g.turn
}

// Bank returns the stock counters.
func (g *Game) Bank() Bank {
	return g.bank
}

// At returns the state of the given slot.
func (g *Game) At(k Key) Slot {
	return g.slots[k]
}

// Moving returns the ship key of a star-to-star move in progress, if any.
func (g *Game) Moving() lang.Optional[Key] {
	return g.moving
}

// Home returns the player's home system key, once chosen during setup.
func (g *Game) Home(p Player) lang.Optional[Key] {
	return g.homes[p]
}

// SetupDone returns true once both players have placed their home systems.
func (g *Game) SetupDone() bool {
	return g.turn.Phase == Action || g.turn.Phase == Sacrifice
}

// Eliminated returns true if the player's home system is gone or holds none
// of their ships. Meaningful only once setup is done.
func (g *Game) Eliminated(p Player) bool {
	home, ok := g.homes[p].V()
	if !ok {
		return false
	}
	s := g.slots[home]
	if s.Kind != Star && s.Kind != BinaryFirst {
		return true
	}
	ckey, ok := s.Child.V()
	if !ok {
		return true
	}
	alive := false
	g.eachShip(ckey, func(k Key, js Slot) bool {
		if js.Owner == p {
			alive = true
			return false
		}
		return true
	})
	return !alive
}

// Apply attempts the move. Returns true iff accepted, with all mutations
// applied and the turn advanced as required; a rejected move has no effect.
// Out-of-range payloads are rejected without consulting state.
func (g *Game) Apply(m Move) bool {
	switch m.Kind {
	case KindAttack:
		return m.Piece.IsValid() && g.applyAttack(m.Piece)
	case KindConstruct:
		return m.Piece.IsValid() && g.applyConstruct(m.Piece)
	case KindTransform:
		return m.Piece.IsValid() && m.Color.IsValid() && g.applyTransform(m.Piece, m.Color)
	case KindSacrifice:
		return m.Piece.IsValid() && g.applySacrifice(m.Piece)
	case KindMoveInit:
		return m.Piece.IsValid() && g.applyMoveInit(m.Piece)
	case KindMoveFinish:
		return m.System.IsValid() && g.applyMoveFinish(m.System)
	case KindMove:
		if !m.Piece.IsValid() || !m.System.IsValid() {
			return false
		}
		if !g.applyMoveInit(m.Piece) {
			return false
		}
		if !g.applyMoveFinish(m.System) {
			g.moving = lang.Optional[Key]{} // init only set the marker
			return false
		}
		return true
	case KindSelect:
		return m.Size.IsValid() && m.Color.IsValid() && g.applySelect(m.Size, m.Color)
	case KindCatastrophe:
		return m.Piece.IsValid() && g.applyCatastrophe(m.Piece)
	case KindPass:
		return g.applyPass()
	default:
		return false
	}
}

// advance moves to the successor turn state. A change of player runs the
// forced catastrophe sweep exactly once.
func (g *Game) advance() {
	next := g.turn.Next()
	if next.Player != g.turn.Player {
		g.forceCatastrophes()
	}
	g.turn = next
}

// ability reports whether the phase permits the given ability right now:
// always during a matching sacrifice, otherwise only in the action phase
// where a color source at the system is still required. The second result
// is true for the sacrifice case.
func (g *Game) ability(a Ability) (ok, sacrifice bool) {
	switch g.turn.Phase {
	case Action:
		return true, false
	case Sacrifice:
		return g.turn.Ability == a, true
	default:
		return false, false
	}
}

// eachShip walks the circular sibling ring starting at start, invoking fn
// for every ship in ring order until the ring closes or fn returns false.
func (g *Game) eachShip(start Key, fn func(k Key, s Slot) bool) {
	k := start
	for {
		s := g.slots[k]
		if s.Kind != Ship {
			panic(fmt.Sprintf("ring member %v is not a ship: %v", k, s.Kind))
		}
		if !fn(k, s) {
			return
		}
		if s.Next == start {
			return
		}
		k = s.Next
	}
}

// predecessor returns the ship whose Next points at k. Equals k for a lone
// ship.
func (g *Game) predecessor(k Key) Key {
	prev := k
	for g.slots[prev].Next != k {
		prev = g.slots[prev].Next
	}
	return prev
}

// firstEmpty returns the lowest empty slot in [start, end).
func (g *Game) firstEmpty(start, end Key) (Key, bool) {
	for k := start; k < end; k++ {
		if g.slots[k].Kind == Empty {
			return k, true
		}
	}
	return 0, false
}

// unlinkShip splices the ship at k out of its sibling ring without banking
// it. A plain star left with no ships is removed and banked; a binary star
// merely loses its child reference.
func (g *Game) unlinkShip(k Key) {
	s := g.slots[k]
	if s.Kind != Ship {
		panic(fmt.Sprintf("unlink of non-ship %v: %v", k, s.Kind))
	}

	prev := g.predecessor(k)
	st := &g.slots[s.Parent]
	if prev == k {
		switch st.Kind {
		case Star:
			g.slots[s.Parent] = Slot{}
			g.bank.Put(s.Parent.Size(), s.Parent.Color())
		case BinaryFirst:
			st.Child = lang.Optional[Key]{}
		default:
			panic(fmt.Sprintf("ship %v parent %v is not a star: %v", k, s.Parent, st.Kind))
		}
	} else {
		g.slots[prev].Next = s.Next
		if c, ok := st.Child.V(); ok && c == k {
			st.Child = lang.Some(s.Next)
		}
	}
	g.slots[k] = Slot{}
}

// removeShip unlinks the ship at k and returns it to the bank.
func (g *Game) removeShip(k Key) {
	size, color := k.Size(), k.Color()
	g.unlinkShip(k)
	g.bank.Put(size, color)
}

// starSizes returns the one or two star sizes of the system anchored at the
// given star slot. Two systems are connected iff their size sets are
// disjoint.
func (g *Game) starSizes(k Key) (Size, Size) {
	switch s := g.slots[k]; s.Kind {
	case Star:
		return k.Size(), k.Size()
	case BinaryFirst:
		if pair, ok := s.Pair.V(); ok {
			return k.Size(), pair.Size()
		}
		return k.Size(), k.Size()
	default:
		panic(fmt.Sprintf("star sizes of non-star %v: %v", k, s.Kind))
	}
}

func (g *Game) applyAttack(tkey Key) bool {
	if _, ok := g.moving.V(); ok {
		return false
	}
	allowed, sacrifice := g.ability(AbilityAttack)
	if !allowed {
		return false
	}

	t := g.slots[tkey]
	if t.Kind != Ship || t.Owner == g.turn.Player {
		return false
	}

	// The attacker needs a red source at the system (unless sacrificing) and
	// no target larger than its largest ship there; the friendly maximum
	// starts at small, so a small target needs no friendly ship. The
	// lowest-key enemy replica of a (size, color) must be taken first.
	hasColor := sacrifice || t.Parent.Color() == Red
	maxSize := Small
	canonical := true
	g.eachShip(tkey, func(k Key, s Slot) bool {
		if s.Owner != g.turn.Player {
			if k < tkey && k.Size() == tkey.Size() && k.Color() == tkey.Color() {
				canonical = false
				return false
			}
			return true
		}
		if k.Color() == Red {
			hasColor = true
		}
		if k.Size() > maxSize {
			maxSize = k.Size()
		}
		return true
	})
	if !canonical || !hasColor || maxSize < tkey.Size() {
		return false
	}

	g.slots[tkey].Owner = g.turn.Player
	g.advance()
	return true
}

func (g *Game) applyConstruct(tkey Key) bool {
	if _, ok := g.moving.V(); ok {
		return false
	}
	allowed, sacrifice := g.ability(AbilityConstruct)
	if !allowed {
		return false
	}

	t := g.slots[tkey]
	if t.Kind != Ship || t.Owner != g.turn.Player {
		return false
	}

	// The constructor must be the lowest-key friendly ship of its color at
	// the system, with a green source present (unless sacrificing).
	hasColor := sacrifice || t.Parent.Color() == Green
	canonical := true
	g.eachShip(tkey, func(k Key, s Slot) bool {
		if s.Owner != g.turn.Player {
			return true
		}
		if k < tkey && k.Color() == tkey.Color() {
			canonical = false
			return false
		}
		if k.Color() == Green {
			hasColor = true
		}
		return true
	})
	if !canonical || !hasColor {
		return false
	}

	// The new ship is the lowest banked key of the color, which is also its
	// smallest stocked size. It joins the ring right after the constructor.
	nkey, ok := g.firstEmpty(colorKeys(tkey.Color()))
	if !ok {
		return false
	}
	g.bank.Take(nkey.Size(), nkey.Color())
	g.slots[nkey] = Slot{Kind: Ship, Parent: t.Parent, Next: t.Next, Owner: g.turn.Player}
	g.slots[tkey].Next = nkey
	g.advance()
	return true
}

func (g *Game) applyTransform(tkey Key, color Color) bool {
	if _, ok := g.moving.V(); ok {
		return false
	}
	allowed, sacrifice := g.ability(AbilityTransform)
	if !allowed {
		return false
	}

	t := g.slots[tkey]
	if t.Kind != Ship || t.Owner != g.turn.Player {
		return false
	}

	hasColor := sacrifice || t.Parent.Color() == Blue
	canonical := true
	prev := tkey
	g.eachShip(tkey, func(k Key, s Slot) bool {
		prev = k
		if s.Owner != g.turn.Player {
			return true
		}
		if k < tkey && k.Size() == tkey.Size() && k.Color() == tkey.Color() {
			canonical = false
			return false
		}
		if k.Color() == Blue {
			hasColor = true
		}
		return true
	})
	if !canonical || !hasColor {
		return false
	}

	nkey, ok := g.firstEmpty(pieceKeys(color, tkey.Size()))
	if !ok {
		return false
	}
	g.bank.Take(nkey.Size(), nkey.Color())
	g.bank.Put(tkey.Size(), tkey.Color())

	// Splice nkey into tkey's ring position. The walk above left prev as the
	// ring predecessor of tkey.
	if prev == tkey {
		g.slots[nkey] = Slot{Kind: Ship, Parent: t.Parent, Next: nkey, Owner: t.Owner}
	} else {
		g.slots[prev].Next = nkey
		g.slots[nkey] = Slot{Kind: Ship, Parent: t.Parent, Next: t.Next, Owner: t.Owner}
	}
	g.slots[tkey] = Slot{}
	if c, ok := g.slots[t.Parent].Child.V(); ok && c == tkey {
		g.slots[t.Parent].Child = lang.Some(nkey)
	}
	g.advance()
	return true
}

func (g *Game) applySacrifice(tkey Key) bool {
	if _, ok := g.moving.V(); ok {
		return false
	}
	if g.turn.Phase != Action {
		return false
	}

	t := g.slots[tkey]
	if t.Kind != Ship || t.Owner != g.turn.Player {
		return false
	}

	canonical := true
	g.eachShip(tkey, func(k Key, s Slot) bool {
		if s.Owner != g.turn.Player {
			return true
		}
		if k < tkey && k.Size() == tkey.Size() && k.Color() == tkey.Color() {
			canonical = false
			return false
		}
		return true
	})
	if !canonical {
		return false
	}

	g.removeShip(tkey)
	g.turn = Turn{
		Player:  g.turn.Player,
		Phase:   Sacrifice,
		Count:   tkey.Size().SacrificeTurns(),
		Ability: tkey.Color().Ability(),
	}
	return true
}

func (g *Game) applyMoveInit(tkey Key) bool {
	if _, ok := g.moving.V(); ok {
		return false
	}
	allowed, sacrifice := g.ability(AbilityMove)
	if !allowed {
		return false
	}

	t := g.slots[tkey]
	if t.Kind != Ship || t.Owner != g.turn.Player {
		return false
	}

	hasColor := sacrifice || t.Parent.Color() == Yellow
	canonical := true
	g.eachShip(tkey, func(k Key, s Slot) bool {
		if s.Owner != g.turn.Player {
			return true
		}
		if k < tkey && k.Size() == tkey.Size() && k.Color() == tkey.Color() {
			canonical = false
			return false
		}
		if k.Color() == Yellow {
			hasColor = true
		}
		return true
	})
	if !canonical || !hasColor {
		return false
	}

	g.moving = lang.Some(tkey)
	return true
}

func (g *Game) applyMoveFinish(tstar Key) bool {
	fkey, ok := g.moving.V()
	if !ok {
		return false
	}

	target := g.slots[tstar]
	if target.Kind != Star && target.Kind != BinaryFirst {
		return false
	}

	f := g.slots[fkey]
	if f.Kind != Ship {
		panic(fmt.Sprintf("moving piece %v is not a ship: %v", fkey, f.Kind))
	}

	fs1, fs2 := g.starSizes(f.Parent)
	ts1, ts2 := g.starSizes(tstar)
	if fs1 == ts1 || fs1 == ts2 || fs2 == ts1 || fs2 == ts2 {
		return false
	}

	g.unlinkShip(fkey)
	if ckey, ok := target.Child.V(); ok {
		c := g.slots[ckey]
		g.slots[ckey].Next = fkey
		g.slots[fkey] = Slot{Kind: Ship, Parent: c.Parent, Next: c.Next, Owner: g.turn.Player}
	} else {
		g.slots[fkey] = Slot{Kind: Ship, Parent: tstar, Next: fkey, Owner: g.turn.Player}
		g.slots[tstar].Child = lang.Some(fkey)
	}
	g.moving = lang.Optional[Key]{}
	g.advance()
	return true
}

func (g *Game) applySelect(size Size, color Color) bool {
	switch g.turn.Phase {
	case SetupStar1, SetupStar2, SetupShip:
	default:
		return false
	}

	nkey, ok := g.firstEmpty(pieceKeys(color, size))
	if !ok {
		return false
	}
	g.bank.Take(size, color)

	switch g.turn.Phase {
	case SetupStar1:
		g.slots[nkey] = Slot{Kind: BinaryFirst}
		g.homes[g.turn.Player] = lang.Some(nkey)
	case SetupStar2:
		home := g.mustHome()
		g.slots[nkey] = Slot{Kind: BinarySecond, Pair: lang.Some(home)}
		g.slots[home].Pair = lang.Some(nkey)
	case SetupShip:
		home := g.mustHome()
		g.slots[nkey] = Slot{Kind: Ship, Parent: home, Next: nkey, Owner: g.turn.Player}
		g.slots[home].Child = lang.Some(nkey)
	}
	g.advance()
	return true
}

func (g *Game) mustHome() Key {
	home, ok := g.homes[g.turn.Player].V()
	if !ok {
		panic(fmt.Sprintf("no home system for %v", g.turn.Player))
	}
	return home
}

func (g *Game) applyPass() bool {
	if _, ok := g.moving.V(); ok {
		return false
	}
	if g.turn.Phase != Action {
		return false
	}
	g.turn = Turn{Player: g.turn.Player.Opponent(), Phase: Action}
	g.forceCatastrophes()
	return true
}

func (g *Game) String() string {
	var sb strings.Builder
	sb.WriteString(g.turn.String())
	if k, ok := g.moving.V(); ok {
		fmt.Fprintf(&sb, " moving=%v", label(k))
	}
	for k := ZeroKey; k < NumKeys; k++ {
		s := g.slots[k]
		if s.Kind != Star && s.Kind != BinaryFirst {
			continue
		}
		sb.WriteString(" [")
		sb.WriteString(label(k))
		if pair, ok := s.Pair.V(); ok {
			fmt.Fprintf(&sb, "+%v", label(pair))
		}
		if ckey, ok := s.Child.V(); ok {
			sb.WriteString(":")
			g.eachShip(ckey, func(j Key, js Slot) bool {
				fmt.Fprintf(&sb, " %v.%v", js.Owner, label(j))
				return true
			})
		}
		sb.WriteString("]")
	}
	fmt.Fprintf(&sb, " bank{%v}", g.bank)
	return sb.String()
}
