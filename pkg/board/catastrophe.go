package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// applyCatastrophe takes a census of the same-color cluster at the ship
// tkey's system: the target, every same-color ship in its sibling ring and
// any system star sharing the color. Four or more pieces overload the color
// and the whole cluster returns to the bank. A system losing its last star
// scatters its remaining ships back to the bank as well.
//
// A catastrophe is an interstitial effect: it never advances the turn.
func (g *Game) applyCatastrophe(tkey Key) bool {
	t := g.slots[tkey]
	if t.Kind != Ship {
		return false
	}
	color := tkey.Color()

	var stars []Key
	switch ps := g.slots[t.Parent]; ps.Kind {
	case Star:
		if t.Parent.Color() == color {
			stars = append(stars, t.Parent)
		}
	case BinaryFirst:
		if t.Parent.Color() == color {
			stars = append(stars, t.Parent)
		}
		if pair, ok := ps.Pair.V(); ok && pair.Color() == color {
			stars = append(stars, pair)
		}
	default:
		panic(fmt.Sprintf("ship %v parent %v is not a star: %v", tkey, t.Parent, ps.Kind))
	}

	var ships []Key
	g.eachShip(tkey, func(k Key, s Slot) bool {
		if k.Color() == color {
			ships = append(ships, k)
		}
		return true
	})

	if len(stars)+len(ships) < 4 {
		return false
	}

	for _, k := range ships {
		g.removeShip(k)
	}
	for _, k := range stars {
		g.removeStar(k)
	}

	// The removal may have taken the ship whose move was in progress.
	if mk, ok := g.moving.V(); ok && g.slots[mk].Kind != Ship {
		g.moving = lang.Optional[Key]{}
	}
	return true
}

// removeStar banks the star at k. A plain star or the last star of a system
// takes the remaining ships with it; a surviving binary partner inherits
// the system and its ring.
func (g *Game) removeStar(k Key) {
	s := g.slots[k]
	switch s.Kind {
	case Empty:
		// already gone with its last ship

	case Star:
		g.scatter(s.Child)
		g.slots[k] = Slot{}
		g.bank.Put(k.Size(), k.Color())

	case BinaryFirst:
		if pair, ok := s.Pair.V(); ok && g.slots[pair].Kind == BinarySecond {
			g.slots[pair] = Slot{Kind: BinaryFirst, Child: s.Child}
			if ckey, ok := s.Child.V(); ok {
				g.eachShip(ckey, func(j Key, js Slot) bool {
					g.slots[j].Parent = pair
					return true
				})
			}
			for p := ZeroPlayer; p < NumPlayers; p++ {
				if h, ok := g.homes[p].V(); ok && h == k {
					g.homes[p] = lang.Some(pair)
				}
			}
		} else {
			g.scatter(s.Child)
		}
		g.slots[k] = Slot{}
		g.bank.Put(k.Size(), k.Color())

	case BinarySecond:
		pair, ok := s.Pair.V()
		if !ok {
			panic(fmt.Sprintf("binary second %v has no pair", k))
		}
		if g.slots[pair].Kind == BinaryFirst {
			g.slots[pair].Pair = lang.Optional[Key]{}
		}
		g.slots[k] = Slot{}
		g.bank.Put(k.Size(), k.Color())

	default:
		panic(fmt.Sprintf("star removal of ship slot %v", k))
	}
}

// scatter returns every ship of the given ring to the bank.
func (g *Game) scatter(child lang.Optional[Key]) {
	ckey, ok := child.V()
	if !ok {
		return
	}
	var keys []Key
	g.eachShip(ckey, func(k Key, s Slot) bool {
		keys = append(keys, k)
		return true
	})
	for _, k := range keys {
		g.slots[k] = Slot{}
		g.bank.Put(k.Size(), k.Color())
	}
}

// forceCatastrophes attempts a catastrophe at every key in ascending order.
// Removal only ever shrinks clusters, so a single sweep reaches a fixpoint.
func (g *Game) forceCatastrophes() {
	for k := ZeroKey; k < NumKeys; k++ {
		g.applyCatastrophe(k)
	}
}
