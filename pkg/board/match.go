package board

import "fmt"

type node struct {
	g    *Game
	hash uint64

	next Move // if not current
	prev *node
}

// Match represents a full game with history: positions, repetition counts
// and the adjudicated result. The rules core never declares a result; the
// match layer does, by watching the home systems once setup is complete.
// Not thread-safe.
type Match struct {
	repetitions map[uint64]int
	result      Result
	current     *node
}

// NewMatch starts a match from the given game state.
func NewMatch(g *Game) *Match {
	current := &node{
		g:    g,
		hash: g.Hash(),
	}
	return &Match{
		repetitions: map[uint64]int{current.hash: 1},
		current:     current,
	}
}

// Fork branches off a new match, sharing the node history for past
// positions. If forked, the shared history should not be mutated (via
// PopMove) as the forward moves in the nodes might then become stale.
func (m *Match) Fork() *Match {
	fork := &Match{
		repetitions: map[uint64]int{},
		result:      m.result,
		current: &node{
			g:    m.current.g,
			hash: m.current.hash,
			prev: m.current.prev,
		},
	}
	for k, v := range m.repetitions {
		fork.repetitions[k] = v
	}
	return fork
}

// Game returns the current game state. Callers must not mutate it; use
// Game().Clone() for scratch work.
func (m *Match) Game() *Game {
	return m.current.g
}

func (m *Match) Turn() Turn {
	return m.current.g.Turn()
}

func (m *Match) Result() Result {
	return m.result
}

// Repetitions returns how often the current position has occurred.
func (m *Match) Repetitions() int {
	return m.repetitions[m.current.hash]
}

// PushMove attempts a move. Returns true iff accepted.
func (m *Match) PushMove(mv Move) bool {
	if m.result.Outcome != Undecided {
		return false // the game is over
	}

	next := m.current.g.Clone()
	if !next.Apply(mv) {
		return false
	}

	n := &node{
		g:    next,
		hash: next.Hash(),
		prev: m.current,
	}
	m.current.next = mv
	m.current = n
	m.repetitions[n.hash]++

	m.adjudicateHomes()
	return true
}

// PopMove takes back the last move, if any.
func (m *Match) PopMove() (Move, bool) {
	if m.current.prev == nil {
		return Move{}, false
	}

	m.repetitions[m.current.hash]--
	m.result = Result{Outcome: Undecided} // a legal move was made, so not terminal

	m.current = m.current.prev
	mv := m.current.next
	m.current.next = Move{}
	return mv, true
}

// LastMove returns the last move, if any.
func (m *Match) LastMove() (Move, bool) {
	if m.current.prev != nil {
		return m.current.prev.next, true
	}
	return Move{}, false
}

// Adjudicate the game as given.
func (m *Match) Adjudicate(r Result) {
	m.result = r
}

func (m *Match) adjudicateHomes() {
	g := m.current.g
	if !g.SetupDone() {
		return
	}

	w, b := g.Eliminated(White), g.Eliminated(Black)
	switch {
	case w && b:
		m.result = Result{Outcome: Draw, Reason: MutualDestruction}
	case w:
		m.result = Result{Outcome: Loss(White), Reason: HomeLost}
	case b:
		m.result = Result{Outcome: Loss(Black), Reason: HomeLost}
	}
}

func (m *Match) String() string {
	return fmt.Sprintf("match{game=%v, hash=%x (%v), result=%v}", m.current.g, m.current.hash, m.Repetitions(), m.result)
}
