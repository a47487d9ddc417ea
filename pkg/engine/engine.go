// Package engine wraps the rules core with a named, versioned facade for
// drivers: textual moves, takeback and position inspection.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/starlight/pkg/board"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 3, 0)

// Engine encapsulates a running match behind the textual move interface.
type Engine struct {
	name, author string

	m  *board.Match
	mu sync.Mutex
}

func New(ctx context.Context, name, author string) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		m:      board.NewMatch(board.NewGame()),
	}
	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Match returns a forked match.
func (e *Engine) Match() *board.Match {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.m.Fork()
}

// Position returns the current position in display form. Convenience
// function.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.m.Game().String()
}

// Result returns the current adjudicated result.
func (e *Engine) Result() board.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.m.Result()
}

// Reset resets the engine to a fresh game.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.m = board.NewMatch(board.NewGame())
	logw.Infof(ctx, "Reset game")
}

// Move applies a move in the textual grammar, such as "select small red" or
// "attack 14".
func (e *Engine) Move(ctx context.Context, str string) error {
	m, err := board.ParseMove(str)
	if err != nil {
		return fmt.Errorf("malformed move '%v': %w", str, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.m.PushMove(m) {
		return fmt.Errorf("illegal move: '%v'", str)
	}
	logw.Debugf(ctx, "Applied %v: %v", m, e.m.Game())
	return nil
}

// TakeBack takes back the latest move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.m.PopMove(); !ok {
		return fmt.Errorf("no move to take back")
	}
	return nil
}

// LegalMoves returns the legal moves in the current position, in canonical
// enumeration order.
func (e *Engine) LegalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.m.Game().LegalMoves()
}
