// Package console contains an interactive line-protocol driver for playing
// and debugging games.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/herohde/starlight/pkg/board"
	"github.com/herohde/starlight/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"go.uber.org/atomic"
)

const ProtocolName = "console"

// Option is a console driver option.
type Option func(*options)

type options struct {
	trace bool
}

// WithTrace makes the driver echo the board after every accepted move.
func WithTrace(enabled bool) Option {
	return func(opt *options) {
		opt.trace = enabled
	}
}

// Driver implements the console protocol: any move in the textual grammar
// is applied directly; a handful of commands inspect and rewind the game.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out   chan<- string
	trace atomic.Bool
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string, opts ...Option) (*Driver, <-chan string) {
	var opt options
	for _, fn := range opts {
		fn(&opt)
	}

	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	d.trace.Store(opt.trace)
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(strings.TrimSpace(line))
			if len(parts) == 0 {
				break
			}

			switch strings.ToLower(parts[0]) {
			case "reset", "r":
				d.e.Reset(ctx)
				d.printBoard()

			case "undo", "u":
				if err := d.e.TakeBack(ctx); err != nil {
					d.out <- fmt.Sprintf("error: %v", err)
					break
				}
				d.printBoard()

			case "print", "p":
				d.printBoard()

			case "bank":
				d.out <- d.e.Match().Game().Bank().String()

			case "legal", "l":
				moves := d.e.LegalMoves()
				list := make([]string, len(moves))
				for i, m := range moves {
					list[i] = m.String()
				}
				d.out <- fmt.Sprintf("%v legal: %v", len(moves), strings.Join(list, ", "))

			case "result":
				d.out <- d.e.Result().String()

			case "trace":
				enabled := len(parts) > 1 && strings.EqualFold(parts[1], "on")
				d.trace.Store(enabled)
				d.out <- fmt.Sprintf("trace=%v", enabled)

			case "help", "h":
				d.out <- "commands: reset, print, bank, legal, undo, result, trace on|off, quit -- or any move, e.g. 'select small red', 'attack 14', 'pass'"

			case "quit", "q":
				logw.Infof(ctx, "Quit requested. Exiting")
				return

			default:
				// Not a command: the whole line is a move.
				if err := d.e.Move(ctx, line); err != nil {
					d.out <- fmt.Sprintf("rejected: %v", err)
					break
				}
				if d.trace.Load() {
					d.printBoard()
				}
				if r := d.e.Result(); r.Outcome != board.Undecided {
					d.out <- fmt.Sprintf("result %v", r)
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed. Exiting")
			return
		}
	}
}

func (d *Driver) printBoard() {
	d.out <- d.e.Position()
}
