package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/starlight/pkg/engine"
	"github.com/herohde/starlight/pkg/engine/console"
	"github.com/seekerror/logw"
)

var (
	trace = flag.Bool("trace", false, "Echo the board after every accepted move")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: starlight [options]

STARLIGHT is a rules engine for a two-player star/ship strategy game,
spoken over a console line protocol on stdin/stdout.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "starlight", "herohde")

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in, console.WithTrace(*trace))
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
	logw.Infof(ctx, "Exiting")
}
