// Command prd computes primitive root diffuser layouts and searches for
// suitable diffuser sizes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prdtools/prd/pkg/cache"
	"github.com/prdtools/prd/pkg/math/numtheory"
	"github.com/prdtools/prd/pkg/prd"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var version = "v0.1.0"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// env is shared by all commands of one invocation.
type env struct {
	stdout io.Writer
	log    zerolog.Logger
	kernel *numtheory.Kernel
}

// run is the actual entry point, returning an exit code. args includes the
// program name so it can be tested in isolation.
func run(args []string, stdout, stderr io.Writer) int {
	e := &env{stdout: stdout, log: zerolog.Nop()}
	app := &cli.App{
		Name:      "prd",
		Usage:     "primitive root diffuser layouts",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "verbosity", Value: 2, Usage: "log level 0-5 (0=silent, 5=trace)"},
			&cli.IntFlag{Name: "cache-bytes", Value: 0, Usage: "kernel cache size, 0 for the default"},
		},
		Before: func(c *cli.Context) error {
			e.log = newLogger(stderr, c.Int("verbosity"))
			e.kernel = numtheory.NewKernel(cache.New(c.Int("cache-bytes")))
			return nil
		},
		Commands: []*cli.Command{
			tableCommand(e),
			validateCommand(e),
			rootsCommand(e),
			designCommand(e),
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}

	if err := app.Run(args); err != nil {
		var errs prd.ValidationErrors
		if errors.As(err, &errs) {
			fmt.Fprintln(stderr, "Error: invalid parameters")
			for _, ve := range errs {
				fmt.Fprintf(stderr, "  %v\n", ve)
			}
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	var lvl zerolog.Level
	switch {
	case verbosity <= 0:
		lvl = zerolog.Disabled
	case verbosity == 1:
		lvl = zerolog.ErrorLevel
	case verbosity == 2:
		lvl = zerolog.WarnLevel
	case verbosity == 3:
		lvl = zerolog.InfoLevel
	case verbosity == 4:
		lvl = zerolog.DebugLevel
	default:
		lvl = zerolog.TraceLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(lvl).With().
		Timestamp().
		Str("cmd", "prd").
		Logger()
}
