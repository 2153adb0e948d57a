package main

import (
	"fmt"
	"strconv"

	"github.com/prdtools/prd/pkg/acoustics"
	"github.com/prdtools/prd/pkg/grid"
	"github.com/prdtools/prd/pkg/pool"
	"github.com/prdtools/prd/pkg/prd"
	"github.com/urfave/cli/v2"
)

func layoutFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "rows", Aliases: []string{"r"}, Required: true, Usage: "number of rows"},
		&cli.IntFlag{Name: "cols", Aliases: []string{"c"}, Required: true, Usage: "number of columns"},
		&cli.StringFlag{Name: "strategy", Value: grid.SumMod.String(), Usage: "sum_mod, product_mod, row_only, col_only or folded"},
		&cli.Uint64Flag{Name: "row-modulus", Usage: "row sequence modulus (default rows+1, rows·cols+1 when folded)"},
		&cli.Uint64Flag{Name: "col-modulus", Usage: "column sequence modulus (default cols+1)"},
		&cli.Uint64Flag{Name: "row-root", Usage: "row primitive root (default smallest)"},
		&cli.Uint64Flag{Name: "col-root", Usage: "column primitive root (default smallest)"},
		&cli.Uint64Flag{Name: "start", Usage: "first exponent of the sequences"},
		&cli.Uint64Flag{Name: "modulus", Usage: "combine modulus of sum_mod and product_mod"},
		&cli.Float64Flag{Name: "step", Usage: "depth per index (default 1)"},
		&cli.Float64Flag{Name: "offset", Usage: "depth of index 0 (default centered)"},
		&cli.Float64Flag{Name: "quantum", Usage: "round depths to multiples of this"},
		&cli.Float64Flag{Name: "freq", Aliases: []string{"f"}, Usage: "design frequency in Hz, sets the step to λ/(2K) cm"},
		&cli.Float64Flag{Name: "sos", Value: acoustics.SpeedOfSound, Usage: "speed of sound in m/s"},
	}
}

func (e *env) parameters(c *cli.Context) (prd.Parameters, error) {
	strategy, err := grid.ParseStrategy(c.String("strategy"))
	if err != nil {
		return prd.Parameters{}, err
	}
	p := prd.Parameters{
		Rows:            c.Int("rows"),
		Cols:            c.Int("cols"),
		RowModulus:      c.Uint64("row-modulus"),
		ColModulus:      c.Uint64("col-modulus"),
		RowRoot:         c.Uint64("row-root"),
		ColRoot:         c.Uint64("col-root"),
		Start:           c.Uint64("start"),
		Strategy:        strategy,
		Modulus:         c.Uint64("modulus"),
		Step:            c.Float64("step"),
		Quantum:         c.Float64("quantum"),
		DesignFrequency: c.Float64("freq"),
		SpeedOfSound:    c.Float64("sos"),
		Kernel:          e.kernel,
	}
	if c.IsSet("offset") {
		p = p.WithOffset(c.Float64("offset"))
	}
	return p, nil
}

func tableCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "print the index and depth grids of a layout",
		Flags: append(layoutFlags(),
			&cli.StringFlag{Name: "format", Value: "text", Usage: "text or csv"},
			&cli.BoolFlag{Name: "indices", Usage: "print sequence indices instead of depths"},
			&cli.IntFlag{Name: "precision", Value: 2, Usage: "decimals of printed depths"},
		),
		Action: func(c *cli.Context) error {
			p, err := e.parameters(c)
			if err != nil {
				return err
			}
			l, err := prd.Compute(p)
			if err != nil {
				return err
			}
			return e.printLayout(l, c.String("format"), c.Bool("indices"), c.Int("precision"))
		},
	}
}

func validateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "check layout parameters, reporting every problem",
		Flags: layoutFlags(),
		Action: func(c *cli.Context) error {
			p, err := e.parameters(c)
			if err != nil {
				return err
			}
			if err := p.Validate().Err(); err != nil {
				return err
			}
			fmt.Fprintln(e.stdout, "ok")
			return nil
		},
	}
}

func rootsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "roots",
		Usage:     "print number theoretic facts about a modulus",
		ArgsUsage: "<n>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 10, Usage: "number of primitive roots to list, 0 for all"},
		},
		Action: func(c *cli.Context) error {
			n, err := strconv.ParseUint(c.Args().First(), 10, 64)
			if err != nil {
				return fmt.Errorf("roots: modulus %q: %w", c.Args().First(), err)
			}
			return e.printRoots(n, c.Int("limit"))
		},
	}
}

func designCommand(e *env) *cli.Command {
	shared := []cli.Flag{
		&cli.Float64Flag{Name: "min-aspect", Value: 0.4, Usage: "smallest cols/rows"},
		&cli.Float64Flag{Name: "max-aspect", Value: 2.5, Usage: "largest cols/rows"},
		&cli.IntFlag{Name: "pick", Usage: "print the layout of the n-th design (1-based)"},
		&cli.Float64Flag{Name: "freq", Aliases: []string{"f"}, Value: 500, Usage: "design frequency in Hz of the picked layout"},
		&cli.Uint64Flag{Name: "root", Usage: "primitive root of the picked layout (default chosen)"},
		&cli.StringFlag{Name: "format", Value: "text", Usage: "text or csv"},
		&cli.IntFlag{Name: "workers", Usage: "designer workers, 0 for one per CPU"},
	}
	designer := func(c *cli.Context) (*prd.Designer, *pool.Pool) {
		pl := pool.NewPool(c.Int("workers"))
		d := prd.NewDesigner(pl, e.log)
		d.AspectRatioMin = c.Float64("min-aspect")
		d.AspectRatioMax = c.Float64("max-aspect")
		return d, pl
	}
	return &cli.Command{
		Name:  "design",
		Usage: "search for diffuser sizes",
		Subcommands: []*cli.Command{
			{
				Name:  "cols",
				Usage: "designs with a given number of columns",
				Flags: append([]cli.Flag{&cli.IntFlag{Name: "cols", Aliases: []string{"c"}, Required: true}}, shared...),
				Action: func(c *cli.Context) error {
					d, pl := designer(c)
					defer pl.TearDown()
					results, err := d.FromColumns(c.Int("cols"))
					if err != nil {
						return err
					}
					return e.printDesigns(c, results)
				},
			},
			{
				Name:  "prime",
				Usage: "designs for a given prime, or the next prime above it",
				Flags: append([]cli.Flag{&cli.Uint64Flag{Name: "prime", Aliases: []string{"p"}, Required: true}}, shared...),
				Action: func(c *cli.Context) error {
					d, pl := designer(c)
					defer pl.TearDown()
					prime, results, err := d.FromPrime(c.Uint64("prime"))
					if err != nil {
						return err
					}
					if prime != c.Uint64("prime") {
						fmt.Fprintf(e.stdout, "using %d for prime\n", prime)
					}
					return e.printDesigns(c, results)
				},
			},
		},
	}
}
