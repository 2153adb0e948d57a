package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/prdtools/prd/pkg/math/numtheory"
	"github.com/prdtools/prd/pkg/prd"
	"github.com/urfave/cli/v2"
)

// writeMatrix writes rows of cells as aligned text or CSV.
func writeMatrix(w io.Writer, format string, rows [][]string) error {
	switch strings.ToLower(format) {
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(rows); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		return nil
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
		for _, row := range rows {
			fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (e *env) printLayout(l *prd.Layout, format string, indices bool, precision int) error {
	rows := make([][]string, l.Grid.Rows())
	for i := range rows {
		rows[i] = make([]string, l.Grid.Cols())
		for j := range rows[i] {
			if indices {
				rows[i][j] = strconv.FormatUint(l.Grid.At(i, j), 10)
			} else {
				rows[i][j] = strconv.FormatFloat(l.Depths.At(i, j), 'f', precision, 64)
			}
		}
	}
	if format != "csv" {
		fmt.Fprintf(e.stdout, "# %d×%d %s, K = %d, step = %g, offset = %g\n",
			l.Grid.Rows(), l.Grid.Cols(), l.Parameters.Strategy, l.Grid.Range(), l.Depths.Step(), l.Depths.Offset())
	}
	if err := writeMatrix(e.stdout, format, rows); err != nil {
		return err
	}
	e.log.Info().
		Str("fingerprint", l.Fingerprint.String()).
		Float64("min", l.Depths.Min()).
		Float64("max", l.Depths.Max()).
		Msg("layout computed")
	return nil
}

func (e *env) printRoots(n uint64, limit int) error {
	entry, err := e.kernel.Lookup(n)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "n: %d\n", n)
	fmt.Fprintf(e.stdout, "totient: %d\n", entry.Totient)
	fmt.Fprintf(e.stdout, "carmichael: %d\n", entry.Carmichael)
	fmt.Fprintf(e.stdout, "prime: %t\n", numtheory.IsPrime(n))
	if !entry.HasRoot() {
		fmt.Fprintln(e.stdout, "primitive roots: none")
		return nil
	}
	fmt.Fprintf(e.stdout, "primitive roots: %d\n", numtheory.NumPrimitiveRoots(n))
	fmt.Fprintf(e.stdout, "smallest: %d\n", entry.Root)
	var roots []uint64
	if limit <= 0 {
		roots = numtheory.PrimitiveRoots(n)
	} else {
		for g := entry.Root; g < n && len(roots) < limit; g++ {
			if e.kernel.IsPrimitiveRoot(g, n) {
				roots = append(roots, g)
			}
		}
		if len(roots) == 0 {
			roots = []uint64{entry.Root}
		}
	}
	list := make([]string, len(roots))
	for i, g := range roots {
		list[i] = strconv.FormatUint(g, 10)
	}
	fmt.Fprintf(e.stdout, "roots: %s\n", strings.Join(list, " "))
	return nil
}

func (e *env) printDesigns(c *cli.Context, results []prd.DesignResult) error {
	if len(results) == 0 {
		fmt.Fprintln(e.stdout, "No results found")
		return nil
	}
	for i, r := range results {
		fmt.Fprintf(e.stdout, "%d: (%dx%d), aspect=%.3f, prime=%d\n", i+1, r.Cols, r.Rows, r.AspectRatio(), r.Prime)
	}

	pick := c.Int("pick")
	if pick == 0 {
		return nil
	}
	if pick < 0 || pick > len(results) {
		return fmt.Errorf("pick %d: have %d designs", pick, len(results))
	}
	p, err := results[pick-1].ToParameters(c.Float64("freq"), c.Uint64("root"))
	if err != nil {
		return err
	}
	p.Kernel = e.kernel
	l, err := prd.Compute(p)
	if err != nil {
		return err
	}
	return e.printLayout(l, c.String("format"), false, 2)
}
