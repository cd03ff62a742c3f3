package ioformat

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"

	"github.com/laeos/wwfsolve/move"
)

// topNHighlights is how many of the highest-scoring plays WriteStats lists
// after the distribution summary.
const topNHighlights = 5

// WriteStats prints a score distribution summary (mean and standard
// deviation across every solution found) followed by the highest-scoring
// plays. It is gated behind the CLI's --stats flag; it adds nothing the
// core solve needs and is never computed unless asked for.
func WriteStats(w io.Writer, sols []move.Solution) error {
	if len(sols) == 0 {
		_, err := fmt.Fprintln(w, "no solutions: nothing to summarize")
		return err
	}
	scores := make([]float64, len(sols))
	for i, s := range sols {
		scores[i] = float64(s.Score)
	}
	mean := stat.Mean(scores, nil)
	stddev := stat.StdDev(scores, nil)
	if _, err := fmt.Fprintf(w, "plays: %d  mean score: %.1f  stddev: %.1f\n", len(sols), mean, stddev); err != nil {
		return err
	}

	top := TopN(sols, topNHighlights)
	if _, err := fmt.Fprintf(w, "top %d:\n", len(top)); err != nil {
		return err
	}
	for _, s := range top {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}
