// Package ioformat renders a solve's Solutions for a caller: the plain
// text play list the CLI prints by default, or a JSON/YAML encoding of the
// same data for callers that want structured output (the Lambda and NATS
// surfaces always use JSON; the CLI's --format flag picks).
package ioformat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/laeos/wwfsolve/move"
)

// Entry is the wire/text shape of one Solution.
type Entry struct {
	Row      int    `json:"row" yaml:"row"`
	Col      int    `json:"col" yaml:"col"`
	Vertical bool   `json:"vertical" yaml:"vertical"`
	Word     string `json:"word" yaml:"word"`
	Score    int    `json:"score" yaml:"score"`
	Played   string `json:"played" yaml:"played"`
}

// Entries converts Solutions to their wire shape, preserving order.
func Entries(sols []move.Solution) []Entry {
	return lo.Map(sols, func(s move.Solution, _ int) Entry {
		return Entry{
			Row:      s.Start.Row,
			Col:      s.Start.Col,
			Vertical: s.Start.Vertical,
			Word:     s.Word,
			Score:    s.Score,
			Played:   s.Played,
		}
	})
}

// TopN returns the last n solutions of sols in reverse order; it does not
// sort. For sols ascending by score, as Solve returns them, that is the n
// highest-scoring plays, descending. WriteStats uses this to print a short
// highlight list rather than the full result set.
func TopN(sols []move.Solution, n int) []move.Solution {
	sorted := append([]move.Solution(nil), sols...)
	lo.Reverse(sorted)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// WriteText prints one <PLAY: ...> line per solution, the CLI's default
// format.
func WriteText(w io.Writer, sols []move.Solution) error {
	for _, s := range sols {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes sols as a JSON array of Entry.
func WriteJSON(w io.Writer, sols []move.Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Entries(sols))
}

// WriteYAML writes sols as a YAML sequence of Entry.
func WriteYAML(w io.Writer, sols []move.Solution) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(Entries(sols))
}

// Write dispatches to the encoder named by format ("text", "json", "yaml").
func Write(w io.Writer, format string, sols []move.Solution) error {
	switch format {
	case "", "text":
		return WriteText(w, sols)
	case "json":
		return WriteJSON(w, sols)
	case "yaml":
		return WriteYAML(w, sols)
	default:
		return fmt.Errorf("ioformat: unknown format %q", format)
	}
}
