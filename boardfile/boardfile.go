// Package boardfile reads the board file format: a first line giving the
// rack, followed by equal-width rows of lowercase letters and '-' for an
// empty square. Unlike the dictionary loader, a malformed board is fatal
// -- a ragged row or unknown character means the caller gave the solver
// state it cannot reason about, so the error names the file and the
// offending row.
package boardfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/laeos/wwfsolve/board"
)

// Result is the parsed content of a board file.
type Result struct {
	Rack  board.Rack
	Board *board.Board
}

// Load reads and parses the board file at path, using layout as the
// premultiplier layout (board.StandardBoard for the default WWF shape).
func Load(path string, layout []string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("boardfile: opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := Read(f, layout)
	if err != nil {
		return nil, fmt.Errorf("boardfile: parsing %s: %w", path, err)
	}
	return res, nil
}

// Read parses a board file from r.
func Read(r io.Reader, layout []string) (*Result, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty board file: missing rack line")
	}
	rack := board.NewRack(trimAndLower(scanner.Text()))

	var rows []string
	for scanner.Scan() {
		line := trimAndLower(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no board rows found")
	}

	b, err := board.New(rows, layout)
	if err != nil {
		return nil, err
	}
	return &Result{Rack: rack, Board: b}, nil
}

func trimAndLower(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	s = s[start:end]
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
