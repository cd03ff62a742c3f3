// Command shell is an interactive REPL over the solver: load a dictionary
// and board once, then re-solve against edited racks without paying the
// GADDAG build cost again.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/boardfile"
	"github.com/laeos/wwfsolve/dictfile"
	"github.com/laeos/wwfsolve/gaddag"
	"github.com/laeos/wwfsolve/ioformat"
	"github.com/laeos/wwfsolve/solver"
	"github.com/laeos/wwfsolve/variant"
)

type session struct {
	gaddag *gaddag.Gaddag
	board  *boardfile.Result
}

func main() {
	rl, err := readline.New("wwfsolve> ")
	if err != nil {
		log.Fatal().Err(err).Msg("shell: starting readline")
	}
	defer rl.Close()

	sess := &session{}
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("shell: reading line")
			continue
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse error:", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}
		if err := sess.dispatch(fields[0], fields[1:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

func (s *session) dispatch(cmd string, args []string) error {
	switch cmd {
	case "dict":
		if len(args) != 1 {
			return fmt.Errorf("usage: dict <path>")
		}
		words, err := dictfile.Load(args[0])
		if err != nil {
			return err
		}
		g, err := gaddag.Build(words)
		if err != nil {
			return err
		}
		s.gaddag = g
		fmt.Printf("loaded %d words\n", g.WordCount())
		return nil
	case "board":
		if len(args) != 1 {
			return fmt.Errorf("usage: board <path>")
		}
		res, err := boardfile.Load(args[0], board.StandardBoard)
		if err != nil {
			return err
		}
		s.board = res
		fmt.Printf("loaded board, rack %q\n", string(res.Rack))
		return nil
	case "solve":
		if s.gaddag == nil || s.board == nil {
			return fmt.Errorf("load a dict and a board first")
		}
		sv := solver.New(s.board.Board, s.gaddag, s.board.Rack, variant.WWF)
		plays := sv.Solve()
		return ioformat.WriteText(os.Stdout, plays)
	case "quit", "exit":
		os.Exit(0)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
