// Command wwfsolve is the primary CLI entry point: it builds a GADDAG from
// a dictionary file, loads a board and rack, runs the move generator, and
// prints the resulting plays.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/boardfile"
	"github.com/laeos/wwfsolve/config"
	"github.com/laeos/wwfsolve/dictfile"
	"github.com/laeos/wwfsolve/gaddag"
	"github.com/laeos/wwfsolve/ioformat"
	"github.com/laeos/wwfsolve/move"
	"github.com/laeos/wwfsolve/scripting"
	"github.com/laeos/wwfsolve/solver"
)

func main() {
	requestID := uuid.New().String()
	log.Logger = log.With().Str("request_id", requestID).Logger()

	fs := pflag.NewFlagSet("wwfsolve", pflag.ExitOnError)
	config.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])
	if boardPath := fs.Arg(0); boardPath != "" {
		_ = fs.Set(config.KeyBoardPath, boardPath)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatal().Err(err).Msg("wwfsolve: loading config")
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("wwfsolve: failed")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	words, err := dictfile.LoadAny(ctx, cfg.DictPath())
	if err != nil {
		return err
	}
	g, err := gaddag.Build(words)
	if err != nil {
		return err
	}
	g.SetLexiconName(cfg.DictPath())

	if dotPath := cfg.DumpDot(); dotPath != "" {
		return dumpGraphviz(g, dotPath)
	}

	layout := board.StandardBoard
	res, err := boardfile.Load(cfg.BoardPath(), layout)
	if err != nil {
		return err
	}

	var plays []move.Solution
	if fn := cfg.Remote(); fn != "" {
		plays, err = invokeRemote(ctx, fn, words, res)
	} else {
		plays, err = solve(ctx, cfg, res, g)
	}
	if err != nil {
		return err
	}

	if cfg.LuaFilter() != "" {
		filterFn, err := scripting.Filter(cfg.LuaFilter())
		if err != nil {
			return err
		}
		plays, err = filterFn(plays)
		if err != nil {
			return err
		}
	}

	if err := ioformat.Write(os.Stdout, cfg.Format(), plays); err != nil {
		return err
	}
	if cfg.Stats() {
		return ioformat.WriteStats(os.Stdout, plays)
	}
	return nil
}

func dumpGraphviz(g *gaddag.Gaddag, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := g.Dump(f); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("wwfsolve: wrote GraphViz dump")
	return nil
}

func solve(ctx context.Context, cfg *config.Config, res *boardfile.Result, g *gaddag.Gaddag) ([]move.Solution, error) {
	if cfg.Workers() > 0 {
		return solver.SolveConcurrent(ctx, res.Board, g, res.Rack, cfg.Variant(), cfg.Workers())
	}
	sv := solver.New(res.Board, g, res.Rack, cfg.Variant())
	return sv.Solve(), nil
}
