// Command lambda wraps the solver as an AWS Lambda function: each
// invocation carries its own dictionary words, board, and rack, builds a
// fresh GADDAG, and returns the plays found as JSON.
package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/gaddag"
	"github.com/laeos/wwfsolve/ioformat"
	"github.com/laeos/wwfsolve/solver"
	"github.com/laeos/wwfsolve/variant"
)

// Request is the invocation payload: a word list, board rows, and a rack.
type Request struct {
	Words []string `json:"words"`
	Board []string `json:"board"`
	Rack  string   `json:"rack"`
}

// Response is the invocation result.
type Response struct {
	Plays []ioformat.Entry `json:"plays"`
}

func handle(ctx context.Context, req Request) (Response, error) {
	log.Info().Int("words", len(req.Words)).Int("rows", len(req.Board)).Msg("lambda: solving")

	g, err := gaddag.Build(req.Words)
	if err != nil {
		return Response{}, fmt.Errorf("lambda: building gaddag: %w", err)
	}

	b, err := board.New(req.Board, board.StandardBoard)
	if err != nil {
		return Response{}, fmt.Errorf("lambda: building board: %w", err)
	}

	sv := solver.New(b, g, board.NewRack(req.Rack), variant.WWF)
	plays := sv.Solve()

	return Response{Plays: ioformat.Entries(plays)}, nil
}

func main() {
	lambda.Start(handle)
}
