package main

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/boardfile"
	"github.com/laeos/wwfsolve/ioformat"
	"github.com/laeos/wwfsolve/move"
)

func entryToSolution(e ioformat.Entry) move.Solution {
	return move.Solution{
		Start:  board.Anchor{Row: e.Row, Col: e.Col, Vertical: e.Vertical},
		Word:   e.Word,
		Score:  e.Score,
		Played: e.Played,
	}
}

type remoteRequest struct {
	Words []string `json:"words"`
	Board []string `json:"board"`
	Rack  string   `json:"rack"`
}

type remoteResponse struct {
	Plays []ioformat.Entry `json:"plays"`
}

// invokeRemote hands the solve off to the Lambda function named by
// functionName instead of running it locally, using the same word list and
// board the local path would have used. Used by the CLI's --remote flag.
func invokeRemote(ctx context.Context, functionName string, words []string, res *boardfile.Result) ([]move.Solution, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("remote: loading AWS config: %w", err)
	}
	client := lambda.NewFromConfig(cfg)

	payload, err := json.Marshal(remoteRequest{Words: words, Board: boardRows(res), Rack: string(res.Rack)})
	if err != nil {
		return nil, err
	}

	out, err := client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: &functionName,
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("remote: invoking %s: %w", functionName, err)
	}
	if out.FunctionError != nil {
		return nil, fmt.Errorf("remote: %s returned an error: %s", functionName, *out.FunctionError)
	}

	var resp remoteResponse
	if err := json.Unmarshal(out.Payload, &resp); err != nil {
		return nil, fmt.Errorf("remote: decoding response: %w", err)
	}

	sols := make([]move.Solution, len(resp.Plays))
	for i, e := range resp.Plays {
		sols[i] = entryToSolution(e)
	}
	return sols, nil
}

func boardRows(res *boardfile.Result) []string {
	rows := make([]string, res.Board.Rows())
	for r := 0; r < res.Board.Rows(); r++ {
		row := make([]byte, res.Board.Cols())
		for c := 0; c < res.Board.Cols(); c++ {
			if l, ok := res.Board.GetLetter(r, c); ok {
				row[c] = l
			} else {
				row[c] = '-'
			}
		}
		rows[r] = string(row)
	}
	return rows
}
