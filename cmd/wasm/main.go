// Command wasm exposes the solver to a browser via syscall/js: a single
// "solve" callback takes a JSON request (words, board, rack) and returns a
// JSON response, the in-browser equivalent of the lambda command's
// request/response shape.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/gaddag"
	"github.com/laeos/wwfsolve/ioformat"
	"github.com/laeos/wwfsolve/solver"
	"github.com/laeos/wwfsolve/variant"
)

type request struct {
	Words []string `json:"words"`
	Board []string `json:"board"`
	Rack  string   `json:"rack"`
}

type response struct {
	Plays []ioformat.Entry `json:"plays"`
	Error string           `json:"error,omitempty"`
}

func solve(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return encode(response{Error: "solve expects exactly one JSON argument"})
	}

	var req request
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return encode(response{Error: err.Error()})
	}

	g, err := gaddag.Build(req.Words)
	if err != nil {
		return encode(response{Error: err.Error()})
	}
	b, err := board.New(req.Board, board.StandardBoard)
	if err != nil {
		return encode(response{Error: err.Error()})
	}

	sv := solver.New(b, g, board.NewRack(req.Rack), variant.WWF)
	plays := sv.Solve()
	return encode(response{Plays: ioformat.Entries(plays)})
}

func encode(resp response) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return `{"error":"internal: could not encode response"}`
	}
	return string(data)
}

func registerCallbacks() {
	js.Global().Get("wwfsolve").Invoke(map[string]interface{}{
		"solve": js.FuncOf(solve),
	})
}

func main() {
	registerCallbacks()
	select {}
}
