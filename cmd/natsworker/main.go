// Command natsworker subscribes to a NATS request subject and answers each
// request with a solve, built fresh from the request's own word list and
// board so the worker carries no session state between requests.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/gaddag"
	"github.com/laeos/wwfsolve/ioformat"
	"github.com/laeos/wwfsolve/solver"
	"github.com/laeos/wwfsolve/variant"
)

var (
	natsURL = flag.String("nats-url", nats.DefaultURL, "NATS server URL")
	subject = flag.String("subject", "wwfsolve.solve", "request subject to subscribe on")
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

func main() {
	flag.Parse()

	nc, err := nats.Connect(*natsURL)
	if err != nil {
		log.Fatal().Err(err).Msg("natsworker: connecting to NATS")
	}
	defer nc.Close()

	sub, err := nc.Subscribe(*subject, handle)
	if err != nil {
		log.Fatal().Err(err).Msg("natsworker: subscribing")
	}
	defer sub.Unsubscribe()

	log.Info().Str("subject", *subject).Str("url", *natsURL).Msg("natsworker: listening")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}

func handle(msg *nats.Msg) {
	var req request
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		respond(msg, response{Error: err.Error()})
		return
	}

	g, err := gaddag.Build(req.Words)
	if err != nil {
		respond(msg, response{Error: err.Error()})
		return
	}
	b, err := board.New(req.Board, board.StandardBoard)
	if err != nil {
		respond(msg, response{Error: err.Error()})
		return
	}

	sv := solver.New(b, g, board.NewRack(req.Rack), variant.WWF)
	plays := sv.Solve()
	respond(msg, response{Plays: ioformat.Entries(plays)})
}

func respond(msg *nats.Msg, resp response) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("natsworker: marshaling response")
		return
	}
	if err := msg.Respond(data); err != nil {
		log.Error().Err(err).Msg("natsworker: responding")
	}
}
