// Command catalogue is the process entry point: it reads an input
// document from stdin, builds and freezes a catalogue, precomputes the
// transfer graph, answers every stat_request in order, and writes the
// output document to stdout. It owns the one catalogue.Builder and
// *zap.Logger for the run, the way cmd/rebuild-graph owns the one db pool
// and builder for its run.
package main

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/passbi/transitcat/internal/catalogue"
	"github.com/passbi/transitcat/internal/config"
	"github.com/passbi/transitcat/internal/decode"
	"github.com/passbi/transitcat/internal/logging"
	"github.com/passbi/transitcat/internal/respond"
	"github.com/passbi/transitcat/internal/routing"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("catalogue: failed to initialize logger: " + err.Error() + "\n")
		return 1
	}
	defer logger.Sync()

	builder := catalogue.NewBuilder()
	doc, err := decode.Decode(os.Stdin, builder, logger)
	if err != nil {
		logger.Error("malformed input document", zap.Error(err))
		return 1
	}
	for _, w := range builder.Warnings() {
		logger.Warn(w)
	}

	freezeStart := time.Now()
	cat := builder.Freeze()
	graph := routing.Build(cat)
	logger.Info("froze catalogue and built transfer graph",
		zap.Int("stop_count", cat.StopCount()),
		zap.Int("bus_count", cat.BusCount()),
		zap.Int("vertex_count", graph.VertexCount()),
		zap.Int("edge_count", graph.EdgeCount()),
		zap.Duration("elapsed", time.Since(freezeStart)),
	)

	responses := make([]interface{}, 0, len(doc.Queries))
	for _, q := range doc.Queries {
		responses = append(responses, respond.Answer(cat, graph, doc.RenderSettings, q, cfg.RouteMaxItems))
	}

	if err := respond.WriteAll(os.Stdout, responses); err != nil {
		logger.Error("failed to write output document", zap.Error(err))
		return 1
	}

	logger.Info("served stat_requests", zap.Int("query_count", len(doc.Queries)))
	return 0
}
