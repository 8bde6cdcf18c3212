// Command simroute builds a similarity graph from a .npy matrix and prints
// the shortest route from the start item to the last item reached.
//
// Usage:
//
//	simroute [flags] [matrix.npy]
//
// Settings come from defaults, an optional YAML file (-config or
// $SIMROUTE_CONFIG), SIMROUTE_* environment variables and finally flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/simroute/frontier"
	"github.com/katalvlaran/simroute/internal/config"
	"github.com/katalvlaran/simroute/internal/logging"
	"github.com/katalvlaran/simroute/route"
	"github.com/katalvlaran/simroute/similarity"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logging.Error().Err(err).Msg("simroute failed")
		stop()
		os.Exit(1)
	}
}

// run parses args, loads the matrix and writes the route report to stdout.
// Logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("simroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	matrixPath := fs.String("matrix", "", "path of the .npy input matrix")
	kind := fs.String("kind", "", "input kind: similarity, ratings or adjacency")
	start := fs.Int("start", 0, "original index of the start item")
	target := fs.Int("target", route.LastNode, "visitation position to route to, -1 for the last")
	bandLow := fs.Float64("band-low", 1, "exclusive lower bound of traversable costs")
	bandHigh := fs.Float64("band-high", 2, "exclusive upper bound of traversable costs")
	logLevel := fs.String("log-level", "", "trace, debug, info, warn, error or disabled")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	// Flags win over every config layer, but only when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "matrix":
			cfg.Matrix.Path = *matrixPath
		case "kind":
			cfg.Matrix.Kind = *kind
		case "start":
			cfg.Route.Start = *start
		case "target":
			cfg.Route.Target = *target
		case "band-low":
			cfg.Route.BandLow = *bandLow
		case "band-high":
			cfg.Route.BandHigh = *bandHigh
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if fs.NArg() > 0 {
		cfg.Matrix.Path = fs.Arg(0)
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.Matrix.Path == "" {
		return fmt.Errorf("simroute: no input matrix (pass a path or set %sMATRIX_PATH)", config.EnvPrefix)
	}

	logging.Init(logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Caller:    cfg.Log.Caller,
		Timestamp: true,
		Output:    stderr,
	})
	log := logging.With().Str("component", "simroute").Logger()

	m, err := loadNPY(cfg.Matrix.Path)
	if err != nil {
		return err
	}
	log.Info().
		Str("path", cfg.Matrix.Path).
		Str("kind", cfg.Matrix.Kind).
		Int("rows", m.Rows()).
		Int("cols", m.Cols()).
		Msg("matrix loaded")

	var r *route.Route
	switch cfg.Matrix.Kind {
	case config.KindAdjacency:
		r, err = route.SolveWithLogger(m, cfg.Route.Target, log)
	default:
		var sim *similarity.Matrix
		if cfg.Matrix.Kind == config.KindRatings {
			sim, err = similarity.Cosine(ctx, m)
		} else {
			sim, err = similarity.FromMatrix(m)
		}
		if err != nil {
			return err
		}
		r, err = route.Plan(ctx, sim, route.Config{
			Start:  cfg.Route.Start,
			Band:   frontier.Band{Low: cfg.Route.BandLow, High: cfg.Route.BandHigh},
			Target: cfg.Route.Target,
			Logger: log,
		})
	}
	if err != nil {
		return err
	}

	log.Info().
		Int("nodes", len(r.Order)).
		Bool("reachable", r.Reachable()).
		Ints("items", r.Items()).
		Msg("route planned")

	return r.Report(stdout)
}
