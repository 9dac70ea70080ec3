package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/logging"
	"torus-life/internal/sims/life"

	"github.com/rs/zerolog"
)

const clearScreen = "\x1b[H\x1b[2J"

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 10
	cfg.Bind(flag.CommandLine)
	clearFlag := flag.Bool("clear", true, "clear the terminal between generations")
	flag.Parse()

	log := logging.Init(cfg.LogOptions("life-term"))

	ucfg, err := cfg.Universe()
	if err != nil {
		log.Fatal().Err(err).Msg("resolve universe config")
	}
	universe, err := life.NewWithConfig(ucfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create universe")
	}
	log.Info().Int("width", universe.Width()).Int("height", universe.Height()).Int("tps", cfg.TPS).Msg("universe ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := bufio.NewWriter(os.Stdout)
	if err := run(ctx, universe, runOptions{tps: cfg.TPS, steps: cfg.Steps, clear: *clearFlag}, out, log); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
	log.Info().Uint64("generation", universe.Generation()).Int("population", universe.Population()).Msg("stopped")
}

type runOptions struct {
	tps   int
	steps int
	clear bool
}

// flusher is satisfied by *bufio.Writer.
type flusher interface {
	Flush() error
}

// run draws one frame per tick until ctx is done or the step limit is
// reached. The frame for the last generation is drawn before returning.
func run(ctx context.Context, u *life.Universe, opts runOptions, out io.Writer, log zerolog.Logger) error {
	pace := core.NewFixedStep(opts.tps)
	log.Debug().Dur("interval", pace.Interval()).Msg("pacing")
	for {
		if ctx.Err() != nil {
			return nil
		}
		if !pace.ShouldStep() {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(pace.Remaining()):
			}
			continue
		}
		if err := drawFrame(u, out, opts.clear); err != nil {
			return fmt.Errorf("draw generation %d: %w", u.Generation(), err)
		}
		log.Debug().Uint64("generation", u.Generation()).Int("population", u.Population()).Msg("frame")
		if opts.steps > 0 && u.Generation() >= uint64(opts.steps) {
			return nil
		}
		u.Step()
	}
}

func drawFrame(u *life.Universe, out io.Writer, clear bool) error {
	if clear {
		if _, err := io.WriteString(out, clearScreen); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "generation %d  population %d\n", u.Generation(), u.Population()); err != nil {
		return err
	}
	if _, err := io.WriteString(out, u.Render()); err != nil {
		return err
	}
	if f, ok := out.(flusher); ok {
		return f.Flush()
	}
	return nil
}
