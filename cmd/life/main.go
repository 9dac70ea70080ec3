//go:build ebiten

package main

import (
	"errors"
	"flag"

	"torus-life/internal/app"
	"torus-life/internal/logging"
	"torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logging.Init(cfg.LogOptions("life"))

	ucfg, err := cfg.Universe()
	if err != nil {
		log.Fatal().Err(err).Msg("resolve universe config")
	}
	universe, err := life.NewWithConfig(ucfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create universe")
	}
	log.Info().Int("width", universe.Width()).Int("height", universe.Height()).Ints("divisors", ucfg.Divisors).Msg("universe ready")

	game := app.New(universe, cfg.Scale, cfg.Steps, log)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("torus-life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("run game")
	}
	log.Info().Uint64("generation", universe.Generation()).Msg("stopped")
}
