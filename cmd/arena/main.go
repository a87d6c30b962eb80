package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/service/arena"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("no .env file found")
		}
	}

	cfg := config.LoadConfig()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := arena.Run(ctx, arena.Settings{
		Games:       cfg.ArenaGames,
		Workers:     cfg.ArenaWorkers,
		Depth:       cfg.ArenaDepth,
		Simulations: cfg.ArenaSimulations,
		Seed:        seed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("arena run failed")
	}

	log.Info().
		Str("run_id", summary.RunID).
		Float64("engine_score", float64(summary.EngineWins)+0.5*float64(summary.Draws)).
		Int("games", len(summary.Games)).
		Msg("arena finished")
}
