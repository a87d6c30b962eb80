package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
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

	opts := []bot.Option{
		bot.WithSearchDepth(cfg.SearchDepth),
		bot.WithSimulations(cfg.Simulations),
	}
	if cfg.Seed != 0 {
		opts = append(opts, bot.WithSeed(cfg.Seed))
	}
	g := game.NewGame(bot.NewEngine(opts...))

	if err := play(g, cfg.EngineStarts, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("terminal session failed")
	}
}

// play drives one game from text input. Players type columns 1..7.
func play(g *game.Game, engineStarts bool, in io.Reader, out io.Writer) error {
	if engineStarts {
		res := g.EngineOpensGame()
		fmt.Fprintf(out, "engine plays %d\n", res.EngineColumn+1)
	}
	render(out, g.CurrentBoard())

	scanner := bufio.NewScanner(in)
	for !g.CurrentOutcome().IsFinished() {
		fmt.Fprintf(out, "your move (1-%d): ", domain.Columns)
		if !scanner.Scan() {
			return scanner.Err()
		}

		col, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "please type a column number")
			continue
		}

		res := g.ApplyOpponentMove(col - 1)
		if res.IsRejected() {
			fmt.Fprintf(out, "move rejected: %v\n", res.Err)
			continue
		}
		if res.EngineColumn >= 0 {
			fmt.Fprintf(out, "engine plays %d\n", res.EngineColumn+1)
		}
		render(out, g.CurrentBoard())
	}

	switch g.CurrentOutcome() {
	case domain.EngineWin:
		fmt.Fprintln(out, "engine wins")
	case domain.OpponentWin:
		fmt.Fprintln(out, "you win")
	case domain.Draw:
		fmt.Fprintln(out, "draw")
	}
	return nil
}

func render(out io.Writer, cells [domain.Columns][domain.Rows]domain.PlayerID) {
	var sb strings.Builder
	for row := domain.Rows - 1; row >= 0; row-- {
		sb.WriteByte('|')
		for col := 0; col < domain.Columns; col++ {
			switch cells[col][row] {
			case domain.Engine:
				sb.WriteString(" X")
			case domain.Opponent:
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("  ")
	for col := 1; col <= domain.Columns; col++ {
		sb.WriteString(strconv.Itoa(col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	fmt.Fprint(out, sb.String())
}
