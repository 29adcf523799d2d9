// Command selfplay runs engine matches and prints how each side fared.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type tally struct {
	wins  map[entity.Mark]int
	draws int
}

func main() {
	xKind := flag.String("x", entity.OpponentMinimax, "player driving X: minimax or random")
	oKind := flag.String("o", entity.OpponentRandom, "player driving O: minimax or random")
	games := flag.Int("n", 100, "number of matches")
	verbose := flag.Bool("v", false, "print every final board")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, err := run(ctx, os.Stdout, *xKind, *oKind, *games, *verbose)
	if err != nil {
		logger.Error("self-play failed", "error", err)
		os.Exit(1)
	}

	logger.Info("self-play finished", "games", *games, "x", result.wins[entity.X], "o", result.wins[entity.O], "draws", result.draws)
}

func run(ctx context.Context, w io.Writer, xKind, oKind string, games int, verbose bool) (tally, error) {
	xPlayer, err := player.New(xKind, entity.X)
	if err != nil {
		return tally{}, fmt.Errorf("failed to create X player: %w", err)
	}

	oPlayer, err := player.New(oKind, entity.O)
	if err != nil {
		return tally{}, fmt.Errorf("failed to create O player: %w", err)
	}

	players := map[entity.Mark]player.Player{entity.X: xPlayer, entity.O: oPlayer}
	result := tally{wins: map[entity.Mark]int{}}
	output := termenv.NewOutput(w)

	for i := 0; i < games; i++ {
		match, err := tictactoe.PlayMatch(ctx, players, entity.X)
		if err != nil {
			return result, fmt.Errorf("match %d: %w", i+1, err)
		}

		if match.Outcome.Draw {
			result.draws++
		} else {
			result.wins[match.Outcome.Winner]++
		}

		if verbose {
			fmt.Fprintf(w, "match %d, moves %v\n%s\n\n", i+1, match.Moves, match.Board)
		}
	}

	fmt.Fprintf(w, "%s (%s) wins: %s\n", entity.X, xKind, output.String(fmt.Sprint(result.wins[entity.X])).Foreground(output.Color("2")).Bold())
	fmt.Fprintf(w, "%s (%s) wins: %s\n", entity.O, oKind, output.String(fmt.Sprint(result.wins[entity.O])).Foreground(output.Color("1")).Bold())
	fmt.Fprintf(w, "draws: %s\n", output.String(fmt.Sprint(result.draws)).Foreground(output.Color("3")))

	return result, nil
}
