package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	result, err := Play(ctx, logger, conf, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("game over", "game_id", result.GameID, "status", result.Status)

	return nil
}

// Play - builds a game from the config and plays it on the given streams.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (*tictactoe.Result, error) {
	board, err := entity.NewBoard(conf.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("could not create board: %w", err)
	}

	players, err := newPlayers(conf.Players)
	if err != nil {
		return nil, fmt.Errorf("could not create players: %w", err)
	}

	terminal := console.New(logger, in, out, console.WithColors(!bool(conf.NoColor)))
	defer terminal.Close()

	game := tictactoe.NewGame(logger, board, tictactoe.WithObserver(terminal))
	for _, player := range players {
		game.AddPlayer(player)
	}

	result, err := game.Play(ctx, terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to play game %s: %w", game.ID(), err)
	}

	return result, nil
}

func newPlayers(players []config.Player) ([]*entity.Player, error) {
	kinds := make([]entity.PieceKind, 0, len(players))
	for _, player := range players {
		kind, err := entity.ParsePieceKind(player.Mark)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", player.Name, err)
		}
		kinds = append(kinds, kind)
	}

	return lo.Map(players, func(player config.Player, i int) *entity.Player {
		return entity.NewPlayer(player.Name, entity.NewPiece(kinds[i]))
	}), nil
}
