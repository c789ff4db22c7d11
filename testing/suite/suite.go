package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New - returns a context bound to the test and a logger that drops records.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board - fresh board of the given size, fails the test on error.
func (that *Suite) Board(size int) *entity.Board {
	that.Helper()

	board, err := entity.NewBoard(size)
	if err != nil {
		that.Fatalf("could not create board: %v", err)
	}

	return board
}

// Players - X and O players named "A" and "B".
func (that *Suite) Players() (*entity.Player, *entity.Player) {
	return entity.NewPlayer("A", entity.NewPiece(entity.KindX)),
		entity.NewPlayer("B", entity.NewPiece(entity.KindO))
}
