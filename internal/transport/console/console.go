package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const movePrompt = "Enter cord: "

var (
	turnStyle   = color.New(color.FgCyan, color.OpBold)
	rejectStyle = color.New(color.FgRed)
	winStyle    = color.New(color.FgGreen, color.OpBold)
	drawStyle   = color.New(color.FgYellow, color.OpBold)
)

var (
	_ tictactoe.MoveSource = (*Console)(nil)
	_ tictactoe.Observer   = (*Console)(nil)
	_ io.Closer            = (*Console)(nil)
)

type line struct {
	text string
	err  error
}

// Console plays a game over a text terminal: one "row,col" line per move.
type Console struct {
	logger *slog.Logger

	in     io.Reader
	out    io.Writer
	colors bool

	startReader sync.Once
	lines       chan line

	closeOnce sync.Once
	done      chan struct{}
}

type Option func(console *Console)

func WithColors(enabled bool) Option {
	return func(console *Console) {
		console.colors = enabled
	}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, opts ...Option) *Console {
	console := &Console{
		logger: logger.With("component", "console"),
		in:     in,
		out:    out,
		lines:  make(chan line),
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(console)
	}

	return console
}

// ParseMove - parses "row,col" into two 0-indexed coordinates.
func ParseMove(text string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q, expected row,col", apperror.ErrMalformedInput, text)
	}

	coords := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q is not a number", apperror.ErrMalformedInput, part)
		}
		coords = append(coords, value)
	}

	return coords[0], coords[1], nil
}

// NextMove - shows the board, prompts the player and waits for a line.
func (that *Console) NextMove(ctx context.Context, board *entity.Board, player *entity.Player) (int, int, error) {
	that.startReader.Do(func() {
		go that.readLines()
	})

	that.write("%s", board.Render())
	that.write("%s\n", that.paint(turnStyle, player.Name+"'s turn"))
	that.write("%s", movePrompt)

	select {
	case <-ctx.Done():
		return 0, 0, fmt.Errorf("waiting for move: %w", ctx.Err())
	case <-that.done:
		return 0, 0, apperror.ErrInputClosed
	case next, ok := <-that.lines:
		if !ok {
			return 0, 0, apperror.ErrInputClosed
		}

		if next.err != nil {
			return 0, 0, next.err
		}

		that.logger.Debug("move received", "player", player.Name, "input", next.text)

		return ParseMove(next.text)
	}
}

func (that *Console) MoveRejected(player *entity.Player, row, col int, err error) {
	that.logger.Debug("move rejected", "player", player.Name, "row", row, "col", col, "error", err)

	that.write("%s\n", that.paint(rejectStyle, fmt.Sprintf("Invalid move, %s plays again", player.Name)))
}

// GameFinished - final board, the outcome and the move history.
func (that *Console) GameFinished(result *tictactoe.Result) {
	if result.Board != nil {
		that.write("%s", result.Board.Render())
	}

	if result.IsDraw() || result.Winner == nil {
		that.write("%s\n", that.paint(drawStyle, "Draw!"))
	} else {
		that.write("%s\n", that.paint(winStyle, result.Winner.Name+" won!"))
	}

	that.writeHistory(result.Moves)
}

func (that *Console) writeHistory(moves []tictactoe.Move) {
	table := tablewriter.NewWriter(that.out)
	table.SetHeader([]string{"#", "Player", "Mark", "Row", "Col"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk(lo.Map(moves, func(move tictactoe.Move, i int) []string {
		return []string{
			strconv.Itoa(i + 1),
			move.Player.Name,
			move.Player.Piece.Symbol(),
			strconv.Itoa(move.Row),
			strconv.Itoa(move.Col),
		}
	}))
	table.Render()
}

// Close - stops the line reader. A reader blocked on a read that never returns
// exits once the read does.
func (that *Console) Close() error {
	that.closeOnce.Do(func() {
		close(that.done)
	})

	return nil
}

// readLines - feeds input lines to NextMove so that a pending read does not block cancellation.
func (that *Console) readLines() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		if !that.send(line{text: scanner.Text()}) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		that.send(line{err: fmt.Errorf("failed to read move: %w", err)})
	}
}

func (that *Console) send(next line) bool {
	select {
	case that.lines <- next:
		return true
	case <-that.done:
		return false
	}
}

func (that *Console) paint(style color.Style, text string) string {
	if !that.colors {
		return text
	}

	return style.Render(text)
}

func (that *Console) write(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write to console", "error", err)
	}
}
