package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

const (
	StatusAwaitingMove = "awaiting-move"
	StatusWon          = "won"
	StatusDraw         = "draw"
)

// MoveSource asks a player for the cell to play.
type MoveSource interface {
	NextMove(ctx context.Context, board *entity.Board, player *entity.Player) (row, col int, err error)
}

// Observer is told about turns the game handles on its own.
type Observer interface {
	MoveRejected(player *entity.Player, row, col int, err error)
	GameFinished(result *Result)
}

type Move struct {
	Player *entity.Player `json:"player"`
	Row    int            `json:"row"`
	Col    int            `json:"col"`
}

type Result struct {
	GameID string         `json:"game_id"`
	Status string         `json:"status"`
	Winner *entity.Player `json:"winner,omitempty"`
	Moves  []Move         `json:"moves"`
	Board  *entity.Board  `json:"-"`
}

func (that *Result) IsDraw() bool {
	return that.Status == StatusDraw
}

type Option func(game *Game)

func WithObserver(observer Observer) Option {
	return func(game *Game) {
		if observer != nil {
			game.observer = observer
		}
	}
}

// WithID - replaces the generated game id.
func WithID(id string) Option {
	return func(game *Game) {
		game.id = id
	}
}

type Game struct {
	logger *slog.Logger

	id       string
	board    *entity.Board
	rotation *Rotation
	observer Observer

	status string
	winner *entity.Player
	moves  []Move
}

func NewGame(logger *slog.Logger, board *entity.Board, opts ...Option) *Game {
	game := &Game{
		id:       pkg.GenerateGameID(),
		board:    board,
		rotation: NewRotation(),
		observer: noopObserver{},
		status:   StatusAwaitingMove,
	}

	for _, opt := range opts {
		opt(game)
	}

	game.logger = logger.With("component", "game", "game_id", game.id)

	return game
}

// AddPlayer - joins the player at the end of the rotation.
func (that *Game) AddPlayer(player *entity.Player) {
	that.rotation.PushBack(player)
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) Winner() *entity.Player {
	return that.winner
}

func (that *Game) Moves() []Move {
	return append([]Move(nil), that.moves...)
}

// Players - current rotation, the player to move first.
func (that *Game) Players() []*entity.Player {
	return that.rotation.Players()
}

func (that *Game) IsFinished() bool {
	return that.status == StatusWon || that.status == StatusDraw
}

func (that *Game) String() string {
	return that.board.Render()
}

// Play - runs turns until the game is won or drawn. An occupied cell gives the
// turn back to the same player, every other error stops the loop.
func (that *Game) Play(ctx context.Context, source MoveSource) (*Result, error) {
	log := that.logger.With("method", "Play")

	if that.IsFinished() {
		return that.result(), apperror.ErrGameFinished
	}

	log.Info("game started", "board_size", that.board.Size(), "players", that.rotation.Len())

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game interrupted: %w", err)
		}

		finished, err := that.playTurn(ctx, source)
		if err != nil {
			log.Error("turn failed", "error", err)
			return nil, err
		}

		if finished {
			result := that.result()
			log.Info("game finished", "status", result.Status, "moves", len(result.Moves))
			that.observer.GameFinished(result)

			return result, nil
		}
	}
}

// playTurn - returns true once the game reached a terminal status.
func (that *Game) playTurn(ctx context.Context, source MoveSource) (bool, error) {
	log := that.logger.With("method", "playTurn")

	player, err := that.rotation.PopFront()
	if err != nil {
		return false, fmt.Errorf("failed to start turn: %w", err)
	}

	row, col, err := source.NextMove(ctx, that.board, player)
	if err != nil {
		that.rotation.PushFront(player)
		return false, fmt.Errorf("failed to get move of %s: %w", player.Name, err)
	}

	if err = that.board.Place(row, col, player.Piece); err != nil {
		that.rotation.PushFront(player)

		if errors.Is(err, apperror.ErrCellOccupied) {
			log.Info("move rejected", "player", player.Name, "row", row, "col", col)
			that.observer.MoveRejected(player, row, col, err)

			return false, nil
		}

		return false, fmt.Errorf("invalid turn: %w", err)
	}

	that.rotation.PushBack(player)
	that.moves = append(that.moves, Move{Player: player, Row: row, Col: col})
	log.Debug("move placed", "player", player.Name, "row", row, "col", col)

	switch {
	case that.board.IsWin(row, col, player.Piece):
		that.status = StatusWon
		that.winner = player
	case that.board.IsFull():
		that.status = StatusDraw
	default:
		return false, nil
	}

	return true, nil
}

func (that *Game) result() *Result {
	return &Result{
		GameID: that.id,
		Status: that.status,
		Winner: that.winner,
		Moves:  that.Moves(),
		Board:  that.board,
	}
}

type noopObserver struct{}

func (noopObserver) MoveRejected(*entity.Player, int, int, error) {}

func (noopObserver) GameFinished(*Result) {}
