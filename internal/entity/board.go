package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

var ErrInvalidSize = errors.New("invalid board size")

// Board is an N×N grid of cells. A cell, once occupied, is never cleared.
type Board struct {
	size   int
	grid   [][]Piece
	placed int
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return &Board{
		size: size,
		grid: lo.Times(size, func(_ int) []Piece {
			return make([]Piece, size)
		}),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// Placed - number of occupied cells.
func (that *Board) Placed() int {
	return that.placed
}

func (that *Board) IsFull() bool {
	return that.placed == that.size*that.size
}

// Cell - returns the piece at the cell, an empty Piece if nothing was placed there.
func (that *Board) Cell(row, col int) (Piece, error) {
	if err := that.validateCell(row, col); err != nil {
		return Piece{}, err
	}

	return that.grid[row][col], nil
}

// Place - puts the piece into an empty cell.
func (that *Board) Place(row, col int, piece Piece) error {
	if err := that.validateCell(row, col); err != nil {
		return err
	}

	if !that.grid[row][col].IsEmpty() {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that.grid[row][col] = piece
	that.placed++

	return nil
}

// IsWin - checks every line through the played cell: its row, its column, and
// the diagonals only when the cell lies on them.
func (that *Board) IsWin(row, col int, piece Piece) bool {
	if that.validateCell(row, col) != nil || piece.IsEmpty() {
		return false
	}

	lines := [][]Piece{that.row(row), that.column(col)}
	if row == col {
		lines = append(lines, that.diagonal())
	}
	if row+col == that.size-1 {
		lines = append(lines, that.antiDiagonal())
	}

	return lo.SomeBy(lines, func(line []Piece) bool {
		return lo.EveryBy(line, piece.Equal)
	})
}

// Render - text snapshot of the board, "|_|" for empty cells.
func (that *Board) Render() string {
	var sb strings.Builder

	for _, row := range that.grid {
		sb.WriteString(strings.Join(lo.Map(row, func(cell Piece, _ int) string {
			return "|" + cell.Symbol() + "|"
		}), ""))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Board) String() string {
	return that.Render()
}

func (that *Board) validateCell(row, col int) error {
	if row < 0 || row >= that.size || col < 0 || col >= that.size {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", apperror.ErrOutOfBounds, row, col, that.size, that.size)
	}

	return nil
}

func (that *Board) row(row int) []Piece {
	return that.grid[row]
}

func (that *Board) column(col int) []Piece {
	return lo.Map(that.grid, func(row []Piece, _ int) Piece {
		return row[col]
	})
}

func (that *Board) diagonal() []Piece {
	return lo.Times(that.size, func(i int) Piece {
		return that.grid[i][i]
	})
}

// antiDiagonal - runs from the bottom-left corner to the top-right one.
func (that *Board) antiDiagonal() []Piece {
	return lo.Times(that.size, func(i int) Piece {
		return that.grid[that.size-1-i][i]
	})
}
