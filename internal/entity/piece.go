package entity

import (
	"errors"
	"fmt"
)

type PieceKind int

const (
	KindX PieceKind = iota + 1
	KindO
)

const (
	SymbolX     = "X"
	SymbolO     = "O"
	SymbolEmpty = "_"
)

var ErrUnknownPieceKind = errors.New("unknown piece kind")

// Symbol - returns the single character drawn on the board for the kind.
func (that PieceKind) Symbol() string {
	switch that {
	case KindX:
		return SymbolX
	case KindO:
		return SymbolO
	default:
		return SymbolEmpty
	}
}

func (that PieceKind) String() string {
	return that.Symbol()
}

// ParsePieceKind - maps a configured mark ("X" or "O") to its kind.
func ParsePieceKind(mark string) (PieceKind, error) {
	switch mark {
	case SymbolX:
		return KindX, nil
	case SymbolO:
		return KindO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPieceKind, mark)
	}
}

// Piece is a player's mark. The zero value is an empty cell.
type Piece struct {
	Kind PieceKind `json:"kind"`
}

func NewPiece(kind PieceKind) Piece {
	return Piece{Kind: kind}
}

func (that Piece) IsEmpty() bool {
	return that.Kind != KindX && that.Kind != KindO
}

// Equal - pieces are equal when both are placed and share a kind.
func (that Piece) Equal(other Piece) bool {
	return !that.IsEmpty() && that.Kind == other.Kind
}

func (that Piece) Symbol() string {
	return that.Kind.Symbol()
}

func (that Piece) String() string {
	return that.Symbol()
}
