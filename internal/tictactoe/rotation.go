package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Rotation is the turn order. The front player moves next.
type Rotation struct {
	players []*entity.Player
}

func NewRotation(players ...*entity.Player) *Rotation {
	return &Rotation{
		players: append([]*entity.Player(nil), players...),
	}
}

func (that *Rotation) Len() int {
	return len(that.players)
}

// PushBack - the player moves after everyone else in the rotation.
func (that *Rotation) PushBack(player *entity.Player) {
	that.players = append(that.players, player)
}

// PushFront - the player moves next.
func (that *Rotation) PushFront(player *entity.Player) {
	that.players = append([]*entity.Player{player}, that.players...)
}

func (that *Rotation) PopFront() (*entity.Player, error) {
	if len(that.players) == 0 {
		return nil, apperror.ErrEmptyRotation
	}

	player := that.players[0]
	that.players[0] = nil
	that.players = that.players[1:]

	return player, nil
}

func (that *Rotation) Peek() (*entity.Player, error) {
	if len(that.players) == 0 {
		return nil, apperror.ErrEmptyRotation
	}

	return that.players[0], nil
}

// Players - snapshot in turn order.
func (that *Rotation) Players() []*entity.Player {
	return append([]*entity.Player(nil), that.players...)
}
