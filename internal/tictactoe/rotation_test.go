package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func TestRotation(t *testing.T) {
	playerA := entity.NewPlayer("A", entity.NewPiece(entity.KindX))
	playerB := entity.NewPlayer("B", entity.NewPiece(entity.KindO))

	t.Run("PushBack passes the turn", func(t *testing.T) {
		// Given: A then B
		rotation := NewRotation(playerA, playerB)

		// When: A is popped and pushed back
		player, err := rotation.PopFront()
		require.NoError(t, err)
		rotation.PushBack(player)

		// Then: B moves next
		next, err := rotation.Peek()
		require.NoError(t, err)
		assert.Equal(t, playerB, next)
		assert.Equal(t, []*entity.Player{playerB, playerA}, rotation.Players())
	})

	t.Run("PushFront keeps the turn", func(t *testing.T) {
		// Given: A then B
		rotation := NewRotation(playerA, playerB)

		// When: A is popped and pushed to the front
		player, err := rotation.PopFront()
		require.NoError(t, err)
		rotation.PushFront(player)

		// Then: A moves again
		next, err := rotation.Peek()
		require.NoError(t, err)
		assert.Equal(t, playerA, next)
		assert.Equal(t, 2, rotation.Len())
	})

	t.Run("Empty rotation", func(t *testing.T) {
		rotation := NewRotation()

		_, err := rotation.PopFront()
		require.ErrorIs(t, err, apperror.ErrEmptyRotation)

		_, err = rotation.Peek()
		require.ErrorIs(t, err, apperror.ErrEmptyRotation)
	})

	t.Run("Players is a snapshot", func(t *testing.T) {
		rotation := NewRotation(playerA)

		snapshot := rotation.Players()
		rotation.PushBack(playerB)

		assert.Len(t, snapshot, 1)
		assert.Equal(t, 2, rotation.Len())
	})
}
