package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/apperror"
)

func TestNewBoard(t *testing.T) {
	// When: create a new board
	board := NewBoard()

	// Then: every cell holds its own index
	expectedBoard := Board{"0", "1", "2", "3", "4", "5", "6", "7", "8"}
	require.Equal(t, expectedBoard, board)
	assert.Equal(t, "012345678", board.String())
}

func TestBoard_IsLegalMove(t *testing.T) {
	board := Board{PlayerX, "1", "2", "3", PlayerO, "5", "6", "7", "8"}

	t.Run("Empty cell is legal", func(t *testing.T) {
		assert.True(t, board.IsLegalMove(1))
		assert.True(t, board.IsLegalMove(8))
	})

	t.Run("Occupied cell is illegal", func(t *testing.T) {
		assert.False(t, board.IsLegalMove(0))
		assert.False(t, board.IsLegalMove(4))
	})

	t.Run("Out of range cell is illegal", func(t *testing.T) {
		assert.False(t, board.IsLegalMove(-1))
		assert.False(t, board.IsLegalMove(9))
		assert.False(t, board.IsLegalMove(20))
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Center move on a fresh board", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard()

		// When: X plays the center
		next, err := board.ApplyMove(4, PlayerX)
		require.NoError(t, err)

		// Then: only the center changed and the game continues
		assert.Equal(t, Board{"0", "1", "2", "3", "X", "5", "6", "7", "8"}, next)
		assert.Equal(t, InProgress(), next.Evaluate())

		// And: the original board is untouched
		assert.Equal(t, NewBoard(), board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 is taken by X
		board, err := NewBoard().ApplyMove(0, PlayerX)
		require.NoError(t, err)

		// When: O tries the same cell
		next, err := board.ApplyMove(0, PlayerO)

		// Then: ErrIllegalMove is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, board, next)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		_, err := NewBoard().ApplyMove(20, PlayerX)
		require.ErrorIs(t, err, apperror.ErrIllegalMove)

		_, err = NewBoard().ApplyMove(-1, PlayerX)
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Error on unknown symbol", func(t *testing.T) {
		_, err := NewBoard().ApplyMove(3, "Z")
		require.ErrorIs(t, err, apperror.ErrInvalidSymbol)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a board X has already won
		board := Board{PlayerX, PlayerX, PlayerX, "3", PlayerO, "5", "6", PlayerO, "8"}

		// When: O tries to move
		_, err := board.ApplyMove(3, PlayerO)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestBoard_Evaluate(t *testing.T) {
	t.Run("Every winning triple is detected", func(t *testing.T) {
		for _, symbol := range []string{PlayerX, PlayerO} {
			for _, combo := range WinCombos {
				// Given: a board with only this triple filled
				board := NewBoard()
				for _, cell := range combo {
					board[cell] = symbol
				}

				// Then: the symbol wins
				assert.Equal(t, Won(symbol), board.Evaluate(), "combo %v for %s", combo, symbol)
			}
		}
	})

	t.Run("Top row win", func(t *testing.T) {
		board := Board{"X", "X", "X", "3", "O", "5", "6", "7", "8"}

		assert.Equal(t, Won(PlayerX), board.Evaluate())
	})

	t.Run("Full board without a triple is a draw", func(t *testing.T) {
		board := Board{"X", "O", "X", "O", "X", "O", "O", "X", "O"}

		outcome := board.Evaluate()

		assert.Equal(t, Draw(), outcome)
		assert.True(t, outcome.IsTerminal())
	})

	t.Run("Open board without a triple is in progress", func(t *testing.T) {
		board := Board{PlayerX, PlayerO, PlayerX, "3", PlayerO, "5", PlayerX, "7", "8"}

		outcome := board.Evaluate()

		assert.Equal(t, InProgress(), outcome)
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("Win on the last free cell beats draw", func(t *testing.T) {
		board := Board{PlayerX, PlayerO, PlayerX, PlayerO, PlayerX, PlayerO, PlayerO, PlayerX, PlayerX}

		assert.Equal(t, Won(PlayerX), board.Evaluate())
	})
}

func TestBoard_LegalMoves(t *testing.T) {
	board := Board{PlayerX, "1", PlayerO, "3", PlayerX, "5", "6", "7", PlayerO}

	assert.Equal(t, []int{1, 3, 5, 6, 7}, board.LegalMoves())
	assert.Len(t, NewBoard().LegalMoves(), BoardSize)
}

func TestParseBoard(t *testing.T) {
	t.Run("Valid board", func(t *testing.T) {
		board, err := ParseBoard("XO2345678")

		require.NoError(t, err)
		assert.Equal(t, Board{"X", "O", "2", "3", "4", "5", "6", "7", "8"}, board)
	})

	t.Run("Wrong length", func(t *testing.T) {
		_, err := ParseBoard("X0")

		require.ErrorIs(t, err, apperror.ErrInconsistentPayload)
	})

	t.Run("Placeholder in the wrong cell", func(t *testing.T) {
		_, err := ParseBoard("012345687")

		require.ErrorIs(t, err, apperror.ErrInconsistentPayload)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		_, err := ParseBoard("Z12345678")

		require.ErrorIs(t, err, apperror.ErrInconsistentPayload)
	})
}

func TestNextSymbol(t *testing.T) {
	assert.Equal(t, PlayerO, NextSymbol(PlayerX))
	assert.Equal(t, PlayerX, NextSymbol(PlayerO))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "O won", Won(PlayerO).String())
	assert.Equal(t, "draw", Draw().String())
	assert.Equal(t, "in progress", InProgress().String())
}
