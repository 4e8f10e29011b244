package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/apperror"
)

// NoMove marks a fresh game that has no previous move.
const NoMove = -1

// Payload is the unit carried inside a token.
type Payload struct {
	Board    string `json:"board"`
	LastMove int    `json:"last_move"`
}

// State is a board together with the most recent move. Whose turn it is
// is always derived from the symbol at LastMove.
type State struct {
	Board    Board
	LastMove int
}

func NewState() State {
	return State{
		Board:    NewBoard(),
		LastMove: NoMove,
	}
}

// LastSymbol - returns the symbol of the previous move, or "" for a fresh game.
func (that State) LastSymbol() string {
	if that.LastMove == NoMove {
		return ""
	}

	return that.Board[that.LastMove]
}

// NextSymbol - returns the symbol that moves now.
func (that State) NextSymbol() string {
	if that.LastMove == NoMove {
		return FirstSymbol
	}

	return NextSymbol(that.LastSymbol())
}

// Play - places the next symbol on cell and records it as the last move.
func (that State) Play(cell int) (State, error) {
	board, err := that.Board.ApplyMove(cell, that.NextSymbol())
	if err != nil {
		return that, err
	}

	return State{Board: board, LastMove: cell}, nil
}

func (that State) Payload() Payload {
	return Payload{
		Board:    that.Board.String(),
		LastMove: that.LastMove,
	}
}

// State - checks that the payload describes a reachable position and converts it.
func (that Payload) State() (State, error) {
	board, err := ParseBoard(that.Board)
	if err != nil {
		return State{}, err
	}

	if that.LastMove < 0 || that.LastMove >= BoardSize {
		return State{}, fmt.Errorf("%w: last move %d out of range", apperror.ErrInconsistentPayload, that.LastMove)
	}

	last := board[that.LastMove]
	if !IsSymbol(last) {
		return State{}, fmt.Errorf("%w: last move %d points to an empty cell", apperror.ErrInconsistentPayload, that.LastMove)
	}

	xCount, oCount := board.Count(PlayerX), board.Count(PlayerO)

	switch {
	case xCount == oCount+1 && last == PlayerX:
	case xCount == oCount && last == PlayerO:
	default:
		return State{}, fmt.Errorf("%w: %d X and %d O with %s moving last", apperror.ErrInconsistentPayload, xCount, oCount, last)
	}

	if outcome := board.Evaluate(); outcome.Result == ResultWon && outcome.Winner != last {
		return State{}, fmt.Errorf("%w: %s won but %s moved last", apperror.ErrInconsistentPayload, outcome.Winner, last)
	}

	return State{Board: board, LastMove: that.LastMove}, nil
}
