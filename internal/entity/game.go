package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	// FirstSymbol opens every fresh game.
	FirstSymbol = PlayerX

	BoardSize = 9
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a flat 3x3 grid. An unplayed cell holds its own index ("0".."8").
type Board [BoardSize]string

// NewBoard - returns a board with every cell unplayed.
func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = placeholder(i)
	}

	return board
}

// ParseBoard - rebuilds a board from its 9 character wire form.
func ParseBoard(raw string) (Board, error) {
	var board Board

	if len(raw) != BoardSize {
		return board, fmt.Errorf("%w: board has %d cells", apperror.ErrInconsistentPayload, len(raw))
	}

	for i := range board {
		cell := raw[i : i+1]
		if cell != placeholder(i) && !IsSymbol(cell) {
			return board, fmt.Errorf("%w: cell %d holds %q", apperror.ErrInconsistentPayload, i, cell)
		}
		board[i] = cell
	}

	return board, nil
}

func (that Board) String() string {
	return strings.Join(that[:], "")
}

// IsLegalMove - reports whether cell is on the board and still unplayed.
func (that Board) IsLegalMove(cell int) bool {
	if cell < 0 || cell >= BoardSize {
		return false
	}

	return !IsSymbol(that[cell])
}

// ApplyMove - returns a copy of the board with symbol placed on cell.
func (that Board) ApplyMove(cell int, symbol string) (Board, error) {
	if !IsSymbol(symbol) {
		return that, fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, symbol)
	}

	if that.Evaluate().IsTerminal() {
		return that, apperror.ErrGameFinished
	}

	if !that.IsLegalMove(cell) {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrIllegalMove, cell)
	}

	that[cell] = symbol

	return that, nil
}

// LegalMoves - lists the unplayed cells in ascending order.
func (that Board) LegalMoves() []int {
	return lo.Filter(lo.Range(BoardSize), func(cell int, _ int) bool {
		return that.IsLegalMove(cell)
	})
}

// Evaluate - checks the board for a winning triple, then for a draw.
func (that Board) Evaluate() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if IsSymbol(a) && a == b && b == c {
			return Won(a)
		}
	}

	// the game will continue until all the squares are full
	if lo.EveryBy(that[:], IsSymbol) {
		return Draw()
	}

	return InProgress()
}

// Count - returns how many cells hold symbol.
func (that Board) Count(symbol string) int {
	return lo.Count(that[:], symbol)
}

// NextSymbol - the symbol that moves after last.
func NextSymbol(last string) string {
	if last == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func IsSymbol(cell string) bool {
	return cell == PlayerX || cell == PlayerO
}

func placeholder(cell int) string {
	return strconv.Itoa(cell)
}
