package console

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/entity"
)

const boardTemplate = `
         %s | %s | %s
        ---+---+---
         %s | %s | %s
        ---+---+---
         %s | %s | %s
`

// Render - draws the board as a 3x3 grid; empty cells show their index.
func Render(board entity.Board) string {
	cells := make([]any, len(board))
	for i, cell := range board {
		cells[i] = cell
	}

	return fmt.Sprintf(boardTemplate, cells...)
}
