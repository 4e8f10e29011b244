package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/entity"
)

const (
	tokenPrompt = "Enter encrypted string (or press Enter to start new game): "
	movePrompt  = "Where will you place your %s? > "

	decryptPrompt = "Enter passkey to decrypt: "
	encryptPrompt = "Choose a passkey to encrypt your move: "
)

var ErrInterrupted = errors.New("input interrupted")

type lineReader interface {
	Readline() (string, error)
	ReadPassword(prompt string) ([]byte, error)
	SetPrompt(prompt string)
}

// Console talks to the player over a terminal: it reads the incoming token,
// passkeys and moves, and prints the board and the outgoing token.
type Console struct {
	logger zerolog.Logger
	reader lineReader
	out    io.Writer
}

func New(logger zerolog.Logger, reader lineReader, out io.Writer) *Console {
	return &Console{
		logger: logger.With().Str("component", "console").Logger(),
		reader: reader,
		out:    out,
	}
}

// ReadToken - reads one line; an empty line starts a new game.
func (that *Console) ReadToken() (string, error) {
	that.reader.SetPrompt(tokenPrompt)

	line, err := that.readLine()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// WriteToken - prints the token on its own line so it can be copied as is.
func (that *Console) WriteToken(token string) error {
	if _, err := fmt.Fprintf(that.out, "\nEncrypted string to send:\n%s\n", token); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}

	return nil
}

// PromptPasskey - reads a passkey without echo, asking again while it is empty.
func (that *Console) PromptPasskey(purpose entity.Purpose) (string, error) {
	prompt := decryptPrompt
	if purpose == entity.PurposeEncrypt {
		prompt = encryptPrompt
	}

	for {
		passkey, err := that.reader.ReadPassword(prompt)
		if err != nil {
			return "", inputError(err)
		}

		if len(passkey) > 0 {
			return string(passkey), nil
		}

		that.println("Passkey cannot be empty.")
	}
}

// PromptMove - asks until the player names an empty cell.
func (that *Console) PromptMove(board entity.Board, symbol string) (int, error) {
	that.reader.SetPrompt(fmt.Sprintf(movePrompt, symbol))

	for {
		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		cell, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && board.IsLegalMove(cell) {
			return cell, nil
		}

		that.logger.Debug().Str("input", line).Msg("rejected move")
		that.println("Invalid spot. Try 0-8 on an empty cell.")
		that.println("Open cells: " + openCells(board))
	}
}

func (that *Console) ShowBoard(board entity.Board) {
	that.print(Render(board))
}

func (that *Console) Notify(message string) {
	that.println(message)
}

func (that *Console) readLine() (string, error) {
	line, err := that.reader.Readline()
	if err != nil {
		return "", inputError(err)
	}

	return line, nil
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Warn().Err(err).Msg("failed to write output")
	}
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}

func inputError(err error) error {
	if errors.Is(err, readline.ErrInterrupt) {
		return ErrInterrupted
	}

	return fmt.Errorf("failed to read input: %w", err)
}

func openCells(board entity.Board) string {
	cells := lo.Map(board.LegalMoves(), func(cell int, _ int) string {
		return strconv.Itoa(cell)
	})

	return strings.Join(cells, " ")
}
