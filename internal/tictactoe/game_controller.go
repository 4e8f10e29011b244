package tictactoe

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sealed/internal/entity"
)

type RoundState string

const (
	StateAwaitingToken            RoundState = "awaiting_token"
	StateDecoding                 RoundState = "decoding"
	StateCheckingIncomingTerminal RoundState = "checking_incoming_terminal"
	StateAwaitingMove             RoundState = "awaiting_move"
	StateApplyingMove             RoundState = "applying_move"
	StateCheckingOutgoingTerminal RoundState = "checking_outgoing_terminal"
	StateEncoding                 RoundState = "encoding"
	StateDone                     RoundState = "done"
)

type tokenCodec interface {
	Encode(state entity.State, passkey string) (string, error)
	Decode(token, passkey string) (entity.State, time.Time, error)
}

// console is everything the controller needs from the person at the keyboard.
type console interface {
	ReadToken() (string, error)
	WriteToken(token string) error
	PromptPasskey(purpose entity.Purpose) (string, error)
	// PromptMove must only return legal moves.
	PromptMove(board entity.Board, symbol string) (int, error)
	ShowBoard(board entity.Board)
	Notify(message string)
}

// RoundResult describes what happened during one round.
type RoundResult struct {
	Game      entity.State
	Outcome   entity.Outcome
	Continued bool
	Symbol    string
	Move      int
	Token     string
}

// GameController drives one round: decode, move, encode.
type GameController struct {
	logger  zerolog.Logger
	codec   tokenCodec
	console console

	state RoundState
}

func NewGameController(logger zerolog.Logger, codec tokenCodec, console console) *GameController {
	return &GameController{
		logger:  logger.With().Str("component", "game_controller").Logger(),
		codec:   codec,
		console: console,
		state:   StateAwaitingToken,
	}
}

// State - returns the state the round is in, StateDone once it has finished.
func (that *GameController) State() RoundState {
	return that.state
}

// PlayRound - plays a single round. Only token errors are returned as ErrDecryptionFailed.
func (that *GameController) PlayRound() (*RoundResult, error) {
	that.transition(StateAwaitingToken)

	token, err := that.console.ReadToken()
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	result := &RoundResult{Move: entity.NoMove}

	game := entity.NewState()
	if token == "" {
		that.console.ShowBoard(game.Board)
	} else {
		game, err = that.decode(token)
		if err != nil {
			return nil, err
		}

		result.Continued = true

		that.transition(StateCheckingIncomingTerminal)

		if outcome := game.Board.Evaluate(); outcome.IsTerminal() {
			that.console.Notify("Game over on your friend's move: " + describe(outcome))
			that.transition(StateDone)

			result.Game = game
			result.Outcome = outcome

			return result, nil
		}
	}

	that.transition(StateAwaitingMove)

	symbol := game.NextSymbol()

	move, err := that.console.PromptMove(game.Board, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to read move: %w", err)
	}

	that.transition(StateApplyingMove)

	if !game.Board.IsLegalMove(move) {
		return nil, fmt.Errorf("move source returned %d: %w", move, apperror.ErrIllegalMove)
	}

	game, err = game.Play(move)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	that.transition(StateCheckingOutgoingTerminal)

	outcome := game.Board.Evaluate()
	if outcome.IsTerminal() {
		that.reportOwnResult(outcome, symbol, result.Continued)
	}

	that.transition(StateEncoding)

	passkey, err := that.console.PromptPasskey(entity.PurposeEncrypt)
	if err != nil {
		return nil, fmt.Errorf("failed to read passkey: %w", err)
	}

	token, err = that.codec.Encode(game, passkey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode game: %w", err)
	}

	if err = that.console.WriteToken(token); err != nil {
		return nil, fmt.Errorf("failed to write token: %w", err)
	}

	that.transition(StateDone)

	result.Game = game
	result.Outcome = outcome
	result.Symbol = symbol
	result.Move = move
	result.Token = token

	return result, nil
}

func (that *GameController) decode(token string) (entity.State, error) {
	that.transition(StateDecoding)

	passkey, err := that.console.PromptPasskey(entity.PurposeDecrypt)
	if err != nil {
		return entity.State{}, fmt.Errorf("failed to read passkey: %w", err)
	}

	game, sealedAt, err := that.codec.Decode(token, passkey)
	if err != nil {
		if isTokenError(err) {
			that.logger.Debug().Err(err).Msg("token rejected")
			return entity.State{}, fmt.Errorf("%w: %w", apperror.ErrDecryptionFailed, err)
		}

		return entity.State{}, fmt.Errorf("failed to decode token: %w", err)
	}

	that.logger.Debug().
		Time("sealed_at", sealedAt).
		Int("last_move", game.LastMove).
		Msg("token opened")

	that.console.Notify(fmt.Sprintf("%s placed at %d.", game.LastSymbol(), game.LastMove))
	that.console.ShowBoard(game.Board)

	return game, nil
}

func (that *GameController) reportOwnResult(outcome entity.Outcome, symbol string, continued bool) {
	if !continued {
		that.console.Notify("Game over right away: " + describe(outcome))
		return
	}

	if outcome.Result == entity.ResultDraw {
		that.console.Notify("You've drawn the game.")
		return
	}

	that.console.Notify(fmt.Sprintf("You win as %s!", symbol))
}

func (that *GameController) transition(next RoundState) {
	that.logger.Debug().Str("from", string(that.state)).Str("to", string(next)).Msg("round state")
	that.state = next
}

func describe(outcome entity.Outcome) string {
	if outcome.Result == entity.ResultDraw {
		return "It's a draw!"
	}

	return outcome.Winner + " won!"
}

func isTokenError(err error) bool {
	return errors.Is(err, apperror.ErrMalformedToken) ||
		errors.Is(err, apperror.ErrAuthenticationFailure) ||
		errors.Is(err, apperror.ErrInconsistentPayload) ||
		errors.Is(err, apperror.ErrInvalidPasskey)
}
