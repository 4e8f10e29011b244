package application

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/config"
	"github.com/rocketscienceinc/tictactoe-sealed/internal/crypto"
	"github.com/rocketscienceinc/tictactoe-sealed/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sealed/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-sealed/transport/console"
)

type terminal interface {
	ReadToken() (string, error)
	WriteToken(token string) error
	PromptPasskey(purpose entity.Purpose) (string, error)
	PromptMove(board entity.Board, symbol string) (int, error)
	ShowBoard(board entity.Board)
	Notify(message string)
}

// RunApp - runs one round on the process terminal.
func RunApp(logger zerolog.Logger, conf *config.Config) error {
	log := logger.With().Str("component", "app").Logger()

	rl, err := console.NewReadline()
	if err != nil {
		return err
	}

	defer func() {
		if err := rl.Close(); err != nil {
			log.Error().Err(err).Msg("could not close terminal")
		}
	}()

	return PlayRound(logger, conf, console.New(logger, rl, rl.Stdout()))
}

// PlayRound - wires the game controller to term and plays a single round.
func PlayRound(logger zerolog.Logger, conf *config.Config, term terminal) error {
	log := logger.With().Str("component", "app").Logger()

	deriver, err := crypto.NewKeyDeriver(conf.KDF.Salt, conf.KDF.Iterations)
	if err != nil {
		return fmt.Errorf("invalid kdf config: %w", err)
	}

	codec := tictactoe.NewTokenCodec(deriver, crypto.NewEnvelope())
	controller := tictactoe.NewGameController(logger, codec, term)

	result, err := controller.PlayRound()
	if err != nil {
		return err
	}

	log.Info().
		Bool("continued", result.Continued).
		Str("symbol", result.Symbol).
		Int("move", result.Move).
		Stringer("outcome", result.Outcome).
		Bool("token_written", result.Token != "").
		Msg("round finished")

	return nil
}
