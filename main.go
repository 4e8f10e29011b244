package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	app "github.com/rocketscienceinc/tictactoe-sealed/internal"
	"github.com/rocketscienceinc/tictactoe-sealed/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sealed/internal/config"
	"github.com/rocketscienceinc/tictactoe-sealed/transport/console"
)

const exitFailure = 1

// main - is the entry point of the application. It initializes the configuration, logger, and plays one round.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(exitFailure)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	err := app.RunApp(logger, conf)

	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrDecryptionFailed):
		// never echo the token or the passkey back
		fmt.Println("Decryption failed.")
		logger.Debug().Err(err).Msg("decryption failed")
		os.Exit(exitFailure)
	case errors.Is(err, console.ErrInterrupted), errors.Is(err, io.EOF):
		os.Exit(exitFailure)
	default:
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	path := os.Getenv("TTT_CONFIG")
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, "./config.yml")
	}

	return config.MustLoad(path)
}

// initialize logger. Logs go to stderr so stdout only carries the game.
func initLogger(conf *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
