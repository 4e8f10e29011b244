package tictactoe

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sealed/internal/crypto"
	"github.com/rocketscienceinc/tictactoe-sealed/internal/entity"
)

type keyDeriver interface {
	Derive(passkey string) (crypto.Key, error)
}

type sealer interface {
	Seal(payload []byte, key crypto.Key) (string, error)
	Open(token string, key crypto.Key) (crypto.Opened, error)
}

// TokenCodec converts a game state to a token and back.
type TokenCodec struct {
	deriver keyDeriver
	sealer  sealer
}

func NewTokenCodec(deriver keyDeriver, sealer sealer) *TokenCodec {
	return &TokenCodec{
		deriver: deriver,
		sealer:  sealer,
	}
}

// Encode - serializes state and seals it under the key derived from passkey.
func (that *TokenCodec) Encode(state entity.State, passkey string) (string, error) {
	key, err := that.deriver.Derive(passkey)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	payload, err := json.Marshal(state.Payload())
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	token, err := that.sealer.Seal(payload, key)
	if err != nil {
		return "", fmt.Errorf("failed to seal payload: %w", err)
	}

	return token, nil
}

// Decode - opens token with the key derived from passkey and validates the game inside.
func (that *TokenCodec) Decode(token, passkey string) (entity.State, time.Time, error) {
	key, err := that.deriver.Derive(passkey)
	if err != nil {
		return entity.State{}, time.Time{}, fmt.Errorf("failed to derive key: %w", err)
	}

	opened, err := that.sealer.Open(token, key)
	if err != nil {
		return entity.State{}, time.Time{}, fmt.Errorf("failed to open token: %w", err)
	}

	var payload entity.Payload
	if err = json.Unmarshal(opened.Payload, &payload); err != nil {
		return entity.State{}, time.Time{}, fmt.Errorf("%w: %w", apperror.ErrInconsistentPayload, err)
	}

	state, err := payload.State()
	if err != nil {
		return entity.State{}, time.Time{}, fmt.Errorf("invalid payload: %w", err)
	}

	return state, opened.SealedAt, nil
}
