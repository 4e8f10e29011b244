package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/apperror"
)

const (
	KeySize = 32

	DefaultSalt       = "tictactoe_game_salt"
	DefaultIterations = 100_000

	minIterations = 10_000
)

var (
	ErrEmptySalt     = errors.New("kdf salt is empty")
	ErrLowIterations = errors.New("kdf iteration count is too low")
)

// Key is raw symmetric key material. It is never persisted.
type Key [KeySize]byte

// KeyDeriver turns a passkey into a Key with PBKDF2-HMAC-SHA256.
//
// The salt is shared by every installation built with the same configuration,
// so it only slows down guessing of a single passkey, not precomputation across
// installations.
type KeyDeriver struct {
	salt       []byte
	iterations int
}

func NewKeyDeriver(salt string, iterations int) (*KeyDeriver, error) {
	if salt == "" {
		return nil, ErrEmptySalt
	}

	if iterations < minIterations {
		return nil, fmt.Errorf("%w: %d < %d", ErrLowIterations, iterations, minIterations)
	}

	return &KeyDeriver{
		salt:       []byte(salt),
		iterations: iterations,
	}, nil
}

// Derive - deterministically derives the key for passkey.
func (that *KeyDeriver) Derive(passkey string) (Key, error) {
	var key Key

	if passkey == "" {
		return key, apperror.ErrInvalidPasskey
	}

	copy(key[:], pbkdf2.Key([]byte(passkey), that.salt, that.iterations, KeySize, sha256.New))

	return key, nil
}
