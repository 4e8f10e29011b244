package crypto

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/chacha20poly1305"
	"lukechampine.com/frand"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/apperror"
)

const (
	envelopeVersion byte = 0x01

	timestampSize = 8
	headerSize    = 1 + timestampSize
	nonceSize     = chacha20poly1305.NonceSizeX
	minTokenSize  = headerSize + nonceSize + chacha20poly1305.Overhead
)

var tokenEncoding = base64.RawURLEncoding.Strict()

// Opened is the verified content of a token.
type Opened struct {
	Payload  []byte
	SealedAt time.Time
}

// Envelope seals payloads into printable tokens with XChaCha20-Poly1305.
//
// Token layout before encoding:
//
//	version(1) | sealed_at(8, unix seconds, big endian) | nonce(24) | ciphertext+tag
//
// The version and timestamp are authenticated as additional data.
type Envelope struct {
	random io.Reader
	now    func() time.Time
}

func NewEnvelope() *Envelope {
	return &Envelope{
		random: frand.Reader,
		now:    time.Now,
	}
}

// Seal - encrypts and authenticates payload under key, using a fresh nonce every call.
func (that *Envelope) Seal(payload []byte, key Key) (string, error) {
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return "", fmt.Errorf("failed to init cipher: %w", err)
	}

	header := make([]byte, headerSize)
	header[0] = envelopeVersion
	binary.BigEndian.PutUint64(header[1:], uint64(that.now().Unix())) //nolint: gosec // unix time is positive

	nonce := make([]byte, nonceSize)
	if _, err = io.ReadFull(that.random, nonce); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}

	out := make([]byte, 0, minTokenSize+len(payload))
	out = append(out, header...)
	out = append(out, nonce...)
	sealed := aead.Seal(out, nonce, payload, header)

	return tokenEncoding.EncodeToString(sealed), nil
}

// Open - verifies token under key and returns the payload. Nothing is returned unless the tag verifies.
func (that *Envelope) Open(token string, key Key) (Opened, error) {
	raw, err := tokenEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return Opened{}, fmt.Errorf("%w: not base64url", apperror.ErrMalformedToken)
	}

	if len(raw) < minTokenSize {
		return Opened{}, fmt.Errorf("%w: %d bytes is too short", apperror.ErrMalformedToken, len(raw))
	}

	if raw[0] != envelopeVersion {
		return Opened{}, fmt.Errorf("%w: unknown version %d", apperror.ErrMalformedToken, raw[0])
	}

	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return Opened{}, fmt.Errorf("failed to init cipher: %w", err)
	}

	header := raw[:headerSize]
	nonce := raw[headerSize : headerSize+nonceSize]

	payload, err := aead.Open(nil, nonce, raw[headerSize+nonceSize:], header)
	if err != nil {
		return Opened{}, apperror.ErrAuthenticationFailure
	}

	sealedAt := int64(binary.BigEndian.Uint64(header[1:])) //nolint: gosec // written from a unix timestamp

	return Opened{
		Payload:  payload,
		SealedAt: time.Unix(sealedAt, 0),
	}, nil
}
