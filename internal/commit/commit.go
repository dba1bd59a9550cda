// Package commit implements the computer's commit-reveal protocol.
//
// Before the human chooses, the engine picks a move and publishes
// HMAC-SHA-256(key, move). After the human has chosen, the key and move are
// revealed so anyone can recompute the digest and confirm the move was fixed
// in advance.
package commit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/lox/fairmoves/internal/moves"
)

// KeySize is the length of the secret HMAC key in bytes.
const KeySize = 32

// ErrEntropyUnavailable is returned when the random source cannot supply a
// key or a move index. There is no fallback.
var ErrEntropyUnavailable = errors.New("secure randomness unavailable")

// Engine creates commitments using an injected random source.
type Engine struct {
	src Source
}

// NewEngine returns an engine drawing keys and moves from src. A nil src
// uses CryptoSource.
func NewEngine(src Source) *Engine {
	if src == nil {
		src = CryptoSource{}
	}
	return &Engine{src: src}
}

// Commitment binds the engine to one move for one round. Only the digest is
// visible until Reveal is called.
type Commitment struct {
	key    []byte
	move   string
	digest string
}

// Reveal is the disclosed half of a commitment.
type Reveal struct {
	Key  string // hex encoded
	Move string
}

// Commit picks a move uniformly from set and commits to it under a fresh key.
func (e *Engine) Commit(set moves.MoveSet) (*Commitment, error) {
	key := make([]byte, KeySize)
	n, err := e.src.Read(key)
	if err != nil {
		return nil, fmt.Errorf("%w: reading key: %v", ErrEntropyUnavailable, err)
	}
	if n != KeySize {
		return nil, fmt.Errorf("%w: short key read (%d of %d bytes)", ErrEntropyUnavailable, n, KeySize)
	}

	idx, err := e.src.IntN(set.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: choosing move: %v", ErrEntropyUnavailable, err)
	}
	if idx < 0 || idx >= set.Len() {
		return nil, fmt.Errorf("%w: move index %d out of range [0,%d)", ErrEntropyUnavailable, idx, set.Len())
	}

	move := set.Label(idx)
	return &Commitment{
		key:    key,
		move:   move,
		digest: Digest(key, move),
	}, nil
}

// Digest returns the published half of the commitment.
func (c *Commitment) Digest() string { return c.digest }

// Reveal discloses the key and the committed move.
func (c *Commitment) Reveal() Reveal {
	return Reveal{Key: hex.EncodeToString(c.key), Move: c.move}
}

// Digest computes HMAC-SHA-256(key, move) as lowercase hex.
func Digest(key []byte, move string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(move))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether digest is the commitment to move under the
// hex-encoded key.
func Verify(keyHex, move, digest string) (bool, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("decoding key: %w", err)
	}
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false, fmt.Errorf("decoding digest: %w", err)
	}
	if len(want) != sha256.Size {
		return false, fmt.Errorf("digest must be %d bytes, got %d", sha256.Size, len(want))
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(move))
	return hmac.Equal(mac.Sum(nil), want), nil
}
