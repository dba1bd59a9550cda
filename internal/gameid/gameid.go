// Package gameid generates sortable identifiers for game rounds. IDs are
// UUIDv7 values written as 26 lowercase Crockford base32 characters, so
// rounds logged in order also sort in order.
package gameid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"
)

// Crockford base32, lowercase: no i, l, o or u.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID.
const Length = 26

// Generator creates round IDs from a clock and a byte source.
type Generator struct {
	clock  quartz.Clock
	random io.Reader
}

// NewGenerator returns a generator. A nil clock uses the real clock and a nil
// reader uses crypto/rand.
func NewGenerator(clock quartz.Clock, random io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if random == nil {
		random = rand.Reader
	}
	return &Generator{clock: clock, random: random}
}

// Generate returns a new round ID.
func (g *Generator) Generate() (string, error) {
	id, err := g.uuidV7()
	if err != nil {
		return "", err
	}
	return encodeBase32(id), nil
}

func (g *Generator) uuidV7() ([16]byte, error) {
	var id [16]byte

	// 48-bit millisecond timestamp, then 80 random bits with the version and
	// variant fields overwritten.
	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if _, err := io.ReadFull(g.random, id[6:]); err != nil {
		return id, fmt.Errorf("reading round id entropy: %w", err)
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80
	return id, nil
}

// encodeBase32 writes 128 bits as 26 five-bit groups, padding the final group
// with two zero bits.
func encodeBase32(data [16]byte) string {
	var b strings.Builder
	b.Grow(Length)

	var acc uint32
	bits := 0
	for _, c := range data {
		acc = acc<<8 | uint32(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			b.WriteByte(alphabet[(acc>>bits)&0x1f])
		}
	}
	if bits > 0 {
		b.WriteByte(alphabet[(acc<<(5-bits))&0x1f])
	}
	return b.String()
}

// Validate checks that id is a well-formed round ID.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("round ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
