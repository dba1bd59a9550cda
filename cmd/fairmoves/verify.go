package main

import (
	"encoding/hex"
	"fmt"

	"github.com/lox/fairmoves/internal/commit"
)

// VerifyCmd recomputes a commitment from its revealed parts.
type VerifyCmd struct {
	Key    string `required:"" help:"Revealed HMAC key (hex)"`
	Move   string `required:"" help:"Revealed computer move"`
	Digest string `required:"" help:"HMAC digest shown before you moved (hex)"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	s, err := g.setup()
	if err != nil {
		return err
	}

	ok, err := commit.Verify(c.Key, c.Move, c.Digest)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("Commitment mismatch", "move", c.Move)
		key, _ := hex.DecodeString(c.Key)
		fmt.Printf("MISMATCH: HMAC-SHA256(key, %q) = %s\n", c.Move, commit.Digest(key, c.Move))
		fmt.Printf("          published HMAC      = %s\n", c.Digest)
		return exitCode(1)
	}

	fmt.Printf("OK: %q was committed before you moved\n", c.Move)
	return nil
}
