package commit

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Source supplies the randomness a commitment needs. Implementations used
// outside tests must be cryptographically secure.
type Source interface {
	Read(p []byte) (int, error)
	IntN(n int) (int, error)
}

// CryptoSource reads from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) Read(p []byte) (int, error) {
	return rand.Read(p)
}

// IntN returns a uniform value in [0, n).
func (CryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("IntN: n must be positive")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
