package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draw(seedRand interface{ IntN(int) int }, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = seedRand.IntN(1000)
	}
	return out
}

func TestNewIsReproducible(t *testing.T) {
	assert.Equal(t, draw(New(7), 20), draw(New(7), 20))
	assert.NotEqual(t, draw(New(7), 20), draw(New(8), 20))
}

func TestStreamsDiffer(t *testing.T) {
	assert.Equal(t, draw(Stream(7, 1), 20), draw(Stream(7, 1), 20))
	assert.NotEqual(t, draw(Stream(7, 0), 20), draw(Stream(7, 1), 20))
	assert.NotEqual(t, draw(Stream(7, 0), 20), draw(Stream(8, 0), 20))
}
