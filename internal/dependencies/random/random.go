package random

import (
	"crypto/rand"
	"math/big"
)

// Random is the source of randomness for shuffling and bots
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Shuffle permutes n elements with a Fisher-Yates shuffle, calling swap
	// to exchange positions i and j
	Shuffle(n int, swap func(i, j int))
}

// CryptoRandom draws from crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a uniform int in [0, n), or 0 when n is not positive
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

func (r *CryptoRandom) Shuffle(n int, swap func(i, j int)) {
	FisherYates(r, n, swap)
}

// FisherYates shuffles n elements using rnd.Intn, walking from the last
// position down to the second
func FisherYates(rnd Random, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, rnd.Intn(i+1))
	}
}
