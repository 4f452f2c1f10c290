package random

import (
	"crypto/rand"
	"math/big"
)

// Random provides the randomness behind sheet codes
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String builds a string of the given length from characters of alphabet
	String(length int, alphabet string) string
}

// CryptoRandom draws from crypto/rand
type CryptoRandom struct{}

// New creates a CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a uniformly distributed int in [0, n), or 0 when n <= 0
func (CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// String builds a random string from the alphabet
func (r CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}
	chars := []rune(alphabet)
	out := make([]rune, length)
	for i := range out {
		out[i] = chars[r.Intn(len(chars))]
	}
	return string(out)
}
