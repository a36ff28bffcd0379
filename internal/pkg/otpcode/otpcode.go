package otpcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabet is the set of characters codes are drawn from. Alphanumeric keeps
// codes easy to read back over the phone while staying high-entropy at the
// configured length (62^12 for the default 12 characters).
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// New generates a code of n characters drawn uniformly from Alphabet using
// crypto/rand. A guessable code is a direct bypass, so math/rand is never
// acceptable here.
func New(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("otpcode: invalid length %d", n)
	}
	b := make([]byte, n)
	max := big.NewInt(int64(len(Alphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("otpcode: read entropy: %w", err)
		}
		b[i] = Alphabet[idx.Int64()]
	}
	return string(b), nil
}
