package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// RandomString draws length characters uniformly from alphabet. Selection
// goes through crypto/rand.Int so no alphabet position is favored.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errors.New("length must be non-negative")
	}
	if length == 0 {
		return "", nil
	}
	if alphabet == "" {
		return "", errors.New("alphabet must not be empty")
	}

	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for index := range out {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[index] = alphabet[position.Int64()]
	}
	return string(out), nil
}
