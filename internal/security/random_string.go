package security

import (
	"crypto/rand"
	"errors"
)

var (
	errNegativeLength   = errors.New("length must be non-negative")
	errEmptyAlphabet    = errors.New("alphabet must not be empty")
	errAlphabetTooLarge = errors.New("alphabet must fit in a byte")
)

// RandomString draws length characters uniformly from alphabet. Bytes from
// crypto/rand are rejection-sampled so no alphabet position is favored.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}
	if len(alphabet) > 256 {
		return "", errAlphabetTooLarge
	}

	// Largest multiple of len(alphabet) representable in a byte. A zero
	// cutoff means 256 divides evenly and every byte is acceptable.
	cutoff := byte(256 - 256%len(alphabet))

	value := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(value) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}
		for _, raw := range buffer {
			if cutoff != 0 && raw >= cutoff {
				continue
			}
			value = append(value, alphabet[int(raw)%len(alphabet)])
			if len(value) == length {
				break
			}
		}
	}

	return string(value), nil
}
