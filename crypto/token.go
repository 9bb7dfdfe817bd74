package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

var (
	ErrTooManyArgs = errors.New("too many arguments. expected only 1")
)

const (
	DefaultTokenLength = 32 // 256 bits
)

func generateToken(byteLength int) (string, error) {
	if byteLength <= 0 {
		byteLength = DefaultTokenLength
	}

	bytes := make([]byte, byteLength)

	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// GenerateToken returns an opaque bearer token whose only contract is
// uniqueness and unguessability. Internal structure carries no meaning
// to callers.
func GenerateToken(byteLength ...int) (string, error) {
	if len(byteLength) > 1 {
		return "", ErrTooManyArgs
	}

	length := DefaultTokenLength

	if len(byteLength) > 0 && byteLength[0] > 0 {
		length = byteLength[0]
	}

	return generateToken(length)
}
