package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"time"
)

const shortCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateOpaqueToken returns a cryptographically random 64-character hex
// string (256 bits of entropy). Used for email verification and password
// reset capabilities.
func GenerateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateShortCode returns a random lowercase alphanumeric code of the given
// length. Lower entropy than GenerateOpaqueToken; not for security-critical flows.
func GenerateShortCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	code := make([]byte, length)
	max := big.NewInt(int64(len(shortCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = shortCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// IsTokenExpired reports whether a token with the given expiry is no longer
// usable at now. The boundary counts as expired: a token expires the instant
// now equals its expiry.
func IsTokenExpired(now, expiry time.Time) bool {
	return !now.Before(expiry)
}
