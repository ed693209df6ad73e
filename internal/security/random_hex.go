package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

var errNonPositiveLength = errors.New("byte length must be positive")

// RandomHex reads byteLen bytes from crypto/rand and returns them hex encoded,
// so the result is twice as long as byteLen.
func RandomHex(byteLen int) (string, error) {
	if byteLen <= 0 {
		return "", errNonPositiveLength
	}
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
