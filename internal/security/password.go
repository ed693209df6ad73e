package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	PasswordIterations = 10000
	PasswordKeyLength  = 32
	saltBytes          = 16
)

var ErrMalformedPasswordHash = errors.New("malformed password hash")

// PasswordHash is a derived key and the salt used to derive it, both hex encoded.
type PasswordHash struct {
	Hash string
	Salt string
}

// String renders the stored "hash:salt" form.
func (hash PasswordHash) String() string {
	return hash.Hash + ":" + hash.Salt
}

func ParsePasswordHash(stored string) (PasswordHash, error) {
	hash, salt, found := strings.Cut(stored, ":")
	if !found || hash == "" || salt == "" {
		return PasswordHash{}, ErrMalformedPasswordHash
	}
	return PasswordHash{Hash: hash, Salt: salt}, nil
}

// HashPassword derives a PBKDF2-SHA256 key. An empty salt is replaced with 16 fresh random bytes.
func HashPassword(password string, salt string) (PasswordHash, error) {
	if salt == "" {
		generated, err := RandomHex(saltBytes)
		if err != nil {
			return PasswordHash{}, err
		}
		salt = generated
	}

	key := pbkdf2.Key([]byte(password), []byte(salt), PasswordIterations, PasswordKeyLength, sha256.New)
	return PasswordHash{Hash: hex.EncodeToString(key), Salt: salt}, nil
}

func VerifyPassword(password string, hash string, salt string) bool {
	if hash == "" || salt == "" {
		return false
	}
	candidate, err := HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate.Hash), []byte(strings.ToLower(hash))) == 1
}

// VerifyStoredPassword checks a password against the "hash:salt" form kept on a profile.
func VerifyStoredPassword(password string, stored string) bool {
	parsed, err := ParsePasswordHash(stored)
	if err != nil {
		return false
	}
	return VerifyPassword(password, parsed.Hash, parsed.Salt)
}
