package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// KeyMode selects how the encryption key is obtained from the unlock password.
type KeyMode string

const (
	KeyModePassword KeyMode = "password"
	KeyModeDerived  KeyMode = "derived"
)

const (
	passwordBlobVersion = "v1"
	derivedBlobVersion  = "v2"
	derivedSaltLength   = 16

	passwordKeyLabel = "phased.profile-data.v1"
	derivedKeyLabel  = "phased.profile-data.v2."
	profileDataAAD   = "phased.profile-data"
)

var ErrDecryption = errors.New("decryption failed")

func ParseKeyMode(raw string) (KeyMode, error) {
	switch KeyMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", KeyModePassword:
		return KeyModePassword, nil
	case KeyModeDerived:
		return KeyModeDerived, nil
	default:
		return "", fmt.Errorf("unknown encryption key mode %q", raw)
	}
}

// DataCipher seals JSON payloads with AES-256-GCM under a password.
// Blobs of either version can be opened regardless of Mode.
type DataCipher struct {
	Mode KeyMode
}

func NewDataCipher(mode KeyMode) *DataCipher {
	if mode != KeyModeDerived {
		mode = KeyModePassword
	}
	return &DataCipher{Mode: mode}
}

func (dataCipher *DataCipher) EncryptData(data any, password string) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	mode := KeyModePassword
	if dataCipher != nil {
		mode = dataCipher.Mode
	}

	var (
		version string
		salt    []byte
		key     [32]byte
	)
	switch mode {
	case KeyModeDerived:
		version = derivedBlobVersion
		salt = make([]byte, derivedSaltLength)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return "", fmt.Errorf("generate key salt: %w", err)
		}
		key = derivedKey(password, salt)
	default:
		version = passwordBlobVersion
		key = passwordKey(password)
	}

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, []byte(profileDataAAD))
	payload := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	payload = append(payload, salt...)
	payload = append(payload, nonce...)
	payload = append(payload, ciphertext...)

	return version + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

// DecryptData opens blob and decodes the JSON payload into out.
// Every failure is ErrDecryption and out is left untouched.
func (dataCipher *DataCipher) DecryptData(blob string, password string, out any) error {
	version, encoded, found := strings.Cut(strings.TrimSpace(blob), ".")
	if !found || encoded == "" {
		return ErrDecryption
	}
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ErrDecryption
	}

	var key [32]byte
	switch version {
	case passwordBlobVersion:
		key = passwordKey(password)
	case derivedBlobVersion:
		if len(payload) <= derivedSaltLength {
			return ErrDecryption
		}
		key = derivedKey(password, payload[:derivedSaltLength])
		payload = payload[derivedSaltLength:]
	default:
		return ErrDecryption
	}

	aead, err := newAEAD(key)
	if err != nil {
		return ErrDecryption
	}
	nonceSize := aead.NonceSize()
	if len(payload) <= nonceSize {
		return ErrDecryption
	}
	plaintext, err := aead.Open(nil, payload[:nonceSize], payload[nonceSize:], []byte(profileDataAAD))
	if err != nil {
		return ErrDecryption
	}
	return decodeInto(plaintext, out)
}

func decodeInto(plaintext []byte, out any) error {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return ErrDecryption
	}
	if !json.Valid(plaintext) {
		return ErrDecryption
	}

	staged := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(plaintext, staged.Interface()); err != nil {
		return ErrDecryption
	}
	target.Elem().Set(staged.Elem())
	return nil
}

func passwordKey(password string) [32]byte {
	material := make([]byte, 0, len(passwordKeyLabel)+len(password))
	material = append(material, passwordKeyLabel...)
	material = append(material, password...)
	return sha256.Sum256(material)
}

func derivedKey(password string, salt []byte) [32]byte {
	labeled := make([]byte, 0, len(derivedKeyLabel)+len(salt))
	labeled = append(labeled, derivedKeyLabel...)
	labeled = append(labeled, salt...)

	var key [32]byte
	copy(key[:], pbkdf2.Key([]byte(password), labeled, PasswordIterations, len(key), sha256.New))
	return key
}

func newAEAD(key [32]byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init aead: %w", err)
	}
	return aead, nil
}
