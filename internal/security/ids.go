package security

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a random 32 character hex identifier.
func GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
