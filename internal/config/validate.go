package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/phased/internal/logger"
	"github.com/terraincognita07/phased/internal/security"
)

const MinSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

// Validate checks business rules on a loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if err := ValidateSecretKey(c.Security.SecretKey); err != nil {
		return err
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535 (got %d)", c.Server.Port)
	}
	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Server.Timezone, err)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("db path must not be empty")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be > 0 (got %s)", c.Session.TTL)
	}
	if c.Session.SweepInterval < 0 {
		return fmt.Errorf("session sweep interval must be >= 0 (got %s)", c.Session.SweepInterval)
	}
	if _, err := security.ParseKeyMode(c.Security.EncryptionKeyMode); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Mode) {
	case logger.ModeDevelopment, logger.ModeProduction:
	default:
		return fmt.Errorf("log mode must be %s or %s (got %q)", logger.ModeDevelopment, logger.ModeProduction, c.Log.Mode)
	}
	return nil
}

func ValidateSecretKey(secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < MinSecretKeyLength {
		return fmt.Errorf("SECRET_KEY must be at least %d characters (got %d)", MinSecretKeyLength, len(secret))
	}
	return nil
}
