package config

import "time"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Security SecurityConfig `yaml:"security"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8080"`
	Timezone        string        `yaml:"timezone"         env:"TZ"                      env-default:"UTC"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"TRUST_PROXY"             env-default:"false"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" env:"DB_PATH" env-default:"data/phased.db"`
}

type SessionConfig struct {
	TTL           time.Duration `yaml:"ttl"            env:"SESSION_TTL"            env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1m"`
}

type SecurityConfig struct {
	SecretKey         string `yaml:"secret_key"          env:"SECRET_KEY"`
	EncryptionKeyMode string `yaml:"encryption_key_mode" env:"ENCRYPTION_KEY_MODE" env-default:"password"`
}

type LogConfig struct {
	Mode string `yaml:"mode" env:"LOG_MODE" env-default:"development"`
}

// Location resolves the configured timezone. Validate has already rejected unknown names.
func (c *Config) Location() *time.Location {
	location, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}
