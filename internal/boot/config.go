// Package boot loads runtime configuration from the environment.
package boot

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the server's runtime settings.
type Config struct {
	Env        string `env:"ENV,default=dev"`
	Port       int    `env:"PORT,default=8080"`
	DataDir    string `env:"DATA_DIR,default=./data"`
	HashScheme string `env:"HASH_SCHEME,default=sha256"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (Config, error) {
	config := Config{}
	if err := envconfig.Process(ctx, &config); err != nil {
		return Config{}, fmt.Errorf("parsing env vars: %w", err)
	}
	if config.HashScheme != "sha256" && config.HashScheme != "argon2id" {
		return Config{}, fmt.Errorf("HASH_SCHEME must be sha256 or argon2id, got %q", config.HashScheme)
	}
	return config, nil
}
