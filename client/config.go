package client

import (
	"os"
	"time"
)

// Environment variables consulted by ConfigFromEnv.
const (
	EnvAPIKeyID     = "CDP_API_KEY_ID"
	EnvAPIKeySecret = "CDP_API_KEY_SECRET"
	EnvWalletSecret = "CDP_WALLET_SECRET"
)

// Config carries the credentials and telemetry identity used to
// authenticate outgoing requests.
type Config struct {
	APIKeyID     string
	APIKeySecret string

	// WalletSecret, when set, adds the second-factor signature over every
	// request body.
	WalletSecret string

	// Source and SourceVersion identify the SDK flavor for correlation.
	Source        string
	SourceVersion string

	// ExpiresIn overrides the bearer token validity window.
	ExpiresIn *time.Duration
}

// ConfigFromEnv reads credentials from the standard environment variables.
func ConfigFromEnv() Config {
	return Config{
		APIKeyID:     os.Getenv(EnvAPIKeyID),
		APIKeySecret: os.Getenv(EnvAPIKeySecret),
		WalletSecret: os.Getenv(EnvWalletSecret),
	}
}
