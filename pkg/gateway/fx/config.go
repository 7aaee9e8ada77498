package gatewayfx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"github.com/Greatversion/httpkit/pkg/gateway"
)

// Config holds gateway configuration.
type Config struct {
	// BaseURL is the root of the remote API. Required.
	BaseURL string

	// ConnectTimeout bounds connection establishment. Default: 10 seconds.
	ConnectTimeout time.Duration

	// ReceiveTimeout bounds the whole request. Default: 15 seconds.
	ReceiveTimeout time.Duration
}

// DefaultConfig returns the default gateway configuration for baseURL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		ConnectTimeout: gateway.DefaultConnectTimeout,
		ReceiveTimeout: gateway.DefaultReceiveTimeout,
	}
}

// ConfigModule provides gateway config from environment variables.
// Environment variables:
//   - GATEWAY_BASE_URL: Root URL of the remote API (required)
//   - GATEWAY_CONNECT_TIMEOUT: Connect timeout in seconds (default: 10)
//   - GATEWAY_RECEIVE_TIMEOUT: Receive timeout in seconds (default: 15)
var ConfigModule = fx.Provide(ConfigFromEnv)

// ConfigFromEnv creates gateway config from environment variables.
func ConfigFromEnv() Config {
	return Config{
		BaseURL:        os.Getenv("GATEWAY_BASE_URL"),
		ConnectTimeout: getEnvDuration("GATEWAY_CONNECT_TIMEOUT", gateway.DefaultConnectTimeout),
		ReceiveTimeout: getEnvDuration("GATEWAY_RECEIVE_TIMEOUT", gateway.DefaultReceiveTimeout),
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
