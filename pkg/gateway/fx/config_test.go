package gatewayfx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Greatversion/httpkit/pkg/gateway"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("https://api.example.com")

	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, gateway.DefaultConnectTimeout, cfg.ConnectTimeout)
	assert.Equal(t, gateway.DefaultReceiveTimeout, cfg.ReceiveTimeout)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GATEWAY_BASE_URL", "https://api.example.com")
	t.Setenv("GATEWAY_CONNECT_TIMEOUT", "5")
	t.Setenv("GATEWAY_RECEIVE_TIMEOUT", "20")

	cfg := ConfigFromEnv()

	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 20*time.Second, cfg.ReceiveTimeout)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("GATEWAY_BASE_URL", "https://api.example.com")
	t.Setenv("GATEWAY_CONNECT_TIMEOUT", "")
	t.Setenv("GATEWAY_RECEIVE_TIMEOUT", "not-a-number")

	cfg := ConfigFromEnv()

	assert.Equal(t, gateway.DefaultConnectTimeout, cfg.ConnectTimeout)
	assert.Equal(t, gateway.DefaultReceiveTimeout, cfg.ReceiveTimeout)
}
