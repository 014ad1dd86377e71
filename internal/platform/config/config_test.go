package config_test

import (
	"log/slog"
	"testing"

	"github.com/SscSPs/car_rental_backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LATE_FEE_RATE", "0.75")
	t.Setenv("DEPOSIT_SURCHARGE_RATE", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT", "10-S")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "0.75", cfg.LateFeeRate.String())
	assert.Equal(t, "0.15", cfg.DepositSurchargeRate.String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_ZeroRatesAreKept(t *testing.T) {
	t.Setenv("LATE_FEE_RATE", "0")
	t.Setenv("DEPOSIT_SURCHARGE_RATE", "0")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.LateFeeRate.IsZero(), cfg.LateFeeRate.String())
	assert.True(t, cfg.DepositSurchargeRate.IsZero(), cfg.DepositSurchargeRate.String())
}
