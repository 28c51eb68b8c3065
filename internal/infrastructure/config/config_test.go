package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DEFAULT_FINANCING_COEFFICIENT", "LINE_TOLERANCE",
		"OFFERS_TABLE", "OFFER_STATUS_HISTORY_TABLE", "LEASERS_TABLE", "COMMISSIONS_TABLE", "AMBASSADORS_TABLE",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "OFFER_EVENTS_STREAM",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.DefaultCoefficient.Equal(decimal.RequireFromString("3.27")))
	assert.True(t, cfg.LineTolerance.Equal(decimal.RequireFromString("0.01")))
	assert.Empty(t, cfg.Tables.Offers)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "offer-events", cfg.Redis.Stream)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_FINANCING_COEFFICIENT", "2.95")
	t.Setenv("OFFERS_TABLE", "offers-dev")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.DefaultCoefficient.Equal(decimal.RequireFromString("2.95")))
	assert.Equal(t, "offers-dev", cfg.Tables.Offers)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"port":                 {"PORT", "eighty"},
		"coefficient":          {"DEFAULT_FINANCING_COEFFICIENT", "abc"},
		"zero coefficient":     {"DEFAULT_FINANCING_COEFFICIENT", "0"},
		"negative tolerance":   {"LINE_TOLERANCE", "-1"},
		"redis db not numeric": {"REDIS_DB", "x"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
