package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/process", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
		},
	}
}

func TestLimiter_BurstThenDeny(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, _ := limiter.Allow("1.2.3.4", "/process", "POST")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("1.2.3.4", "/process", "POST")
	assert.True(t, allowed)

	allowed, info := limiter.Allow("1.2.3.4", "/process", "POST")
	require.False(t, allowed)
	assert.Equal(t, 60, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/process", "POST")
	limiter.Allow("1.2.3.4", "/process", "POST")
	limiter.Allow("1.2.3.4", "/process", "POST")

	allowed, _ := limiter.Allow("5.6.7.8", "/process", "POST")
	assert.True(t, allowed)
}

func TestLimiter_WhitelistBypasses(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("9.9.9.9", "/process", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/process", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_DefaultBudgetForUnknownEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 1
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("1.2.3.4", "/other", "GET")
	assert.True(t, allowed)
	allowed, info := limiter.Allow("1.2.3.4", "/other", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 1, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/process", Method: "POST", Limit: 60},
		{Path: "/files/", Method: "GET", Limit: 10},
	}

	match := MatchEndpoint("/process", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, 60, match.Limit)

	// Prefix match for trailing-slash paths.
	match = MatchEndpoint("/files/abc.pdf", "GET", configs)
	require.NotNil(t, match)
	assert.Equal(t, 10, match.Limit)

	// Method must match too.
	assert.Nil(t, MatchEndpoint("/process", "GET", configs))

	// Liveness endpoints are unlimited.
	match = MatchEndpoint("/health", "GET", nil)
	require.NotNil(t, match)
	assert.LessOrEqual(t, match.Limit, 0)
}
