package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")
	t.Setenv("FEED_API_KEY", "k")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("TOKEN_SECRET", "s")
	t.Setenv("FEED_API_KEY", "")
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "s")
	t.Setenv("FEED_API_KEY", "k")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "https://newsapi.org/v2", cfg.FeedBaseURL)
	assert.Equal(t, "us", cfg.FeedRegion)
	assert.Equal(t, 5*time.Second, cfg.FeedTimeout)
	assert.False(t, cfg.IsProduction())
}
