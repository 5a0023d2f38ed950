package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoding": map[string]any{
			"apiKey":   "",
			"cacheTtl": "24h",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODING_APIKEY", want: "geocoding.apiKey"},
		{envKey: "GEOCODING_CACHETTL", want: "geocoding.cacheTtl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  env: test
  log:
    level: info
geocoding:
  provider: google
  apiKey: from-file
  timeout: 2s
addresses:
  maxPerUser: 3
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Setenv("GEOCODING_APIKEY", "from-env")

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Geocoding.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Geocoding.Timeout)
	assert.Equal(t, 3, cfg.Addresses.MaxPerUser)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxAddressesPerUser, cfg.Addresses.MaxPerUser)
	assert.Equal(t, defaultMeetupMinRadius, cfg.Meetup.MinRadiusMeters)
	assert.Equal(t, defaultMeetupMaxRadius, cfg.Meetup.MaxRadiusMeters)
	assert.Equal(t, defaultGeocodingBaseURL, cfg.Geocoding.BaseURL)
	assert.Equal(t, defaultGeocodingTimeout, cfg.Geocoding.Timeout)
	assert.Equal(t, defaultPlaceCacheTTL, cfg.Geocoding.CacheTTL)
}
