package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketUrl":     "",
			"maxImageBytes": 0,
		},
		"catalog": map[string]any{
			"defaultCountryCode": "+20",
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
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_MAXIMAGEBYTES", want: "storage.maxImageBytes"},
		{envKey: "CATALOG_DEFAULTCOUNTRYCODE", want: "catalog.defaultCountryCode"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Storage: &StorageConfig{BucketURL: "mem://"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "ar", cfg.Catalog.Locale)
	assert.Equal(t, "+20", cfg.Catalog.DefaultCountryCode)
	assert.Equal(t, int64(1<<20), cfg.Storage.MaxImageBytes)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.MaxRequestBodySize = "2MB"
	cfg.Catalog.Locale = "en"
	cfg.Catalog.DefaultCountryCode = "+966"

	applyDefaults(cfg)

	assert.Equal(t, "2MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "en", cfg.Catalog.Locale)
	assert.Equal(t, "+966", cfg.Catalog.DefaultCountryCode)
	assert.Nil(t, cfg.Storage)
}
