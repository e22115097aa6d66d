package contract

import (
	"testing"
	"time"

	"github.com/altsource/altsource/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:          10,
		CandidateLimit: 200,
		Workers:        4,
		ReviewCredit:   0.5,
		Precision:      1,
		Output:         "table",
		CacheBackend:   "sqlite",
		Emoji:          "no",
		Color:          "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(in *ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "invalid limit (zero)",
			mutate:      func(in *ConfigRawInput) { in.Limit = 0 },
			expectError: true,
		},
		{
			name:        "invalid limit (too large)",
			mutate:      func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			expectError: true,
		},
		{
			name:        "invalid workers",
			mutate:      func(in *ConfigRawInput) { in.Workers = 0 },
			expectError: true,
		},
		{
			name:        "review credit out of range",
			mutate:      func(in *ConfigRawInput) { in.ReviewCredit = 1.5 },
			expectError: true,
		},
		{
			name:        "invalid output format",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:        "parquet output accepted",
			mutate:      func(in *ConfigRawInput) { in.Output = "parquet" },
			expectError: false,
		},
		{
			name:        "invalid cache backend",
			mutate:      func(in *ConfigRawInput) { in.CacheBackend = "redis" },
			expectError: true,
		},
		{
			name: "mysql backend requires connection string",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
			},
			expectError: true,
		},
		{
			name: "mysql backend with valid connection string",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
				in.CacheDBConnect = "user:pass@tcp(localhost:3306)/altsource"
			},
			expectError: false,
		},
		{
			name: "postgresql backend missing dbname",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "postgresql"
				in.CacheDBConnect = "host=localhost user=app"
			},
			expectError: true,
		},
		{
			name:        "invalid cache ttl",
			mutate:      func(in *ConfigRawInput) { in.CacheTTL = "1 fortnight" },
			expectError: true,
		},
		{
			name: "http catalog requires url",
			mutate: func(in *ConfigRawInput) {
				in.CatalogSource = "http"
			},
			expectError: true,
		},
		{
			name: "http catalog with token url requires credentials",
			mutate: func(in *ConfigRawInput) {
				in.CatalogSource = "http"
				in.CatalogURL = "https://catalog.example.com"
				in.CatalogTokenURL = "https://auth.example.com/token"
			},
			expectError: true,
		},
		{
			name: "http catalog fully configured",
			mutate: func(in *ConfigRawInput) {
				in.CatalogSource = "http"
				in.CatalogURL = "https://catalog.example.com/"
				in.CatalogTokenURL = "https://auth.example.com/token"
				in.ClientID = "client"
				in.ClientSecret = "secret"
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	input := validInput()
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, 10, cfg.ResultLimit)
	assert.Equal(t, 200, cfg.CandidateLimit)
	assert.Equal(t, 0.5, cfg.ReviewCredit)
	assert.Equal(t, schema.TableOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, EmbeddedCatalog, cfg.CatalogSource)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.UseEmojis)
}

func TestProcessAndValidateCatalogTrimsURL(t *testing.T) {
	input := validInput()
	input.CatalogSource = "http"
	input.CatalogURL = "https://catalog.example.com/"
	input.CatalogTimeout = "30s"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "https://catalog.example.com", cfg.Catalog.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost/db"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/db"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost dbname=app sslmode=disable"))
}
