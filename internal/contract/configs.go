package contract

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/altsource/altsource/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit    = 10
	MaxResultLimit        = 500
	DefaultCandidateLimit = 200
	MaxCandidateLimit     = 5000
	DefaultPrecision      = 1
	DefaultCacheTTL       = 24 * time.Hour
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// CatalogSource selects where parts are fetched from.
type CatalogSource string

// Valid catalog sources.
const (
	EmbeddedCatalog CatalogSource = "embedded" // built-in fixture catalog
	HTTPCatalog     CatalogSource = "http"     // remote catalog service
)

// ValidCatalogSources is the set of accepted catalog sources.
var ValidCatalogSources = map[CatalogSource]struct{}{
	EmbeddedCatalog: {},
	HTTPCatalog:     {},
}

// CatalogConfig holds connection settings for the remote catalog service.
// Credentials should come from env vars as they are plaintext.
type CatalogConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// Config holds the runtime configuration for a matching run.
// This struct remains the "final, validated" config.
type Config struct {
	ResultLimit    int
	CandidateLimit int
	Workers        int
	ReviewCredit   float64
	Detail         bool
	Explain        bool
	Precision      int
	Output         schema.OutputMode
	OutputFile     string
	TablesPath     string // optional YAML file with extra families and deltas
	Width          int    // Terminal width override (0 = auto-detect)

	Catalog       CatalogConfig
	CatalogSource CatalogSource

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	CacheTTL       time.Duration

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Limit          int     `mapstructure:"limit"`
	CandidateLimit int     `mapstructure:"candidate-limit"`
	Workers        int     `mapstructure:"workers"`
	ReviewCredit   float64 `mapstructure:"review-credit"`
	Precision      int     `mapstructure:"precision"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Tables         string  `mapstructure:"tables"`
	Detail         bool    `mapstructure:"detail"`
	Width          int     `mapstructure:"width"`
	CacheBackend   string  `mapstructure:"cache-backend"`
	CacheDBConnect string  `mapstructure:"cache-db-connect"`
	CacheTTL       string  `mapstructure:"cache-ttl"`
	Emoji          string  `mapstructure:"emoji"`
	Color          string  `mapstructure:"color"`

	// --- Fields from matchCmd.Flags() ---
	Explain bool `mapstructure:"explain"`

	// --- Catalog connection, usually from config file or env ---
	CatalogSource   string `mapstructure:"catalog-source"`
	CatalogURL      string `mapstructure:"catalog-url"`
	CatalogTokenURL string `mapstructure:"catalog-token-url"`
	ClientID        string `mapstructure:"catalog-client-id"`
	ClientSecret    string `mapstructure:"catalog-client-secret"`
	CatalogTimeout  string `mapstructure:"catalog-timeout"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processCatalogConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.TablesPath = input.Tables
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. CandidateLimit Validation ---
	if input.CandidateLimit < 0 || input.CandidateLimit > MaxCandidateLimit {
		return fmt.Errorf("candidate-limit must be between 0 and %d (received %d)", MaxCandidateLimit, input.CandidateLimit)
	}
	cfg.CandidateLimit = input.CandidateLimit

	// --- 3. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 4. ReviewCredit Validation ---
	if input.ReviewCredit < 0 || input.ReviewCredit > 1 {
		return fmt.Errorf("review-credit must be between 0.0 and 1.0 (received %.2f)", input.ReviewCredit)
	}
	cfg.ReviewCredit = input.ReviewCredit

	// --- 5. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be between 0 and 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be table, csv, json, parquet", cfg.Output)
	}

	return nil
}

// validateBackendConfigs validates the cache backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL != "" {
		ttl, err := time.ParseDuration(input.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cache-ttl '%s': %w", input.CacheTTL, err)
		}
		if ttl <= 0 {
			return fmt.Errorf("cache-ttl must be positive (received %s)", ttl)
		}
		cfg.CacheTTL = ttl
	}

	return nil
}

// processCatalogConfig validates the catalog source and connection settings.
func processCatalogConfig(cfg *Config, input *ConfigRawInput) error {
	source := CatalogSource(strings.ToLower(input.CatalogSource))
	if source == "" {
		source = EmbeddedCatalog
	}
	if _, ok := ValidCatalogSources[source]; !ok {
		return fmt.Errorf("invalid catalog source '%s'. must be embedded, http", input.CatalogSource)
	}
	cfg.CatalogSource = source

	cfg.Catalog = CatalogConfig{
		BaseURL:      strings.TrimRight(input.CatalogURL, "/"),
		TokenURL:     input.CatalogTokenURL,
		ClientID:     input.ClientID,
		ClientSecret: input.ClientSecret,
		Timeout:      15 * time.Second,
	}
	if input.CatalogTimeout != "" {
		timeout, err := time.ParseDuration(input.CatalogTimeout)
		if err != nil {
			return fmt.Errorf("invalid catalog-timeout '%s': %w", input.CatalogTimeout, err)
		}
		cfg.Catalog.Timeout = timeout
	}

	if source == HTTPCatalog {
		if cfg.Catalog.BaseURL == "" {
			return fmt.Errorf("catalog-url is required when catalog-source is http")
		}
		if cfg.Catalog.TokenURL != "" && (cfg.Catalog.ClientID == "" || cfg.Catalog.ClientSecret == "") {
			return fmt.Errorf("catalog-client-id and catalog-client-secret are required when catalog-token-url is set")
		}
	}

	return nil
}
