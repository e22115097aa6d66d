package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/altsource/altsource/internal/catalog"
	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/internal/iocache"
	"github.com/altsource/altsource/internal/outwriter"
	"github.com/altsource/altsource/registry"
	"github.com/altsource/altsource/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// writer renders reports in the configured output format.
var writer = outwriter.NewOutWriter()

// reg holds the rule tables, populated by sharedSetup.
var reg *registry.Registry

// provider is the part catalog, populated by sharedSetup.
var provider contract.PartProvider

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "altsource",
	Short:              "Find and rank substitute electronic components.",
	Long:               `Altsource ranks drop-in substitutes for electronic parts using weighted rule tables, with an explainable verdict for every rule.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".altsource") // Name of config file (without extension)
		viper.SetConfigType("yaml")       // We'll use YAML format
		viper.AddConfigPath(".")          // Look in the current directory
		viper.AddConfigPath("$HOME")      // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("ALTSOURCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("candidate-limit", contract.DefaultCandidateLimit)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("review-credit", schema.DefaultReviewCredit)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TableOut)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
	viper.SetDefault("catalog-source", contract.EmbeddedCatalog)
	viper.SetDefault("emoji", "yes")
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config, runs validation and builds the matching
// dependencies (rule registry, part provider, cache).
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	color.NoColor = !cfg.UseColors

	// 4. Initialize persistence layer with validated config
	if err := iocache.InitCaching(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	// 5. Build the rule registry and the part provider chain.
	var err error
	if reg, err = newRegistry(); err != nil {
		return err
	}
	provider = newProvider()

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// newRegistry builds the rule registry from the built-in families plus any
// user-supplied tables file.
func newRegistry() (*registry.Registry, error) {
	r := registry.New()
	if cfg.TablesPath != "" {
		file, err := registry.LoadTablesFile(cfg.TablesPath)
		if err != nil {
			return nil, fmt.Errorf("unable to load tables file: %w", err)
		}
		if err := r.Apply(file); err != nil {
			return nil, fmt.Errorf("unable to apply tables file: %w", err)
		}
	}
	return r, nil
}

// newProvider builds the part provider chain. Remote catalogs get a
// write-through cache in front unless caching is disabled.
func newProvider() contract.PartProvider {
	var inner contract.PartProvider
	switch cfg.CatalogSource {
	case contract.HTTPCatalog:
		inner = catalog.NewHTTPProvider(cfg.Catalog)
	default:
		inner = catalog.NewEmbeddedProvider()
	}
	if cfg.CacheBackend != schema.NoneBackend {
		inner = catalog.NewCachedProvider(inner, iocache.Manager.GetPartStore(), cfg.CacheTTL)
	}
	return inner
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	// Handle config file
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".altsource")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
