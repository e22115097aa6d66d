// Package cmd defines the command-line interface for altsource.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(familiesCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of candidates to display")
	rootCmd.PersistentFlags().Int("candidate-limit", contract.DefaultCandidateLimit, "Maximum number of catalog candidates to evaluate (0 = no limit)")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent evaluation workers")
	rootCmd.PersistentFlags().Float64("review-credit", schema.DefaultReviewCredit, "Fraction of a rule's weight awarded for a review verdict (0.0-1.0)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TableOut), "Output format: table or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("tables", "", "Optional YAML file with extra rule tables and deltas")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-candidate metadata (score, lifecycle, price, stock)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("cache-ttl", "", "Part cache time-to-live (e.g. 24h, 30m)")
	rootCmd.PersistentFlags().String("catalog-source", string(contract.EmbeddedCatalog), "Part catalog source: embedded or http")
	rootCmd.PersistentFlags().String("catalog-url", "", "Base URL of the remote part catalog service")
	rootCmd.PersistentFlags().String("catalog-token-url", "", "OAuth2 token endpoint for the catalog service")
	rootCmd.PersistentFlags().String("catalog-client-id", "", "OAuth2 client id for the catalog service")
	rootCmd.PersistentFlags().String("catalog-client-secret", "", "OAuth2 client secret (prefer ALTSOURCE_CATALOG_CLIENT_SECRET)")
	rootCmd.PersistentFlags().String("catalog-timeout", "", "HTTP timeout for catalog requests (e.g. 15s)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind the explain flag of matchCmd to Viper. The request-shaping flags
	// (--for, --answer, --set) are read straight from Cobra per invocation.
	matchCmd.Flags().Bool("explain", false, "Print the top failing rules per candidate")
	if err := viper.BindPFlags(matchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding match flags", err)
	}
	matchCmd.Flags().String("for", "", "Category label override when the catalog category is wrong or missing")
	matchCmd.Flags().StringToString("answer", nil, "Context question answers as id=value pairs (repeatable)")
	matchCmd.Flags().StringToString("set", nil, "Source attribute overrides as id=value pairs (repeatable)")

	explainCmd.Flags().String("for", "", "Category label override")
	explainCmd.Flags().StringToString("answer", nil, "Context question answers as id=value pairs (repeatable)")

	classifyCmd.Flags().String("for", "", "Category label override")

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
