// Package cmd provides CLI commands for depositcsv.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/research-data-tools/depositcsv/catalog"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var catalogFile string

var rootCmd = &cobra.Command{
	Use:   "depositcsv",
	Short: "Prepare and upload research resource metadata from CSV",
	Long: `depositcsv turns CSV descriptions of research resources into the
metadata a deposit repository API expects, checks them, and uploads them.

Fields use the repository conventions: multilingual values as
"lang:text|lang:text", people as "Surname,Given;Surname2,Given2",
keywords as ";"-separated terms inside each language segment.

Examples:
  depositcsv convert -i items.csv --pretty
  depositcsv validate -i items.csv
  depositcsv enhance -i items.csv
  depositcsv upload -i items.csv --api-url https://api.example.org
  depositcsv watch --dir ./drop --api-url https://api.example.org`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "Custom property catalog YAML file")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(fieldsCmd)
}

// loadCatalog returns the default catalog, overlaid with the custom
// file when --catalog is set.
func loadCatalog() (*catalog.Catalog, error) {
	if catalogFile == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}
