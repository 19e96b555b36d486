// Package cmd provides CLI commands for marcwalk.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marcwalk/profile"
)

// Version is set at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

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

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "marcwalk",
	Short: "Translate MARC 21 records into normalized JSON",
	Long: `Marcwalk reads MARCXML and maps each MARC 21 record onto a flat,
normalized record: bibliographic, authority or holdings, chosen from the
leader.

Mapped records can be written as JSON, JSON Lines, CSV or protobuf, shaped
by an output profile.

Examples:
  marcwalk convert -i records.xml -o records.json
  marcwalk convert csv -p summary < records.xml
  cat records.xml | marcwalk convert jsonl
  marcwalk validate -i records.xml
  marcwalk serve`,
	Version: Version,
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
	if dir := os.Getenv("MARCWALK_HOME"); dir != "" {
		profile.SetConfigDir(dir)
	}
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(auditCmd)
}
