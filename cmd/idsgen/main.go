// Package main provides the idsgen binary entry point.
// Idsgen converts tabular requirement workbooks into Information Delivery
// Specification (IDS) files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/idsgen/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "idsgen"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		inputDir   string
		outputDir  string
		sheetName  string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "idsgen",
		Short: "Requirement workbook to IDS converter",
		Long: `Idsgen turns requirement workbooks into buildingSMART IDS files.

A workbook carries its conversion settings on an IDS4ALL sheet and its
requirements on a sheet with prefixed facet columns (A.Entity, R.Property,
and so on). Each workbook yields one IDS file per file-separator value
combination.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(configPath, inputDir, outputDir, sheetName, logLevel)
			if err != nil {
				return err
			}
			return app.ConvertAll()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&inputDir, "input", "", "Input directory with workbooks")
	cmd.PersistentFlags().StringVar(&outputDir, "output", "", "Output directory for IDS files")
	cmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Requirement sheet name, overriding the settings sheet")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "convert",
		Short: "Convert the workbooks in the input directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(configPath, inputDir, outputDir, sheetName, logLevel)
			if err != nil {
				return err
			}
			return app.ConvertAll()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and reconvert on changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(configPath, inputDir, outputDir, sheetName, logLevel)
			if err != nil {
				return err
			}
			return app.Watch(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setup loads the layered configuration, applies flag overrides, and builds
// the application with a configured logger.
func setup(configPath, inputDir, outputDir, sheetName, logLevel string) (*App, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.NewLoader(nil).Load()
		if err != nil {
			return nil, err
		}
	}

	if inputDir != "" {
		cfg.Input.Dir = inputDir
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level := slog.LevelInfo
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	app := NewApp(cfg, logger)
	app.sheet = sheetName
	return app, nil
}
