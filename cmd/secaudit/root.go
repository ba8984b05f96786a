package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aleister1102/secaudit/internal/config"
	"github.com/aleister1102/secaudit/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "secaudit",
	Short: "Static-analysis security auditor for source trees",
	Long: `secaudit scans a source tree for known vulnerability patterns,
filters findings through a suppression list, and decides whether the
scan should fail the build. Designed to run unattended in CI or
interactively from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a YAML/JSON audit configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(suppressionsCmd)
}

// Execute runs the CLI and maps outcomes to process exit codes:
// 0 success, 1 policy failure or validation errors, 2 usage/runtime error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			if exit.message != "" {
				fmt.Fprintln(os.Stderr, exit.message)
			}
			return exit.code
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
	return 0
}

// exitError carries an explicit process exit code out of a command.
type exitError struct {
	code    int
	message string
}

func (e *exitError) Error() string { return e.message }

// loadConfigAndLogger builds the shared config and logger for commands.
func loadConfigAndLogger() (*config.SecurityAuditConfig, zerolog.Logger, error) {
	bootstrapLogger := zerolog.Nop()

	cfg, err := config.LoadConfig(configFile, bootstrapLogger)
	if err != nil {
		return nil, bootstrapLogger, err
	}
	if logLevel != "" {
		cfg.LogConfig.LogLevel = logLevel
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, bootstrapLogger, err
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		return nil, bootstrapLogger, err
	}

	return cfg, zLogger, nil
}
