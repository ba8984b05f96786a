package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aleister1102/secaudit/internal/auditor"
	"github.com/aleister1102/secaudit/internal/models"
	"github.com/aleister1102/secaudit/internal/reporter"
	"github.com/spf13/cobra"
)

var (
	scanFailOn  string
	scanFormats []string
	scanOutput  string
	scanNoColor bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a source tree for security findings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectRoot := "."
		if len(args) == 1 {
			projectRoot = args[0]
		}

		cfg, zLogger, err := loadConfigAndLogger()
		if err != nil {
			return err
		}

		if scanFailOn != "" {
			cfg.Reporting.FailOnSeverity = scanFailOn
		}
		if len(scanFormats) > 0 {
			cfg.Reporting.Formats = scanFormats
		}

		securityAuditor, err := auditor.NewSecurityAuditor(cfg, zLogger)
		if err != nil {
			return err
		}

		result, auditErr := securityAuditor.Audit(cmd.Context(), projectRoot)

		// Render the report regardless of the policy outcome; a failed
		// audit still carries its full result.
		var failed *models.AuditFailedError
		if auditErr != nil && !errors.As(auditErr, &failed) {
			return auditErr
		}
		if failed != nil {
			result = failed.Result
		}

		if err := renderReports(cfg.Reporting.Formats, result); err != nil {
			return err
		}

		if failed != nil {
			return &exitError{code: 1, message: failed.Error()}
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanFailOn, "fail-on", "", "fail the build when findings meet this severity (info, low, medium, high, critical)")
	scanCmd.Flags().StringSliceVar(&scanFormats, "format", nil, "report formats to render (console, markdown, json)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "write the last rendered report to a file instead of stdout")
	scanCmd.Flags().BoolVar(&scanNoColor, "no-color", false, "disable colorized console output")
}

// renderReports renders the result in every requested format. Console
// goes to stdout; with --output, non-console formats go to the file.
func renderReports(formats []string, result *models.ScanResult) error {
	if len(formats) == 0 {
		formats = []string{reporter.FormatConsole}
	}

	for _, format := range formats {
		var rep reporter.Reporter
		var err error

		if format == reporter.FormatConsole {
			rep = reporter.NewConsoleReporter(scanNoColor)
		} else {
			rep, err = reporter.ForFormat(format)
			if err != nil {
				return err
			}
		}

		output := rep.Generate(result)

		if scanOutput != "" && format != reporter.FormatConsole {
			if err := os.WriteFile(scanOutput, []byte(output), 0644); err != nil {
				return fmt.Errorf("failed to write report to %s: %w", scanOutput, err)
			}
			continue
		}
		fmt.Print(output)
	}
	return nil
}
