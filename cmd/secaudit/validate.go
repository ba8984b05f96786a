package main

import (
	"fmt"

	"github.com/aleister1102/secaudit/internal/suppression"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the audit configuration and suppression list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, zLogger, err := loadConfigAndLogger()
		if err != nil {
			return err
		}

		matcher := suppression.NewMatcher(cfg.Suppressions, zLogger)
		problems := matcher.Validate()
		if len(problems) == 0 {
			fmt.Printf("Configuration valid: %d suppression(s), no problems found\n", len(cfg.Suppressions))
			return nil
		}

		fmt.Printf("Found %d problem(s) in the suppression configuration:\n", len(problems))
		for _, problem := range problems {
			fmt.Println("  -", problem)
		}
		return &exitError{code: 1}
	},
}
