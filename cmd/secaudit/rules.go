package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aleister1102/secaudit/internal/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered security rule sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SET\tID\tSEVERITY\tNAME")

		for _, setName := range rules.SetNames() {
			for _, rule := range rules.RulesInSet(setName) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", setName, rule.ID, rule.Severity, rule.Name)
			}
		}
		return tw.Flush()
	},
}
