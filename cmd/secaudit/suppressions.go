package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/aleister1102/secaudit/internal/suppression"
	"github.com/spf13/cobra"
)

var suppressionsCmd = &cobra.Command{
	Use:   "suppressions",
	Short: "Show statistics for the configured suppressions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, zLogger, err := loadConfigAndLogger()
		if err != nil {
			return err
		}

		stats := suppression.NewMatcher(cfg.Suppressions, zLogger).Stats()

		fmt.Printf("Total suppressions: %d\n\n", stats.Total)

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tCOUNT")
		for _, category := range sortedKeys(stats.ByCategory) {
			fmt.Fprintf(tw, "%s\t%d\n", category, stats.ByCategory[category])
		}
		fmt.Fprintln(tw, "\nRULE\tCOUNT")
		for _, rule := range sortedKeys(stats.ByRule) {
			fmt.Fprintf(tw, "%s\t%d\n", rule, stats.ByRule[rule])
		}
		return tw.Flush()
	},
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
