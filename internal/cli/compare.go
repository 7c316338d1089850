package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"canetrack/internal/config"
	"canetrack/internal/dto"
)

func newCompareCommand(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare manual vs mechanized harvest efficiency",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := buildService(cfg())
			c, err := svc.Compare(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Total records: %d\n\n", c.Total)
			printCohort("Manual", c.Manual)
			printCohort("Mechanized", c.Mechanized)
			fmt.Printf("\nEfficiency gap: %s%%\n\n", c.EfficiencyGap.StringFixed(2))
			for _, r := range c.Recommendations {
				fmt.Printf("- %s\n", r)
			}
			return nil
		},
	}
}

func printCohort(name string, stats dto.TypeStats) {
	if stats.Count == 0 {
		fmt.Printf("%s: no records\n", name)
		return
	}
	fmt.Printf("%s: %d record(s)\n", name, stats.Count)
	fmt.Printf("  avg efficiency %s%% | avg loss %s%%\n",
		stats.AvgEfficiency.StringFixed(2), stats.AvgLoss.StringFixed(2))
	fmt.Printf("  min efficiency %s%% | max efficiency %s%%\n",
		stats.MinEfficiency.StringFixed(2), stats.MaxEfficiency.StringFixed(2))
}
