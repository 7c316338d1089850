package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"canetrack/internal/config"
)

// NewRootCommand creates the canetrack root command.
func NewRootCommand() *cobra.Command {
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:   "canetrack",
		Short: "Sugarcane harvest efficiency monitor",
		Long: `canetrack tracks sugarcane harvest lots (manual vs. mechanized),
computes efficiency and loss percentages, keeps records in a local JSON store
plus an optional remote database, and generates analytical reports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return nil
		},
	}

	cfgFn := func() *config.Config { return cfg }

	cmd.AddCommand(newRegisterCommand(cfgFn))
	cmd.AddCommand(newListCommand(cfgFn))
	cmd.AddCommand(newShowCommand(cfgFn))
	cmd.AddCommand(newDeleteCommand(cfgFn))
	cmd.AddCommand(newCompareCommand(cfgFn))
	cmd.AddCommand(newReportCommand(cfgFn))
	cmd.AddCommand(newDBCommand(cfgFn))

	return cmd
}
