package cli

import (
	"github.com/spf13/cobra"

	"canetrack/internal/config"
)

func newShowCommand(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show [lot-id]",
		Short: "Show one harvest lot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := buildService(cfg())
			h, err := svc.Find(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printHarvest(h)
			return nil
		},
	}
}
