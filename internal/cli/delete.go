package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"canetrack/internal/apperror"
	"canetrack/internal/config"
)

func newDeleteCommand(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [lot-id]",
		Short: "Delete a harvest lot from both stores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := buildService(cfg())
			err := svc.Delete(cmd.Context(), args[0])

			var partial *apperror.PartialPersistenceError
			if errors.As(err, &partial) {
				color.Yellow("! lot %s removed from the %s store only; %s store failed: %v",
					args[0], otherStore(partial.Store), partial.Store, partial.Err)
				return nil
			}
			if err != nil {
				return err
			}
			color.Green("✓ deleted lot %s", args[0])
			return nil
		},
	}
}
