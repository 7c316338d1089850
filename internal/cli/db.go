package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"canetrack/internal/config"
)

func newDBCommand(cfg func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Remote database maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "Test the remote database connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := buildRemote(cfg())
			if err != nil {
				return err
			}
			if err := repo.Ping(cmd.Context()); err != nil {
				return err
			}
			color.Green("✓ remote database reachable")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the harvests table if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := buildRemote(cfg())
			if err != nil {
				return err
			}
			if err := repo.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			color.Green("✓ remote schema ready")
			return nil
		},
	})

	return cmd
}
