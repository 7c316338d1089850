package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"canetrack/internal/config"
	"canetrack/internal/model"
)

func newListCommand(cfg func() *config.Config) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered harvests (local merged with remote)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *model.HarvestType
			if typ != "" {
				t, ok := model.ParseHarvestType(typ)
				if !ok {
					return fmt.Errorf("unknown harvest type %q: must be manual or mechanized", typ)
				}
				filter = &t
			}

			svc := buildService(cfg())
			harvests, err := svc.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(harvests) == 0 {
				fmt.Println("No harvests found")
				return nil
			}

			fmt.Printf("Found %d harvest(s):\n\n", len(harvests))
			for i := range harvests {
				printHarvest(&harvests[i])
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "filter by harvest type (manual|mechanized)")
	return cmd
}
