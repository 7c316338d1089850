package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"canetrack/internal/apperror"
	"canetrack/internal/config"
	"canetrack/internal/dto"
)

func newRegisterCommand(cfg func() *config.Config) *cobra.Command {
	var (
		lotID     string
		typ       string
		date      string
		expected  string
		harvested string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new harvest lot",
		RunE: func(cmd *cobra.Command, args []string) error {
			expectedDec, err := decimal.NewFromString(expected)
			if err != nil {
				return fmt.Errorf("invalid --expected value %q: %w", expected, err)
			}
			harvestedDec, err := decimal.NewFromString(harvested)
			if err != nil {
				return fmt.Errorf("invalid --harvested value %q: %w", harvested, err)
			}
			harvestDate, err := time.Parse("02/01/2006", date)
			if err != nil {
				return fmt.Errorf("invalid --date value %q, expected DD/MM/YYYY: %w", date, err)
			}

			req := dto.RegisterHarvestRequest{
				LotID:           lotID,
				Type:            typ,
				HarvestDate:     harvestDate,
				ExpectedTonnes:  expectedDec,
				HarvestedTonnes: harvestedDec,
			}
			if notes != "" {
				req.Notes = &notes
			}

			svc := buildService(cfg())
			resp, err := svc.Register(cmd.Context(), req)

			var partial *apperror.PartialPersistenceError
			if errors.As(err, &partial) {
				color.Yellow("! lot %s saved to the %s store only; %s store failed: %v",
					resp.LotID, otherStore(partial.Store), partial.Store, partial.Err)
				printHarvest(resp)
				return nil
			}
			if err != nil {
				return err
			}

			color.Green("✓ registered lot %s", resp.LotID)
			printHarvest(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&lotID, "lot", "", "unique lot identifier")
	cmd.Flags().StringVar(&typ, "type", "", "harvest type: manual or mechanized")
	cmd.Flags().StringVar(&date, "date", "", "harvest date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&expected, "expected", "", "expected quantity in tonnes")
	cmd.Flags().StringVar(&harvested, "harvested", "", "harvested quantity in tonnes")
	cmd.Flags().StringVar(&notes, "notes", "", "optional notes")
	cmd.MarkFlagRequired("lot")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("expected")
	cmd.MarkFlagRequired("harvested")

	return cmd
}

func otherStore(failed string) string {
	if failed == apperror.StoreLocal {
		return apperror.StoreRemote
	}
	return apperror.StoreLocal
}

func printHarvest(h *dto.HarvestResponse) {
	fmt.Printf("Lot %s - %s - %s\n", h.LotID, h.Type, h.HarvestDate.Format("02/01/2006"))
	fmt.Printf("  Expected: %st | Harvested: %st\n",
		h.ExpectedTonnes.StringFixed(2), h.HarvestedTonnes.StringFixed(2))
	fmt.Printf("  Efficiency: %s%% | Loss: %s%%\n",
		h.EfficiencyPct.StringFixed(2), h.LossPct.StringFixed(2))
	if h.Notes != nil && *h.Notes != "" {
		fmt.Printf("  Notes: %s\n", *h.Notes)
	}
}
