package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"canetrack/internal/config"
	"canetrack/internal/report"
)

func newReportCommand(cfg func() *config.Config) *cobra.Command {
	var pdf bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the harvest efficiency report",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg()
			svc := buildService(c)

			harvests, err := svc.List(cmd.Context(), nil)
			if err != nil {
				return err
			}
			comparison, err := svc.Compare(cmd.Context())
			if err != nil {
				return err
			}

			path, err := report.WriteText(harvests, comparison, c.ReportDir)
			if err != nil {
				return err
			}
			fmt.Printf("Report written to %s\n", path)

			if pdf {
				pdfPath, err := report.WritePDF(harvests, comparison, c.ReportDir)
				if err != nil {
					return err
				}
				fmt.Printf("PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pdf, "pdf", false, "also export the report as PDF")
	return cmd
}
