package cmd

import (
	"os"

	"github.com/Sefbongo/DeviceInventorySystem/internal/inventory/exchange"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk import records from an xlsx or csv file",
		Long: `Bulk import records. Columns are matched by header label. Rows with an
empty serial number, or a serial already held by an active record, are
skipped; the rest are created with per-row generated asset ids unless the
file supplies one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := login(app, cmd); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := exchange.ParseFile(args[0], f)
			if err != nil {
				return err
			}

			summary, err := app.Records.Import(rows)
			cmd.Printf("Imported %d, skipped %d\n", summary.Imported, summary.Skipped)
			return err
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var status, branch string
	var cancelled, all bool

	cmd := &cobra.Command{
		Use:   "export <file> [term]",
		Short: "Export records to an xlsx file",
		Long: `Export records to an xlsx file. The selection works exactly like search:
the exported rows are the ones the same term and filters would display, in
display order, active records by default. Pass --all for a full dump,
cancelled records included.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := login(app, cmd); err != nil {
				return err
			}

			term := ""
			if len(args) == 2 {
				term = args[1]
			}

			var records []models.InventoryRecord
			var err error
			if all {
				records, err = app.Search.All()
			} else {
				records, err = selectRecords(app, term, status, branch, cancelled)
			}
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if err := exchange.WriteXLSX(f, records); err != nil {
				return err
			}

			cmd.Printf("Exported %d record(s) to %s\n", len(records), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "export records with this exact asset status")
	cmd.Flags().StringVar(&branch, "branch", "", "export records in this exact branch")
	cmd.Flags().BoolVar(&cancelled, "cancelled", false, "export the cancelled records instead")
	cmd.Flags().BoolVar(&all, "all", false, "export every record, cancelled included")
	return cmd
}
