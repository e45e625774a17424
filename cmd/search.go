package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Sefbongo/DeviceInventorySystem/internal/inventory/category"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/autocomplete"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	var status, branch string
	var cancelled bool

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search active records, or list the cancelled ones",
		Long: `Search active records for a case-insensitive substring match in any
searched column. Without a term every active record is listed. The status and
branch filters match exactly and take precedence over the term.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := login(app, cmd); err != nil {
				return err
			}

			term := ""
			if len(args) == 1 {
				term = args[0]
			}

			recs, err := selectRecords(app, term, status, branch, cancelled)
			if err != nil {
				return err
			}

			printRecords(cmd, recs)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by exact asset status")
	cmd.Flags().StringVar(&branch, "branch", "", "filter by exact branch")
	cmd.Flags().BoolVar(&cancelled, "cancelled", false, "list cancelled records instead")
	return cmd
}

// selectRecords is the one record-selection switch behind both search and
// export, so exporting always mirrors what a search would display.
func selectRecords(app *App, term, status, branch string, cancelled bool) ([]models.InventoryRecord, error) {
	switch {
	case cancelled:
		return app.Search.Cancelled()
	case status != "":
		return app.Search.ByStatus(status)
	case branch != "":
		return app.Search.ByBranch(branch)
	default:
		return app.Search.Search(term)
	}
}

func newReportCmd(app *App) *cobra.Command {
	var branches bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the inventory summary counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := login(app, cmd); err != nil {
				return err
			}

			metrics, err := app.Search.Metrics()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range metrics {
				fmt.Fprintf(w, "%s\t%d\n", m.Name, m.Count)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if branches {
				active, err := app.Search.ActiveBranches()
				if err != nil {
					return err
				}
				cmd.Println("\nBRANCHES IN USE")
				for _, b := range active {
					cmd.Println(b)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&branches, "branches", false, "also list branches with active records")
	return cmd
}

func newSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <field> <text>",
		Short: "Show autocomplete suggestions for a category field",
		Long: `Show what the autocomplete would offer for the given input. The field is
a form label such as BRANCH or TOOL OF TRADE. Inputs shorter than the filter
threshold, and inputs matching nothing, fall back to the full list.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := login(app, cmd); err != nil {
				return err
			}

			label := strings.ToUpper(strings.TrimSpace(args[0]))
			table, ok := category.Tables[label]
			if !ok {
				return fmt.Errorf("unknown field %q", args[0])
			}

			var candidates []string
			if table == "branches" {
				candidates = app.Categories.Branches()
			} else {
				candidates = app.Categories.List(table)
			}

			ac := autocomplete.New(candidates)
			ac.Input(args[1])
			for _, suggestion := range ac.Visible() {
				cmd.Println(suggestion)
			}
			return nil
		},
	}
}
