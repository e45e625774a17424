// Package cmd is the command-line surface of the inventory manager. Every
// command authenticates against the accounts store first; administrator-only
// operations are additionally gated in the services.
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Sefbongo/DeviceInventorySystem/internal/inventory/category"
	"github.com/Sefbongo/DeviceInventorySystem/internal/inventory/records"
	"github.com/Sefbongo/DeviceInventorySystem/internal/inventory/search"
	"github.com/Sefbongo/DeviceInventorySystem/internal/users"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/roles"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App bundles the wired services the commands run against.
type App struct {
	Records    *records.RecordService
	Categories *category.CategoryService
	Search     *search.SearchRepository
	Accounts   *users.AccountService
	Log        *zap.Logger
}

func Execute(app *App) {
	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "inventory",
		Short:         "Device inventory manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("username", "u", "", "login username")
	rootCmd.PersistentFlags().StringP("password", "p", "", "login password")

	rootCmd.AddCommand(
		newMigrateCmd(app),
		newAddCmd(app),
		newShowCmd(app),
		newEditCmd(app),
		newCancelCmd(app),
		newRestoreCmd(app),
		newSearchCmd(app),
		newReportCmd(app),
		newSuggestCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newCategoryCmd(app),
		newUserCmd(app),
	)

	return rootCmd
}

// login resolves the persistent credential flags to a role. Every command
// runs behind it; nothing but the built-in help is reachable without a valid
// account.
func login(app *App, cmd *cobra.Command) (roles.Role, error) {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	return app.Accounts.Authenticate(username, password)
}

// printRecords renders the list view columns; the full row is available via
// show and export.
func printRecords(cmd *cobra.Command, recs []models.InventoryRecord) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tASSET ID\tASSET NAME\tSERIAL NUMBER\tBRANCH\tCUSTODIAN\tASSET STATUS")
	for _, r := range recs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.AssetID, r.AssetName, r.SerialNumber, r.Branch, r.Custodian, r.DeviceStatus)
	}
	w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "%d record(s)\n", len(recs))
}
