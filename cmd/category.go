package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Sefbongo/DeviceInventorySystem/internal/inventory/category"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/apperrors"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/roles"

	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage the lookup tables behind the form dropdowns",
		Long: "Manage the lookup tables behind the form dropdowns. Tables: " +
			strings.Join(category.TableNames, ", ") + ".",
	}

	cmd.AddCommand(
		newCategoryListCmd(app),
		newCategoryAddCmd(app),
		newCategoryRenameCmd(app),
		newCategoryDeleteCmd(app),
	)
	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [table]",
		Short: "List a lookup table's entries, or the whole registry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := login(app, cmd); err != nil {
				return err
			}

			if len(args) == 1 {
				for _, name := range app.Categories.List(args[0]) {
					cmd.Println(name)
				}
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TABLE\tNAME")
			for _, entry := range app.Categories.All() {
				fmt.Fprintf(w, "%s\t%s\n", entry.Table, entry.Name)
			}
			return w.Flush()
		},
	}
}

func newCategoryAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <table> <name>",
		Short: "Add an entry to a lookup table (administrator only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := adminLogin(app, cmd, "manage categories"); err != nil {
				return err
			}

			if err := app.Categories.Add(args[0], args[1]); err != nil {
				return err
			}

			cmd.Printf("Added %q to %s\n", args[1], args[0])
			return nil
		},
	}
}

func newCategoryRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <table> <old> <new>",
		Short: "Rename a lookup table entry (administrator only)",
		Long: `Rename a lookup table entry. Inventory records keep the old value; a
rename only changes what the dropdowns offer from now on.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := adminLogin(app, cmd, "manage categories"); err != nil {
				return err
			}

			if err := app.Categories.Rename(args[0], args[1], args[2]); err != nil {
				return err
			}

			cmd.Printf("Renamed %q to %q in %s\n", args[1], args[2], args[0])
			return nil
		},
	}
}

func newCategoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <table> <name>",
		Short: "Delete a lookup table entry (administrator only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := adminLogin(app, cmd, "manage categories"); err != nil {
				return err
			}

			if err := app.Categories.Delete(args[0], args[1]); err != nil {
				return err
			}

			cmd.Printf("Deleted %q from %s\n", args[1], args[0])
			return nil
		},
	}
}

// adminLogin authenticates and requires the administrator role.
func adminLogin(app *App, cmd *cobra.Command, operation string) error {
	role, err := login(app, cmd)
	if err != nil {
		return err
	}
	if !role.HasPermission(roles.Administrator) {
		return &apperrors.PermissionDeniedError{Operation: operation, Role: role.String()}
	}
	return nil
}
