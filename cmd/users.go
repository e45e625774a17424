package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage application accounts (administrator only)",
	}

	cmd.AddCommand(
		newUserListCmd(app),
		newUserAddCmd(app),
		newUserUpdateCmd(app),
		newUserDeleteCmd(app),
	)
	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			role, err := login(app, cmd)
			if err != nil {
				return err
			}

			accounts, err := app.Accounts.List(role)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLE")
			for _, a := range accounts {
				fmt.Fprintf(w, "%d\t%s\t%s\n", a.ID, a.Username, a.Role)
			}
			return w.Flush()
		},
	}
}

func newUserAddCmd(app *App) *cobra.Command {
	var req models.CreateAccountRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			role, err := login(app, cmd)
			if err != nil {
				return err
			}

			if err := app.Accounts.Add(role, req); err != nil {
				return err
			}

			cmd.Printf("Created account %s\n", req.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "new-username", "", "username for the new account")
	cmd.Flags().StringVar(&req.Password, "new-password", "", "password for the new account")
	cmd.Flags().StringVar(&req.Role, "role", "", "role, User or Administrator")
	return cmd
}

func newUserUpdateCmd(app *App) *cobra.Command {
	var username, password, roleName string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Long: `Update an account. Only the fields whose flags are given change; a blank
password keeps the stored one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := login(app, cmd)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id %q", args[0])
			}

			changes := &models.AccountChanges{}
			if cmd.Flags().Changed("new-username") {
				changes.Username = &username
			}
			if cmd.Flags().Changed("new-password") {
				changes.Password = &password
			}
			if cmd.Flags().Changed("role") {
				changes.Role = &roleName
			}

			if err := app.Accounts.Update(role, id, changes); err != nil {
				return err
			}

			cmd.Printf("Updated account %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "new-username", "", "replacement username")
	cmd.Flags().StringVar(&password, "new-password", "", "replacement password")
	cmd.Flags().StringVar(&roleName, "role", "", "replacement role")
	return cmd
}

func newUserDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := login(app, cmd)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id %q", args[0])
			}

			if err := app.Accounts.Delete(role, id); err != nil {
				return err
			}

			cmd.Printf("Deleted account %d\n", id)
			return nil
		},
	}
}
