package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Sefbongo/DeviceInventorySystem/internal/platform"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var req models.RecordRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an inventory record",
		Long: `Create an inventory record. Brand, device name, serial number and
manufactured date default to values probed from this machine, and the
custodian defaults to the logged-in OS user; pass the matching flags to
override. The asset id is generated unless --asset-id is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := login(app, cmd); err != nil {
				return err
			}

			prefill(cmd, &req)

			record, err := app.Records.Create(req)
			if err != nil {
				return err
			}

			cmd.Printf("Created %s (id %d)\n", record.AssetID, record.ID)
			return nil
		},
	}

	bindRecordFlags(cmd, &req)
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := login(app, cmd); err != nil {
				return err
			}

			id, err := recordID(args[0])
			if err != nil {
				return err
			}

			record, err := app.Records.Get(id)
			if err != nil {
				return err
			}

			cancelled := "NO"
			if record.Cancelled {
				cancelled = "YES"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "ID\t%d\n", record.ID)
			fmt.Fprintf(w, "TOOL OF TRADE\t%s\n", record.AssetClass)
			fmt.Fprintf(w, "ASSET ID\t%s\n", record.AssetID)
			fmt.Fprintf(w, "ASSET NAME\t%s\n", record.AssetName)
			fmt.Fprintf(w, "MANUFACTURED DATE\t%s\n", record.ManufacturedDate)
			fmt.Fprintf(w, "DATE ACQUIRED\t%s\n", record.DateAcquired)
			fmt.Fprintf(w, "BUSINESS UNIT\t%s\n", record.BusinessUnit)
			fmt.Fprintf(w, "DEPARTMENT\t%s\n", record.Department)
			fmt.Fprintf(w, "BRANCH\t%s\n", record.Branch)
			fmt.Fprintf(w, "BRAND\t%s\n", record.Brand)
			fmt.Fprintf(w, "ASSET DESCRIPTION\t%s\n", record.Description)
			fmt.Fprintf(w, "SERIAL NUMBER\t%s\n", record.SerialNumber)
			fmt.Fprintf(w, "CUSTODIAN\t%s\n", record.Custodian)
			fmt.Fprintf(w, "ASSET STATUS\t%s\n", record.DeviceStatus)
			fmt.Fprintf(w, "CANCELLED\t%s\n", cancelled)
			return w.Flush()
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var req models.RecordRequest

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of an existing record",
		Long: `Edit an existing record. Only the fields whose flags are given change;
everything else keeps its stored value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := login(app, cmd); err != nil {
				return err
			}

			id, err := recordID(args[0])
			if err != nil {
				return err
			}

			existing, err := app.Records.Get(id)
			if err != nil {
				return err
			}

			merged := requestFromRecord(*existing)
			overlayChanged(cmd, &merged, &req)

			if err := app.Records.Edit(id, merged); err != nil {
				return err
			}

			cmd.Printf("Updated record %d\n", id)
			return nil
		},
	}

	bindRecordFlags(cmd, &req)
	return cmd
}

func newCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a record (administrator only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := login(app, cmd)
			if err != nil {
				return err
			}

			id, err := recordID(args[0])
			if err != nil {
				return err
			}

			if err := app.Records.Cancel(id, role); err != nil {
				return err
			}

			cmd.Printf("Cancelled record %d\n", id)
			return nil
		},
	}
}

func newRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a cancelled record (administrator only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := login(app, cmd)
			if err != nil {
				return err
			}

			id, err := recordID(args[0])
			if err != nil {
				return err
			}

			if err := app.Records.Restore(id, role); err != nil {
				return err
			}

			cmd.Printf("Restored record %d\n", id)
			return nil
		},
	}
}

func bindRecordFlags(cmd *cobra.Command, req *models.RecordRequest) {
	f := cmd.Flags()
	f.StringVar(&req.AssetClass, "tool-of-trade", "", "asset class")
	f.StringVar(&req.AssetID, "asset-id", "", "asset id")
	f.StringVar(&req.AssetName, "asset-name", "", "asset name")
	f.StringVar(&req.ManufacturedDate, "manufactured-date", "", "manufactured date")
	f.StringVar(&req.DateAcquired, "date-acquired", "", "date acquired")
	f.StringVar(&req.BusinessUnit, "business-unit", "", "business unit")
	f.StringVar(&req.Department, "department", "", "department")
	f.StringVar(&req.Branch, "branch", "", "branch")
	f.StringVar(&req.Brand, "brand", "", "brand")
	f.StringVar(&req.Description, "description", "", "asset description")
	f.StringVar(&req.SerialNumber, "serial", "", "serial number")
	f.StringVar(&req.Custodian, "custodian", "", "custodian")
	f.StringVar(&req.DeviceStatus, "status", "", "asset status")
}

// recordFields pairs each flag with its request field, for prefill and for
// merging edits over the stored row.
func recordFields(req *models.RecordRequest) []struct {
	flag  string
	value *string
} {
	return []struct {
		flag  string
		value *string
	}{
		{"tool-of-trade", &req.AssetClass},
		{"asset-id", &req.AssetID},
		{"asset-name", &req.AssetName},
		{"manufactured-date", &req.ManufacturedDate},
		{"date-acquired", &req.DateAcquired},
		{"business-unit", &req.BusinessUnit},
		{"department", &req.Department},
		{"branch", &req.Branch},
		{"brand", &req.Brand},
		{"description", &req.Description},
		{"serial", &req.SerialNumber},
		{"custodian", &req.Custodian},
		{"status", &req.DeviceStatus},
	}
}

// prefill fills hardware-derived fields the caller left blank from the
// platform probe. Probe misses fill in as the literal "Unknown", the same
// text the form shows in its read-only entries.
func prefill(cmd *cobra.Command, req *models.RecordRequest) {
	info := platform.Collect()

	fill := func(flag string, dst *string, probed string) {
		if !cmd.Flags().Changed(flag) {
			*dst = probed
		}
	}

	fill("brand", &req.Brand, info.Brand)
	fill("asset-name", &req.AssetName, info.DeviceName)
	fill("serial", &req.SerialNumber, info.SerialNumber)
	fill("manufactured-date", &req.ManufacturedDate, info.ManufacturedDate)
	fill("custodian", &req.Custodian, platform.CurrentUser())
}

func overlayChanged(cmd *cobra.Command, dst, src *models.RecordRequest) {
	srcFields := recordFields(src)
	dstFields := recordFields(dst)
	for i := range srcFields {
		if cmd.Flags().Changed(srcFields[i].flag) {
			*dstFields[i].value = *srcFields[i].value
		}
	}
}

func requestFromRecord(r models.InventoryRecord) models.RecordRequest {
	return models.RecordRequest{
		AssetClass:       r.AssetClass,
		AssetID:          r.AssetID,
		AssetName:        r.AssetName,
		ManufacturedDate: r.ManufacturedDate,
		DateAcquired:     r.DateAcquired,
		BusinessUnit:     r.BusinessUnit,
		Department:       r.Department,
		Branch:           r.Branch,
		Brand:            r.Brand,
		Description:      r.Description,
		SerialNumber:     r.SerialNumber,
		Custodian:        r.Custodian,
		DeviceStatus:     r.DeviceStatus,
	}
}

func recordID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q", arg)
	}
	return id, nil
}
