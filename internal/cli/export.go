package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/invoiceflow/invoiceflow/internal/domain"
)

// snapshotFile is the YAML export format: the organization profile and
// the inventory. Invoices are deliberately excluded - they carry
// system-assigned numbers and snapshots that must not be minted by a
// file import.
type snapshotFile struct {
	Organization domain.OrganizationDetails `yaml:"organization"`
	Inventory    []domain.InventoryItem     `yaml:"inventory"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "export <file>",
		Short:         "Export the organization profile and inventory to YAML",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			snap := snapshotFile{
				Organization: app.Orgs.Get(ctx),
				Inventory:    app.Inventory.List(ctx),
			}

			data, err := yaml.Marshal(snap)
			if err != nil {
				return WrapExitError(ExitCommandError, "encode snapshot", err)
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return WrapExitError(ExitCommandError, "write snapshot", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", len(snap.Inventory), args[0])
			return nil
		},
	}
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import an organization profile and inventory from YAML",
		Long: `Import an organization profile and inventory from YAML.

The profile replaces the current one. Inventory items are added as new
records with fresh IDs; existing items are left untouched.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "read snapshot", err)
			}

			var snap snapshotFile
			if err := yaml.Unmarshal(data, &snap); err != nil {
				return WrapExitError(ExitCommandError, "decode snapshot", err)
			}

			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if err := app.Orgs.Set(ctx, snap.Organization); err != nil {
				return WrapExitError(ExitFailure, "import organization", err)
			}
			for _, item := range snap.Inventory {
				if _, err := app.Inventory.Add(ctx, item); err != nil {
					return WrapExitError(ExitFailure, fmt.Sprintf("import item %q", item.Name), err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items from %s\n", len(snap.Inventory), args[0])
			return nil
		},
	}
}
