package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/invoiceflow/invoiceflow/internal/billing"
	"github.com/invoiceflow/invoiceflow/internal/domain"
)

// ItemOptions holds flags for inventory add and update.
type ItemOptions struct {
	*RootOptions
	Name        string
	Price       float64
	FinalPrice  float64
	Quantity    int
	CGSTRate    float64
	SGSTRate    float64
	Description string
}

// NewInventoryCommand creates the inventory command group.
func NewInventoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage inventory items",
	}
	cmd.AddCommand(newInventoryListCommand(rootOpts))
	cmd.AddCommand(newInventoryAddCommand(rootOpts))
	cmd.AddCommand(newInventoryUpdateCommand(rootOpts))
	cmd.AddCommand(newInventoryDeleteCommand(rootOpts))
	cmd.AddCommand(newInventoryShowCommand(rootOpts))
	return cmd
}

func itemFlags(cmd *cobra.Command, opts *ItemOptions) {
	cmd.Flags().StringVar(&opts.Name, "name", "", "item name")
	cmd.Flags().Float64Var(&opts.Price, "price", 0, "pre-tax unit price")
	cmd.Flags().Float64Var(&opts.FinalPrice, "final-price", 0, "tax-inclusive unit price (derives --price from the tax rates)")
	cmd.Flags().IntVar(&opts.Quantity, "quantity", 0, "stock quantity")
	cmd.Flags().Float64Var(&opts.CGSTRate, "cgst", 0, "CGST percentage")
	cmd.Flags().Float64Var(&opts.SGSTRate, "sgst", 0, "SGST percentage")
	cmd.Flags().StringVar(&opts.Description, "description", "", "description")
	cmd.MarkFlagsMutuallyExclusive("price", "final-price")
}

func newInventoryAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ItemOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an inventory item",
		Long: `Add an inventory item.

The price can be given either pre-tax (--price) or tax-inclusive
(--final-price); with --final-price the pre-tax price is derived from
the tax rates. Exactly one of the two applies.

Example:
  invoiceflow inventory add --name Widget --price 100 --cgst 9 --sgst 9`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			item, err := app.Inventory.Add(cmd.Context(), itemFromOptions(cmd, opts))
			if err != nil {
				return WrapExitError(ExitFailure, "add item", err)
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if done, err := f.JSON(item); done || err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", item.Name, item.ID)
			return nil
		},
	}

	itemFlags(cmd, opts)
	return cmd
}

func newInventoryUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ItemOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "update <id>",
		Short:         "Update an inventory item",
		Long:          "Update an inventory item. Flags not given keep their current values.",
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
			item, ok := app.Inventory.GetByID(ctx, args[0])
			if !ok {
				return WrapExitError(ExitFailure, "update item", fmt.Errorf("no item with id %q", args[0]))
			}

			if cmd.Flags().Changed("name") {
				item.Name = opts.Name
			}
			if cmd.Flags().Changed("quantity") {
				item.Quantity = opts.Quantity
			}
			if cmd.Flags().Changed("cgst") {
				item.CGSTRate = opts.CGSTRate
			}
			if cmd.Flags().Changed("sgst") {
				item.SGSTRate = opts.SGSTRate
			}
			if cmd.Flags().Changed("description") {
				item.Description = opts.Description
			}
			// Price last: --final-price derives from the (possibly just
			// updated) tax rates. The caller picks which field is
			// authoritative by picking the flag.
			if cmd.Flags().Changed("price") {
				item.Price = opts.Price
			}
			if cmd.Flags().Changed("final-price") {
				item.Price = billing.PreTaxPrice(opts.FinalPrice, item.CGSTRate, item.SGSTRate)
			}

			if err := app.Inventory.Update(ctx, item); err != nil {
				return WrapExitError(ExitFailure, "update item", err)
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if done, err := f.JSON(item); done || err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", item.Name, item.ID)
			return nil
		},
	}

	itemFlags(cmd, opts)
	return cmd
}

func newInventoryDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete an inventory item",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Inventory.Delete(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitFailure, "delete item", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newInventoryShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <id>",
		Short:         "Show one inventory item",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			item, ok := app.Inventory.GetByID(cmd.Context(), args[0])
			if !ok {
				return WrapExitError(ExitFailure, "show item", fmt.Errorf("no item with id %q", args[0]))
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if done, err := f.JSON(item); done || err != nil {
				return err
			}

			p := moneyPrinter(app.locale)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Name:        %s\n", item.Name)
			fmt.Fprintf(w, "Price:       %s\n", formatMoney(p, item.Price))
			fmt.Fprintf(w, "Final price: %s\n", formatMoney(p, billing.TaxInclusivePrice(item.Price, item.CGSTRate, item.SGSTRate)))
			fmt.Fprintf(w, "Quantity:    %d\n", item.Quantity)
			fmt.Fprintf(w, "CGST:        %.2f%%\n", item.CGSTRate)
			fmt.Fprintf(w, "SGST:        %.2f%%\n", item.SGSTRate)
			if item.Description != "" {
				fmt.Fprintf(w, "Description: %s\n", item.Description)
			}
			return nil
		},
	}
}

func newInventoryListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List inventory items",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			items := app.Inventory.List(cmd.Context())

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if done, err := f.JSON(items); done || err != nil {
				return err
			}

			p := moneyPrinter(app.locale)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY\tCGST\tSGST")
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f%%\t%.2f%%\n",
					it.ID, it.Name, formatMoney(p, it.Price), it.Quantity, it.CGSTRate, it.SGSTRate)
			}
			return tw.Flush()
		},
	}
}

// itemFromOptions builds the item for add, deriving the pre-tax price
// when --final-price was the flag given.
func itemFromOptions(cmd *cobra.Command, opts *ItemOptions) domain.InventoryItem {
	price := opts.Price
	if cmd.Flags().Changed("final-price") {
		price = billing.PreTaxPrice(opts.FinalPrice, opts.CGSTRate, opts.SGSTRate)
	}
	return domain.InventoryItem{
		Name:        opts.Name,
		Price:       price,
		Quantity:    opts.Quantity,
		CGSTRate:    opts.CGSTRate,
		SGSTRate:    opts.SGSTRate,
		Description: opts.Description,
	}
}
