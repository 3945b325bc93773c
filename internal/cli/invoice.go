package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/invoiceflow/invoiceflow/internal/domain"
	"github.com/invoiceflow/invoiceflow/internal/identity"
	"github.com/invoiceflow/invoiceflow/internal/repo"
)

// InvoiceOptions holds flags for the invoice create command.
type InvoiceOptions struct {
	*RootOptions
	Customer  string
	Address   string
	Date      string
	Discount  float64
	Notes     string
	Status    string
	Items     []string
	FromStock []string
}

// NewInvoiceCommand creates the invoice command group.
func NewInvoiceCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Manage invoices",
	}
	cmd.AddCommand(newInvoiceListCommand(rootOpts))
	cmd.AddCommand(newInvoiceCreateCommand(rootOpts))
	cmd.AddCommand(newInvoiceShowCommand(rootOpts))
	cmd.AddCommand(newInvoiceDeleteCommand(rootOpts))
	cmd.AddCommand(newInvoiceNextNumberCommand(rootOpts))
	return cmd
}

func newInvoiceCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InvoiceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice",
		Long: `Create an invoice.

Line items come from --item (name:qty:price[:cgst[:sgst]]) or
--from-stock (inventory-id:qty), which copies the name, price, and tax
rates from the inventory item. Both flags repeat.

Example:
  invoiceflow invoice create --customer "Ravi Kumar" \
    --item "Widget:2:50:9:9" --from-stock "3f1c...:1" --discount 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoiceCreate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Customer, "customer", "", "customer name")
	cmd.Flags().StringVar(&opts.Address, "address", "", "customer address")
	cmd.Flags().StringVar(&opts.Date, "date", "", "invoice date (ISO 8601, default today)")
	cmd.Flags().Float64Var(&opts.Discount, "discount", 0, "flat discount amount")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "notes")
	cmd.Flags().StringVar(&opts.Status, "status", "draft", "status (draft|sent|paid|void)")
	cmd.Flags().StringArrayVar(&opts.Items, "item", nil, "line item name:qty:price[:cgst[:sgst]] (repeatable)")
	cmd.Flags().StringArrayVar(&opts.FromStock, "from-stock", nil, "line item inventory-id:qty (repeatable)")

	return cmd
}

func runInvoiceCreate(opts *InvoiceOptions, cmd *cobra.Command) error {
	app, err := openApp(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	ids := identity.NewUUIDSource()

	var items []domain.LineItem
	for _, spec := range opts.Items {
		it, err := parseLineItem(spec)
		if err != nil {
			return WrapExitError(ExitCommandError, "parse --item", err)
		}
		it.ID = ids.NewID()
		items = append(items, it)
	}
	for _, spec := range opts.FromStock {
		it, err := lineItemFromStock(ctx, app, spec)
		if err != nil {
			return WrapExitError(ExitCommandError, "parse --from-stock", err)
		}
		it.ID = ids.NewID()
		items = append(items, it)
	}

	date := opts.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	inv, err := app.Invoices.Add(ctx, repo.InvoiceInput{
		Date:            date,
		CustomerName:    opts.Customer,
		CustomerAddress: opts.Address,
		LineItems:       items,
		DiscountAmount:  opts.Discount,
		Notes:           opts.Notes,
		Status:          domain.InvoiceStatus(opts.Status),
	})
	if err != nil {
		return WrapExitError(ExitFailure, "create invoice", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if done, err := f.JSON(inv); done || err != nil {
		return err
	}
	p := moneyPrinter(app.locale)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s), grand total %s\n",
		inv.InvoiceNumber, inv.ID, formatMoney(p, inv.GrandTotal))
	return nil
}

// parseLineItem parses "name:qty:price[:cgst[:sgst]]".
func parseLineItem(spec string) (domain.LineItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 5 {
		return domain.LineItem{}, fmt.Errorf("%q: want name:qty:price[:cgst[:sgst]]", spec)
	}

	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("%q: bad quantity: %w", spec, err)
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("%q: bad price: %w", spec, err)
	}

	it := domain.LineItem{ItemName: parts[0], Quantity: qty, Price: price}
	if len(parts) > 3 {
		if it.CGSTRate, err = strconv.ParseFloat(parts[3], 64); err != nil {
			return domain.LineItem{}, fmt.Errorf("%q: bad cgst: %w", spec, err)
		}
	}
	if len(parts) > 4 {
		if it.SGSTRate, err = strconv.ParseFloat(parts[4], 64); err != nil {
			return domain.LineItem{}, fmt.Errorf("%q: bad sgst: %w", spec, err)
		}
	}
	return it, nil
}

// lineItemFromStock parses "inventory-id:qty" and copies name, price,
// and tax rates from the referenced inventory item. The back-reference
// is kept for lookups; it is not ownership.
func lineItemFromStock(ctx context.Context, app *App, spec string) (domain.LineItem, error) {
	idx := strings.LastIndex(spec, ":")
	if idx <= 0 || idx == len(spec)-1 {
		return domain.LineItem{}, fmt.Errorf("%q: want inventory-id:qty", spec)
	}
	id := spec[:idx]
	qty, err := strconv.Atoi(spec[idx+1:])
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("%q: bad quantity: %w", spec, err)
	}

	stock, ok := app.Inventory.GetByID(ctx, id)
	if !ok {
		return domain.LineItem{}, fmt.Errorf("no inventory item with id %q", id)
	}
	return domain.LineItem{
		InventoryItemID: stock.ID,
		ItemName:        stock.Name,
		Quantity:        qty,
		Price:           stock.Price,
		CGSTRate:        stock.CGSTRate,
		SGSTRate:        stock.SGSTRate,
	}, nil
}

func newInvoiceListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List invoices",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			invoices := app.Invoices.List(cmd.Context())

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if done, err := f.JSON(invoices); done || err != nil {
				return err
			}

			p := moneyPrinter(app.locale)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NUMBER\tDATE\tCUSTOMER\tSTATUS\tTOTAL\tID")
			for _, inv := range invoices {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					inv.InvoiceNumber, inv.Date, inv.CustomerName, inv.Status,
					formatMoney(p, inv.GrandTotal), inv.ID)
			}
			return tw.Flush()
		},
	}
}

func newInvoiceShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <id>",
		Short:         "Render one invoice",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			inv, ok := app.Invoices.GetByID(cmd.Context(), args[0])
			if !ok {
				return WrapExitError(ExitFailure, "show invoice", fmt.Errorf("no invoice with id %q", args[0]))
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if done, err := f.JSON(inv); done || err != nil {
				return err
			}
			return renderInvoice(cmd.OutOrStdout(), inv, moneyPrinter(app.locale))
		},
	}
}

func newInvoiceDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete an invoice",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Invoices.Delete(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitFailure, "delete invoice", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newInvoiceNextNumberCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "next-number",
		Short:         "Show the number the next invoice would receive",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			next := app.Invoices.NextInvoiceNumber(cmd.Context())

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if done, err := f.JSON(map[string]string{"nextInvoiceNumber": next}); done || err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
}
