package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OrgOptions holds flags for the org set command.
type OrgOptions struct {
	*RootOptions
	CompanyName string
	CompanyLogo string
	GSTNumber   string
	Address     string
	Contact     string
	HeaderColor string
	AccentColor string
}

// NewOrgCommand creates the org command group.
func NewOrgCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Manage the organization profile",
	}
	cmd.AddCommand(newOrgShowCommand(rootOpts))
	cmd.AddCommand(newOrgSetCommand(rootOpts))
	return cmd
}

func newOrgShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Show the organization profile",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			org := app.Orgs.Get(cmd.Context())

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if done, err := f.JSON(org); done || err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Company:  %s\n", org.CompanyName)
			fmt.Fprintf(w, "GST:      %s\n", org.GSTNumber)
			fmt.Fprintf(w, "Address:  %s\n", org.Address)
			fmt.Fprintf(w, "Contact:  %s\n", org.ContactDetails)
			fmt.Fprintf(w, "Header:   %s\n", org.InvoiceHeaderColor)
			fmt.Fprintf(w, "Accent:   %s\n", org.ThemeAccentColor)
			return nil
		},
	}
}

func newOrgSetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrgOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "set",
		Short:         "Update the organization profile",
		Long:          "Update the organization profile. Flags not given keep their current values.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgSet(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CompanyName, "name", "", "company name")
	cmd.Flags().StringVar(&opts.CompanyLogo, "logo", "", "logo data URI or reference")
	cmd.Flags().StringVar(&opts.GSTNumber, "gst", "", "GST number")
	cmd.Flags().StringVar(&opts.Address, "address", "", "address")
	cmd.Flags().StringVar(&opts.Contact, "contact", "", "contact details")
	cmd.Flags().StringVar(&opts.HeaderColor, "header-color", "", "invoice header color (#RRGGBB)")
	cmd.Flags().StringVar(&opts.AccentColor, "accent-color", "", "theme accent color (#RRGGBB)")

	return cmd
}

func runOrgSet(opts *OrgOptions, cmd *cobra.Command) error {
	app, err := openApp(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()

	// Start from the current profile so unset flags keep their values.
	org := app.Orgs.Get(ctx)
	apply := map[string]*string{
		"name":         &opts.CompanyName,
		"logo":         &opts.CompanyLogo,
		"gst":          &opts.GSTNumber,
		"address":      &opts.Address,
		"contact":      &opts.Contact,
		"header-color": &opts.HeaderColor,
		"accent-color": &opts.AccentColor,
	}
	fields := map[string]*string{
		"name":         &org.CompanyName,
		"logo":         &org.CompanyLogo,
		"gst":          &org.GSTNumber,
		"address":      &org.Address,
		"contact":      &org.ContactDetails,
		"header-color": &org.InvoiceHeaderColor,
		"accent-color": &org.ThemeAccentColor,
	}
	for flag, value := range apply {
		if cmd.Flags().Changed(flag) {
			*fields[flag] = *value
		}
	}

	if err := app.Orgs.Set(ctx, org); err != nil {
		return WrapExitError(ExitFailure, "update organization", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if done, err := f.JSON(org); done || err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Organization profile updated.")
	return nil
}
