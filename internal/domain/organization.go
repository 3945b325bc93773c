package domain

import (
	"fmt"
	"regexp"
)

// Default branding colors used when the profile has none.
const (
	DefaultHeaderColor = "#739EDC"
	DefaultAccentColor = "#149E8E"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultOrganization returns the profile created on first run.
func DefaultOrganization() OrganizationDetails {
	return OrganizationDetails{
		InvoiceHeaderColor: DefaultHeaderColor,
		ThemeAccentColor:   DefaultAccentColor,
	}
}

// Normalized returns a copy of o with empty optional color fields
// backfilled with the system defaults. Records written before the color
// fields existed deserialize with empty strings; callers must never
// observe those.
func (o OrganizationDetails) Normalized() OrganizationDetails {
	if o.InvoiceHeaderColor == "" {
		o.InvoiceHeaderColor = DefaultHeaderColor
	}
	if o.ThemeAccentColor == "" {
		o.ThemeAccentColor = DefaultAccentColor
	}
	return o
}

// Validate checks the profile invariants: color fields are either empty
// or six-digit hex ("#RRGGBB").
func (o OrganizationDetails) Validate() error {
	if err := validateHexColor("invoiceHeaderColor", o.InvoiceHeaderColor); err != nil {
		return err
	}
	return validateHexColor("themeAccentColor", o.ThemeAccentColor)
}

func validateHexColor(field, value string) error {
	if value == "" || hexColorRE.MatchString(value) {
		return nil
	}
	return fmt.Errorf("%s: %q is not a #RRGGBB color", field, value)
}
