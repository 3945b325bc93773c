package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// moneyPrinter formats amounts with locale-aware digit grouping.
// Rounding to two decimals happens here, at the output boundary; the
// billing package never rounds.
func moneyPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func formatMoney(p *message.Printer, amount float64) string {
	return p.Sprintf("%.2f", amount)
}
