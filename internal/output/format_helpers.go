package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/cigo/compound-calculator/internal/i18n"
)

// FormatCurrency formats a decimal as currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// LocalizedAmount renders an amount with the locale's digit grouping and
// decimal separator, fixed to cents. No currency symbol: the unit is
// whatever unit the principal was entered in.
func LocalizedAmount(p *message.Printer, amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return p.Sprintf("%v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// reportTag resolves the report's locale string to a supported tag.
func reportTag(locale string) language.Tag {
	if locale == "" {
		return i18n.DefaultTag()
	}
	tag, _ := i18n.ParseTag(locale)
	return tag
}
