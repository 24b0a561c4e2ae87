package i18n

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Separator conventions per base language. x/text formats numbers but does
// not parse them, so the form-input path carries its own separator table.
var commaDecimalLanguages = map[string]bool{
	"de": true,
	"es": true,
	"fr": true,
}

// ParseAmount parses a locale-formatted number as entered in a form field:
// group separators and a currency symbol are tolerated, the decimal
// separator follows the locale ("1.234,56" under de-DE, "1,234.56" under
// en-US). The caller decides what an empty field means.
func ParseAmount(s string, tag language.Tag) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty value")
	}

	base, _ := tag.Base()
	commaDecimal := commaDecimalLanguages[base.String()]

	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9', r == '-', r == '+':
			b.WriteRune(r)
		case r == '.':
			if commaDecimal {
				// group separator, drop
			} else {
				b.WriteRune('.')
			}
		case r == ',':
			if commaDecimal {
				b.WriteRune('.')
			}
			// otherwise a group separator, drop
		case r == ' ', r == '\u00a0', r == '\u202f':
			// spaced groups (fr-FR), drop
		case r == '$', r == '€', r == '£':
			// currency decoration, drop
		default:
			return decimal.Zero, fmt.Errorf("invalid number %q", s)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q", s)
	}
	return d, nil
}
