// Package i18n holds the locale support for report rendering: supported
// language tags, localized message printers for the summary and table
// labels, and parsing of locale-formatted numeric input.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supportedTags is ordered; the first entry is the default locale.
var supportedTags = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("de-DE"),
	language.MustParse("es-ES"),
	language.MustParse("fr-FR"),
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the locales the report strings are translated for.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the default locale (en-US).
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses a BCP 47 tag and reports whether it maps onto a supported
// locale.
func ParseTag(s string) (language.Tag, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported locale for an ordered preference list.
func MatchTags(prefs []language.Tag) language.Tag {
	_, index, _ := matcher.Match(prefs...)
	return supportedTags[index]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

func init() {
	register := func(locale string, pairs map[string]string) {
		tag := language.MustParse(locale)
		for key, msg := range pairs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}

	// en-US is the catalog's source locale; keys double as its messages.
	register("en-US", map[string]string{
		"Growth projection":   "Growth projection",
		"Scenario":            "Scenario",
		"Final balance":       "Final balance",
		"Total contributions": "Total contributions",
		"Total interest":      "Total interest",
		"Year":                "Year",
		"End balance":         "End balance",
		"Contributions":       "Contributions",
		"Interest":            "Interest",
		"partial":             "partial",
	})
	register("de-DE", map[string]string{
		"Growth projection":   "Wachstumsprognose",
		"Scenario":            "Szenario",
		"Final balance":       "Endsaldo",
		"Total contributions": "Einzahlungen gesamt",
		"Total interest":      "Zinsen gesamt",
		"Year":                "Jahr",
		"End balance":         "Endsaldo",
		"Contributions":       "Einzahlungen",
		"Interest":            "Zinsen",
		"partial":             "anteilig",
	})
	register("es-ES", map[string]string{
		"Growth projection":   "Proyección de crecimiento",
		"Scenario":            "Escenario",
		"Final balance":       "Saldo final",
		"Total contributions": "Aportaciones totales",
		"Total interest":      "Intereses totales",
		"Year":                "Año",
		"End balance":         "Saldo final",
		"Contributions":       "Aportaciones",
		"Interest":            "Intereses",
		"partial":             "parcial",
	})
	register("fr-FR", map[string]string{
		"Growth projection":   "Projection de croissance",
		"Scenario":            "Scénario",
		"Final balance":       "Solde final",
		"Total contributions": "Versements cumulés",
		"Total interest":      "Intérêts cumulés",
		"Year":                "Année",
		"End balance":         "Solde final",
		"Contributions":       "Versements",
		"Interest":            "Intérêts",
		"partial":             "partielle",
	})
}
