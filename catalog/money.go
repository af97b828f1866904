package catalog

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	cop        = currency.MustParseISO("COP")
	copPrinter = message.NewPrinter(language.MustParse("es-CO"))
)

// FormatCOP renders an amount the way the storefront displays prices:
// Colombian pesos with es-CO digit grouping and no decimals.
func FormatCOP(v float64) string {
	return copPrinter.Sprintf("%v", currency.Symbol(cop.Amount(math.Round(v))))
}
