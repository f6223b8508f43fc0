package calculator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// inr formats with Indian digit grouping (1,00,000 rather than 100,000).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders a rupee amount the way every surface of the
// marketplace displays it: currency symbol prefix, grouped thousands,
// no decimals.
func FormatPrice(amount int64) string {
	return inr.Sprintf("₹%v", number.Decimal(amount))
}
