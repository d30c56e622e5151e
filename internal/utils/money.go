package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// usd renders numbers with en-US grouping and decimal conventions.
var usd = message.NewPrinter(language.English)

// FormatCents renders an integer minor-unit amount as a display currency
// string, e.g. 155099 -> "$1,550.99". Used only at the presentation edge;
// stored amounts stay in minor units.
func FormatCents(cents int64) string {
	return usd.Sprintf("$%v", number.Decimal(float64(cents)/100,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
