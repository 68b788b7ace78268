package utils

import (
	"github.com/shopspring/decimal"
)

// FormatCents renders an integer amount of minor units as a display string
// in major units, e.g. 30000 -> "300.00". Ledger arithmetic stays in integer
// cents; decimal is used only at the presentation edge.
func FormatCents(amountCents int64) string {
	return decimal.New(amountCents, -2).StringFixed(2)
}

// FormatCentsWithExponent renders minor units for currencies whose minor
// unit is not two decimal places (e.g. JPY with 0, KWD with 3).
func FormatCentsWithExponent(amountCents int64, exponent int) string {
	return decimal.New(amountCents, int32(-exponent)).StringFixed(int32(exponent))
}
