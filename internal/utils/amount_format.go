package utils

import (
	"github.com/shopspring/decimal"
)

// DefaultAmountPrecision is the number of decimal places folio amounts are
// rounded to before persistence. Room rates and service prices are whole
// currency units, but percentage surcharges can introduce fractions.
const DefaultAmountPrecision int32 = 2

// RoundAmount rounds a monetary amount to the default precision.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(DefaultAmountPrecision)
}

// FormatAmount renders an amount as a fixed-point string at the default
// precision, suitable for receipts and API responses.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DefaultAmountPrecision)
}

// ApplyRate multiplies a base amount by a fractional rate (e.g. 0.05 for a
// five percent surcharge) and rounds the result to the default precision.
func ApplyRate(base decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return RoundAmount(base.Mul(rate))
}
