// Package currencyutils provides amount parsing, input coercion and currency display formatting.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var currencyMarks = regexp.MustCompile(`(?i)CAD|KRW|USD|CHF|[€$£¥₩\s]`)

var hundred = decimal.NewFromInt(100)

// ParseAmount parses a string representation of an amount into a decimal value
// It handles various formats like "1,234.56", "1.234,56", "1234.56", "1234,56"
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a standard format that can be parsed by decimal.NewFromString
// Handles patterns like "$1,234.56", "₩1,234,000", "1 234,56", "1'234.56" etc.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyMarks.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	lastDot := strings.LastIndex(amountStr, ".")
	lastComma := strings.LastIndex(amountStr, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastDot < lastComma {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case lastComma >= 0:
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// CoerceAmount parses user input for a monetary field.
// Unparseable or negative input becomes zero.
func CoerceAmount(amountStr string) decimal.Decimal {
	amount, err := ParseAmount(amountStr)
	if err != nil {
		log.WithError(err).Debug("Coercing unparseable amount to zero")
		return decimal.Zero
	}
	if amount.IsNegative() {
		log.WithField("amount", amountStr).Debug("Coercing negative amount to zero")
		return decimal.Zero
	}
	return amount
}

// FormatAmount formats an amount for display in the given currency.
// Returns strings like "$1,234.00 CAD" or "₩1,234,000 KRW"
func FormatAmount(amount decimal.Decimal, currency string) string {
	switch strings.ToUpper(currency) {
	case "CAD":
		return "$" + groupDecimal(amount, 2) + " CAD"
	case "USD":
		return "$" + groupDecimal(amount, 2) + " USD"
	case "KRW":
		return "₩" + groupDecimal(amount, 0) + " KRW"
	case "":
		return groupDecimal(amount, 2)
	default:
		return currency + " " + groupDecimal(amount, 2)
	}
}

// FormatSignedAmount formats a difference with an explicit sign.
// Zero is shown as positive.
func FormatSignedAmount(amount decimal.Decimal, currency string) string {
	if amount.IsNegative() {
		return "-" + FormatAmount(amount.Abs(), currency)
	}
	return "+" + FormatAmount(amount, currency)
}

// FormatPercent formats a percentage value with one decimal and an explicit sign.
func FormatPercent(pct decimal.Decimal) string {
	if pct.IsNegative() {
		return pct.StringFixed(1) + "%"
	}
	return "+" + pct.StringFixed(1) + "%"
}

// Percent returns part / whole × 100, or zero when whole is not positive.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// groupDecimal renders a non-negative amount with comma thousand separators.
func groupDecimal(amount decimal.Decimal, places int32) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(places)
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	remainder := len(intPart) % 3
	if remainder > 0 {
		b.WriteString(intPart[:remainder])
	}
	for i := remainder; i < len(intPart); i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
