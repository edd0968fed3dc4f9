package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	originalLogger := log
	defer func() {
		log = originalLogger
	}()

	customLogger := logrus.New()
	SetLogger(customLogger)
	assert.Equal(t, customLogger, log)

	SetLogger(nil)
	assert.Equal(t, customLogger, log)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  decimal.Decimal
		hasError  bool
	}{
		{"Empty string", "", decimal.Zero, false},
		{"Blank string", "   ", decimal.Zero, false},
		{"Simple decimal", "123.45", decimal.NewFromFloat(123.45), false},
		{"Negative decimal", "-123.45", decimal.NewFromFloat(-123.45), false},
		{"Integer", "100", decimal.NewFromInt(100), false},
		{"With comma decimal separator", "123,45", decimal.NewFromFloat(123.45), false},
		{"With thousand separator (comma)", "1,234.56", decimal.NewFromFloat(1234.56), false},
		{"Comma as thousands separator", "1,234", decimal.NewFromInt(1234), false},
		{"Multiple separators", "1,234,567.89", decimal.NewFromFloat(1234567.89), false},
		{"With thousand separator (apostrophe)", "1'234.56", decimal.NewFromFloat(1234.56), false},
		{"European format", "1.234,56", decimal.NewFromFloat(1234.56), false},
		{"With dollar sign", "$1,300", decimal.NewFromInt(1300), false},
		{"With won sign", "₩1,300,000", decimal.NewFromInt(1300000), false},
		{"With currency code", "CAD 450.50", decimal.NewFromFloat(450.5), false},
		{"With spaces", "  123.45  ", decimal.NewFromFloat(123.45), false},
		{"Malformed decimal", "123.45.67", decimal.Zero, true},
		{"Non-numeric", "abc", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1200", "1200"},
		{"1,200.50", "1200.5"},
		{"", "0"},
		{"abc", "0"},
		{"-50", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, CoerceAmount(tc.input).String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		expected string
	}{
		{"CAD small", decimal.NewFromFloat(12.5), "CAD", "$12.50 CAD"},
		{"CAD thousands", decimal.NewFromInt(3350), "CAD", "$3,350.00 CAD"},
		{"CAD lower case code", decimal.NewFromInt(1200), "cad", "$1,200.00 CAD"},
		{"KRW millions", decimal.NewFromInt(3350000), "KRW", "₩3,350,000 KRW"},
		{"KRW rounds fraction", decimal.NewFromFloat(999.6), "KRW", "₩1,000 KRW"},
		{"Other currency", decimal.NewFromInt(1000), "EUR", "EUR 1,000.00"},
		{"No currency", decimal.NewFromInt(1234567), "", "1,234,567.00"},
		{"Zero", decimal.Zero, "CAD", "$0.00 CAD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.amount, tc.currency))
		})
	}
}

func TestFormatSignedAmount(t *testing.T) {
	assert.Equal(t, "+$100.00 CAD", FormatSignedAmount(decimal.NewFromInt(100), "CAD"))
	assert.Equal(t, "-$1,050.00 CAD", FormatSignedAmount(decimal.NewFromInt(-1050), "CAD"))
	assert.Equal(t, "+$0.00 CAD", FormatSignedAmount(decimal.Zero, "CAD"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "8.33", Percent(decimal.NewFromInt(100), decimal.NewFromInt(1200)).StringFixed(2))
	assert.Equal(t, "12.5", Percent(decimal.NewFromInt(50), decimal.NewFromInt(400)).String())
	assert.True(t, Percent(decimal.NewFromInt(50), decimal.Zero).IsZero())
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+8.3%", FormatPercent(decimal.NewFromFloat(8.3333)))
	assert.Equal(t, "+0.0%", FormatPercent(decimal.Zero))
	assert.Equal(t, "-12.5%", FormatPercent(decimal.NewFromFloat(-12.5)))
}
