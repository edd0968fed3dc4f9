package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with currency
type Money struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount" xml:"amount"`
	Currency string          `json:"currency" yaml:"currency" xml:"currency,attr"`
}

// NewMoney creates a new Money instance with the given amount and currency
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// Convert multiplies the amount by rate and relabels it in the target currency.
func (m Money) Convert(rate decimal.Decimal, currency string) Money {
	return Money{
		Amount:   m.Amount.Mul(rate),
		Currency: currency,
	}
}

// String returns a string representation of the money value
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}
