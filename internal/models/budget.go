package models

import "github.com/shopspring/decimal"

// LineItem is a named monetary amount.
type LineItem struct {
	Name   string
	Amount decimal.Decimal
}

// MonthlyBudget holds the recurring monthly spend in the base currency.
type MonthlyBudget struct {
	Rent          decimal.Decimal `json:"rent"`
	Food          decimal.Decimal `json:"food"`
	Transport     decimal.Decimal `json:"transport"`
	Communication decimal.Decimal `json:"communication"`
	Other         decimal.Decimal `json:"other"`
}

// Items lists the budget fields in display order.
func (b MonthlyBudget) Items() []LineItem {
	return []LineItem{
		{Name: "rent", Amount: b.Rent},
		{Name: "food", Amount: b.Food},
		{Name: "transport", Amount: b.Transport},
		{Name: "communication", Amount: b.Communication},
		{Name: "other", Amount: b.Other},
	}
}

// InitialCosts holds the one-time costs paid before or on arrival.
type InitialCosts struct {
	Flight         decimal.Decimal `json:"flight"`
	FirstMonthRent decimal.Decimal `json:"firstMonthRent"`
	Deposit        decimal.Decimal `json:"deposit"`
	VisaFee        decimal.Decimal `json:"visaFee"`
	Insurance      decimal.Decimal `json:"insurance"`
	Other          decimal.Decimal `json:"other"`
}

// Items lists the cost fields in display order.
func (c InitialCosts) Items() []LineItem {
	return []LineItem{
		{Name: "flight", Amount: c.Flight},
		{Name: "firstMonthRent", Amount: c.FirstMonthRent},
		{Name: "deposit", Amount: c.Deposit},
		{Name: "visaFee", Amount: c.VisaFee},
		{Name: "insurance", Amount: c.Insurance},
		{Name: "other", Amount: c.Other},
	}
}
