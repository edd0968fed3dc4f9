package models

import "github.com/shopspring/decimal"

// BenchmarkEntry is the reference monthly spend for a city and duration.
// It has no communication field; communication is assumed to be part of Other.
type BenchmarkEntry struct {
	Rent      decimal.Decimal `json:"rent" xml:"rent"`
	Food      decimal.Decimal `json:"food" xml:"food"`
	Transport decimal.Decimal `json:"transport" xml:"transport"`
	Other     decimal.Decimal `json:"other" xml:"other"`
}

// NewBenchmarkEntry builds an entry from whole amounts.
func NewBenchmarkEntry(rent, food, transport, other int64) BenchmarkEntry {
	return BenchmarkEntry{
		Rent:      decimal.NewFromInt(rent),
		Food:      decimal.NewFromInt(food),
		Transport: decimal.NewFromInt(transport),
		Other:     decimal.NewFromInt(other),
	}
}

// Total returns the sum of all reference categories.
func (b BenchmarkEntry) Total() decimal.Decimal {
	return b.Rent.Add(b.Food).Add(b.Transport).Add(b.Other)
}
