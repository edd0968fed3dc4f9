package models

import "github.com/shopspring/decimal"

// BudgetCategory names a category compared against a benchmark.
type BudgetCategory string

const (
	CategoryRent      BudgetCategory = "rent"
	CategoryFood      BudgetCategory = "food"
	CategoryTransport BudgetCategory = "transport"
	CategoryOther     BudgetCategory = "other"
)

// ComparisonResult is the deviation of one category from its benchmark.
// A positive AbsoluteDiff means the user plans to spend more than the reference.
type ComparisonResult struct {
	Category       BudgetCategory  `json:"category" xml:"category,attr"`
	MyValue        decimal.Decimal `json:"myValue" xml:"myValue"`
	BenchmarkValue decimal.Decimal `json:"benchmarkValue" xml:"benchmarkValue"`
	AbsoluteDiff   decimal.Decimal `json:"absoluteDiff" xml:"absoluteDiff"`
	PercentDiff    decimal.Decimal `json:"percentDiff" xml:"percentDiff"`
}
