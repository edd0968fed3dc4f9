// Package budget compares a monthly budget against a city benchmark.
package budget

import (
	"github.com/shopspring/decimal"

	"studyabroad/departure-planner/internal/currencyutils"
	"studyabroad/departure-planner/internal/models"
)

// Verdict labels a comparison result for display.
type Verdict string

const (
	VerdictOver  Verdict = "over"
	VerdictUnder Verdict = "under"
	VerdictOnPar Verdict = "on-par"
)

// Compare returns one result per benchmark category, in the order rent, food,
// transport, other. Communication is not compared; callers fold it into other
// first with FoldCommunication.
func Compare(my models.MonthlyBudget, bench models.BenchmarkEntry) []models.ComparisonResult {
	return []models.ComparisonResult{
		compareOne(models.CategoryRent, my.Rent, bench.Rent),
		compareOne(models.CategoryFood, my.Food, bench.Food),
		compareOne(models.CategoryTransport, my.Transport, bench.Transport),
		compareOne(models.CategoryOther, my.Other, bench.Other),
	}
}

func compareOne(category models.BudgetCategory, mine, bench decimal.Decimal) models.ComparisonResult {
	diff := mine.Sub(bench)
	return models.ComparisonResult{
		Category:       category,
		MyValue:        mine,
		BenchmarkValue: bench,
		AbsoluteDiff:   diff,
		PercentDiff:    currencyutils.Percent(diff, bench),
	}
}

// FoldCommunication moves the communication amount into other, since
// benchmarks carry no communication category.
func FoldCommunication(b models.MonthlyBudget) models.MonthlyBudget {
	b.Other = b.Other.Add(b.Communication)
	b.Communication = decimal.Zero
	return b
}

// VerdictFor classifies a result by the sign of its difference.
func VerdictFor(result models.ComparisonResult) Verdict {
	switch result.AbsoluteDiff.Sign() {
	case 1:
		return VerdictOver
	case -1:
		return VerdictUnder
	default:
		return VerdictOnPar
	}
}

// TotalDiff sums the absolute differences over all results.
func TotalDiff(results []models.ComparisonResult) decimal.Decimal {
	total := decimal.Zero
	for _, r := range results {
		total = total.Add(r.AbsoluteDiff)
	}
	return total
}
