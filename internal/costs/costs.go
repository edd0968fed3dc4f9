// Package costs sums one-time and recurring costs and converts them between
// the base and target currency with a scalar rate.
package costs

import (
	"math"

	"github.com/shopspring/decimal"

	"studyabroad/departure-planner/internal/models"
)

// Itemized is implemented by cost groups that can list their fields.
type Itemized interface {
	Items() []models.LineItem
}

// Total sums every field of the group.
func Total(group Itemized) decimal.Decimal {
	total := decimal.Zero
	for _, item := range group.Items() {
		total = total.Add(item.Amount)
	}
	return total
}

// Convert multiplies amount by rate.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

// NormalizeRate returns rate when it is a positive finite number, fallback otherwise.
func NormalizeRate(rate, fallback float64) decimal.Decimal {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return decimal.NewFromFloat(fallback)
	}
	return decimal.NewFromFloat(rate)
}

// Summary holds the totals of a plan in both currencies.
type Summary struct {
	Rate          decimal.Decimal `json:"rate" xml:"rate"`
	InitialBase   models.Money    `json:"initialBase" xml:"initialBase"`
	InitialTarget models.Money    `json:"initialTarget" xml:"initialTarget"`
	MonthlyBase   models.Money    `json:"monthlyBase" xml:"monthlyBase"`
	MonthlyTarget models.Money    `json:"monthlyTarget" xml:"monthlyTarget"`
}

// Summarize totals both cost groups and converts them with rate.
func Summarize(initial models.InitialCosts, monthly models.MonthlyBudget, rate decimal.Decimal, base, target string) Summary {
	initialTotal := models.NewMoney(Total(initial), base)
	monthlyTotal := models.NewMoney(Total(monthly), base)
	return Summary{
		Rate:          rate,
		InitialBase:   initialTotal,
		InitialTarget: initialTotal.Convert(rate, target),
		MonthlyBase:   monthlyTotal,
		MonthlyTarget: monthlyTotal.Convert(rate, target),
	}
}
