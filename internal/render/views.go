package render

import (
	"strings"

	"github.com/shopspring/decimal"

	"studyabroad/departure-planner/internal/budget"
	"studyabroad/departure-planner/internal/costs"
	"studyabroad/departure-planner/internal/currencyutils"
	"studyabroad/departure-planner/internal/models"
)

// Checklist renders one table per category group.
func Checklist(groups []models.CategoryGroup, done, total int) string {
	var b strings.Builder
	b.WriteString(Muted(Progress(done, total)))
	b.WriteString("\n")

	for _, g := range groups {
		rows := make([][]string, 0, len(g.Items))
		for _, item := range g.Items {
			mark := "[ ]"
			title := item.Title
			if item.Completed {
				mark = "[x]"
				title = mutedStyle.Render(title)
			}
			rows = append(rows, []string{mark, item.RecommendedDate, title, mutedStyle.Render(item.ID)})
		}
		b.WriteString("\n")
		b.WriteString(RenderTable(Table{
			Title:   g.Category,
			Headers: []string{"", "Due", "Task", "ID"},
			Rows:    rows,
		}))
		b.WriteString("\n")
	}
	return b.String()
}

// Comparison renders budget results with over-spending in red and savings in green.
func Comparison(results []models.ComparisonResult, currency string) string {
	rows := make([][]string, 0, len(results)+1)
	mine, bench := decimal.Zero, decimal.Zero
	for _, r := range results {
		rows = append(rows, comparisonRow(string(r.Category), r, currency))
		mine = mine.Add(r.MyValue)
		bench = bench.Add(r.BenchmarkValue)
	}
	if len(results) > 0 {
		diff := budget.TotalDiff(results)
		rows = append(rows, comparisonRow("total", models.ComparisonResult{
			MyValue:        mine,
			BenchmarkValue: bench,
			AbsoluteDiff:   diff,
			PercentDiff:    currencyutils.Percent(diff, bench),
		}, currency))
	}
	return RenderTable(Table{
		Headers:    []string{"Category", "Mine / month", "Benchmark / month", "Difference", "%"},
		Rows:       rows,
		RightAlign: map[int]bool{1: true, 2: true, 3: true, 4: true},
	})
}

func comparisonRow(label string, r models.ComparisonResult, currency string) []string {
	diff := currencyutils.FormatSignedAmount(r.AbsoluteDiff, currency)
	pct := currencyutils.FormatPercent(r.PercentDiff)
	switch budget.VerdictFor(r) {
	case budget.VerdictOver:
		diff, pct = overStyle.Render(diff), overStyle.Render(pct)
	case budget.VerdictUnder:
		diff, pct = underStyle.Render(diff), underStyle.Render(pct)
	}
	return []string{
		label,
		currencyutils.FormatAmount(r.MyValue, currency),
		currencyutils.FormatAmount(r.BenchmarkValue, currency),
		diff,
		pct,
	}
}

// Costs renders the itemized costs followed by the converted totals.
func Costs(initial models.InitialCosts, monthly models.MonthlyBudget, summary costs.Summary) string {
	base := summary.InitialBase.Currency
	target := summary.InitialTarget.Currency

	var b strings.Builder
	b.WriteString(RenderKeyValues("Initial costs", lineItems(initial.Items(), base)))
	b.WriteString("\n\n")
	b.WriteString(RenderKeyValues("Monthly budget", lineItems(monthly.Items(), base)))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(Table{
		Title:   "Totals",
		Headers: []string{"", base, target},
		Rows: [][]string{
			{"Initial", currencyutils.FormatAmount(summary.InitialBase.Amount, base), currencyutils.FormatAmount(summary.InitialTarget.Amount, target)},
			{"Monthly", currencyutils.FormatAmount(summary.MonthlyBase.Amount, base), currencyutils.FormatAmount(summary.MonthlyTarget.Amount, target)},
		},
		RightAlign: map[int]bool{1: true, 2: true},
	}))
	b.WriteString("\n")
	b.WriteString(Muted("1 " + base + " = " + summary.Rate.String() + " " + target))
	return b.String()
}

func lineItems(items []models.LineItem, currency string) [][2]string {
	out := make([][2]string, 0, len(items)+1)
	for _, item := range items {
		out = append(out, [2]string{item.Name, currencyutils.FormatAmount(item.Amount, currency)})
	}
	return out
}
