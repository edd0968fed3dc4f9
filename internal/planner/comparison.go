package planner

import (
	"context"

	"studyabroad/departure-planner/internal/budget"
	"studyabroad/departure-planner/internal/costs"
	"studyabroad/departure-planner/internal/logging"
	"studyabroad/departure-planner/internal/models"
)

// ComparisonStatus tells why a comparison is or is not available.
type ComparisonStatus string

const (
	StatusNoProfile   ComparisonStatus = "no-profile"
	StatusNoBenchmark ComparisonStatus = "no-benchmark"
	StatusNoBudget    ComparisonStatus = "no-budget"
	StatusReady       ComparisonStatus = "ready"
)

// ComparisonView is the budget-versus-benchmark screen.
type ComparisonView struct {
	Status         ComparisonStatus          `json:"status"`
	City           string                    `json:"city,omitempty"`
	DurationMonths int                       `json:"durationMonths,omitempty"`
	Benchmark      models.BenchmarkEntry     `json:"benchmark"`
	Results        []models.ComparisonResult `json:"results,omitempty"`
}

// Comparison compares the stored budget, with communication folded into other,
// against the benchmark of the profile's city and duration.
func (p *Planner) Comparison(ctx context.Context) ComparisonView {
	profile, ok := p.store.LoadProfile(ctx)
	if !ok || profile.City == "" {
		return ComparisonView{Status: StatusNoProfile}
	}

	view := ComparisonView{City: profile.City, DurationMonths: profile.DurationMonths}

	bench, ok := p.catalog.Lookup(profile.City, profile.DurationMonths)
	if !ok {
		view.Status = StatusNoBenchmark
		p.logger.Debug("No benchmark for city",
			logging.F(logging.FieldCity, profile.City),
			logging.F(logging.FieldDurationMonths, profile.DurationMonths))
		return view
	}
	view.Benchmark = bench

	monthly := p.MonthlyBudget(ctx)
	if costs.Total(monthly).IsZero() {
		view.Status = StatusNoBudget
		return view
	}

	view.Results = budget.Compare(budget.FoldCommunication(monthly), bench)
	view.Status = StatusReady
	return view
}

// Verdicts labels each result of a ready view.
func (v ComparisonView) Verdicts() []budget.Verdict {
	out := make([]budget.Verdict, len(v.Results))
	for i, r := range v.Results {
		out[i] = budget.VerdictFor(r)
	}
	return out
}
