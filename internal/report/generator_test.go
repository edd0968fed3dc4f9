package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyabroad/departure-planner/internal/budget"
	"studyabroad/departure-planner/internal/costs"
	"studyabroad/departure-planner/internal/logging"
	"studyabroad/departure-planner/internal/models"
)

func sampleReport() *PlanReport {
	profile := models.DefaultProfile()
	profile.DepartureDate = "2025-09-01"

	monthly := models.MonthlyBudget{Rent: decimal.NewFromInt(1300), Food: decimal.NewFromInt(400)}
	return &PlanReport{
		GeneratedAt:     "2025-03-01T00:00:00Z",
		Profile:         &profile,
		DaysToDeparture: "D-184",
		Checklist: ChecklistSection{
			Done:  1,
			Total: 1,
			Items: []models.ChecklistItem{{ID: "1-Final", Title: "Final", RecommendedDate: "D-183", Completed: true, Category: "Other"}},
		},
		Comparison: ComparisonSection{
			Status:         "ready",
			City:           "Toronto",
			DurationMonths: 12,
			Results:        budget.Compare(monthly, models.NewBenchmarkEntry(1200, 400, 150, 250)),
		},
		Costs: costs.Summarize(models.InitialCosts{}, monthly, decimal.NewFromInt(1000), models.CurrencyCAD, models.CurrencyKRW),
	}
}

func TestGenerateJSON(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	out, err := g.Generate(sampleReport(), "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "D-184", decoded["daysToDeparture"])
	profile := decoded["profile"].(map[string]interface{})
	assert.Equal(t, "2025-09-01", profile["departureDate"])
	comparison := decoded["comparison"].(map[string]interface{})
	assert.Len(t, comparison["results"], 4)
}

func TestGenerateXML(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	out, err := g.Generate(sampleReport(), "XML")
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "<?xml"))
	assert.Contains(t, s, "<planReport generatedAt=\"2025-03-01T00:00:00Z\">")
	assert.Contains(t, s, `<checklist done="1" total="1">`)
	assert.Contains(t, s, `<result category="rent">`)
	assert.Contains(t, s, "<absoluteDiff>100</absoluteDiff>")
	assert.Equal(t, 4, strings.Count(s, "<result "))
}

func TestGenerateErrors(t *testing.T) {
	g := NewGenerator(nil)

	_, err := g.Generate(sampleReport(), "yaml")
	assert.EqualError(t, err, "unsupported report format: yaml")

	_, err = g.Generate(nil, "json")
	assert.Error(t, err)
}
