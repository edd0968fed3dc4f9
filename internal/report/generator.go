// Package report renders a full plan snapshot as JSON or XML.
package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"studyabroad/departure-planner/internal/costs"
	"studyabroad/departure-planner/internal/logging"
	"studyabroad/departure-planner/internal/models"
)

// Supported formats
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// ChecklistSection summarizes the checklist.
type ChecklistSection struct {
	Done  int                    `json:"done" xml:"done,attr"`
	Total int                    `json:"total" xml:"total,attr"`
	Items []models.ChecklistItem `json:"items" xml:"item"`
}

// ComparisonSection is the budget comparison part of a report.
type ComparisonSection struct {
	Status         string                    `json:"status" xml:"status,attr"`
	City           string                    `json:"city,omitempty" xml:"city,attr,omitempty"`
	DurationMonths int                       `json:"durationMonths,omitempty" xml:"durationMonths,attr,omitempty"`
	Results        []models.ComparisonResult `json:"results,omitempty" xml:"result"`
}

// PlanReport is a snapshot of everything the planner knows.
type PlanReport struct {
	XMLName         xml.Name             `json:"-" xml:"planReport"`
	GeneratedAt     string               `json:"generatedAt" xml:"generatedAt,attr"`
	Profile         *models.StudyProfile `json:"profile,omitempty" xml:"profile,omitempty"`
	DaysToDeparture string               `json:"daysToDeparture,omitempty" xml:"daysToDeparture,omitempty"`
	Checklist       ChecklistSection     `json:"checklist" xml:"checklist"`
	Comparison      ComparisonSection    `json:"comparison" xml:"comparison"`
	Costs           costs.Summary        `json:"costs" xml:"costs"`
}

// Generator renders plan reports.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger.WithField("component", "ReportGenerator")}
}

// Generate renders the report in the given format (json or xml).
func (g *Generator) Generate(report *PlanReport, format string) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("cannot render nil report")
	}
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.generateJSON(report)
	case FormatXML:
		return g.generateXML(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(report *PlanReport) ([]byte, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateXML(report *PlanReport) ([]byte, error) {
	out, err := xml.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal XML report")
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(out)), nil
}
