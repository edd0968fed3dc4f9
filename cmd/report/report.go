// Package report handles the plan report command
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"studyabroad/departure-planner/cmd/root"
	"studyabroad/departure-planner/internal/checklist"
	"studyabroad/departure-planner/internal/fileutils"
	"studyabroad/departure-planner/internal/models"
	reportpkg "studyabroad/departure-planner/internal/report"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Write a full plan report as JSON or XML",
	RunE:  reportFunc,
}

var output string

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
}

// reportFormat maps the global output format; table falls back to JSON.
func reportFormat() string {
	if strings.EqualFold(root.SharedFlags.Format, reportpkg.FormatXML) {
		return reportpkg.FormatXML
	}
	return reportpkg.FormatJSON
}

func reportFunc(cmd *cobra.Command, args []string) error {
	ctx := root.Context(cmd)
	p := root.Planner()

	plan := &reportpkg.PlanReport{GeneratedAt: time.Now().UTC().Format(time.RFC3339)}
	if profile, ok := p.Profile(ctx); ok {
		plan.Profile = &profile
		plan.DaysToDeparture, _ = p.DaysToDeparture(ctx)

		items, err := p.Checklist(ctx)
		if err != nil {
			root.Log.WithError(err).Warn("Checklist unavailable for report")
		}
		plan.Checklist = checklistSection(items)
	}

	view := p.Comparison(ctx)
	plan.Comparison = reportpkg.ComparisonSection{
		Status:         string(view.Status),
		City:           view.City,
		DurationMonths: view.DurationMonths,
		Results:        view.Results,
	}
	plan.Costs = p.Costs(ctx).Summary

	out, err := reportpkg.NewGenerator(root.App().GetLogger()).Generate(plan, reportFormat())
	if err != nil {
		return err
	}

	if output == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	}
	if err := fileutils.WriteFile(output, out, os.FileMode(models.PermissionConfigFile)); err != nil {
		return err
	}
	root.Log.WithField("output_file", output).Info("Report written")
	return nil
}

func checklistSection(items []models.ChecklistItem) reportpkg.ChecklistSection {
	done, total := checklist.Progress(items)
	return reportpkg.ChecklistSection{Done: done, Total: total, Items: items}
}
