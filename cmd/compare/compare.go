// Package compare handles the budget comparison command
package compare

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"studyabroad/departure-planner/cmd/root"
	"studyabroad/departure-planner/internal/export"
	"studyabroad/departure-planner/internal/planner"
	"studyabroad/departure-planner/internal/render"
)

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare your monthly budget with the benchmark of your city",
	Long: `Compare your monthly budget with the typical monthly costs of the city in your
profile. Communication is counted as part of "other", since benchmarks have no
separate communication category.`,
	RunE: compareFunc,
}

var output string

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the comparison as CSV to this file")
}

func compareFunc(cmd *cobra.Command, args []string) error {
	p := root.Planner()
	view := p.Comparison(root.Context(cmd))
	w := cmd.OutOrStdout()

	if view.Status != planner.StatusReady {
		return root.Print(w, view, func() string { return statusMessage(view) })
	}

	if output != "" {
		if err := export.WriteFile(output, func(out io.Writer) error {
			return export.WriteComparisonCSV(out, view.Results)
		}); err != nil {
			return err
		}
	}

	base, _ := p.Currencies()
	return root.Print(w, view, func() string {
		return render.RenderTitle(fmt.Sprintf("%s (%d months)", view.City, view.DurationMonths)) +
			"\n" + render.Comparison(view.Results, base) +
			"\n" + render.Muted("Benchmarks are reference figures from public sources.")
	})
}

func statusMessage(view planner.ComparisonView) string {
	switch view.Status {
	case planner.StatusNoProfile:
		return "No profile saved yet. Run 'profile set' first."
	case planner.StatusNoBenchmark:
		return fmt.Sprintf("No benchmark data for %s (%d months) yet.", view.City, view.DurationMonths)
	case planner.StatusNoBudget:
		return "Enter your monthly budget first with 'costs set-monthly'."
	default:
		return string(view.Status)
	}
}
