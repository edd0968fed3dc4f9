// Package benchmark handles the living-cost benchmark commands
package benchmark

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"studyabroad/departure-planner/cmd/root"
	"studyabroad/departure-planner/internal/currencyutils"
	"studyabroad/departure-planner/internal/models"
	"studyabroad/departure-planner/internal/plannererror"
	"studyabroad/departure-planner/internal/render"
)

// Cmd represents the benchmark command
var Cmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Look up typical monthly living costs by city",
}

var months int

// Result is a resolved benchmark.
type Result struct {
	City            string                `json:"city" xml:"city,attr"`
	RequestedMonths int                   `json:"requestedMonths" xml:"requestedMonths,attr"`
	DurationMonths  int                   `json:"durationMonths" xml:"durationMonths,attr"`
	Entry           models.BenchmarkEntry `json:"benchmark" xml:"benchmark"`
	Total           string                `json:"total" xml:"total"`
}

// CityDurations lists the durations available for a city.
type CityDurations struct {
	City      string `json:"city" xml:"city,attr"`
	Durations []int  `json:"durations" xml:"duration"`
}

func init() {
	lookupCmd := &cobra.Command{
		Use:   "lookup <city>",
		Short: "Show the benchmark for a city and study duration",
		Long: `Show the benchmark for a city. When no entry exists for the exact duration,
the next longer duration is used, or the longest one available.`,
		Args: cobra.MinimumNArgs(1),
		RunE: lookupFunc,
	}
	lookupCmd.Flags().IntVarP(&months, "months", "m", models.DefaultDurationMonths, "Study duration in months")

	citiesCmd := &cobra.Command{
		Use:   "cities",
		Short: "List the cities with benchmark data",
		RunE:  citiesFunc,
	}

	Cmd.AddCommand(lookupCmd, citiesCmd)
}

func lookupFunc(cmd *cobra.Command, args []string) error {
	if months < 1 {
		return &plannererror.InvalidInputError{Field: "months", Value: strconv.Itoa(months), Reason: "must be at least 1"}
	}

	city := strings.Join(args, " ")
	entry, resolved, ok := root.Planner().Catalog().Resolve(city, months)
	if !ok {
		return fmt.Errorf("no benchmark data for %s", city)
	}

	base, _ := root.Planner().Currencies()
	result := Result{
		City:            city,
		RequestedMonths: months,
		DurationMonths:  resolved,
		Entry:           entry,
		Total:           entry.Total().String(),
	}
	title := fmt.Sprintf("%s, %d months (per month)", city, resolved)
	if resolved != months {
		title = fmt.Sprintf("%s, %d months requested, %d-month figures (per month)", city, months, resolved)
	}
	return root.Print(cmd.OutOrStdout(), result, func() string {
		return render.RenderKeyValues(title, [][2]string{
			{"Rent", currencyutils.FormatAmount(entry.Rent, base)},
			{"Food", currencyutils.FormatAmount(entry.Food, base)},
			{"Transport", currencyutils.FormatAmount(entry.Transport, base)},
			{"Other", currencyutils.FormatAmount(entry.Other, base)},
			{"Total", currencyutils.FormatAmount(entry.Total(), base)},
		})
	})
}

func citiesFunc(cmd *cobra.Command, args []string) error {
	catalog := root.Planner().Catalog()

	var list []CityDurations
	rows := make([][]string, 0)
	for _, city := range catalog.Cities() {
		durations := catalog.Durations(city)
		list = append(list, CityDurations{City: city, Durations: durations})

		labels := make([]string, len(durations))
		for i, d := range durations {
			labels[i] = strconv.Itoa(d)
		}
		rows = append(rows, []string{city, strings.Join(labels, ", ")})
	}

	return root.Print(cmd.OutOrStdout(), list, func() string {
		return render.RenderTable(render.Table{
			Title:   "Benchmark cities",
			Headers: []string{"City", "Durations (months)"},
			Rows:    rows,
		})
	})
}
